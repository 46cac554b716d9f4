package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotConfigured is returned when no database connection was
	// established at startup (missing DATABASE_URL).
	ErrNotConfigured = errors.New("database not configured")

	// ErrInvalidID is returned when an id string is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Second
)

// Store gives handlers generic access to the named collections of a
// document database. The wrapped database may be nil; every operation
// then fails with ErrNotConfigured.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether a database connection was configured.
func (s *Store) Available() bool {
	return s.db != nil
}

// CreateDocument inserts doc into the named collection and returns the
// newly assigned id as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// GetDocuments returns up to limit documents matching filter, in storage
// order. An empty collection yields an empty slice, not an error.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID fetches a single document by its hex id.
func (s *Store) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// CountDocuments counts all documents in the named collection.
func (s *Store) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if s.db == nil {
		return 0, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

// AddToSet appends value to the document's named array field only if not
// already present, as a single atomic update. Returns the number of
// matched documents (0 when no document has the given id).
func (s *Store) AddToSet(ctx context.Context, collection, id, field, value string) (int64, error) {
	if s.db == nil {
		return 0, ErrNotConfigured
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$addToSet": bson.M{field: value}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// ListCollectionNames lists the collections present in the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return s.db.ListCollectionNames(ctx, bson.M{})
}
