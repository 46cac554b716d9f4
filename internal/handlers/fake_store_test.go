package handlers_test

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"spotify-lite/internal/store"
)

// fakeStore is an in-memory DocumentStore with the same contract as the
// Mongo-backed one, including $addToSet set semantics.
type fakeStore struct {
	unavailable bool
	failReads   bool
	collections map[string][]bson.M
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]bson.M)}
}

func (f *fakeStore) Available() bool {
	return !f.unavailable
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.unavailable {
		return "", store.ErrNotConfigured
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return "", err
	}

	// Like the real driver, a document that already carries an _id keeps
	// it; the store only generates one when it is absent.
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	f.collections[collection] = append(f.collections[collection], m)
	return id.Hex(), nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if f.unavailable {
		return nil, store.ErrNotConfigured
	}
	if f.failReads {
		return nil, context.DeadlineExceeded
	}

	docs := f.collections[collection]
	if int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	out := make([]bson.M, len(docs))
	copy(out, docs)
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	if f.unavailable {
		return nil, store.ErrNotConfigured
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	for _, doc := range f.collections[collection] {
		if doc["_id"] == objID {
			return doc, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if f.unavailable {
		return 0, store.ErrNotConfigured
	}
	if f.failReads {
		return 0, context.DeadlineExceeded
	}
	return int64(len(f.collections[collection])), nil
}

func (f *fakeStore) AddToSet(ctx context.Context, collection, id, field, value string) (int64, error) {
	if f.unavailable {
		return 0, store.ErrNotConfigured
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, store.ErrInvalidID
	}

	for _, doc := range f.collections[collection] {
		if doc["_id"] != objID {
			continue
		}

		members, _ := doc[field].(bson.A)
		for _, m := range members {
			if m == value {
				return 1, nil
			}
		}
		doc[field] = append(members, value)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if f.unavailable {
		return nil, store.ErrNotConfigured
	}
	if f.failReads {
		return nil, context.DeadlineExceeded
	}

	names := make([]string, 0, len(f.collections))
	for name := range f.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
