package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the document access contract the handlers run against.
// *store.Store satisfies it; tests substitute a fake.
type DocumentStore interface {
	Available() bool
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, collection, id string) (bson.M, error)
	CountDocuments(ctx context.Context, collection string) (int64, error)
	AddToSet(ctx context.Context, collection, id, field, value string) (int64, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}
