package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize prepares a stored document for the wire: the internal "_id"
// becomes a public "id" string field, and any remaining ObjectID-typed
// values are converted to their hex form. The input map is not mutated.
// A nil document, or one already serialized, is returned unchanged.
func Serialize(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if raw, ok := out["_id"]; ok {
		if oid, ok := raw.(primitive.ObjectID); ok {
			out["id"] = oid.Hex()
		} else {
			out["id"] = raw
		}
		delete(out, "_id")
	}

	for k, v := range out {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
		}
	}

	return out
}

// SerializeAll applies Serialize to every document in order.
func SerializeAll(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, Serialize(d))
	}
	return out
}
