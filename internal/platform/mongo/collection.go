package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/api/internal/query"
)

// findAll runs a descriptor-driven query against the collection and
// decodes all matching documents into out, which must be a pointer to a
// slice.
func findAll(ctx context.Context, coll *mongo.Collection, d *query.Descriptor, out any) error {
	cursor, err := coll.Find(ctx, buildFilter(d), buildFindOptions(d))
	if err != nil {
		return errors.Wrapf(err, "querying %s", coll.Name())
	}

	if err := cursor.All(ctx, out); err != nil {
		return errors.Wrapf(err, "decoding %s documents", coll.Name())
	}

	return nil
}

// countAll counts documents matching the descriptor's filter. Pagination
// and projection are deliberately not applied.
func countAll(ctx context.Context, coll *mongo.Collection, d *query.Descriptor) (int64, error) {
	n, err := coll.CountDocuments(ctx, buildFilter(d))
	if err != nil {
		return 0, errors.Wrapf(err, "counting %s", coll.Name())
	}
	return n, nil
}

// findByID decodes the document with the given hex ID into out. Returns
// notFound when the ID is malformed or no document matches.
func findByID(ctx context.Context, coll *mongo.Collection, id string, out any, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID can never match a stored document.
		return notFound
	}

	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return notFound
	}
	if err != nil {
		return errors.Wrapf(err, "finding %s document by id", coll.Name())
	}

	return nil
}

// insertOne inserts the document and returns the object ID the store
// assigned to it.
func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "inserting into %s", coll.Name())
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}

	return oid, nil
}

// replaceByID replaces the document with the given object ID. Returns
// notFound when no document matches.
func replaceByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc any, notFound error) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return errors.Wrapf(err, "replacing %s document", coll.Name())
	}
	if res.MatchedCount == 0 {
		return notFound
	}

	return nil
}

// deleteByID removes the document with the given hex ID. Returns
// notFound when the ID is malformed or no document matches.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", coll.Name())
	}
	if res.DeletedCount == 0 {
		return notFound
	}

	return nil
}

// existsByField reports whether any document has the given field value.
func existsByField(ctx context.Context, coll *mongo.Collection, field string, value any) (bool, error) {
	err := coll.FindOne(ctx, bson.M{field: value}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "checking %s for existing %s", coll.Name(), field)
	}

	return true, nil
}
