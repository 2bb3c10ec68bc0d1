package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskboard/api/internal/query"
)

// buildFilter converts a descriptor's validated filter into a bson
// document. Hex strings filtering on _id are converted to object IDs so
// equality matches behave the way clients expect; an unparsable _id is
// left as the raw string, which matches nothing.
func buildFilter(d *query.Descriptor) bson.M {
	filter := bson.M{}
	for field, value := range d.Filter {
		if field == "_id" {
			if s, ok := value.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					filter[field] = oid
					continue
				}
			}
		}
		filter[field] = value
	}
	return filter
}

// buildFindOptions translates the descriptor's sort, projection, skip
// and limit into driver options. The driver applies sort before skip and
// limit, and projection only shapes returned documents, so the fixed
// filter -> sort -> projection -> skip -> limit order holds.
func buildFindOptions(d *query.Descriptor) *options.FindOptions {
	opts := options.Find().
		SetSkip(d.Skip).
		SetLimit(d.Limit)

	if len(d.Sort) > 0 {
		sort := make(bson.D, 0, len(d.Sort))
		for _, s := range d.Sort {
			sort = append(sort, bson.E{Key: s.Field, Value: s.Direction})
		}
		opts.SetSort(sort)
	}

	if len(d.Projection) > 0 {
		projection := make(bson.M, len(d.Projection))
		for field, flag := range d.Projection {
			projection[field] = flag
		}
		opts.SetProjection(projection)
	}

	return opts
}
