package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskboard/api/internal/query"
)

func TestBuildFilter(t *testing.T) {
	t.Run("match_all_by_default", func(t *testing.T) {
		filter := buildFilter(query.NewDescriptor())
		assert.Equal(t, bson.M{}, filter)
	})

	t.Run("passes_validated_filter_through", func(t *testing.T) {
		d := query.NewDescriptor()
		d.Filter = map[string]any{
			"completed": false,
			"deadline":  map[string]any{"$lt": "2025-01-01"},
		}

		filter := buildFilter(d)
		assert.Equal(t, bson.M{
			"completed": false,
			"deadline":  map[string]any{"$lt": "2025-01-01"},
		}, filter)
	})

	t.Run("converts_id_hex_to_object_id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		d := query.NewDescriptor()
		d.Filter = map[string]any{"_id": oid.Hex()}

		filter := buildFilter(d)
		assert.Equal(t, bson.M{"_id": oid}, filter)
	})

	t.Run("keeps_unparsable_id_as_string", func(t *testing.T) {
		d := query.NewDescriptor()
		d.Filter = map[string]any{"_id": "not-an-object-id"}

		filter := buildFilter(d)
		assert.Equal(t, bson.M{"_id": "not-an-object-id"}, filter)
	})
}

func TestBuildFindOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := buildFindOptions(query.NewDescriptor())

		require.NotNil(t, opts.Skip)
		require.NotNil(t, opts.Limit)
		assert.EqualValues(t, 0, *opts.Skip)
		assert.EqualValues(t, query.DefaultLimit, *opts.Limit)
		assert.Nil(t, opts.Sort)
		assert.Nil(t, opts.Projection)
	})

	t.Run("sort_order_preserved", func(t *testing.T) {
		d := query.NewDescriptor()
		d.Sort = []query.SortField{
			{Field: "completed", Direction: 1},
			{Field: "deadline", Direction: -1},
		}

		opts := buildFindOptions(d)
		require.NotNil(t, opts.Sort)
		assert.Equal(t, bson.D{
			{Key: "completed", Value: 1},
			{Key: "deadline", Value: -1},
		}, opts.Sort)
	})

	t.Run("projection_and_pagination", func(t *testing.T) {
		d := query.NewDescriptor()
		d.Projection = map[string]int{"name": 1}
		d.Skip = 10
		d.Limit = 5

		opts := buildFindOptions(d)
		assert.Equal(t, bson.M{"name": 1}, opts.Projection)
		assert.EqualValues(t, 10, *opts.Skip)
		assert.EqualValues(t, 5, *opts.Limit)
	})
}
