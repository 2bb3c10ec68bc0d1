package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	d, err := Parse(url.Values{})
	require.NoError(t, err)

	assert.Empty(t, d.Filter)
	assert.Nil(t, d.Sort)
	assert.Nil(t, d.Projection)
	assert.EqualValues(t, DefaultSkip, d.Skip)
	assert.EqualValues(t, DefaultLimit, d.Limit)
	assert.False(t, d.Count)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		where   string
		want    map[string]any
		wantErr error
	}{
		{
			name:  "equality_scalar",
			where: `{"completed": false}`,
			want:  map[string]any{"completed": false},
		},
		{
			name:  "equality_string",
			where: `{"assignedUser": "abc123"}`,
			want:  map[string]any{"assignedUser": "abc123"},
		},
		{
			name:  "equality_null",
			where: `{"description": null}`,
			want:  map[string]any{"description": nil},
		},
		{
			name:  "comparison_operators",
			where: `{"deadline": {"$gte": "2024-01-01", "$lt": "2025-01-01"}}`,
			want: map[string]any{
				"deadline": map[string]any{"$gte": "2024-01-01", "$lt": "2025-01-01"},
			},
		},
		{
			name:  "in_operator",
			where: `{"name": {"$in": ["a", "b"]}}`,
			want:  map[string]any{"name": map[string]any{"$in": []any{"a", "b"}}},
		},
		{
			name:  "exists_operator",
			where: `{"assignedUser": {"$exists": true}}`,
			want:  map[string]any{"assignedUser": map[string]any{"$exists": true}},
		},
		{
			name:    "not_json",
			where:   `completed == false`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "json_but_not_object",
			where:   `[1, 2, 3]`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "unknown_operator",
			where:   `{"name": {"$regex": ".*"}}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "injection_via_where_operator",
			where:   `{"$where": "sleep(1000)"}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "top_level_or",
			where:   `{"$or": [{"name": "a"}, {"name": "b"}]}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "bare_array_value",
			where:   `{"pendingTasks": ["t1"]}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "in_requires_array",
			where:   `{"name": {"$in": "a"}}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "in_rejects_nested_docs",
			where:   `{"name": {"$in": [{"$gt": 1}]}}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "exists_requires_bool",
			where:   `{"name": {"$exists": 1}}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "empty_operator_doc",
			where:   `{"name": {}}`,
			wantErr: ErrMalformedFilter,
		},
		{
			name:    "operator_arg_must_be_scalar",
			where:   `{"deadline": {"$gt": {"nested": 1}}}`,
			wantErr: ErrMalformedFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(url.Values{"where": []string{tt.where}})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Filter)
		})
	}
}

func TestParseFilterWhitespace(t *testing.T) {
	// A padded where parameter is trimmed before decoding.
	d, err := Parse(url.Values{"where": []string{`  {"name": "a"}  `}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "a"}, d.Filter)

	// Whitespace-only means absent.
	d, err = Parse(url.Values{"where": []string{"   "}})
	require.NoError(t, err)
	assert.Empty(t, d.Filter)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		want    []SortField
		wantErr error
	}{
		{
			name: "single_ascending",
			sort: `{"dateCreated": 1}`,
			want: []SortField{{Field: "dateCreated", Direction: 1}},
		},
		{
			name: "single_descending",
			sort: `{"deadline": -1}`,
			want: []SortField{{Field: "deadline", Direction: -1}},
		},
		{
			name: "multi_field_order_preserved",
			sort: `{"completed": 1, "deadline": -1, "name": 1}`,
			want: []SortField{
				{Field: "completed", Direction: 1},
				{Field: "deadline", Direction: -1},
				{Field: "name", Direction: 1},
			},
		},
		{
			name:    "invalid_direction",
			sort:    `{"name": 2}`,
			wantErr: ErrMalformedSort,
		},
		{
			name:    "string_direction",
			sort:    `{"name": "asc"}`,
			wantErr: ErrMalformedSort,
		},
		{
			name:    "not_json",
			sort:    `name desc`,
			wantErr: ErrMalformedSort,
		},
		{
			name:    "nested_object",
			sort:    `{"name": {"dir": 1}}`,
			wantErr: ErrMalformedSort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(url.Values{"sort": []string{tt.sort}})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Sort)
		})
	}
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		name    string
		sel     string
		want    map[string]int
		wantErr error
	}{
		{
			name: "include",
			sel:  `{"name": 1, "email": 1}`,
			want: map[string]int{"name": 1, "email": 1},
		},
		{
			name: "exclude",
			sel:  `{"pendingTasks": 0}`,
			want: map[string]int{"pendingTasks": 0},
		},
		{
			name:    "invalid_flag",
			sel:     `{"name": 5}`,
			wantErr: ErrMalformedProjection,
		},
		{
			name:    "boolean_flag",
			sel:     `{"name": true}`,
			wantErr: ErrMalformedProjection,
		},
		{
			name:    "not_json",
			sel:     `name`,
			wantErr: ErrMalformedProjection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(url.Values{"select": []string{tt.sel}})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Projection)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		skip      string
		limit     string
		wantSkip  int64
		wantLimit int64
		wantErr   error
	}{
		{name: "absent_defaults", wantSkip: 0, wantLimit: 100},
		{name: "explicit", skip: "5", limit: "20", wantSkip: 5, wantLimit: 20},
		{name: "zero_skip", skip: "0", wantSkip: 0, wantLimit: 100},
		{name: "non_numeric_skip", skip: "abc", wantErr: ErrInvalidSkip},
		{name: "negative_skip", skip: "-1", wantErr: ErrInvalidSkip},
		{name: "fractional_skip", skip: "1.5", wantErr: ErrInvalidSkip},
		{name: "non_numeric_limit", limit: "lots", wantErr: ErrInvalidLimit},
		{name: "zero_limit", limit: "0", wantErr: ErrInvalidLimit},
		{name: "negative_limit", limit: "-10", wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := url.Values{}
			if tt.skip != "" {
				vals.Set("skip", tt.skip)
			}
			if tt.limit != "" {
				vals.Set("limit", tt.limit)
			}

			d, err := Parse(vals)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, d.Skip)
			assert.Equal(t, tt.wantLimit, d.Limit)
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		count   string
		want    bool
		wantErr error
	}{
		{name: "absent", want: false},
		{name: "true", count: "true", want: true},
		{name: "false", count: "false", want: false},
		{name: "numeric_true", count: "1", want: true},
		{name: "numeric_false", count: "0", want: false},
		{name: "garbage", count: "maybe", wantErr: ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := url.Values{}
			if tt.count != "" {
				vals.Set("count", tt.count)
			}

			d, err := Parse(vals)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Count)
		})
	}
}

func TestParseCombined(t *testing.T) {
	vals := url.Values{}
	vals.Set("where", `{"completed": false, "deadline": {"$lt": "2025-01-01"}}`)
	vals.Set("sort", `{"deadline": 1}`)
	vals.Set("select", `{"name": 1, "deadline": 1}`)
	vals.Set("skip", "10")
	vals.Set("limit", "25")
	vals.Set("count", "true")

	d, err := Parse(vals)
	require.NoError(t, err)

	assert.Len(t, d.Filter, 2)
	assert.Equal(t, []SortField{{Field: "deadline", Direction: 1}}, d.Sort)
	assert.Equal(t, map[string]int{"name": 1, "deadline": 1}, d.Projection)
	assert.EqualValues(t, 10, d.Skip)
	assert.EqualValues(t, 25, d.Limit)
	assert.True(t, d.Count)
}
