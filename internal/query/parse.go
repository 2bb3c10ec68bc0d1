package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Parse errors. All of them indicate client mistakes and map to a
// 400 response at the API layer.
var (
	ErrMalformedFilter     = errors.New("malformed where filter")
	ErrMalformedSort       = errors.New("malformed sort specification")
	ErrMalformedProjection = errors.New("malformed select projection")
	ErrInvalidSkip         = errors.New("invalid skip value")
	ErrInvalidLimit        = errors.New("invalid limit value")
	ErrInvalidCount        = errors.New("invalid count value")
)

// allowedOperators is the closed set of filter operators accepted inside
// a where document. Anything else is rejected, never forwarded.
var allowedOperators = map[string]bool{
	"$eq":     true,
	"$ne":     true,
	"$gt":     true,
	"$gte":    true,
	"$lt":     true,
	"$lte":    true,
	"$in":     true,
	"$nin":    true,
	"$exists": true,
}

// Parse converts raw query parameters into a validated Descriptor.
//
// Defaults: absent where/sort/select mean match-all, store-default order
// and all fields; skip defaults to 0, limit to 100, count to false.
// Non-numeric skip and limit are rejected outright instead of being
// forwarded to the store uninterpreted.
func Parse(vals url.Values) (*Descriptor, error) {
	d := NewDescriptor()

	if raw := strings.TrimSpace(vals.Get("where")); raw != "" {
		filter, err := parseFilter(raw)
		if err != nil {
			return nil, err
		}
		d.Filter = filter
	}

	if raw := strings.TrimSpace(vals.Get("sort")); raw != "" {
		sort, err := parseSort(raw)
		if err != nil {
			return nil, err
		}
		d.Sort = sort
	}

	if raw := strings.TrimSpace(vals.Get("select")); raw != "" {
		projection, err := parseProjection(raw)
		if err != nil {
			return nil, err
		}
		d.Projection = projection
	}

	skip, err := readInt(vals.Get("skip"), 0, DefaultSkip)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSkip, vals.Get("skip"))
	}
	d.Skip = skip

	limit, err := readInt(vals.Get("limit"), 1, DefaultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLimit, vals.Get("limit"))
	}
	d.Limit = limit

	if raw := vals.Get("count"); raw != "" {
		count, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCount, raw)
		}
		d.Count = count
	}

	return d, nil
}

// readInt parses an integer parameter value with a lower bound and a
// default for the absent case.
func readInt(s string, min, defaultValue int64) (int64, error) {
	if s == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if value < min {
		return 0, fmt.Errorf("value %d below minimum %d", value, min)
	}

	return value, nil
}

// parseFilter decodes and validates a where document. Each entry is
// either a scalar equality match or an operator document whose operators
// all belong to the allowed set.
func parseFilter(raw string) (map[string]any, error) {
	var filter map[string]any
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}

	for field, value := range filter {
		if strings.HasPrefix(field, "$") {
			return nil, fmt.Errorf("%w: top-level operator %q not allowed", ErrMalformedFilter, field)
		}

		switch v := value.(type) {
		case map[string]any:
			if err := validateOperatorDoc(field, v); err != nil {
				return nil, err
			}
		case []any:
			return nil, fmt.Errorf("%w: field %q: array values must use $in or $nin", ErrMalformedFilter, field)
		default:
			// scalar equality: string, number, bool or null
		}
	}

	return filter, nil
}

// validateOperatorDoc checks a {"$op": value, ...} document against the
// allowed operator set and each operator's expected argument shape.
func validateOperatorDoc(field string, doc map[string]any) error {
	if len(doc) == 0 {
		return fmt.Errorf("%w: field %q: empty operator document", ErrMalformedFilter, field)
	}

	for op, arg := range doc {
		if !allowedOperators[op] {
			return fmt.Errorf("%w: field %q: unknown operator %q", ErrMalformedFilter, field, op)
		}

		switch op {
		case "$in", "$nin":
			values, ok := arg.([]any)
			if !ok {
				return fmt.Errorf("%w: field %q: %s requires an array", ErrMalformedFilter, field, op)
			}
			for _, v := range values {
				if !isScalar(v) {
					return fmt.Errorf("%w: field %q: %s accepts scalar elements only", ErrMalformedFilter, field, op)
				}
			}
		case "$exists":
			if _, ok := arg.(bool); !ok {
				return fmt.Errorf("%w: field %q: $exists requires a boolean", ErrMalformedFilter, field)
			}
		default:
			if !isScalar(arg) {
				return fmt.Errorf("%w: field %q: %s requires a scalar", ErrMalformedFilter, field, op)
			}
		}
	}

	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool, nil:
		return true
	default:
		return false
	}
}

// parseSort decodes a {"field": 1, "other": -1} document into an ordered
// sort list. JSON object key order is preserved so multi-field sorts are
// applied in the order the client wrote them.
func parseSort(raw string) ([]SortField, error) {
	var directions map[string]json.Number
	if err := json.Unmarshal([]byte(raw), &directions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSort, err)
	}

	fields, err := objectKeysInOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSort, err)
	}

	sort := make([]SortField, 0, len(fields))
	for _, field := range fields {
		direction, err := directions[field].Int64()
		if err != nil || (direction != 1 && direction != -1) {
			return nil, fmt.Errorf("%w: field %q: direction must be 1 or -1", ErrMalformedSort, field)
		}
		sort = append(sort, SortField{Field: field, Direction: int(direction)})
	}

	return sort, nil
}

// parseProjection decodes a {"field": 1} / {"field": 0} document.
func parseProjection(raw string) (map[string]int, error) {
	var flags map[string]json.Number
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProjection, err)
	}

	projection := make(map[string]int, len(flags))
	for field, flag := range flags {
		include, err := flag.Int64()
		if err != nil || (include != 0 && include != 1) {
			return nil, fmt.Errorf("%w: field %q: flag must be 0 or 1", ErrMalformedProjection, field)
		}
		projection[field] = int(include)
	}

	return projection, nil
}

// objectKeysInOrder returns the keys of a flat JSON object in document
// order, which decoding into a Go map discards. The caller has already
// verified the object is flat with non-string values, so the token
// stream is a strict key/value alternation.
func objectKeysInOrder(raw string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}
		keys = append(keys, key)

		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}

	return keys, nil
}
