// Package query translates untrusted list-endpoint query parameters
// (where/sort/select/skip/limit/count) into a validated Descriptor that
// the store layer can execute safely. It performs no I/O.
package query

// Pagination defaults applied when the client omits skip or limit.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// SortField is a single ordering term. Direction is 1 for ascending and
// -1 for descending, matching the wire format clients send.
type SortField struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

// Descriptor is the validated, structured representation of a client's
// list-query intent. It is transient: built per request, echoed back to
// the client in the response envelope's opts field, never persisted.
//
// Filter values are either scalars (equality) or operator documents
// restricted to the allowed operator set; unknown operators are rejected
// at parse time rather than passed through to the store.
type Descriptor struct {
	Filter     map[string]any `json:"where"`
	Sort       []SortField    `json:"sort,omitempty"`
	Projection map[string]int `json:"select,omitempty"`
	Skip       int64          `json:"skip"`
	Limit      int64          `json:"limit"`
	Count      bool           `json:"count"`
}

// NewDescriptor returns a Descriptor with defaults: match-all filter,
// store-default ordering, all fields, skip 0, limit 100, count off.
func NewDescriptor() *Descriptor {
	return &Descriptor{
		Filter: map[string]any{},
		Skip:   DefaultSkip,
		Limit:  DefaultLimit,
	}
}
