package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.New is expensive enough that a
// per-request instance is not worth it.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks the struct's validate tags. A type with its own
// Validate method is asked directly instead.
func ValidateRequest(v any) error {
	if dv, ok := v.(interface{ Validate() error }); ok {
		return dv.Validate()
	}

	return validate.Struct(v)
}
