package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBodyBytes caps request bodies; quip questions are short.
const maxRequestBodyBytes = 1 << 16

// DecodeJSON decodes the request body into dst, rejecting unknown fields and
// oversized bodies.
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}
