// Package apierror defines the JSON error envelopes the API returns.
//
// Two shapes cover the whole surface: a single human-readable detail for
// auth failures (401), ownership and role rejections (403), missing
// resources (404) and conflicts — duplicate email, duplicate atencion
// identity, invalid turno/recalada transitions (409) — and a field map for
// 422 payload validation. Internal causes (SQL errors, stack traces, hash
// parameters) never reach a client through either shape.
package apierror

// APIError carries one message and nothing else.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists the rejected fields of a 422 by name, each with
// the validator tag that failed.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
