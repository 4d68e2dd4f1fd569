package justwatch

import "fmt"

// RequestError indicates the HTTP round trip itself failed (DNS, connect, TLS,
// reading the body). It is never retried.
type RequestError struct {
	Op  string // "create request", "execute request", ...
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("justwatch: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NoJSONError indicates the API answered with a body that is not JSON.
type NoJSONError struct {
	Err error
}

func (e *NoJSONError) Error() string {
	return fmt.Sprintf("justwatch: response is not JSON: %v", e.Err)
}

func (e *NoJSONError) Unwrap() error {
	return e.Err
}

// FieldError reports an object missing a required field.
type FieldError struct {
	Kind  string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Kind, e.Field)
}
