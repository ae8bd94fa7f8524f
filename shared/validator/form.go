package validator

import (
	"fmt"
	"net/http"

	"nihom/shared/failure"
)

// FormDecoder is implemented by request DTOs that populate themselves from a
// form-encoded body.
type FormDecoder interface {
	FromForm(r *http.Request) error
}

// ValidateForm parses the request's form body, decodes it into the given
// struct and then validates the struct. Decoding errors and validation
// failures both surface as validation errors, before any store call.
func ValidateForm[T any](r *http.Request, data *T) error {
	if err := r.ParseForm(); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to parse form body: %w", err)) //nolint:wrapcheck
	}

	decoder, ok := any(data).(FormDecoder)
	if !ok {
		return failure.InternalError(fmt.Errorf("%T does not decode form payloads", data)) //nolint:wrapcheck
	}

	if err := decoder.FromForm(r); err != nil {
		return err
	}

	return ValidateStruct(data)
}
