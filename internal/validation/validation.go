// Package validation decodes JSON request bodies into typed values and checks
// them against the struct-tag schemas declared on the models.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated field.
// swagger:model FieldError
type FieldError struct {
	// JSON path of the field
	// example: skills
	Field string `json:"field"`

	// Human readable reason
	// example: must contain at least 1 item
	Reason string `json:"reason"`
}

// ValidationError is returned when a payload does not satisfy its schema.
// It lists every violated field.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeAndValidate decodes a JSON document from r into dst and validates it.
// Decoding and schema failures are both reported as *ValidationError.
// A field of the wrong JSON type is reported together with the schema
// violations of the other fields. Syntax errors and trailing data stop early.
func DecodeAndValidate(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)

	var typed *FieldError
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return decodeError(err)
		}
		fe := typeFieldError(typeErr)
		typed = &fe
	}

	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return &ValidationError{Errors: []FieldError{{Field: "body", Reason: "unexpected data after JSON value"}}}
	}

	err := Struct(dst)
	if typed == nil {
		return err
	}

	out := &ValidationError{Errors: []FieldError{*typed}}
	var verr *ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	if verr != nil {
		for _, fe := range verr.Errors {
			if !within(fe.Field, typed.Field) {
				out.Errors = append(out.Errors, fe)
			}
		}
	}
	return out
}

// within reports whether field is path itself or nested below it.
func within(field, path string) bool {
	if !strings.HasPrefix(field, path) {
		return false
	}
	rest := field[len(path):]
	return rest == "" || rest[0] == '[' || rest[0] == '.'
}

// Struct validates an already decoded value.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "isdefault":
		return "is assigned by the server and must not be provided"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	fe := FieldError{Field: "body"}
	switch {
	case errors.Is(err, io.EOF):
		fe.Reason = "request body is empty"
	case errors.Is(err, io.ErrUnexpectedEOF):
		fe.Reason = "malformed JSON"
	case errors.As(err, &syntaxErr):
		fe.Reason = fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		fe = typeFieldError(typeErr)
	default:
		fe.Reason = err.Error()
	}

	return &ValidationError{Errors: []FieldError{fe}}
}

func typeFieldError(typeErr *json.UnmarshalTypeError) FieldError {
	fe := FieldError{Field: "body"}
	if typeErr.Field != "" {
		fe.Field = typeErr.Field
	}
	fe.Reason = fmt.Sprintf("expected %s, got %s", jsonKind(typeErr.Type), typeErr.Value)
	return fe
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
