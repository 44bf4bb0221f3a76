// Package validation checks request and response payloads against the
// constraints declared on their types.
//
// Outgoing payloads are validated before any network activity so a bad
// request fails fast. Decoded responses are re-validated so a provider
// payload missing a required field surfaces as a structured error naming
// the JSON path instead of a zero value leaking into caller code.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// Mode selects how unknown JSON fields are treated while decoding.
type Mode int

const (
	// Open ignores unknown fields, keeping decoding forward compatible
	// with provider-side additions.
	Open Mode = iota
	// Strict rejects unknown fields. Used for caller-authored payloads
	// where an unknown key is a typo rather than a new provider field.
	Strict
)

//nolint:gochecknoglobals // Shared validator instance, initialized once.
var (
	instance *validator.Validate
	initOnce sync.Once
)

// V returns the shared validator instance.
func V() *validator.Validate {
	initOnce.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(jsonFieldName)
	})

	return instance
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}

	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// ValidateRequest checks a caller-supplied payload before it is sent.
func ValidateRequest(payload interface{}) error {
	return validateStruct(payload, "request validation failed")
}

// ValidateResponse checks a decoded provider payload.
func ValidateResponse(payload interface{}) error {
	return validateStruct(payload, "response validation failed")
}

func validateStruct(payload interface{}, message string) error {
	err := V().Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return &skylift.APIError{
			Message: fmt.Sprintf("%s: %v", message, err),
			Code:    skylift.ErrorCodeValidation,
		}
	}

	fields := make([]skylift.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, skylift.FieldError{
			Name:     fieldPath(violation.Namespace()),
			Messages: []string{constraintMessage(violation)},
		})
	}

	return &skylift.APIError{
		Message: message,
		Code:    skylift.ErrorCodeValidation,
		Details: &skylift.ErrorDetails{Fields: fields},
	}
}

// fieldPath strips the root type name from a validator namespace, leaving
// the JSON path of the offending field ("server.name", "rules[0].port").
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

func constraintMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "required_if", "required_without":
		return "is required in this configuration"
	case "excluded_with":
		return "conflicts with another provided field"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(violation.Param()), ", ")
	case "min":
		return "must be at least " + violation.Param()
	case "max":
		return "must be at most " + violation.Param()
	case "ip":
		return "must be a valid IP address"
	case "cidr":
		return "must be a valid CIDR block"
	case "fqdn":
		return "must be a fully qualified domain name"
	case "hostname_rfc1123":
		return "must be a valid hostname"
	default:
		return "failed " + violation.Tag() + " constraint"
	}
}

// Decode unmarshals body into target honoring the given mode. Failures are
// reported as validation errors carrying no HTTP status of their own.
func Decode(body []byte, target interface{}, mode Mode) error {
	if mode == Strict {
		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(target); err != nil {
			return decodeError(err)
		}

		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return decodeError(err)
	}

	return nil
}

// DecodeResponse decodes a provider response body and re-validates the
// decoded value.
func DecodeResponse(body []byte, target interface{}, mode Mode) error {
	if err := Decode(body, target, mode); err != nil {
		return err
	}

	return ValidateResponse(target)
}

func decodeError(err error) error {
	return &skylift.APIError{
		Message: fmt.Sprintf("decoding payload: %v", err),
		Code:    skylift.ErrorCodeValidation,
	}
}
