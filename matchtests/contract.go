package matchtests

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/teknopark/matchmaking-contract-tests/client"
	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

// ContractError means that the response was valid JSON but did not have the expected shape or
// values.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string { return e.Message }

func (e *ContractError) ErrorKind() framework.ErrorKind { return framework.KindContract }

func contractErrorf(format string, args ...interface{}) *ContractError {
	return &ContractError{Message: fmt.Sprintf(format, args...)}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requireResponse checks that the request succeeded and decodes the body into target, which
// must be a pointer to one of the servicedef response types. If the type has a success flag,
// it must be true. Then the struct's validate tags are checked.
func requireResponse(outcome client.Outcome, target interface{}) error {
	if outcome.Err != nil {
		return fmt.Errorf("request failed: %w", outcome.Err)
	}
	if err := outcome.Decode(target); err != nil {
		return describeDecodeError(err)
	}
	if flagged, ok := target.(servicedef.SuccessFlagged); ok && !flagged.Succeeded() {
		return contractErrorf("API returned success=false")
	}
	if err := validate.Struct(target); err != nil {
		return describeValidationError(err)
	}
	return nil
}

func describeDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "response"
		}
		return contractErrorf("%s should be %s, got %s", field, describeKind(typeErr.Type), typeErr.Value)
	}
	return contractErrorf("unexpected response shape: %s", err)
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Ptr, reflect.Map:
		return "an object"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "a number"
	default:
		return "a " + t.Kind().String()
	}
}

func describeValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return contractErrorf("invalid response: %s", err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describeFieldError(fe))
	}
	return &ContractError{Message: strings.Join(messages, "; ")}
}

func describeFieldError(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return "missing required field " + path
	case "min":
		count := 0
		if v := reflect.ValueOf(fe.Value()); v.Kind() == reflect.Slice {
			count = v.Len()
		}
		if fe.Param() == "1" {
			return fmt.Sprintf("%s should not be empty", path)
		}
		return fmt.Sprintf("expected at least %s %s, got %d", fe.Param(), path, count)
	default:
		return fmt.Sprintf("%s failed the %q check", path, fe.Tag())
	}
}
