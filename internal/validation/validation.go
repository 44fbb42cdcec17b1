// Package validation checks JSON request bodies before they reach the services.
//
// Checking happens in two passes. The type pass walks the raw JSON against a
// Schema and reports missing fields and JSON type mismatches. The constraint
// pass unmarshals into the typed request and runs go-playground/validator tags.
// Both passes report the first failure as an apperr validation error worded
// as `"<field>" <constraint>`.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"profranchising/internal/apperr"
)

// Custom tag messages, keyed by validator tag.
var tagMessages = map[string]string{
	"unity": `"%s" must be filled with "kg"(kilograms), "l"(liter) or "un"(unity)`,
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("unity", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "kg", "l", "un":
			return true
		}
		return false
	})
}

// Decode runs both passes over body and fills dst on success.
func Decode(body []byte, schema Schema, dst any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return apperr.Validation(`"value" must be of type object`)
	}

	if err := schema.check("", obj); err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.Validation("invalid request body")
	}

	return Struct(dst)
}

// DecodeReader reads the whole body from r and decodes it like Decode.
func DecodeReader(r io.Reader, schema Schema, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return apperr.Validation("invalid request body")
	}
	return Decode(body, schema, dst)
}

// Struct runs the constraint pass only.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return apperr.Validation("invalid request body")
	}
	return apperr.Validation("%s", message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	field := fieldPath(fe)

	if format, ok := tagMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, field)
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(`"%s" is required`, field)
	case "notblank":
		return fmt.Sprintf(`"%s" is not allowed to be empty`, field)
	case "oneof":
		return fmt.Sprintf(`"%s" must be one of [%s]`, field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf(`"%s" length must be at least %s characters long`, field, fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf(`"%s" must contain at least %s items`, field, fe.Param())
		default:
			return fmt.Sprintf(`"%s" must be greater than or equal to %s`, field, fe.Param())
		}
	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf(`"%s" length must be less than or equal to %s characters long`, field, fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf(`"%s" must contain less than or equal to %s items`, field, fe.Param())
		default:
			return fmt.Sprintf(`"%s" must be less than or equal to %s`, field, fe.Param())
		}
	case "gt":
		return fmt.Sprintf(`"%s" must be greater than %s`, field, fe.Param())
	}
	return fmt.Sprintf(`"%s" is invalid`, field)
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Kind is the JSON type a schema field must have.
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Array
)

func (k Kind) describe() string {
	switch k {
	case String:
		return "a string"
	case Number:
		return "a number"
	case Integer:
		return "an integer"
	case Array:
		return "an array"
	}
	return "valid"
}

// Field declares one expected key of a JSON object.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	// Items describes the objects inside an Array field.
	Items Schema
}

// Schema is the ordered set of keys a JSON object must carry.
type Schema []Field

func (s Schema) check(prefix string, obj map[string]json.RawMessage) error {
	for _, f := range s {
		path := prefix + f.Name

		raw, ok := obj[f.Name]
		if !ok || isNull(raw) {
			if f.Optional {
				continue
			}
			return apperr.Validation(`"%s" is required`, path)
		}

		if !f.Kind.matches(raw) {
			return apperr.Validation(`"%s" must be %s`, path, f.Kind.describe())
		}

		if f.Kind == Array && len(f.Items) > 0 {
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				return apperr.Validation(`"%s" must be an array`, path)
			}
			for i, item := range items {
				itemPath := fmt.Sprintf("%s[%d]", path, i)
				var child map[string]json.RawMessage
				if err := json.Unmarshal(item, &child); err != nil || child == nil {
					return apperr.Validation(`"%s" must be of type object`, itemPath)
				}
				if err := f.Items.check(itemPath+".", child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (k Kind) matches(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	switch k {
	case String:
		return raw[0] == '"'
	case Array:
		return raw[0] == '['
	case Integer:
		_, err := strconv.ParseInt(string(raw), 10, 64)
		return err == nil
	case Number:
		if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
			return false
		}
		n, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && !math.IsInf(n, 0)
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
