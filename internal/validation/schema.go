// Package validation checks decoded JSON request bodies against declarative
// per-entity schemas. Every violated rule yields its own message, in field
// declaration order and then rule declaration order.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	String Kind = iota
	Int
)

// Rule is a single go-playground/validator tag with the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

type Field struct {
	Name     string
	Kind     Kind
	Optional bool

	// RequiredMessage is reported when a non-optional field is missing or null.
	// Falls back to TypeMessage when empty.
	RequiredMessage string
	// TypeMessage is reported when the JSON value has the wrong type.
	TypeMessage string
	// IntegerMessage is reported when an Int field holds a fractional number.
	IntegerMessage string
	// RangeMessage is reported when an Int field is beyond ±(2^53-1).
	// Falls back to DefaultRangeMessage when empty.
	RangeMessage string

	Rules []Rule
}

type Schema struct {
	Fields []Field
}

type Violation struct {
	Field   string `json:"-"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the violation messages in order.
func (v Violations) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return msgs
}

var ErrMalformedBody = errors.New("malformed JSON body")

// DefaultRangeMessage is reported for integers JSON clients cannot represent exactly.
const DefaultRangeMessage = "Number must be a safe integer"

const maxSafeInteger = 1<<53 - 1

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("hasupper", hasUpper); err != nil {
		panic(fmt.Sprintf("validation: register hasupper: %v", err))
	}
	return v
}

func hasUpper(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
}

// DecodeBody reads a JSON object, keeping numbers as json.Number. An empty body
// decodes to an empty object.
func DecodeBody(r io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return body, nil
}

// Validate checks body against the schema. Values only holds fields that
// passed their type check; it is meant to be used when Violations is empty.
func (s Schema) Validate(body map[string]any) (Values, Violations) {
	values := Values{}
	var violations Violations

	for _, field := range s.Fields {
		raw, present := body[field.Name]
		if !present || raw == nil {
			if !field.Optional {
				violations = append(violations, Violation{Field: field.Name, Message: field.requiredMessage()})
			}
			continue
		}

		value, msg, ok := field.coerce(raw)
		if !ok {
			violations = append(violations, Violation{Field: field.Name, Message: msg})
			continue
		}
		values[field.Name] = value

		for _, rule := range field.Rules {
			if err := validate.Var(value, rule.Tag); err != nil {
				violations = append(violations, Violation{Field: field.Name, Message: rule.Message})
			}
		}
	}

	return values, violations
}

func (f Field) requiredMessage() string {
	if f.RequiredMessage != "" {
		return f.RequiredMessage
	}
	return f.TypeMessage
}

func (f Field) coerce(raw any) (any, string, bool) {
	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, f.TypeMessage, false
		}
		return s, "", true
	case Int:
		var n float64
		switch v := raw.(type) {
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				// only overflow fails here, the decoder already checked the syntax
				return nil, f.rangeMessage(), false
			}
			n = parsed
		case float64:
			n = v
		default:
			return nil, f.TypeMessage, false
		}
		if n != math.Trunc(n) {
			return nil, f.integerMessage(), false
		}
		if math.Abs(n) > maxSafeInteger {
			return nil, f.rangeMessage(), false
		}
		return int(n), "", true
	default:
		return nil, f.TypeMessage, false
	}
}

func (f Field) integerMessage() string {
	if f.IntegerMessage != "" {
		return f.IntegerMessage
	}
	return f.TypeMessage
}

func (f Field) rangeMessage() string {
	if f.RangeMessage != "" {
		return f.RangeMessage
	}
	return DefaultRangeMessage
}

// Values holds the type-checked fields of a validated body.
type Values map[string]any

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) OptionalString(name string) *string {
	s, ok := v[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

func (v Values) OptionalInt(name string) *int {
	n, ok := v[name].(int)
	if !ok {
		return nil
	}
	return &n
}
