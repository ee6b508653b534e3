// Package validation runs an explicit per-field rule schema through
// go-playground/validator and turns every failure into a full,
// human-readable message such as "Name can't be blank".
package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var emailShape = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

// Rule is a single validator tag together with the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Field describes one submitted attribute and the rules it must satisfy.
type Field struct {
	Name  string // key in the submitted values
	Label string // prefix of every message, e.g. "Password"
	Rules []Rule
}

// Schema is an ordered list of fields.
type Schema []Field

// Presence fails on empty or whitespace-only values.
func Presence() Rule {
	return Rule{Tag: "notblank", Message: "can't be blank"}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int) Rule {
	return Rule{Tag: fmt.Sprintf("min=%d", n), Message: fmt.Sprintf("is too short (minimum is %d characters)", n)}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int) Rule {
	return Rule{Tag: fmt.Sprintf("max=%d", n), Message: fmt.Sprintf("is too long (maximum is %d characters)", n)}
}

// EmailFormat fails unless the value looks like local@domain.tld.
func EmailFormat() Rule {
	return Rule{Tag: "emailshape", Message: "is invalid"}
}

// Validator evaluates schemas. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate checks every rule of every field independently and returns all
// failure messages in schema order. Fields absent from values are checked
// as empty strings.
func (v *Validator) Validate(schema Schema, values map[string]string) []string {
	var msgs []string
	for _, f := range schema {
		value := values[f.Name]
		for _, r := range f.Rules {
			if err := v.validate.Var(value, r.Tag); err != nil {
				msgs = append(msgs, f.Label+" "+r.Message)
			}
		}
	}
	return msgs
}

// Confirm returns a mismatch message when confirmation differs from value.
func (v *Validator) Confirm(label, value, confirmation string) (string, bool) {
	if err := v.validate.VarWithValue(confirmation, value, "eqcsfield"); err != nil {
		return fmt.Sprintf("%s confirmation doesn't match %s", label, label), false
	}
	return "", true
}
