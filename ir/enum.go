package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(enumStructLevel, Enum{})
	return v
}

// Generic describes synthetic unnamed values appended after the explicit
// ones: Stem1 .. StemN for a positive amount N.
type Generic struct {
	Amount int    `validate:"gt=0"`
	Stem   string `validate:"required"`
}

// Values returns the synthesized values, in index order.
func (g *Generic) Values() []Value {
	vs := make([]Value, g.Amount)
	for i := range vs {
		vs[i] = Value{Identifier: g.Stem + strconv.Itoa(i+1)}
	}
	return vs
}

// Enum represents a single enum definition. It is built once, atomically,
// from the complete block of lines between its header and its "end", and
// is immutable thereafter.
//
// The validate tags encode the option conflict/requirement table; they are
// checked once, after all options have been collected, so that all
// violations can be reported in a single aggregate error.
type Enum struct {
	// Name is the enum's unique name.
	Name string `validate:"required"`

	// Prefix is prepended to all value identifiers, including those of
	// the special zero and count entries.
	Prefix string

	// Bitwise marks the enum's members as independent bit flags rather
	// than sequential indices.
	Bitwise bool

	// Zero is the special all-bits-clear entry. Only valid for bitwise
	// enums.
	Zero *Value `validate:"excluded_without=Bitwise"`

	// Count is the trailing count entry. Cannot be combined with
	// bitwise.
	Count *Value `validate:"excluded_with=Bitwise"`

	// Invalid is the sentinel invalid-value identifier, emitted without
	// the prefix.
	Invalid string

	// NameOverride requests an override-name generation hook.
	NameOverride bool

	// NameUpdater requests an update-name generation hook.
	NameUpdater bool

	// Bitvector is the companion bit-vector type name. Cannot be
	// combined with bitwise.
	Bitvector string `validate:"excluded_with=Bitwise"`

	// Generic, if present, appends synthetic unnamed values after the
	// explicit ones.
	Generic *Generic

	// Values holds the enum's values in emission order: explicit values
	// in file order, followed by any synthesized generic values.
	Values []Value
}

// enumStructLevel reports the requirements that cut across fields: a
// defaulted zero or count identifier is only usable when a prefix gives
// it a namespace to live in.
func enumStructLevel(sl validator.StructLevel) {
	e := sl.Current().Interface().(Enum)
	if e.Prefix != "" {
		return
	}
	if e.Zero != nil && e.Zero.defaulted {
		sl.ReportError(e.Zero, "Zero", "Zero", "requires_prefix", "")
	}
	if e.Count != nil && e.Count.defaulted {
		sl.ReportError(e.Count, "Count", "Count", "requires_prefix", "")
	}
}

// Validate checks the option conflict/requirement table and returns an
// aggregate error naming every violation at once.
func (e *Enum) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, e.formatFieldError(fe))
	}
	return Errorf(CodeOptionConflict, "%s", strings.Join(msgs, "; "))
}

// formatFieldError converts a validator.FieldError into the message the
// definition author should read.
func (e *Enum) formatFieldError(fe validator.FieldError) string {
	opt := optionName(fe.Field())
	switch fe.Tag() {
	case "excluded_with":
		return fmt.Sprintf("option %q conflicts with option %q for enum %s", opt, optionName(fe.Param()), e.Name)
	case "excluded_without":
		return fmt.Sprintf("option %q for enum %s requires option %q", opt, e.Name, optionName(fe.Param()))
	case "requires_prefix":
		return fmt.Sprintf("option %q for enum %s requires an argument or option %q", opt, e.Name, "prefix")
	case "gt":
		return fmt.Sprintf("amount for option %q of enum %s must be positive", opt, e.Name)
	case "required":
		return fmt.Sprintf("missing %s for enum %s", opt, e.Name)
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("option %q for enum %s failed %s=%s validation", opt, e.Name, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("option %q for enum %s failed %s validation", opt, e.Name, fe.Tag())
	}
}

// optionName maps a struct field name to the DSL option it was collected
// from.
func optionName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Prefix":
		return "prefix"
	case "Bitwise":
		return "bitwise"
	case "Zero":
		return "zero"
	case "Count":
		return "count"
	case "Invalid":
		return "invalid"
	case "NameOverride":
		return "name-override"
	case "NameUpdater":
		return "name-updater"
	case "Bitvector":
		return "bitvector"
	case "Amount", "Stem", "Generic":
		return "generic"
	default:
		return strings.ToLower(field)
	}
}
