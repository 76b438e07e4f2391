package ir

import "regexp"

// valuePattern matches an enum value definition: an identifier optionally
// followed by a name. The name group only captures the part starting and
// ending with non-whitespace, so internal whitespace is preserved while
// both ends are trimmed.
var valuePattern = regexp.MustCompile(`^\s*(\w+)(?:\s+(\S+(?:\s+\S+)*))?\s*$`)

// Value represents a single enum constant: its identifier and an
// optional name. Immutable once parsed.
type Value struct {
	// Identifier is the value's identifier, before any prefix is applied.
	Identifier string

	// Name is the value's display name. Empty means unnamed.
	Name string

	// defaulted marks values synthesized for a bare "zero" or "count"
	// option; those are only valid when the enum also has a prefix.
	defaulted bool
}

// ParseValue parses a single logical line defining an enum value.
func ParseValue(line string) (*Value, error) {
	m := valuePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, Errorf(CodeSyntax, "invalid enum value definition: %q", line)
	}
	return &Value{Identifier: m[1], Name: m[2]}, nil
}

// DefaultZero returns the value synthesized for a bare "zero" option.
func DefaultZero() *Value {
	return &Value{Identifier: "ZERO", defaulted: true}
}

// DefaultCount returns the value synthesized for a bare "count" option.
func DefaultCount() *Value {
	return &Value{Identifier: "COUNT", defaulted: true}
}

// Named reports whether the value carries a display name.
func (v *Value) Named() bool {
	return v.Name != ""
}
