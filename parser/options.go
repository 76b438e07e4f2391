package parser

import (
	"regexp"
	"strconv"

	"github.com/broady/specenum/ir"
)

var (
	// optionPattern matches a single enum option: its name and an
	// optional argument string with internal whitespace preserved.
	optionPattern = regexp.MustCompile(`^\s*([\w-]+)(?:\s+(\S+(?:\s+\S+)*))?\s*$`)

	// genericPattern matches the arguments of a "generic" option: an
	// amount and an identifier stem.
	genericPattern = regexp.MustCompile(`^(\d+)\s+(\w+)$`)
)

// enumBuilder folds option lines into an enum definition. Each option
// may appear at most once; the conflict/requirement table is checked in
// one pass at the end, in finish, so all violations surface together.
type enumBuilder struct {
	enum ir.Enum
	seen map[string]bool
}

func newBuilder(name string) *enumBuilder {
	return &enumBuilder{
		enum: ir.Enum{Name: name},
		seen: make(map[string]bool),
	}
}

// apply parses one option line and records it.
func (b *enumBuilder) apply(line string) error {
	m := optionPattern.FindStringSubmatch(line)
	if m == nil {
		return ir.Errorf(ir.CodeSyntax, "malformed option for enum %s: %q", b.enum.Name, line)
	}
	option, arg := m[1], m[2]

	if b.seen[option] {
		return ir.Errorf(ir.CodeDuplicateOption, "duplicate option %q for enum %s", option, b.enum.Name)
	}
	b.seen[option] = true

	switch option {
	case "prefix":
		if arg == "" {
			return b.missingArg(option)
		}
		b.enum.Prefix = arg
	case "bitwise":
		if arg != "" {
			return b.extraArg(option)
		}
		b.enum.Bitwise = true
	case "zero":
		return b.setSpecial(&b.enum.Zero, arg, ir.DefaultZero)
	case "count":
		return b.setSpecial(&b.enum.Count, arg, ir.DefaultCount)
	case "generic":
		if arg == "" {
			return b.missingArg(option)
		}
		g := genericPattern.FindStringSubmatch(arg)
		if g == nil {
			return ir.Errorf(ir.CodeSyntax, "malformed argument for option %q of enum %s: %q", option, b.enum.Name, arg)
		}
		amount, err := strconv.Atoi(g[1])
		if err != nil {
			return ir.Errorf(ir.CodeSyntax, "malformed argument for option %q of enum %s: %q", option, b.enum.Name, arg)
		}
		b.enum.Generic = &ir.Generic{Amount: amount, Stem: g[2]}
	case "invalid":
		if arg == "" {
			return b.missingArg(option)
		}
		b.enum.Invalid = arg
	case "name-override":
		if arg != "" {
			return b.extraArg(option)
		}
		b.enum.NameOverride = true
	case "name-updater":
		if arg != "" {
			return b.extraArg(option)
		}
		b.enum.NameUpdater = true
	case "bitvector":
		if arg == "" {
			return b.missingArg(option)
		}
		b.enum.Bitvector = arg
	default:
		return ir.Errorf(ir.CodeUnknownOption, "unrecognized option %q for enum %s", option, b.enum.Name)
	}
	return nil
}

// setSpecial records a zero or count entry, falling back to the
// synthesized default identifier when the option carries no argument.
func (b *enumBuilder) setSpecial(dst **ir.Value, arg string, dflt func() *ir.Value) error {
	if arg == "" {
		*dst = dflt()
		return nil
	}
	v, err := ir.ParseValue(arg)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (b *enumBuilder) missingArg(option string) error {
	return ir.Errorf(ir.CodeMissingArgument, "option %q for enum %s requires an argument", option, b.enum.Name)
}

func (b *enumBuilder) extraArg(option string) error {
	return ir.Errorf(ir.CodeSyntax, "option %q for enum %s does not support an argument", option, b.enum.Name)
}

// finish validates the collected options against the
// conflict/requirement table and seals the definition: explicit values
// in file order, then any synthesized generic values.
func (b *enumBuilder) finish(values []*ir.Value) (*ir.Enum, error) {
	if err := b.enum.Validate(); err != nil {
		return nil, err
	}

	e := b.enum
	e.Values = make([]ir.Value, 0, len(values))
	for _, v := range values {
		e.Values = append(e.Values, *v)
	}
	if e.Generic != nil {
		e.Values = append(e.Values, e.Generic.Values()...)
	}
	return &e, nil
}
