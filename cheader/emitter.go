// Package cheader renders enum definitions as C preprocessor fragments
// for the specenum template header.
//
// The fragment order is load-bearing: specenum_gen.h consumes the
// SPECENUM_* symbols positionally, so reordering them changes the meaning
// of the generated code.
package cheader

import (
	"fmt"

	"github.com/broady/specenum/ir"
)

// IncludeLine is the fixed line pulling in the templated expansion unit.
// It terminates every enum's fragment block.
const IncludeLine = "#include \"specenum_gen.h\"\n"

// Fragments renders one enum definition as its ordered sequence of
// output lines. Emission is pure: identical definitions always yield
// byte-identical fragments.
func Fragments(e *ir.Enum) []string {
	frags := []string{fmt.Sprintf("#define SPECENUM_NAME %s\n", e.Name)}

	if e.Bitwise {
		frags = append(frags, "#define SPECENUM_BITWISE\n")
		if e.Zero != nil {
			frags = append(frags, defineCustom("ZERO", e.Zero, e.Prefix)...)
		}
	}

	for i, v := range e.Values {
		frags = append(frags, defineCustom(fmt.Sprintf("VALUE%d", i), &v, e.Prefix)...)
	}

	if e.Count != nil {
		frags = append(frags, defineCustom("COUNT", e.Count, e.Prefix)...)
	}
	if e.Invalid != "" {
		frags = append(frags, fmt.Sprintf("#define SPECENUM_INVALID %s\n", e.Invalid))
	}
	if e.NameOverride {
		frags = append(frags, "#define SPECENUM_NAMEOVERRIDE\n")
	}
	if e.NameUpdater {
		frags = append(frags, "#define SPECENUM_NAME_UPDATER\n")
	}
	if e.Bitvector != "" {
		frags = append(frags, fmt.Sprintf("#define SPECENUM_BITVECTOR %s\n", e.Bitvector))
	}

	return append(frags, IncludeLine)
}

// defineCustom renders the identifier symbol for a regular or special
// value, plus its paired name symbol when the value is named.
func defineCustom(symbol string, v *ir.Value, prefix string) []string {
	out := []string{fmt.Sprintf("#define SPECENUM_%s %s%s\n", symbol, prefix, v.Identifier)}
	if v.Named() {
		out = append(out, fmt.Sprintf("#define SPECENUM_%sNAME %s\n", symbol, v.Name))
	}
	return out
}
