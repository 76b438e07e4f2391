// Package specenum compiles enum definition files into a C header that
// defines those enums through the specenum_gen.h template.
//
// Definition files consist of zero or more enum definitions:
//
//	enum STATE
//	  prefix S_
//	  count
//	values
//	  IDLE "Idle"
//	  RUNNING "Running"
//	end
//
// Files may use # and // end-of-line comments as well as /* ... */ block
// comments, which can span multiple lines.
//
// Each enum supports the following options between its header and the
// "values" line:
//
//   - prefix <prefix>: prepended to all value identifiers, including
//     those of zero and count. Should include any desired separator.
//   - bitwise: members are independent bit flags.
//   - zero [<identifier> [<name>]]: the all-bits-clear entry; requires
//     bitwise. With prefix, the identifier may be omitted and defaults
//     to ZERO.
//   - count [<identifier> [<name>]]: the trailing count entry; cannot be
//     combined with bitwise. With prefix, the identifier may be omitted
//     and defaults to COUNT.
//   - generic <amount> <identifier>: appends <amount> unnamed values
//     named <identifier>1 .. <identifier><amount>.
//   - invalid <identifier>: the sentinel invalid value, not prefixed.
//   - name-override: request an override-name generation hook.
//   - name-updater: request an update-name generation hook.
//   - bitvector <name>: companion bit-vector type; cannot be combined
//     with bitwise.
//
// Generate drives the whole pipeline: scanner (comment stripping),
// parser (block and option recognition), cheader (symbol emission) and
// sink (transactional file writing).
package specenum
