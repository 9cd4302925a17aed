// Package ucl implements the Universal Configuration Language: a JSON
// superset that adds NGINX-style implicit key/value forms, heredocs, shell
// variable expansion, and human-readable numeric suffixes ("30s", "10mb").
//
// The package is split into a byte-classification-driven Scanner
// (tokenizer) and a structural Parser built on top of it. Most callers only
// need the top-level Parse/ParseString/ParseBytes/ParseFile functions; the
// Scanner is exported for callers that want tokens without building a tree.
//
// # Syntax styles
//
// A key may be followed by any of:
//
//	key = value     explicit, '=' form
//	key: value      explicit, ':' form
//	key { ... }     explicit object
//	key [ ... ]     explicit array
//	key disc { ... } nested implicit (NGINX style), sugar for key { disc { ... } }
//	key value       plain implicit
//	key             bare flag, equivalent to "key = true"
//
// Statements are separated by a newline, comma, or semicolon; any
// combination of the three is accepted interchangeably.
//
// # Strings
//
// Three quoting styles coexist:
//
//	"json style"     full JSON escape set, plus \u{H...} (1-6 hex digits)
//	'raw style'       only \' and a line-continuation escape are special
//	<<TAG             heredoc: verbatim until a line reading exactly TAG
//	body
//	TAG
//
// Adjacent string literals with nothing but spaces, tabs or block comments
// between them concatenate into a single value; a newline between them ends
// the value.
//
// # Variable expansion
//
// JSON-style and heredoc strings (never raw strings) are scanned a second
// time for $NAME, ${NAME}, and ${NAME:-default} references, resolved
// against a Resolver supplied via WithResolver/WithVariables. An
// unresolved reference with no default is left in the output verbatim; a
// reference that cycles back to itself is reported as a non-fatal Warning
// and also left verbatim, rather than aborting the parse.
//
// # Numbers
//
// A decimal mantissa followed directly by a known suffix is folded into a
// single value at parse time rather than being left for the caller to
// interpret:
//
//	30s, 500ms, 2h        Time, in seconds
//	10kb, 1mb, 2gb         Integer (or Float on overflow), base 1024
//	10k, 1m, 100mbps       Integer (or Float on overflow), base 1000
//
// 0x/0o/0b prefixed integers are also accepted, but forbid a fraction,
// exponent, or suffix. Integer overflow silently promotes to Float.
package ucl
