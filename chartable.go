package ucl

// classFlag is a bitfield describing one byte value's role in the grammar.
// The table is built once at init time and consulted with O(1) lookups by
// the scanner; no byte is ever classified with a chain of comparisons.
type classFlag uint8

const (
	// flagWS marks intra-line whitespace (space, tab).
	flagWS classFlag = 1 << iota
	// flagWSUnsafe marks whitespace that advances the line counter (LF, CR).
	flagWSUnsafe
	// flagKeyStart marks a valid first byte of an identifier/bare word.
	flagKeyStart
	// flagKey marks a valid continuation byte of an identifier.
	flagKey
	// flagValueEnd marks a byte that terminates an unquoted atom.
	flagValueEnd
	// flagDigit marks an ASCII decimal digit.
	flagDigit
	// flagEscape marks a byte that requires escaping inside a JSON-style string.
	flagEscape
	// flagJSONUnsafe marks a control byte that must be escaped in JSON output.
	flagJSONUnsafe
)

var classTable [256]classFlag

func init() {
	for b := 0; b < 256; b++ {
		var f classFlag
		switch {
		case b == ' ' || b == '\t':
			f |= flagWS
		case b == '\n' || b == '\r':
			f |= flagWSUnsafe | flagValueEnd
		}
		switch {
		case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b == '_', b == '/':
			f |= flagKeyStart | flagKey
		}
		if b >= '0' && b <= '9' {
			f |= flagKey | flagDigit
		}
		if b == '-' || b == '.' {
			// Continuation-only: lets bare hostnames/version strings like
			// "db.internal" or "v1.2" scan as one atom. Never a KeyStart,
			// so a leading '-'/'.' still dispatches to the number scanner.
			f |= flagKey
		}
		switch b {
		case ',', ';', '}', ']', '#':
			f |= flagValueEnd
		}
		if b == '"' || b == '\\' {
			f |= flagEscape
		}
		if b <= 0x1F && b != '\t' && b != '\n' && b != '\r' {
			f |= flagJSONUnsafe
		}
		if b >= 0x80 {
			// Non-ASCII bytes are opaque UTF-8 continuation/lead bytes: they
			// never terminate an atom and always continue one.
			f |= flagKey
		}
		classTable[b] = f
	}
}

func classify(b byte) classFlag { return classTable[b] }

func isWS(b byte) bool         { return classTable[b]&flagWS != 0 }
func isWSUnsafe(b byte) bool   { return classTable[b]&flagWSUnsafe != 0 }
func isKeyStart(b byte) bool   { return classTable[b]&flagKeyStart != 0 }
func isKeyByte(b byte) bool    { return classTable[b]&flagKey != 0 }
func isValueEnd(b byte) bool   { return classTable[b]&flagValueEnd != 0 }
func isDigit(b byte) bool      { return classTable[b]&flagDigit != 0 }
func isJSONUnsafe(b byte) bool { return classTable[b]&flagJSONUnsafe != 0 }

// atomEnd reports whether b terminates an unquoted atom: any VALUE_END byte,
// or intra-line/line-ending whitespace.
func atomEnd(b byte) bool {
	return isValueEnd(b) || isWS(b) || isWSUnsafe(b)
}
