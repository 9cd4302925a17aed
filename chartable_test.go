package ucl

import "testing"

func TestClassTable(t *testing.T) {
	t.Parallel()

	if !isWS(' ') || !isWS('\t') {
		t.Error("space/tab must be WS")
	}
	if !isWSUnsafe('\n') || !isWSUnsafe('\r') {
		t.Error("LF/CR must be WS_UNSAFE")
	}
	if !isKeyStart('a') || !isKeyStart('_') || isKeyStart('0') {
		t.Error("KeyStart set is wrong")
	}
	if !isDigit('5') || isDigit('a') {
		t.Error("Digit set is wrong")
	}
	for _, b := range []byte{',', ';', '}', ']', '#', '\n', '\r'} {
		if !isValueEnd(b) {
			t.Errorf("%q must be ValueEnd", b)
		}
	}
	if !isKeyByte(0x80) || !isKeyByte(0xFF) {
		t.Error("non-ASCII bytes must be opaque continuation bytes, never atom terminators")
	}
	if atomEnd('a') {
		t.Error("'a' must not end an atom")
	}
	if !atomEnd(' ') || !atomEnd(',') || !atomEnd('\n') {
		t.Error("whitespace and VALUE_END bytes must end an atom")
	}
	// A digit is both a KEY continuation byte and numeric: classify must
	// report the union, not just one flag.
	if classify('5')&flagKey == 0 || classify('5')&flagDigit == 0 {
		t.Error("digit must carry both KEY and VALUE_DIGIT flags")
	}
	if classify('\x01')&flagJSONUnsafe == 0 {
		t.Error("control byte 0x01 must be JSON_UNSAFE")
	}
	if classify('\t')&flagJSONUnsafe != 0 {
		t.Error("tab must not be JSON_UNSAFE")
	}
}
