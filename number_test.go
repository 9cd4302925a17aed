package ucl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanOne(t *testing.T, src string) Token {
	t.Helper()
	s := NewScanner(src)
	s.hooks = &hookSet{}
	tok, err := s.NextToken()
	require.NoError(t, err)
	return tok
}

func TestScanNumber(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc     string
		src      string
		wantKind Kind
		wantInt  int64
		wantFlt  float64
	}{
		{"PlainInteger", "42", Integer, 42, 0},
		{"NegativeInteger", "-42", Integer, -42, 0},
		{"Float", "3.5", Float, 0, 3.5},
		{"Exponent", "1e3", Float, 0, 1000},
		{"Hex", "0xff", Integer, 255, 0},
		{"Octal", "0o17", Integer, 15, 0},
		{"Binary", "0b101", Integer, 5, 0},
		{"TimeSeconds", "30s", Time, 0, 30},
		{"TimeMillis", "500ms", Time, 0, 0.5},
		{"TimeMinutes", "2min", Time, 0, 120},
		{"SizeBinary", "10kb", Integer, 10 * 1024, 0},
		{"SizeDecimal", "10k", Integer, 10000, 0},
		{"SizeDecimalBps", "1mbps", Integer, 1000 * 1000, 0},
		{"NegativeInf", "-inf", Float, 0, math.Inf(-1)},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			tok := scanOne(t, tc.src)
			require.Equal(t, tc.wantKind, tok.Kind)
			if tc.wantKind == Integer {
				require.Equal(t, tc.wantInt, tok.IntVal)
			} else {
				require.Equal(t, tc.wantFlt, tok.FloatVal)
			}
		})
	}
}

func TestScanNumberIntegerOverflowPromotesToFloat(t *testing.T) {
	t.Parallel()

	tok := scanOne(t, "99999999999999999999")
	require.Equal(t, Float, tok.Kind)
}

func TestScanNumberFractionalSizePromotesToFloat(t *testing.T) {
	t.Parallel()

	// A fractional mantissa against a size suffix always yields a Float.
	tok := scanOne(t, "1.5kb")
	require.Equal(t, Float, tok.Kind)
	require.Equal(t, 1.5*1024, tok.FloatVal)
}

func TestScanNumberRadixForbidsFraction(t *testing.T) {
	t.Parallel()

	s := NewScanner("0x1.5")
	s.hooks = &hookSet{}
	_, err := s.NextToken()
	require.Error(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, InvalidNumber, lerr.Kind)
}
