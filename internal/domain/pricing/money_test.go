package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"10", "10", true},
		{" 12.50 ", "12.5", true},
		{"-3", "-3", true},
		{"", "0", false},
		{"   ", "0", false},
		{"abc", "0", false},
		{"NaN", "0", false},
		{"Inf", "0", false},
		{"1,5", "0", false},
		{"1e20", "100000000000000000000", true},
		{"1e20000000", "0", false},
		{"1e-20000000", "0", false},
		{"0.000000000000000000001", "0", false},
		{"123456789012345678901234567890.123", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestAmountFromFloat(t *testing.T) {
	_, ok := AmountFromFloat(math.NaN())
	assert.False(t, ok)
	_, ok = AmountFromFloat(math.Inf(1))
	assert.False(t, ok)

	_, ok = AmountFromFloat(1e300)
	assert.False(t, ok)

	v, ok := AmountFromFloat(19.99)
	assert.True(t, ok)
	assertDecimal(t, "19.99", v)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", FormatUSD(d("0")))
	assert.Equal(t, "$1234.57", FormatUSD(d("1234.567")))
	assert.Equal(t, "$76.92", FormatUSD(d("76.923076923")))
	assert.Equal(t, "-$5.10", FormatUSD(d("-5.1")))
}

func TestSumAndMultiply(t *testing.T) {
	assertDecimal(t, "0", Sum())
	assertDecimal(t, "0.3", Sum(d("0.1"), d("0.2")))
	assertDecimal(t, "7.5", Multiply(d("2.5"), d("3")))
	assertDecimal(t, "0.33", Round(d("0.3333")))
}

func TestMarkup(t *testing.T) {
	assertDecimal(t, "0", NewMarkup(d("-1")).Percent())
	assertDecimal(t, "100", NewMarkup(d("250")).Percent())
	assertDecimal(t, "12.5", NewMarkup(d("12.5")).Percent())

	m := NewMarkup(d("25"))
	assertDecimal(t, "125", m.Apply(d("100")))
	assertDecimal(t, "100", m.Rebase(d("125")))
	assertDecimal(t, "300", ApplyMarkup(d("100"), d("200")), "ApplyMarkup does not clamp")
}
