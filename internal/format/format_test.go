package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount *decimal.Decimal
		want   Price
	}{
		{name: "absent", amount: nil, want: Price{"0", "00"}},
		{name: "zero", amount: dec("0"), want: Price{"0", "00"}},
		{name: "grouping", amount: dec("1234.5"), want: Price{"1.234", "50"}},
		{name: "small", amount: dec("9.9"), want: Price{"9", "90"}},
		{name: "rounds up", amount: dec("19.999"), want: Price{"20", "00"}},
		{name: "millions", amount: dec("1234567.891"), want: Price{"1.234.567", "89"}},
		{name: "whole", amount: dec("300"), want: Price{"300", "00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1.299,90", Amount(decimal.RequireFromString("1299.9")))
	assert.Equal(t, "49,00", Amount(decimal.NewFromInt(49)))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "0", Integer(0))
	assert.Equal(t, "999", Integer(999))
	assert.Equal(t, "12.345", Integer(12345))
	assert.Equal(t, "1.000.000", Integer(1000000))
}
