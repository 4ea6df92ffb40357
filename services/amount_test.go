package services

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountAndMinorUnits(t *testing.T) {
	tests := []struct {
		raw   string
		major string
		minor int64
	}{
		{`"49.99"`, "49.99", 4999},
		{`49.99`, "49.99", 4999},
		{`500`, "500", 50000},
		{`" 12.5 "`, "12.5", 1250},
		{`0.01`, "0.01", 1},
		{`0.005`, "0.005", 1},
		{`10.125`, "10.125", 1013},
		{`1.994`, "1.994", 199},
		{`1e3`, "1000", 100000},
		{`"1.0000000000000000001"`, "1", 100},
		{`0.00500000000000000000001`, "0.005", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, ok := ParseAmount(json.RawMessage(tt.raw))
			require.True(t, ok)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.major)), "got %s", amount)

			minor, ok := ToMinorUnits(amount)
			require.True(t, ok)
			assert.Equal(t, tt.minor, minor)
			// the gateway amount is never the stored major-unit amount
			assert.False(t, decimal.NewFromInt(minor).Equal(amount))
		})
	}
}

func TestParseAmountRejects(t *testing.T) {
	for _, raw := range []string{
		``, `null`, `""`, `"  "`, `0`, `"0"`, `-5`, `"-0.01"`,
		`"abc"`, `"NaN"`, `"Infinity"`, `true`, `{}`, `[]`, `"12,50"`,
		`1e999999999`, `"1e-40"`, `1e-999999999`, `"0.0000000000000000000009"`,
	} {
		t.Run(raw, func(t *testing.T) {
			_, ok := ParseAmount(json.RawMessage(raw))
			assert.False(t, ok)
		})
	}
}

func TestToMinorUnitsBounds(t *testing.T) {
	_, ok := ToMinorUnits(decimal.RequireFromString("0.004"))
	assert.False(t, ok, "rounds to zero")

	minor, ok := ToMinorUnits(decimal.NewFromInt(MaxMinorAmount / 100))
	require.True(t, ok)
	assert.Equal(t, MaxMinorAmount, minor)

	_, ok = ToMinorUnits(decimal.NewFromInt(MaxMinorAmount/100 + 1))
	assert.False(t, ok)
}
