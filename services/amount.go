package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxMinorAmount is the largest charge accepted, in minor units
const MaxMinorAmount int64 = 1_000_000_000_000

const maxAmountScale = 18

var hundred = decimal.NewFromInt(100)

// ParseAmount reads a major-unit amount sent either as a JSON number or a numeric string
func ParseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(text)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	// rescaling a value like 1e999999999 would allocate without bound
	exp := amount.Exponent()
	if exp > maxAmountScale {
		return decimal.Zero, false
	}
	if exp < -maxAmountScale {
		// anything below 1e-18 rounds to nothing; otherwise the rescale is bounded by the input length
		if int(exp)+len(amount.Coefficient().String()) < -maxAmountScale {
			return decimal.Zero, false
		}
		amount = amount.Round(maxAmountScale)
	}
	return amount, true
}

// ToMinorUnits converts a major-unit amount into the gateway's minor unit,
// rounding half up. Positive amounts that round to zero are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, bool) {
	minor := amount.Mul(hundred).Round(0)
	if !minor.IsPositive() || minor.GreaterThan(decimal.NewFromInt(MaxMinorAmount)) {
		return 0, false
	}
	return minor.IntPart(), true
}
