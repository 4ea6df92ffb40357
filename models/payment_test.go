package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentStatusCreated, PaymentStatusAttempted, true},
		{PaymentStatusCreated, PaymentStatusPaid, true},
		{PaymentStatusCreated, PaymentStatusFailed, true},
		{PaymentStatusAttempted, PaymentStatusPaid, true},
		{PaymentStatusAttempted, PaymentStatusFailed, true},
		{PaymentStatusAttempted, PaymentStatusAttempted, false},
		{PaymentStatusAttempted, PaymentStatusCreated, false},
		{PaymentStatusPaid, PaymentStatusFailed, false},
		{PaymentStatusPaid, PaymentStatusPaid, false},
		{PaymentStatusFailed, PaymentStatusPaid, false},
		{PaymentStatusFailed, PaymentStatusAttempted, false},
		{PaymentStatusCreated, PaymentStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusCreated.IsTerminal())
	assert.False(t, PaymentStatusAttempted.IsTerminal())
	assert.True(t, PaymentStatusPaid.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())

	for _, s := range []PaymentStatus{PaymentStatusPaid, PaymentStatusFailed} {
		for _, to := range []PaymentStatus{PaymentStatusCreated, PaymentStatusAttempted, PaymentStatusPaid, PaymentStatusFailed} {
			assert.False(t, CanTransition(s, to), "%s must not move to %s", s, to)
		}
	}
}
