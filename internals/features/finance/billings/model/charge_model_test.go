package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChargeStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ChargeStatus
		want     bool
	}{
		{ChargeStatusPending, ChargeStatusPartial, true},
		{ChargeStatusPending, ChargeStatusOverdue, true},
		{ChargeStatusPending, ChargeStatusPaid, true},
		{ChargeStatusOverdue, ChargeStatusPartial, true},
		{ChargeStatusOverdue, ChargeStatusPaid, true},
		{ChargeStatusPartial, ChargeStatusPaid, true},

		// never backwards, never self
		{ChargeStatusPartial, ChargeStatusPending, false},
		{ChargeStatusOverdue, ChargeStatusPending, false},
		{ChargeStatusPending, ChargeStatusPending, false},

		// paid is terminal
		{ChargeStatusPaid, ChargeStatusPending, false},
		{ChargeStatusPaid, ChargeStatusPartial, false},
		{ChargeStatusPaid, ChargeStatusOverdue, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
