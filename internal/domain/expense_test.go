package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateDebt(t *testing.T) {
	e := &Expense{Amount: 5000, AmountPaid: 2000}
	e.RecalculateDebt()
	assert.Equal(t, 3000.0, e.AmountDue)
	assert.Equal(t, ExpensePending, e.Status)

	e.AmountPaid = 5000
	e.RecalculateDebt()
	assert.Equal(t, 0.0, e.AmountDue)
	assert.Equal(t, ExpensePaid, e.Status)
}

func TestRecalculateDebt_OverpaymentStaysNegative(t *testing.T) {
	e := &Expense{Amount: 5000, AmountPaid: 6000}
	e.RecalculateDebt()
	assert.Equal(t, -1000.0, e.AmountDue)
	assert.Equal(t, ExpensePaid, e.Status)
}

func TestRecalculateDebt_ZeroAmount(t *testing.T) {
	e := &Expense{Amount: 0, AmountPaid: 0}
	e.RecalculateDebt()
	assert.Equal(t, 0.0, e.AmountDue)
	assert.Equal(t, ExpensePaid, e.Status)
}
