package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEventFinancials(t *testing.T) {
	ev := &EventBooking{
		Services: []EventService{
			{
				ServiceType:   EventSvcMarriageGarden,
				CustomerPrice: 100000,
				VendorCost:    0,
			},
			{
				ServiceType:   EventSvcTenting,
				CustomerPrice: 50000,
				VendorCost:    30000,
				VendorName:    "Sharma Tent House",
				VendorPayments: []EventVendorPayment{
					{Amount: 10000},
				},
			},
		},
		CustomerPayments: []EventCustomerPayment{
			{Amount: 60000},
		},
	}

	f := ComputeEventFinancials(ev)

	assert.Equal(t, 150000.0, f.TotalCustomerPrice)
	assert.Equal(t, 60000.0, f.TotalCollected)
	assert.Equal(t, 90000.0, f.CustomerPending)
	assert.Equal(t, 30000.0, f.TotalVendorCost)
	assert.Equal(t, 10000.0, f.TotalVendorPaid)
	assert.Equal(t, 20000.0, f.VendorPending)
	assert.Equal(t, 120000.0, f.ProfitMargin)
}

func TestComputeEventFinancials_Empty(t *testing.T) {
	f := ComputeEventFinancials(&EventBooking{})
	assert.Equal(t, EventFinancials{}, f)
}

func TestVendorPending_NotClamped(t *testing.T) {
	s := &EventService{
		VendorCost: 5000,
		VendorPayments: []EventVendorPayment{
			{Amount: 4000},
			{Amount: 3000},
		},
	}
	assert.Equal(t, 7000.0, s.VendorTotalPaid())
	// Overpayment stays visible as a negative pending amount.
	assert.Equal(t, -2000.0, s.VendorPending())
}

func TestIsCollapsed(t *testing.T) {
	today := day(2025, 1, 20)

	assert.False(t, IsCollapsed(day(2025, 1, 20), today))
	assert.False(t, IsCollapsed(day(2025, 1, 17), today)) // exactly 3 days old
	assert.True(t, IsCollapsed(day(2025, 1, 16), today))
	assert.False(t, IsCollapsed(day(2025, 2, 1), today)) // future events stay expanded
}
