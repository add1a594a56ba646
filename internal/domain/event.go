package domain

import "time"

type EventStatus string

const (
	EventConfirmed EventStatus = "Confirmed"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

type EventServiceType string

const (
	EventSvcMarriageGarden EventServiceType = "Marriage Garden"
	EventSvcRooms          EventServiceType = "Rooms"
	EventSvcTenting        EventServiceType = "Tenting"
	EventSvcElectricity    EventServiceType = "Electricity"
	EventSvcGenerator      EventServiceType = "Generator"
	EventSvcLabour         EventServiceType = "Labour"
	EventSvcEventServices  EventServiceType = "Event Services"
	EventSvcCustom         EventServiceType = "Custom"
)

// EventBooking is a banquet/event reservation with dual-sided accounting:
// customer revenue on one ledger, vendor cost on the other. It stores no
// aggregate financials; every figure is recomputed from the live children.
type EventBooking struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`

	BookingName string    `json:"booking_name" gorm:"column:booking_name;size:300"`
	BookingDate time.Time `json:"booking_date" gorm:"column:booking_date;index"`

	ContactName  string `json:"contact_name" gorm:"column:contact_name;size:200"`
	ContactPhone string `json:"contact_phone" gorm:"column:contact_phone;size:20"`
	ContactEmail string `json:"contact_email,omitempty" gorm:"column:contact_email;size:200"`

	Status EventStatus `json:"status" gorm:"column:status;size:20;index"`
	Notes  string      `json:"notes,omitempty" gorm:"column:notes;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Services         []EventService         `json:"services" gorm:"foreignKey:EventBookingID;constraint:OnDelete:CASCADE"`
	CustomerPayments []EventCustomerPayment `json:"customer_payments" gorm:"foreignKey:EventBookingID;constraint:OnDelete:CASCADE"`
}

func (EventBooking) TableName() string { return "event_bookings" }

// EventService carries an independent customer price and vendor cost.
// One vendor per service; vendor payments hang off the service.
type EventService struct {
	ID             int64 `json:"id" gorm:"column:id;primaryKey"`
	EventBookingID int64 `json:"event_booking_id" gorm:"column:event_booking_id;index"`

	ServiceType       EventServiceType `json:"service_type" gorm:"column:service_type;size:30"`
	CustomServiceName string           `json:"custom_service_name,omitempty" gorm:"column:custom_service_name;size:200"`

	CustomerPrice float64 `json:"customer_price" gorm:"column:customer_price;default:0"`
	VendorCost    float64 `json:"vendor_cost" gorm:"column:vendor_cost;default:0"`
	VendorName    string  `json:"vendor_name,omitempty" gorm:"column:vendor_name;size:200"`
	Notes         string  `json:"notes,omitempty" gorm:"column:notes;type:text"`

	VendorPayments []EventVendorPayment `json:"vendor_payments" gorm:"foreignKey:EventServiceID;constraint:OnDelete:CASCADE"`
}

func (EventService) TableName() string { return "event_services" }

// VendorTotalPaid sums this service's vendor payments.
func (s *EventService) VendorTotalPaid() float64 {
	var paid float64
	for _, p := range s.VendorPayments {
		paid += p.Amount
	}
	return paid
}

// VendorPending is the vendor cost minus payments made. Deliberately not
// clamped: an overpaid vendor surfaces as a negative pending amount.
func (s *EventService) VendorPending() float64 {
	return s.VendorCost - s.VendorTotalPaid()
}

// EventCustomerPayment is a date-stamped payment received from the customer
// against the event as a whole.
type EventCustomerPayment struct {
	ID             int64 `json:"id" gorm:"column:id;primaryKey"`
	EventBookingID int64 `json:"event_booking_id" gorm:"column:event_booking_id;index"`

	PaymentDate time.Time `json:"payment_date" gorm:"column:payment_date"`
	Amount      float64   `json:"amount" gorm:"column:amount"`
	PaymentMode string    `json:"payment_mode,omitempty" gorm:"column:payment_mode;size:50"`
	Notes       string    `json:"notes,omitempty" gorm:"column:notes;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (EventCustomerPayment) TableName() string { return "event_customer_payments" }

// EventVendorPayment is a date-stamped payment made to the vendor of one
// specific service.
type EventVendorPayment struct {
	ID             int64 `json:"id" gorm:"column:id;primaryKey"`
	EventServiceID int64 `json:"event_service_id" gorm:"column:event_service_id;index"`

	PaymentDate time.Time `json:"payment_date" gorm:"column:payment_date"`
	Amount      float64   `json:"amount" gorm:"column:amount"`
	PaymentMode string    `json:"payment_mode,omitempty" gorm:"column:payment_mode;size:50"`
	Notes       string    `json:"notes,omitempty" gorm:"column:notes;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (EventVendorPayment) TableName() string { return "event_vendor_payments" }

// EventFinancials is the recomputed-on-read summary of both ledgers.
type EventFinancials struct {
	TotalCustomerPrice float64 `json:"total_customer_price"`
	TotalCollected     float64 `json:"total_collected"`
	CustomerPending    float64 `json:"customer_pending"`
	TotalVendorCost    float64 `json:"total_vendor_cost"`
	TotalVendorPaid    float64 `json:"total_vendor_paid"`
	VendorPending      float64 `json:"vendor_pending"`
	ProfitMargin       float64 `json:"profit_margin"`
}

// ComputeEventFinancials derives the full financial summary from the event's
// live service and payment collections. Pure; nothing is cached, so a read
// immediately after a mutation always reflects the new children. ProfitMargin
// is priced revenue minus priced cost, not realized cash flow.
func ComputeEventFinancials(ev *EventBooking) EventFinancials {
	var f EventFinancials
	for i := range ev.Services {
		s := &ev.Services[i]
		f.TotalCustomerPrice += s.CustomerPrice
		f.TotalVendorCost += s.VendorCost
		f.TotalVendorPaid += s.VendorTotalPaid()
	}
	for _, p := range ev.CustomerPayments {
		f.TotalCollected += p.Amount
	}
	f.CustomerPending = f.TotalCustomerPrice - f.TotalCollected
	f.VendorPending = f.TotalVendorCost - f.TotalVendorPaid
	f.ProfitMargin = f.TotalCustomerPrice - f.TotalVendorCost
	return f
}

// IsCollapsed is a presentation hint: events more than three days in the
// past render collapsed in list views. Recomputed per read from the caller's
// clock, never stored.
func IsCollapsed(bookingDate, today time.Time) bool {
	return NightsBetween(bookingDate, today) > 3
}
