package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingCheckedIn  BookingStatus = "Checked In"
	BookingCheckedOut BookingStatus = "Checked Out"
	BookingCancelled  BookingStatus = "Cancelled"
	BookingNoShow     BookingStatus = "No Show"
)

type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "Paid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentUnpaid        PaymentStatus = "Unpaid"
)

type PaymentMode string

const (
	PayCash         PaymentMode = "Cash"
	PayUPI          PaymentMode = "UPI"
	PayCard         PaymentMode = "Card"
	PayBankTransfer PaymentMode = "Bank Transfer"
	PayCheque       PaymentMode = "Cheque"
)

// ParsePaymentMode maps a wire string to a known mode. The bool reports
// whether the string named a valid mode; callers that tolerate bad input
// keep the existing mode when it is false.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	switch PaymentMode(s) {
	case PayCash, PayUPI, PayCard, PayBankTransfer, PayCheque:
		return PaymentMode(s), true
	}
	return "", false
}

type BookingSource string

const (
	SourceWalkIn         BookingSource = "Walk-in"
	SourcePhone          BookingSource = "Phone"
	SourceMakeMyTrip     BookingSource = "OTA-MakeMyTrip"
	SourceBookingCom     BookingSource = "OTA-Booking.com"
	SourceGoibibo        BookingSource = "OTA-Goibibo"
	SourceAgoda          BookingSource = "OTA-Agoda"
	SourceCorporate      BookingSource = "Corporate"
	SourceRepeatCustomer BookingSource = "Repeat Customer"
	SourceAgent          BookingSource = "Agent"
	SourceOther          BookingSource = "Other"
)

// Booking is a guest-stay reservation on one room. The financial fields
// (TotalNights, RoomCharges, AdditionalCharges, TotalAmount, BalanceDue,
// PaymentStatus) are derived, never set directly; after every mutation
// TotalAmount == RoomCharges+AdditionalCharges and
// BalanceDue == TotalAmount-AdvancePayment must hold.
type Booking struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`

	GuestName    string `json:"guest_name" gorm:"column:guest_name;size:200"`
	GuestPhone   string `json:"guest_phone" gorm:"column:guest_phone;size:20"`
	GuestEmail   string `json:"guest_email,omitempty" gorm:"column:guest_email;size:200"`
	GuestIDProof string `json:"guest_id_proof,omitempty" gorm:"column:guest_id_proof;size:50"`

	RoomID         int64      `json:"room_id" gorm:"column:room_id;index"`
	CheckInDate    time.Time  `json:"check_in_date" gorm:"column:check_in_date;index"`
	CheckOutDate   time.Time  `json:"check_out_date" gorm:"column:check_out_date"`
	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty" gorm:"column:actual_check_in"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty" gorm:"column:actual_check_out"`

	Adults   int `json:"adults" gorm:"column:adults;default:1"`
	Children int `json:"children" gorm:"column:children;default:0"`

	Source    string `json:"booking_source" gorm:"column:booking_source;size:50"`
	Reference string `json:"booking_reference,omitempty" gorm:"column:booking_reference;size:100"`

	RoomRatePerNight  float64 `json:"room_rate_per_night" gorm:"column:room_rate_per_night"`
	TotalNights       int     `json:"total_nights" gorm:"column:total_nights"`
	RoomCharges       float64 `json:"room_charges" gorm:"column:room_charges"`
	AdditionalCharges float64 `json:"additional_charges" gorm:"column:additional_charges;default:0"`
	TotalAmount       float64 `json:"total_amount" gorm:"column:total_amount"`
	AdvancePayment    float64 `json:"advance_payment" gorm:"column:advance_payment;default:0"`
	BalanceDue        float64 `json:"balance_due" gorm:"column:balance_due"`

	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status;size:20"`
	PaymentMode   PaymentMode   `json:"payment_mode,omitempty" gorm:"column:payment_mode;size:20"`

	Status          BookingStatus `json:"status" gorm:"column:status;size:20;index"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"column:special_requests;type:text"`
	Notes           string        `json:"notes,omitempty" gorm:"column:notes;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// BookingServiceItem is a line-item charge attached to a stay (water bottle,
// laundry, taxi). TotalPrice is always Quantity*UnitPrice.
type BookingServiceItem struct {
	ID        int64 `json:"id" gorm:"column:id;primaryKey"`
	BookingID int64 `json:"booking_id" gorm:"column:booking_id;index"`

	ServiceName string    `json:"service_name" gorm:"column:service_name;size:200"`
	Quantity    int       `json:"quantity" gorm:"column:quantity;default:1"`
	UnitPrice   float64   `json:"unit_price" gorm:"column:unit_price"`
	TotalPrice  float64   `json:"total_price" gorm:"column:total_price"`
	ServiceDate time.Time `json:"service_date" gorm:"column:service_date"`
	Notes       string    `json:"notes,omitempty" gorm:"column:notes;type:text"`
}

func (BookingServiceItem) TableName() string { return "booking_services" }

// NightsBetween counts whole nights in the half-open range [in, out).
func NightsBetween(in, out time.Time) int {
	return int(out.Sub(in).Hours() / 24)
}

// RangesOverlap reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap: a booking
// checking out on a date does not block one checking in the same date.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DerivePaymentStatus is the uniform payment-status rule: Paid when the
// advance covers the total, PartiallyPaid when anything has been paid,
// Unpaid otherwise.
func DerivePaymentStatus(advance, total float64) PaymentStatus {
	switch {
	case advance >= total:
		return PaymentPaid
	case advance > 0:
		return PaymentPartiallyPaid
	default:
		return PaymentUnpaid
	}
}

// RecalculateStay re-derives every financial field that depends on the stay
// dates and the nightly rate. Runs on creation and whenever check-in date,
// check-out date or rate change.
func (b *Booking) RecalculateStay() {
	b.TotalNights = NightsBetween(b.CheckInDate, b.CheckOutDate)
	b.RoomCharges = b.RoomRatePerNight * float64(b.TotalNights)
	b.TotalAmount = b.RoomCharges + b.AdditionalCharges
	b.BalanceDue = b.TotalAmount - b.AdvancePayment
	b.PaymentStatus = DerivePaymentStatus(b.AdvancePayment, b.TotalAmount)
}

// ApplyChargeDelta adjusts AdditionalCharges by delta and re-derives the
// dependent totals. AdditionalCharges is floored at zero so that removing a
// service can never drive it negative.
func (b *Booking) ApplyChargeDelta(delta float64) {
	b.AdditionalCharges += delta
	if b.AdditionalCharges < 0 {
		b.AdditionalCharges = 0
	}
	b.TotalAmount = b.RoomCharges + b.AdditionalCharges
	b.BalanceDue = b.TotalAmount - b.AdvancePayment
	b.PaymentStatus = DerivePaymentStatus(b.AdvancePayment, b.TotalAmount)
}
