package booking

import (
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	GuestName    string `json:"guest_name" binding:"required"`
	GuestPhone   string `json:"guest_phone" binding:"required"`
	GuestEmail   string `json:"guest_email"`
	GuestIDProof string `json:"guest_id_proof"`

	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	Source    string `json:"booking_source" binding:"required"`
	Reference string `json:"booking_reference"`

	RoomRatePerNight float64 `json:"room_rate_per_night"`
	AdvancePayment   float64 `json:"advance_payment"`

	PaymentMode     string `json:"payment_mode"`
	SpecialRequests string `json:"special_requests"`
	Notes           string `json:"notes"`
}

// UpdateBookingRequest is an explicit patch: nil means "leave unchanged".
// Changing any of check-in date, check-out date or rate triggers a full
// financial recompute.
type UpdateBookingRequest struct {
	GuestName    *string `json:"guest_name"`
	GuestPhone   *string `json:"guest_phone"`
	GuestEmail   *string `json:"guest_email"`
	GuestIDProof *string `json:"guest_id_proof"`

	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`

	Adults   *int `json:"adults"`
	Children *int `json:"children"`

	Source    *string `json:"booking_source"`
	Reference *string `json:"booking_reference"`

	RoomRatePerNight *float64 `json:"room_rate_per_night"`
	AdvancePayment   *float64 `json:"advance_payment"`

	PaymentStatus *string `json:"payment_status"`
	PaymentMode   *string `json:"payment_mode"`
	Status        *string `json:"status"`

	SpecialRequests *string `json:"special_requests"`
	Notes           *string `json:"notes"`
}

type AddServiceRequest struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Notes       string  `json:"notes"`
}

type CollectPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentMode string  `json:"payment_mode"`
}

type ListBookingsQuery struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	GuestName     string `form:"guest_name"`
	RoomNumber    string `form:"room_number"`
	CheckInFrom   string `form:"check_in_from"`
	CheckInTo     string `form:"check_in_to"`
	Skip          int    `form:"skip"`
	Limit         int    `form:"limit"`
}

type AvailabilityResponse struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type RoomBrief struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Floor      int    `json:"floor_number"`
}

type ServiceResponse struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	ServiceDate string  `json:"service_date"`
	Notes       string  `json:"notes,omitempty"`
}

type BookingResponse struct {
	ID int64 `json:"id"`

	GuestName    string `json:"guest_name"`
	GuestPhone   string `json:"guest_phone"`
	GuestEmail   string `json:"guest_email,omitempty"`
	GuestIDProof string `json:"guest_id_proof,omitempty"`

	RoomID         int64  `json:"room_id"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	ActualCheckIn  string `json:"actual_check_in,omitempty"`
	ActualCheckOut string `json:"actual_check_out,omitempty"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	Source    string `json:"booking_source"`
	Reference string `json:"booking_reference,omitempty"`

	RoomRatePerNight  float64 `json:"room_rate_per_night"`
	TotalNights       int     `json:"total_nights"`
	RoomCharges       float64 `json:"room_charges"`
	AdditionalCharges float64 `json:"additional_charges"`
	TotalAmount       float64 `json:"total_amount"`
	AdvancePayment    float64 `json:"advance_payment"`
	BalanceDue        float64 `json:"balance_due"`

	PaymentStatus string `json:"payment_status"`
	PaymentMode   string `json:"payment_mode,omitempty"`
	Status        string `json:"status"`

	SpecialRequests string `json:"special_requests,omitempty"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room     *RoomBrief        `json:"room,omitempty"`
	Services []ServiceResponse `json:"services"`
}

type BookingListItem struct {
	ID            int64     `json:"id"`
	GuestName     string    `json:"guest_name"`
	GuestPhone    string    `json:"guest_phone"`
	RoomID        int64     `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PendingCheckIn struct {
	BookingID      int64   `json:"booking_id"`
	GuestName      string  `json:"guest_name"`
	GuestPhone     string  `json:"guest_phone"`
	RoomNumber     string  `json:"room_number"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	CheckInDate    string  `json:"check_in_date"`
	AdvancePayment float64 `json:"advance_payment"`
	TotalAmount    float64 `json:"total_amount"`
}

type PendingCheckOut struct {
	BookingID    int64   `json:"booking_id"`
	GuestName    string  `json:"guest_name"`
	GuestPhone   string  `json:"guest_phone"`
	RoomNumber   string  `json:"room_number"`
	BalanceDue   float64 `json:"balance_due"`
	CheckOutDate string  `json:"check_out_date"`
}

// DailyRevenueDay is one day's slice of the revenue distribution: a stay
// contributes its nightly rate to each night it covers.
type DailyRevenueDay struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	BookingsCount int     `json:"bookings_count"`
	RoomNights    int     `json:"room_nights"`
}

type DailyRevenueReport struct {
	DateFrom            string            `json:"date_from"`
	DateTo              string            `json:"date_to"`
	TotalRevenue        float64           `json:"total_revenue"`
	TotalRoomNights     int               `json:"total_room_nights"`
	TotalBookings       int               `json:"total_bookings"`
	AverageDailyRevenue float64           `json:"average_daily_revenue"`
	AverageDailyRate    float64           `json:"average_daily_rate"`
	DailyBreakdown      []DailyRevenueDay `json:"daily_breakdown"`
}

type RevenueSummary struct {
	DateFrom         string  `json:"date_from"`
	DateTo           string  `json:"date_to"`
	TotalRevenue     float64 `json:"total_revenue"`
	RevenueCollected float64 `json:"revenue_collected"`
	RevenuePending   float64 `json:"revenue_pending"`
	BookingsCount    int     `json:"bookings_count"`
}

func toServiceResponse(s domain.BookingServiceItem) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		ServiceName: s.ServiceName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalPrice:  s.TotalPrice,
		ServiceDate: s.ServiceDate.Format(time.RFC3339),
		Notes:       s.Notes,
	}
}

func toBookingResponse(b *domain.Booking, room *domain.Room, services []domain.BookingServiceItem) BookingResponse {
	resp := BookingResponse{
		ID:                b.ID,
		GuestName:         b.GuestName,
		GuestPhone:        b.GuestPhone,
		GuestEmail:        b.GuestEmail,
		GuestIDProof:      b.GuestIDProof,
		RoomID:            b.RoomID,
		CheckInDate:       b.CheckInDate.Format(dateLayout),
		CheckOutDate:      b.CheckOutDate.Format(dateLayout),
		Adults:            b.Adults,
		Children:          b.Children,
		Source:            b.Source,
		Reference:         b.Reference,
		RoomRatePerNight:  b.RoomRatePerNight,
		TotalNights:       b.TotalNights,
		RoomCharges:       b.RoomCharges,
		AdditionalCharges: b.AdditionalCharges,
		TotalAmount:       b.TotalAmount,
		AdvancePayment:    b.AdvancePayment,
		BalanceDue:        b.BalanceDue,
		PaymentStatus:     string(b.PaymentStatus),
		PaymentMode:       string(b.PaymentMode),
		Status:            string(b.Status),
		SpecialRequests:   b.SpecialRequests,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		Services:          []ServiceResponse{},
	}
	if b.ActualCheckIn != nil {
		resp.ActualCheckIn = b.ActualCheckIn.Format(time.RFC3339)
	}
	if b.ActualCheckOut != nil {
		resp.ActualCheckOut = b.ActualCheckOut.Format(time.RFC3339)
	}
	if room != nil {
		resp.Room = &RoomBrief{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   string(room.RoomType),
			Floor:      room.Floor,
		}
	}
	for _, s := range services {
		resp.Services = append(resp.Services, toServiceResponse(s))
	}
	return resp
}

func toBookingListItem(row repository.BookingListRow) BookingListItem {
	return BookingListItem{
		ID:            row.ID,
		GuestName:     row.GuestName,
		GuestPhone:    row.GuestPhone,
		RoomID:        row.RoomID,
		RoomNumber:    row.RoomNumber,
		CheckInDate:   row.CheckInDate.Format(dateLayout),
		CheckOutDate:  row.CheckOutDate.Format(dateLayout),
		TotalAmount:   row.TotalAmount,
		PaymentStatus: string(row.PaymentStatus),
		Status:        string(row.Status),
		CreatedAt:     row.CreatedAt,
	}
}
