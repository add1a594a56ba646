package event

import (
	"time"

	"hoteldesk/internal/domain"
)

const dateLayout = "2006-01-02"

type ServiceInput struct {
	ServiceType       string  `json:"service_type" binding:"required"`
	CustomServiceName string  `json:"custom_service_name"`
	CustomerPrice     float64 `json:"customer_price"`
	VendorCost        float64 `json:"vendor_cost"`
	VendorName        string  `json:"vendor_name"`
	Notes             string  `json:"notes"`
}

type CreateEventRequest struct {
	BookingName  string         `json:"booking_name" binding:"required"`
	BookingDate  string         `json:"booking_date" binding:"required"`
	ContactName  string         `json:"contact_name" binding:"required"`
	ContactPhone string         `json:"contact_phone" binding:"required"`
	ContactEmail string         `json:"contact_email"`
	Notes        string         `json:"notes"`
	Services     []ServiceInput `json:"services"`
}

// UpdateEventRequest is an explicit patch: nil means "leave unchanged".
// Services and payments are managed through their own endpoints.
type UpdateEventRequest struct {
	BookingName  *string `json:"booking_name"`
	BookingDate  *string `json:"booking_date"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

type UpdateServiceRequest struct {
	CustomServiceName *string  `json:"custom_service_name"`
	CustomerPrice     *float64 `json:"customer_price"`
	VendorCost        *float64 `json:"vendor_cost"`
	VendorName        *string  `json:"vendor_name"`
	Notes             *string  `json:"notes"`
}

type PaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date"`
	PaymentMode string  `json:"payment_mode"`
	Notes       string  `json:"notes"`
}

type ListEventsQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Skip     int    `form:"skip"`
	Limit    int    `form:"limit"`
}

type PaymentResponse struct {
	ID          int64     `json:"id"`
	PaymentDate string    `json:"payment_date"`
	Amount      float64   `json:"amount"`
	PaymentMode string    `json:"payment_mode,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID                int64             `json:"id"`
	ServiceType       string            `json:"service_type"`
	CustomServiceName string            `json:"custom_service_name,omitempty"`
	CustomerPrice     float64           `json:"customer_price"`
	VendorCost        float64           `json:"vendor_cost"`
	VendorName        string            `json:"vendor_name,omitempty"`
	VendorTotalPaid   float64           `json:"vendor_total_paid"`
	VendorPending     float64           `json:"vendor_pending"`
	Notes             string            `json:"notes,omitempty"`
	VendorPayments    []PaymentResponse `json:"vendor_payments"`
}

type EventResponse struct {
	ID           int64  `json:"id"`
	BookingName  string `json:"booking_name"`
	BookingDate  string `json:"booking_date"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	IsCollapsed  bool   `json:"is_collapsed"`

	Services         []ServiceResponse `json:"services"`
	CustomerPayments []PaymentResponse `json:"customer_payments"`

	Financials domain.EventFinancials `json:"financials"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SummaryReport struct {
	TotalEvents     int64                  `json:"total_events"`
	ConfirmedEvents int64                  `json:"confirmed_events"`
	CompletedEvents int64                  `json:"completed_events"`
	CancelledEvents int64                  `json:"cancelled_events"`
	Financials      domain.EventFinancials `json:"financials"`
}

func toPaymentResponse(date time.Time, id int64, amount float64, mode, notes string, createdAt time.Time) PaymentResponse {
	return PaymentResponse{
		ID:          id,
		PaymentDate: date.Format(dateLayout),
		Amount:      amount,
		PaymentMode: mode,
		Notes:       notes,
		CreatedAt:   createdAt,
	}
}

func toServiceResponse(s *domain.EventService) ServiceResponse {
	resp := ServiceResponse{
		ID:                s.ID,
		ServiceType:       string(s.ServiceType),
		CustomServiceName: s.CustomServiceName,
		CustomerPrice:     s.CustomerPrice,
		VendorCost:        s.VendorCost,
		VendorName:        s.VendorName,
		VendorTotalPaid:   s.VendorTotalPaid(),
		VendorPending:     s.VendorPending(),
		Notes:             s.Notes,
		VendorPayments:    []PaymentResponse{},
	}
	for _, p := range s.VendorPayments {
		resp.VendorPayments = append(resp.VendorPayments,
			toPaymentResponse(p.PaymentDate, p.ID, p.Amount, p.PaymentMode, p.Notes, p.CreatedAt))
	}
	return resp
}

func toEventResponse(ev *domain.EventBooking, today time.Time) EventResponse {
	resp := EventResponse{
		ID:               ev.ID,
		BookingName:      ev.BookingName,
		BookingDate:      ev.BookingDate.Format(dateLayout),
		ContactName:      ev.ContactName,
		ContactPhone:     ev.ContactPhone,
		ContactEmail:     ev.ContactEmail,
		Status:           string(ev.Status),
		Notes:            ev.Notes,
		IsCollapsed:      domain.IsCollapsed(ev.BookingDate, today),
		Services:         []ServiceResponse{},
		CustomerPayments: []PaymentResponse{},
		Financials:       domain.ComputeEventFinancials(ev),
		CreatedAt:        ev.CreatedAt,
		UpdatedAt:        ev.UpdatedAt,
	}
	for i := range ev.Services {
		resp.Services = append(resp.Services, toServiceResponse(&ev.Services[i]))
	}
	for _, p := range ev.CustomerPayments {
		resp.CustomerPayments = append(resp.CustomerPayments,
			toPaymentResponse(p.PaymentDate, p.ID, p.Amount, p.PaymentMode, p.Notes, p.CreatedAt))
	}
	return resp
}
