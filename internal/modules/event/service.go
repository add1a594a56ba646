package event

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	events EventRepository

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewService(events EventRepository) *Service {
	return &Service{events: events, now: time.Now}
}

var validEventStatuses = map[domain.EventStatus]bool{
	domain.EventConfirmed: true,
	domain.EventCompleted: true,
	domain.EventCancelled: true,
}

var validServiceTypes = map[domain.EventServiceType]bool{
	domain.EventSvcMarriageGarden: true,
	domain.EventSvcRooms:          true,
	domain.EventSvcTenting:        true,
	domain.EventSvcElectricity:    true,
	domain.EventSvcGenerator:      true,
	domain.EventSvcLabour:         true,
	domain.EventSvcEventServices:  true,
	domain.EventSvcCustom:         true,
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func (s *Service) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func buildService(eventID int64, in ServiceInput) (*domain.EventService, error) {
	st := domain.EventServiceType(in.ServiceType)
	if !validServiceTypes[st] {
		return nil, ErrValidation
	}
	if st == domain.EventSvcCustom && in.CustomServiceName == "" {
		return nil, ErrValidation
	}
	if in.CustomerPrice < 0 || in.VendorCost < 0 {
		return nil, ErrValidation
	}
	return &domain.EventService{
		EventBookingID:    eventID,
		ServiceType:       st,
		CustomServiceName: in.CustomServiceName,
		CustomerPrice:     in.CustomerPrice,
		VendorCost:        in.VendorCost,
		VendorName:        in.VendorName,
		Notes:             in.Notes,
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	date, err := parseDate(req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}

	ev := &domain.EventBooking{
		BookingName:  req.BookingName,
		BookingDate:  date,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Status:       domain.EventConfirmed,
		Notes:        req.Notes,
	}
	for _, in := range req.Services {
		svc, err := buildService(0, in)
		if err != nil {
			return nil, err
		}
		ev.Services = append(ev.Services, *svc)
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	return s.detail(ctx, ev.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*EventResponse, error) {
	return s.detail(ctx, id)
}

func (s *Service) List(ctx context.Context, q ListEventsQuery) ([]EventResponse, error) {
	f, err := buildFilter(q.Search, q.Status, q.DateFrom, q.DateTo)
	if err != nil {
		return nil, err
	}
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	events, err := s.events.List(ctx, f, q.Skip, limit)
	if err != nil {
		return nil, err
	}
	today := s.today()
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i], today))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEventRequest) (*EventResponse, error) {
	ev, err := s.events.GetBare(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.BookingName != nil {
		ev.BookingName = *req.BookingName
	}
	if req.BookingDate != nil {
		date, err := parseDate(*req.BookingDate)
		if err != nil {
			return nil, ErrValidation
		}
		ev.BookingDate = date
	}
	if req.ContactName != nil {
		ev.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		ev.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		ev.ContactEmail = *req.ContactEmail
	}
	if req.Status != nil {
		st := domain.EventStatus(*req.Status)
		if !validEventStatuses[st] {
			return nil, ErrValidation
		}
		ev.Status = st
	}
	if req.Notes != nil {
		ev.Notes = *req.Notes
	}

	if err := s.events.Save(ctx, ev); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, id)
}

// Delete removes an event with its whole payment history, so only cancelled
// events can be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ev, err := s.events.GetBare(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if ev.Status != domain.EventCancelled {
		return ErrInvalidState
	}
	return s.events.Delete(ctx, id)
}

func (s *Service) AddService(ctx context.Context, eventID int64, in ServiceInput) (*EventResponse, error) {
	ev, err := s.events.GetBare(ctx, eventID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if ev.Status == domain.EventCancelled {
		return nil, ErrInvalidState
	}
	svc, err := buildService(eventID, in)
	if err != nil {
		return nil, err
	}
	if err := s.events.AddService(ctx, svc); err != nil {
		return nil, err
	}
	return s.detail(ctx, eventID)
}

func (s *Service) UpdateService(ctx context.Context, eventID, serviceID int64, req UpdateServiceRequest) (*EventResponse, error) {
	svc, err := s.events.GetService(ctx, eventID, serviceID)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.CustomServiceName != nil {
		svc.CustomServiceName = *req.CustomServiceName
	}
	if svc.ServiceType == domain.EventSvcCustom && svc.CustomServiceName == "" {
		return nil, ErrValidation
	}
	if req.CustomerPrice != nil {
		if *req.CustomerPrice < 0 {
			return nil, ErrValidation
		}
		svc.CustomerPrice = *req.CustomerPrice
	}
	if req.VendorCost != nil {
		if *req.VendorCost < 0 {
			return nil, ErrValidation
		}
		svc.VendorCost = *req.VendorCost
	}
	if req.VendorName != nil {
		svc.VendorName = *req.VendorName
	}
	if req.Notes != nil {
		svc.Notes = *req.Notes
	}

	if err := s.events.SaveService(ctx, svc); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, eventID)
}

func (s *Service) DeleteService(ctx context.Context, eventID, serviceID int64) (*EventResponse, error) {
	if err := s.events.DeleteService(ctx, eventID, serviceID); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, eventID)
}

func (s *Service) paymentDate(raw string) (time.Time, error) {
	if raw == "" {
		return s.today(), nil
	}
	date, err := parseDate(raw)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	return date, nil
}

func (s *Service) AddCustomerPayment(ctx context.Context, eventID int64, req PaymentRequest) (*EventResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}
	ev, err := s.events.GetBare(ctx, eventID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if ev.Status == domain.EventCancelled {
		return nil, ErrInvalidState
	}
	date, err := s.paymentDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	p := &domain.EventCustomerPayment{
		EventBookingID: eventID,
		PaymentDate:    date,
		Amount:         req.Amount,
		PaymentMode:    req.PaymentMode,
		Notes:          req.Notes,
	}
	if err := s.events.AddCustomerPayment(ctx, p); err != nil {
		return nil, err
	}
	return s.detail(ctx, eventID)
}

func (s *Service) DeleteCustomerPayment(ctx context.Context, eventID, paymentID int64) (*EventResponse, error) {
	if err := s.events.DeleteCustomerPayment(ctx, eventID, paymentID); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, eventID)
}

// AddVendorPayment records a payment to the vendor of one service. Vendor
// settlement often continues after an event is completed or cancelled, so
// there is no event-status gate here.
func (s *Service) AddVendorPayment(ctx context.Context, eventID, serviceID int64, req PaymentRequest) (*EventResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}
	if _, err := s.events.GetService(ctx, eventID, serviceID); err != nil {
		return nil, mapRepoErr(err)
	}
	date, err := s.paymentDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	p := &domain.EventVendorPayment{
		EventServiceID: serviceID,
		PaymentDate:    date,
		Amount:         req.Amount,
		PaymentMode:    req.PaymentMode,
		Notes:          req.Notes,
	}
	if err := s.events.AddVendorPayment(ctx, p); err != nil {
		return nil, err
	}
	return s.detail(ctx, eventID)
}

func (s *Service) DeleteVendorPayment(ctx context.Context, eventID, serviceID, paymentID int64) (*EventResponse, error) {
	if err := s.events.DeleteVendorPayment(ctx, eventID, serviceID, paymentID); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, eventID)
}

// Summary aggregates both ledgers across every event in the optional date
// window. Cancelled events count toward the event totals but are excluded
// from the financial roll-up.
func (s *Service) Summary(ctx context.Context, dateFromStr, dateToStr string) (*SummaryReport, error) {
	f, err := buildFilter("", "", dateFromStr, dateToStr)
	if err != nil {
		return nil, err
	}

	counts, err := s.events.CountByStatus(ctx, f.DateFrom, f.DateTo)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{
		ConfirmedEvents: counts[domain.EventConfirmed],
		CompletedEvents: counts[domain.EventCompleted],
		CancelledEvents: counts[domain.EventCancelled],
	}
	for _, cnt := range counts {
		report.TotalEvents += cnt
	}
	for i := range events {
		if events[i].Status == domain.EventCancelled {
			continue
		}
		f := domain.ComputeEventFinancials(&events[i])
		report.Financials.TotalCustomerPrice += f.TotalCustomerPrice
		report.Financials.TotalCollected += f.TotalCollected
		report.Financials.CustomerPending += f.CustomerPending
		report.Financials.TotalVendorCost += f.TotalVendorCost
		report.Financials.TotalVendorPaid += f.TotalVendorPaid
		report.Financials.VendorPending += f.VendorPending
		report.Financials.ProfitMargin += f.ProfitMargin
	}
	return report, nil
}

func buildFilter(search, status, dateFromStr, dateToStr string) (repository.EventFilter, error) {
	f := repository.EventFilter{Search: search}
	if status != "" {
		st := domain.EventStatus(status)
		if !validEventStatuses[st] {
			return f, ErrValidation
		}
		f.Status = st
	}
	if dateFromStr != "" {
		t, err := parseDate(dateFromStr)
		if err != nil {
			return f, ErrValidation
		}
		f.DateFrom = &t
	}
	if dateToStr != "" {
		t, err := parseDate(dateToStr)
		if err != nil {
			return f, ErrValidation
		}
		f.DateTo = &t
	}
	return f, nil
}

func (s *Service) detail(ctx context.Context, id int64) (*EventResponse, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	resp := toEventResponse(ev, s.today())
	return &resp, nil
}
