package booking

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		now:      time.Now,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, repository.ErrOverlappingBooking) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	if req.AdvancePayment < 0 || req.RoomRatePerNight < 0 {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.Status != domain.RoomActive {
		return nil, ErrInvalidState
	}

	adults := req.Adults
	if adults <= 0 {
		adults = 1
	}
	if req.Children < 0 {
		return nil, ErrValidation
	}
	if adults+req.Children > room.MaxOccupancy {
		return nil, ErrValidation
	}

	rate := req.RoomRatePerNight
	if rate == 0 {
		rate = room.BasePrice
	}

	b := &domain.Booking{
		GuestName:        req.GuestName,
		GuestPhone:       req.GuestPhone,
		GuestEmail:       req.GuestEmail,
		GuestIDProof:     req.GuestIDProof,
		RoomID:           room.ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           adults,
		Children:         req.Children,
		Source:           req.Source,
		Reference:        req.Reference,
		RoomRatePerNight: rate,
		AdvancePayment:   req.AdvancePayment,
		Status:           domain.BookingConfirmed,
		SpecialRequests:  req.SpecialRequests,
		Notes:            req.Notes,
	}
	if mode, ok := domain.ParsePaymentMode(req.PaymentMode); ok {
		b.PaymentMode = mode
	}
	b.RecalculateStay()

	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int64) (*BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) List(ctx context.Context, q ListBookingsQuery) ([]BookingListItem, error) {
	f := repository.BookingFilter{
		Status:        domain.BookingStatus(q.Status),
		PaymentStatus: domain.PaymentStatus(q.PaymentStatus),
		GuestName:     q.GuestName,
		RoomNumber:    q.RoomNumber,
	}
	if q.CheckInFrom != "" {
		t, err := parseDate(q.CheckInFrom)
		if err != nil {
			return nil, ErrValidation
		}
		f.CheckInFrom = &t
	}
	if q.CheckInTo != "" {
		t, err := parseDate(q.CheckInTo)
		if err != nil {
			return nil, ErrValidation
		}
		f.CheckInTo = &t
	}
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	rows, err := s.bookings.List(ctx, f, q.Skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]BookingListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingListItem(row))
	}
	return out, nil
}

var validStatuses = map[domain.BookingStatus]bool{
	domain.BookingConfirmed:  true,
	domain.BookingCheckedIn:  true,
	domain.BookingCheckedOut: true,
	domain.BookingCancelled:  true,
	domain.BookingNoShow:     true,
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.GuestName != nil {
		b.GuestName = *req.GuestName
	}
	if req.GuestPhone != nil {
		b.GuestPhone = *req.GuestPhone
	}
	if req.GuestEmail != nil {
		b.GuestEmail = *req.GuestEmail
	}
	if req.GuestIDProof != nil {
		b.GuestIDProof = *req.GuestIDProof
	}
	if req.Adults != nil {
		if *req.Adults < 1 {
			return nil, ErrValidation
		}
		b.Adults = *req.Adults
	}
	if req.Children != nil {
		if *req.Children < 0 {
			return nil, ErrValidation
		}
		b.Children = *req.Children
	}
	if req.Source != nil {
		b.Source = *req.Source
	}
	if req.Reference != nil {
		b.Reference = *req.Reference
	}
	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.Status != nil {
		st := domain.BookingStatus(*req.Status)
		if !validStatuses[st] {
			return nil, ErrValidation
		}
		b.Status = st
	}
	if req.PaymentMode != nil {
		// Unknown modes are tolerated and leave the stored mode unchanged.
		if mode, ok := domain.ParsePaymentMode(*req.PaymentMode); ok {
			b.PaymentMode = mode
		}
	}

	datesChanged := false
	if req.CheckInDate != nil {
		t, err := parseDate(*req.CheckInDate)
		if err != nil {
			return nil, ErrValidation
		}
		b.CheckInDate = t
		datesChanged = true
	}
	if req.CheckOutDate != nil {
		t, err := parseDate(*req.CheckOutDate)
		if err != nil {
			return nil, ErrValidation
		}
		b.CheckOutDate = t
		datesChanged = true
	}
	if datesChanged && !b.CheckOutDate.After(b.CheckInDate) {
		return nil, ErrValidation
	}

	recompute := datesChanged
	if req.RoomRatePerNight != nil {
		if *req.RoomRatePerNight < 0 {
			return nil, ErrValidation
		}
		b.RoomRatePerNight = *req.RoomRatePerNight
		recompute = true
	}
	if req.AdvancePayment != nil {
		if *req.AdvancePayment < 0 {
			return nil, ErrValidation
		}
		b.AdvancePayment = *req.AdvancePayment
		recompute = true
	}

	// Date edits are trusted: overlap is enforced at creation only, and the
	// front desk uses updates to fix records for stays already underway.
	if recompute {
		b.RecalculateStay()
	}
	// An explicit payment-status patch wins over the derived value.
	if req.PaymentStatus != nil {
		ps := domain.PaymentStatus(*req.PaymentStatus)
		if ps != domain.PaymentPaid && ps != domain.PaymentPartiallyPaid && ps != domain.PaymentUnpaid {
			return nil, ErrValidation
		}
		b.PaymentStatus = ps
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) CheckIn(ctx context.Context, id int64) (*BookingResponse, error) {
	b, err := s.bookings.UpdateWithLock(ctx, id, func(b *domain.Booking) error {
		if b.Status != domain.BookingConfirmed {
			return ErrInvalidState
		}
		now := s.now()
		b.Status = domain.BookingCheckedIn
		b.ActualCheckIn = &now
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) CheckOut(ctx context.Context, id int64) (*BookingResponse, error) {
	b, err := s.bookings.UpdateWithLock(ctx, id, func(b *domain.Booking) error {
		if b.Status != domain.BookingCheckedIn {
			return ErrInvalidState
		}
		now := s.now()
		b.Status = domain.BookingCheckedOut
		b.ActualCheckOut = &now
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

// Cancel releases the room. Only confirmed bookings can be cancelled; with
// refundAdvance the advance is zeroed and the financials re-derived, so the
// record keeps an honest balance for reporting.
func (s *Service) Cancel(ctx context.Context, id int64, refundAdvance bool) (*BookingResponse, error) {
	b, err := s.bookings.UpdateWithLock(ctx, id, func(b *domain.Booking) error {
		if b.Status != domain.BookingConfirmed {
			return ErrInvalidState
		}
		b.Status = domain.BookingCancelled
		if refundAdvance {
			b.AdvancePayment = 0
			b.BalanceDue = b.TotalAmount
			b.PaymentStatus = domain.PaymentUnpaid
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if b.Status != domain.BookingCancelled && b.Status != domain.BookingCheckedOut {
		return ErrInvalidState
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) AddService(ctx context.Context, bookingID int64, req AddServiceRequest) (*BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if b.Status != domain.BookingConfirmed && b.Status != domain.BookingCheckedIn {
		return nil, ErrInvalidState
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 || req.UnitPrice < 0 {
		return nil, ErrValidation
	}

	svc := &domain.BookingServiceItem{
		BookingID:   b.ID,
		ServiceName: req.ServiceName,
		Quantity:    qty,
		UnitPrice:   req.UnitPrice,
		TotalPrice:  float64(qty) * req.UnitPrice,
		ServiceDate: s.now(),
		Notes:       req.Notes,
	}
	b.ApplyChargeDelta(svc.TotalPrice)

	if err := s.bookings.AddService(ctx, b, svc); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) RemoveService(ctx context.Context, bookingID, serviceID int64) (*BookingResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if b.Status != domain.BookingConfirmed && b.Status != domain.BookingCheckedIn {
		return nil, ErrInvalidState
	}

	svc, err := s.bookings.GetService(ctx, bookingID, serviceID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	b.ApplyChargeDelta(-svc.TotalPrice)

	if err := s.bookings.RemoveService(ctx, b, serviceID); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

// CollectPayment records a partial or full settlement against the balance.
// Runs under a row lock so concurrent collections cannot overshoot the
// balance between read and write.
func (s *Service) CollectPayment(ctx context.Context, id int64, req CollectPaymentRequest) (*BookingResponse, error) {
	b, err := s.bookings.UpdateWithLock(ctx, id, func(b *domain.Booking) error {
		// Terminal states freeze the ledger; outstanding balances on a
		// checked-out stay are settled at check-out, not after.
		if b.Status == domain.BookingCancelled || b.Status == domain.BookingCheckedOut {
			return ErrInvalidState
		}
		if req.Amount <= 0 {
			return ErrValidation
		}
		if req.Amount > b.BalanceDue {
			return ErrConflict
		}
		b.AdvancePayment += req.Amount
		b.BalanceDue = b.TotalAmount - b.AdvancePayment
		// A positive collection can only move the status forward; it never
		// falls back to Unpaid.
		if b.AdvancePayment >= b.TotalAmount {
			b.PaymentStatus = domain.PaymentPaid
		} else {
			b.PaymentStatus = domain.PaymentPartiallyPaid
		}
		if mode, ok := domain.ParsePaymentMode(req.PaymentMode); ok {
			b.PaymentMode = mode
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.detail(ctx, b)
}

func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkInStr, checkOutStr string, excludeID int64) (*AvailabilityResponse, error) {
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	ok, err := s.bookings.IsAvailable(ctx, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResponse{
		RoomID:       roomID,
		CheckInDate:  checkIn.Format(dateLayout),
		CheckOutDate: checkOut.Format(dateLayout),
		Available:    ok,
	}, nil
}

func (s *Service) PendingCheckIns(ctx context.Context) ([]PendingCheckIn, error) {
	today := dateOnly(s.now())
	rows, err := s.bookings.PendingCheckIns(ctx, today)
	if err != nil {
		return nil, err
	}
	out := make([]PendingCheckIn, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingCheckIn{
			BookingID:      row.ID,
			GuestName:      row.GuestName,
			GuestPhone:     row.GuestPhone,
			RoomNumber:     row.RoomNumber,
			Adults:         row.Adults,
			Children:       row.Children,
			CheckInDate:    row.CheckInDate.Format(dateLayout),
			AdvancePayment: row.AdvancePayment,
			TotalAmount:    row.TotalAmount,
		})
	}
	return out, nil
}

func (s *Service) CheckedInGuests(ctx context.Context) ([]PendingCheckOut, error) {
	rows, err := s.bookings.CheckedInGuests(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PendingCheckOut, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingCheckOut{
			BookingID:    row.ID,
			GuestName:    row.GuestName,
			GuestPhone:   row.GuestPhone,
			RoomNumber:   row.RoomNumber,
			BalanceDue:   row.BalanceDue,
			CheckOutDate: row.CheckOutDate.Format(dateLayout),
		})
	}
	return out, nil
}

// DailyRevenue spreads each stay's room charges across the nights it covers:
// a booking contributes its nightly rate to every night of [check-in,
// check-out) that falls inside the requested window.
func (s *Service) DailyRevenue(ctx context.Context, fromStr, toStr string) (*DailyRevenueReport, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListOverlappingRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &DailyRevenueReport{
		DateFrom:      fromStr,
		DateTo:        toStr,
		TotalBookings: len(bookings),
	}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entry := DailyRevenueDay{Date: day.Format(dateLayout)}
		for _, b := range bookings {
			if !day.Before(b.CheckInDate) && day.Before(b.CheckOutDate) {
				entry.Revenue += b.RoomRatePerNight
				entry.RoomNights++
				entry.BookingsCount++
			}
		}
		report.TotalRevenue += entry.Revenue
		report.TotalRoomNights += entry.RoomNights
		report.DailyBreakdown = append(report.DailyBreakdown, entry)
	}

	days := len(report.DailyBreakdown)
	if days > 0 {
		report.AverageDailyRevenue = report.TotalRevenue / float64(days)
	}
	if report.TotalRoomNights > 0 {
		report.AverageDailyRate = report.TotalRevenue / float64(report.TotalRoomNights)
	}
	return report, nil
}

func (s *Service) RevenueSummary(ctx context.Context, fromStr, toStr string) (*RevenueSummary, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListOverlappingRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	sum := &RevenueSummary{
		DateFrom:      fromStr,
		DateTo:        toStr,
		BookingsCount: len(bookings),
	}
	for _, b := range bookings {
		sum.TotalRevenue += b.TotalAmount
		sum.RevenueCollected += b.AdvancePayment
		sum.RevenuePending += b.BalanceDue
	}
	return sum, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return from, to, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) detail(ctx context.Context, b *domain.Booking) (*BookingResponse, error) {
	services, err := s.bookings.ListServices(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	resp := toBookingResponse(b, room, services)
	return &resp, nil
}
