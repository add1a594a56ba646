package booking

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter, skip, limit int) ([]repository.BookingListRow, error) {
	args := m.Called(ctx, f, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListRow), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) AddService(ctx context.Context, b *domain.Booking, svc *domain.BookingServiceItem) error {
	args := m.Called(ctx, b, svc)
	return args.Error(0)
}

func (m *MockBookingRepository) RemoveService(ctx context.Context, b *domain.Booking, serviceID int64) error {
	args := m.Called(ctx, b, serviceID)
	return args.Error(0)
}

func (m *MockBookingRepository) GetService(ctx context.Context, bookingID, serviceID int64) (*domain.BookingServiceItem, error) {
	args := m.Called(ctx, bookingID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingServiceItem), args.Error(1)
}

func (m *MockBookingRepository) UpdateWithLock(ctx context.Context, id int64, mutate func(b *domain.Booking) error) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	b := args.Get(0).(*domain.Booking)
	if err := mutate(b); err != nil {
		return nil, err
	}
	return b, args.Error(1)
}

func (m *MockBookingRepository) ListServices(ctx context.Context, bookingID int64) ([]domain.BookingServiceItem, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingServiceItem), args.Error(1)
}

func (m *MockBookingRepository) PendingCheckIns(ctx context.Context, onOrBefore time.Time) ([]repository.BookingListRow, error) {
	args := m.Called(ctx, onOrBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListRow), args.Error(1)
}

func (m *MockBookingRepository) CheckedInGuests(ctx context.Context) ([]repository.BookingListRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListRow), args.Error(1)
}

func (m *MockBookingRepository) ListOverlappingRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func activeRoom() *domain.Room {
	return &domain.Room{
		ID:           5,
		RoomNumber:   "101",
		RoomType:     domain.RoomDouble,
		Floor:        1,
		BasePrice:    1500,
		MaxOccupancy: 3,
		Status:       domain.RoomActive,
	}
}

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository) *Service {
	s := NewService(bookings, rooms)
	s.now = func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateBooking_DerivesFinancials(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(101)).Return([]domain.BookingServiceItem{}, nil)

	resp, err := svc.Create(context.Background(), CreateBookingRequest{
		GuestName:        "Asha Rao",
		GuestPhone:       "9876543210",
		RoomID:           5,
		CheckInDate:      "2025-01-10",
		CheckOutDate:     "2025-01-13",
		Adults:           2,
		Source:           string(domain.SourceWalkIn),
		RoomRatePerNight: 1000,
		AdvancePayment:   1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalNights)
	assert.Equal(t, 3000.0, resp.RoomCharges)
	assert.Equal(t, 3000.0, resp.TotalAmount)
	assert.Equal(t, 2000.0, resp.BalanceDue)
	assert.Equal(t, string(domain.PaymentPartiallyPaid), resp.PaymentStatus)
	assert.Equal(t, string(domain.BookingConfirmed), resp.Status)
	assert.Equal(t, "101", resp.Room.RoomNumber)
}

func TestCreateBooking_DefaultsRateToRoomBasePrice(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(101)).Return([]domain.BookingServiceItem{}, nil)

	resp, err := svc.Create(context.Background(), CreateBookingRequest{
		GuestName:    "Asha Rao",
		GuestPhone:   "9876543210",
		RoomID:       5,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-12",
		Source:       string(domain.SourcePhone),
	})

	require.NoError(t, err)
	assert.Equal(t, 1500.0, resp.RoomRatePerNight)
	assert.Equal(t, 3000.0, resp.TotalAmount)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
}

func TestCreateBooking_OverlapConflict(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(repository.ErrOverlappingBooking)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		GuestName:    "Asha Rao",
		GuestPhone:   "9876543210",
		RoomID:       5,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
		Source:       string(domain.SourceWalkIn),
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateBooking_Validation(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	base := CreateBookingRequest{
		GuestName:    "Asha Rao",
		GuestPhone:   "9876543210",
		RoomID:       5,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
		Source:       string(domain.SourceWalkIn),
	}

	sameDay := base
	sameDay.CheckOutDate = sameDay.CheckInDate
	_, err := svc.Create(context.Background(), sameDay)
	assert.ErrorIs(t, err, ErrValidation)

	reversed := base
	reversed.CheckInDate, reversed.CheckOutDate = reversed.CheckOutDate, reversed.CheckInDate
	_, err = svc.Create(context.Background(), reversed)
	assert.ErrorIs(t, err, ErrValidation)

	badDate := base
	badDate.CheckInDate = "10-01-2025"
	_, err = svc.Create(context.Background(), badDate)
	assert.ErrorIs(t, err, ErrValidation)

	tooMany := base
	tooMany.Adults = 3
	tooMany.Children = 1
	_, err = svc.Create(context.Background(), tooMany)
	assert.ErrorIs(t, err, ErrValidation)

	negAdvance := base
	negAdvance.AdvancePayment = -1
	_, err = svc.Create(context.Background(), negAdvance)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_RoomChecks(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	rooms.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	maintenance := activeRoom()
	maintenance.ID = 8
	maintenance.Status = domain.RoomUnderMaintenance
	rooms.On("GetByID", mock.Anything, int64(8)).Return(maintenance, nil)

	req := CreateBookingRequest{
		GuestName:    "Asha Rao",
		GuestPhone:   "9876543210",
		RoomID:       7,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
		Source:       string(domain.SourceWalkIn),
	}
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req.RoomID = 8
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func confirmedBooking() *domain.Booking {
	b := &domain.Booking{
		ID:               42,
		GuestName:        "Asha Rao",
		GuestPhone:       "9876543210",
		RoomID:           5,
		CheckInDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		Adults:           2,
		Source:           string(domain.SourceWalkIn),
		RoomRatePerNight: 1000,
		AdvancePayment:   1000,
		Status:           domain.BookingConfirmed,
	}
	b.RecalculateStay()
	return b
}

func TestCollectPayment_SettlesBalance(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: 2000, PaymentMode: "UPI"})

	require.NoError(t, err)
	assert.Equal(t, 3000.0, resp.AdvancePayment)
	assert.Equal(t, 0.0, resp.BalanceDue)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	assert.Equal(t, string(domain.PayUPI), resp.PaymentMode)
}

func TestCollectPayment_Overpayment(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(confirmedBooking(), nil)

	_, err := svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: 2001})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCollectPayment_TerminalStatesFrozen(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	cancelled := confirmedBooking()
	cancelled.Status = domain.BookingCancelled
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(cancelled, nil)

	_, err := svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: 500})
	assert.ErrorIs(t, err, ErrInvalidState)

	checkedOut := confirmedBooking()
	checkedOut.ID = 43
	checkedOut.Status = domain.BookingCheckedOut
	bookings.On("UpdateWithLock", mock.Anything, int64(43)).Return(checkedOut, nil)

	_, err = svc.CollectPayment(context.Background(), 43, CollectPaymentRequest{Amount: 500})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCollectPayment_Validation(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(confirmedBooking(), nil)

	_, err := svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: -50})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCollectPayment_UnknownModeTolerated(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	b.PaymentMode = domain.PayCash
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.CollectPayment(context.Background(), 42, CollectPaymentRequest{Amount: 500, PaymentMode: "Barter"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PayCash), resp.PaymentMode)
	assert.Equal(t, string(domain.PaymentPartiallyPaid), resp.PaymentStatus)
}

func TestCheckInCheckOut_StateMachine(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.CheckIn(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCheckedIn), resp.Status)
	assert.Equal(t, "2025-01-10T12:00:00Z", resp.ActualCheckIn)

	// Already checked in: a second check-in is rejected.
	_, err = svc.CheckIn(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidState)

	resp, err = svc.CheckOut(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCheckedOut), resp.Status)

	_, err = svc.CheckOut(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancel_RefundAdvance(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.Cancel(context.Background(), 42, true)
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingCancelled), resp.Status)
	assert.Equal(t, 0.0, resp.AdvancePayment)
	assert.Equal(t, 3000.0, resp.BalanceDue)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
}

func TestCancel_OnlyFromConfirmed(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	b.Status = domain.BookingCheckedIn
	bookings.On("UpdateWithLock", mock.Anything, int64(42)).Return(b, nil)

	_, err := svc.Cancel(context.Background(), 42, false)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDelete_OnlyTerminalStates(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	active := confirmedBooking()
	bookings.On("GetByID", mock.Anything, int64(42)).Return(active, nil)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidState)

	done := confirmedBooking()
	done.ID = 43
	done.Status = domain.BookingCheckedOut
	bookings.On("GetByID", mock.Anything, int64(43)).Return(done, nil)
	bookings.On("Delete", mock.Anything, int64(43)).Return(nil)

	err = svc.Delete(context.Background(), 43)
	assert.NoError(t, err)
}

func TestAddService_RecalculatesCharges(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("AddService", mock.Anything, b, mock.AnythingOfType("*domain.BookingServiceItem")).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{
		{ID: 1, BookingID: 42, ServiceName: "Laundry", Quantity: 2, UnitPrice: 150, TotalPrice: 300},
	}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.AddService(context.Background(), 42, AddServiceRequest{
		ServiceName: "Laundry",
		Quantity:    2,
		UnitPrice:   150,
	})

	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.AdditionalCharges)
	assert.Equal(t, 3300.0, resp.TotalAmount)
	assert.Equal(t, 2300.0, resp.BalanceDue)
	assert.Len(t, resp.Services, 1)
}

func TestRemoveService_ClampsChargesAtZero(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	// Stored additional charges are lower than the removed line item, which
	// can happen after manual edits; the floor keeps them non-negative.
	b := confirmedBooking()
	b.ApplyChargeDelta(500)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("GetService", mock.Anything, int64(42), int64(9)).Return(&domain.BookingServiceItem{
		ID: 9, BookingID: 42, ServiceName: "Taxi", Quantity: 1, UnitPrice: 800, TotalPrice: 800,
	}, nil)
	bookings.On("RemoveService", mock.Anything, b, int64(9)).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	resp, err := svc.RemoveService(context.Background(), 42, 9)

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.AdditionalCharges)
	assert.Equal(t, 3000.0, resp.TotalAmount)
}

func TestServices_RequireActiveStay(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	b.Status = domain.BookingCancelled
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	_, err := svc.AddService(context.Background(), 42, AddServiceRequest{ServiceName: "Laundry", UnitPrice: 100})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.RemoveService(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdate_DateChangeRecomputesWithoutAvailabilityCheck(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("Save", mock.Anything, b).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	newOut := "2025-01-15"
	resp, err := svc.Update(context.Background(), 42, UpdateBookingRequest{CheckOutDate: &newOut})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalNights)
	assert.Equal(t, 5000.0, resp.RoomCharges)
	assert.Equal(t, 4000.0, resp.BalanceDue)
	bookings.AssertNotCalled(t, "IsAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RateChangeRecomputes(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	b := confirmedBooking()
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	bookings.On("Save", mock.Anything, b).Return(nil)
	bookings.On("ListServices", mock.Anything, int64(42)).Return([]domain.BookingServiceItem{}, nil)
	rooms.On("GetByID", mock.Anything, int64(5)).Return(activeRoom(), nil)

	rate := 2000.0
	resp, err := svc.Update(context.Background(), 42, UpdateBookingRequest{RoomRatePerNight: &rate})

	require.NoError(t, err)
	assert.Equal(t, 6000.0, resp.RoomCharges)
	assert.Equal(t, 6000.0, resp.TotalAmount)
	assert.Equal(t, 5000.0, resp.BalanceDue)
	assert.Equal(t, string(domain.PaymentPartiallyPaid), resp.PaymentStatus)
}

func TestDailyRevenue_SpreadsNightlyRate(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	stays := []domain.Booking{
		{
			CheckInDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			RoomRatePerNight: 1000,
			Status:           domain.BookingConfirmed,
		},
		{
			CheckInDate:      time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			RoomRatePerNight: 500,
			Status:           domain.BookingCheckedOut,
		},
	}
	bookings.On("ListOverlappingRange", mock.Anything, mock.Anything, mock.Anything).Return(stays, nil)

	report, err := svc.DailyRevenue(context.Background(), "2025-01-10", "2025-01-12")

	require.NoError(t, err)
	require.Len(t, report.DailyBreakdown, 3)
	assert.Equal(t, 1000.0, report.DailyBreakdown[0].Revenue)
	assert.Equal(t, 1500.0, report.DailyBreakdown[1].Revenue)
	assert.Equal(t, 1000.0, report.DailyBreakdown[2].Revenue)
	assert.Equal(t, 3500.0, report.TotalRevenue)
	assert.Equal(t, 4, report.TotalRoomNights)
	assert.Equal(t, 2, report.TotalBookings)
	assert.InDelta(t, 875.0, report.AverageDailyRate, 0.001)
}

func TestRevenueSummary_Totals(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	stays := []domain.Booking{
		{TotalAmount: 3000, AdvancePayment: 1000, BalanceDue: 2000},
		{TotalAmount: 1500, AdvancePayment: 1500, BalanceDue: 0},
	}
	bookings.On("ListOverlappingRange", mock.Anything, mock.Anything, mock.Anything).Return(stays, nil)

	sum, err := svc.RevenueSummary(context.Background(), "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, 4500.0, sum.TotalRevenue)
	assert.Equal(t, 2500.0, sum.RevenueCollected)
	assert.Equal(t, 2000.0, sum.RevenuePending)
	assert.Equal(t, 2, sum.BookingsCount)
}

func TestGet_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := newTestService(bookings, rooms)

	bookings.On("GetByID", mock.Anything, int64(999)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
