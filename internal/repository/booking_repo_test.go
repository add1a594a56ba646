package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hoteldesk/internal/database"
	"hoteldesk/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string) *domain.Room {
	t.Helper()

	room := &domain.Room{
		RoomNumber:   number,
		RoomType:     domain.RoomDouble,
		BedConfig:    domain.BedDouble,
		Floor:        1,
		BasePrice:    1500,
		MaxOccupancy: 2,
		Status:       domain.RoomActive,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func stay(room *domain.Room, checkIn, checkOut time.Time, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		GuestName:        "Test Guest",
		GuestPhone:       "9000000000",
		RoomID:           room.ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           2,
		RoomRatePerNight: room.BasePrice,
		Status:           status,
		PaymentMode:      domain.PayCash,
	}
	b.RecalculateStay()
	return b
}

func TestCreateIfAvailable_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	require.NoError(t, repo.CreateIfAvailable(ctx, stay(room, jan10, jan13, domain.BookingConfirmed)))

	overlapping := stay(room, jan10.AddDate(0, 0, 2), jan10.AddDate(0, 0, 5), domain.BookingConfirmed)
	err := repo.CreateIfAvailable(ctx, overlapping)
	assert.ErrorIs(t, err, ErrOverlappingBooking)

	var cnt int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestCreateIfAvailable_BackToBackStaysAllowed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	require.NoError(t, repo.CreateIfAvailable(ctx, stay(room, jan10, jan13, domain.BookingConfirmed)))

	// Check-out day equals next check-in day: no overlap under half-open ranges.
	next := stay(room, jan13, jan13.AddDate(0, 0, 2), domain.BookingConfirmed)
	assert.NoError(t, repo.CreateIfAvailable(ctx, next))
}

func TestIsAvailable_CancelledBookingDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	cancelled := stay(room, jan10, jan13, domain.BookingCancelled)
	require.NoError(t, db.Create(cancelled).Error)

	ok, err := repo.IsAvailable(ctx, room.ID, jan10, jan13, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_ExcludesOwnBooking(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	b := stay(room, jan10, jan10.AddDate(0, 0, 3), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	// Extending the same booking by a night conflicts only with others.
	ok, err := repo.IsAvailable(ctx, room.ID, jan10, jan10.AddDate(0, 0, 4), b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsAvailable(ctx, room.ID, jan10, jan10.AddDate(0, 0, 4), 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_OtherRoomUnaffected(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room101 := seedRoom(t, db, "101")
	room102 := seedRoom(t, db, "102")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateIfAvailable(ctx, stay(room101, jan10, jan10.AddDate(0, 0, 3), domain.BookingConfirmed)))

	ok, err := repo.IsAvailable(ctx, room102.ID, jan10, jan10.AddDate(0, 0, 3), 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateWithLock_AppliesMutation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	b := stay(room, jan10, jan10.AddDate(0, 0, 2), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	updated, err := repo.UpdateWithLock(ctx, b.ID, func(b *domain.Booking) error {
		b.AdvancePayment += 1000
		b.PaymentStatus = domain.DerivePaymentStatus(b.AdvancePayment, b.TotalAmount)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1000), updated.AdvancePayment)

	reloaded, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), reloaded.AdvancePayment)
	assert.Equal(t, domain.PaymentPartiallyPaid, reloaded.PaymentStatus)
}

func TestUpdateWithLock_MutateErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	b := stay(room, jan10, jan10.AddDate(0, 0, 2), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	boom := assert.AnError
	_, err := repo.UpdateWithLock(ctx, b.ID, func(b *domain.Booking) error {
		b.AdvancePayment = 99999
		return boom
	})
	assert.ErrorIs(t, err, boom)

	reloaded, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.AdvancePayment)
}

func TestListOverlappingRange_PicksRevenueBearingStays(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	inside := stay(room, jan1.AddDate(0, 0, 4), jan1.AddDate(0, 0, 6), domain.BookingCheckedOut)
	require.NoError(t, db.Create(inside).Error)
	cancelled := stay(room, jan1.AddDate(0, 0, 4), jan1.AddDate(0, 0, 6), domain.BookingCancelled)
	require.NoError(t, db.Create(cancelled).Error)
	after := stay(room, jan1.AddDate(0, 0, 20), jan1.AddDate(0, 0, 22), domain.BookingConfirmed)
	require.NoError(t, db.Create(after).Error)

	got, err := repo.ListOverlappingRange(ctx, jan1, jan1.AddDate(0, 0, 9))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestRemoveService_UnknownServiceNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	b := stay(room, jan10, jan10.AddDate(0, 0, 2), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	err := repo.RemoveService(ctx, b, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
