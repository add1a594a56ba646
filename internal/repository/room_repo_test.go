package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/internal/domain"
)

func TestAvailableBetween_ExcludesBookedAndInactiveRooms(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	booked := seedRoom(t, db, "101")
	free := seedRoom(t, db, "102")
	maintenance := seedRoom(t, db, "103")
	require.NoError(t, db.Model(maintenance).Update("status", domain.RoomUnderMaintenance).Error)

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	require.NoError(t, bookings.CreateIfAvailable(ctx, stay(booked, jan10, jan13, domain.BookingConfirmed)))

	got, err := rooms.AvailableBetween(ctx, jan10, jan13)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, free.ID, got[0].ID)
}

func TestAvailableBetween_CancelledStayFreesTheRoom(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	rooms := NewRoomRepository(db)

	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	require.NoError(t, db.Create(stay(room, jan10, jan13, domain.BookingCancelled)).Error)

	got, err := rooms.AvailableBetween(ctx, jan10, jan13)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, room.ID, got[0].ID)
}

func TestAvailableBetween_BackToBackStayDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	room := seedRoom(t, db, "101")

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := jan10.AddDate(0, 0, 3)
	require.NoError(t, bookings.CreateIfAvailable(ctx, stay(room, jan10, jan13, domain.BookingConfirmed)))

	got, err := rooms.AvailableBetween(ctx, jan13, jan13.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, got, 1)
}
