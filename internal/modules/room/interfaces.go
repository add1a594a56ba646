package room

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

// RoomRepository is the persistence contract for the room inventory.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context, f repository.RoomFilter, skip, limit int) ([]domain.Room, error)
	Save(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	HasBookings(ctx context.Context, roomID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	AvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
	Summary(ctx context.Context) (*domain.RoomSummary, error)
}
