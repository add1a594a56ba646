package booking

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

// BookingRepository is the persistence contract for stays and their service
// line items.
type BookingRepository interface {
	IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error)
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter, skip, limit int) ([]repository.BookingListRow, error)
	Save(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	AddService(ctx context.Context, b *domain.Booking, svc *domain.BookingServiceItem) error
	RemoveService(ctx context.Context, b *domain.Booking, serviceID int64) error
	GetService(ctx context.Context, bookingID, serviceID int64) (*domain.BookingServiceItem, error)
	UpdateWithLock(ctx context.Context, id int64, mutate func(b *domain.Booking) error) (*domain.Booking, error)
	ListServices(ctx context.Context, bookingID int64) ([]domain.BookingServiceItem, error)
	PendingCheckIns(ctx context.Context, onOrBefore time.Time) ([]repository.BookingListRow, error)
	CheckedInGuests(ctx context.Context) ([]repository.BookingListRow, error)
	ListOverlappingRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// RoomRepository is the slice of room persistence the booking module needs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
