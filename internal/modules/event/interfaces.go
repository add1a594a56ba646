package event

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

// EventRepository is the persistence contract for event bookings and their
// two payment ledgers.
type EventRepository interface {
	Create(ctx context.Context, ev *domain.EventBooking) error
	GetByID(ctx context.Context, id int64) (*domain.EventBooking, error)
	GetBare(ctx context.Context, id int64) (*domain.EventBooking, error)
	List(ctx context.Context, f repository.EventFilter, skip, limit int) ([]domain.EventBooking, error)
	ListAll(ctx context.Context, f repository.EventFilter) ([]domain.EventBooking, error)
	Save(ctx context.Context, ev *domain.EventBooking) error
	Delete(ctx context.Context, id int64) error
	AddService(ctx context.Context, svc *domain.EventService) error
	GetService(ctx context.Context, eventID, serviceID int64) (*domain.EventService, error)
	SaveService(ctx context.Context, svc *domain.EventService) error
	DeleteService(ctx context.Context, eventID, serviceID int64) error
	AddCustomerPayment(ctx context.Context, p *domain.EventCustomerPayment) error
	DeleteCustomerPayment(ctx context.Context, eventID, paymentID int64) error
	AddVendorPayment(ctx context.Context, p *domain.EventVendorPayment) error
	DeleteVendorPayment(ctx context.Context, eventID, serviceID, paymentID int64) error
	CountByStatus(ctx context.Context, dateFrom, dateTo *time.Time) (map[domain.EventStatus]int64, error)
}
