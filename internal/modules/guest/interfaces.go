package guest

import (
	"context"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

// GuestRepository is the persistence contract for guest profiles.
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Guest, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
	List(ctx context.Context, f repository.GuestFilter, skip, limit int) ([]domain.Guest, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Guest, error)
	Stays(ctx context.Context, phone string) ([]domain.Booking, error)
	Top(ctx context.Context, bySpent bool, limit int) ([]domain.Guest, error)
	Save(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id int64) error
}
