package auth

import (
	"context"

	"hoteldesk/internal/domain"
)

// UserRepository is the persistent account store backing optional per-user
// logins alongside the shared hotel password.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
