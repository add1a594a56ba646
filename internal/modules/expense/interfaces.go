package expense

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

// ExpenseRepository is the persistence contract for operating expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	List(ctx context.Context, f repository.ExpenseFilter, skip, limit int) ([]domain.Expense, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Expense, error)
	Save(ctx context.Context, e *domain.Expense) error
	SaveAll(ctx context.Context, expenses []domain.Expense) error
	Delete(ctx context.Context, id int64) error
	Overdue(ctx context.Context, today time.Time) ([]domain.Expense, error)
	TotalAmount(ctx context.Context, from, to *time.Time) (float64, error)
	TotalPaid(ctx context.Context, from, to *time.Time) (float64, error)
	PendingDue(ctx context.Context, from, to *time.Time) (float64, error)
	CategoryTotals(ctx context.Context, from, to *time.Time) ([]repository.CategoryTotal, error)
	MonthTotal(ctx context.Context, year int, month time.Month) (float64, error)
}
