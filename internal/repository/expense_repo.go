package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ExpenseFilter narrows List; zero values mean "no filter".
type ExpenseFilter struct {
	Category     domain.ExpenseCategory
	Status       domain.ExpenseStatus
	VendorName   string
	EmployeeName string
	DateFrom     *time.Time
	DateTo       *time.Time
	AmountMin    *float64
	AmountMax    *float64
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var e domain.Expense
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, f ExpenseFilter, skip, limit int) ([]domain.Expense, error) {
	q := r.db.WithContext(ctx).Model(&domain.Expense{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.VendorName != "" {
		q = q.Where("vendor_name LIKE ?", "%"+f.VendorName+"%")
	}
	if f.EmployeeName != "" {
		q = q.Where("employee_name LIKE ?", "%"+f.EmployeeName+"%")
	}
	if f.DateFrom != nil {
		q = q.Where("expense_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("expense_date <= ?", *f.DateTo)
	}
	if f.AmountMin != nil {
		q = q.Where("amount >= ?", *f.AmountMin)
	}
	if f.AmountMax != nil {
		q = q.Where("amount <= ?", *f.AmountMax)
	}

	var expenses []domain.Expense
	err := q.Order("expense_date DESC").Offset(skip).Limit(limit).Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Save(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// SaveAll persists a batch in one transaction, for bulk status updates.
func (r *ExpenseRepository) SaveAll(ctx context.Context, expenses []domain.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range expenses {
			if err := tx.Save(&expenses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Expense{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Overdue lists pending expenses whose due date has passed, earliest first.
func (r *ExpenseRepository) Overdue(ctx context.Context, today time.Time) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.ExpensePending).
		Where("due_date IS NOT NULL AND due_date < ?", today).
		Order("due_date ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) dateWindow(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("expense_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("expense_date <= ?", *to)
	}
	return q
}

// TotalAmount sums expense amounts within the optional date window.
func (r *ExpenseRepository) TotalAmount(ctx context.Context, from, to *time.Time) (float64, error) {
	var total float64
	q := r.dateWindow(r.db.WithContext(ctx).Model(&domain.Expense{}), from, to)
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// TotalPaid sums amount_paid within the optional date window.
func (r *ExpenseRepository) TotalPaid(ctx context.Context, from, to *time.Time) (float64, error) {
	var total float64
	q := r.dateWindow(r.db.WithContext(ctx).Model(&domain.Expense{}), from, to)
	err := q.Select("COALESCE(SUM(amount_paid), 0)").Scan(&total).Error
	return total, err
}

// PendingDue sums the outstanding debt (amount - amount_paid) across pending
// expenses, computed from the stored columns rather than amount_due so stale
// rows cannot skew the figure.
func (r *ExpenseRepository) PendingDue(ctx context.Context, from, to *time.Time) (float64, error) {
	var total float64
	q := r.dateWindow(r.db.WithContext(ctx).Model(&domain.Expense{}), from, to).
		Where("status = ?", domain.ExpensePending)
	err := q.Select("COALESCE(SUM(amount - COALESCE(amount_paid, 0)), 0)").Scan(&total).Error
	return total, err
}

// CategoryTotal is one row of a per-category aggregate.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total_amount"`
	Count    int64   `json:"expense_count"`
}

// CategoryTotals groups amounts by category within the optional date window.
func (r *ExpenseRepository) CategoryTotals(ctx context.Context, from, to *time.Time) ([]CategoryTotal, error) {
	q := r.dateWindow(r.db.WithContext(ctx).Model(&domain.Expense{}), from, to)

	var rows []CategoryTotal
	err := q.Select("category, SUM(amount) AS total, COUNT(id) AS count").
		Group("category").
		Scan(&rows).Error
	return rows, err
}

// MonthTotal sums expense amounts falling inside one calendar month.
func (r *ExpenseRepository) MonthTotal(ctx context.Context, year int, month time.Month) (float64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Expense{}).
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
