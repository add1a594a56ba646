package repository

import (
	"context"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// GuestFilter narrows List; zero values mean "no filter".
type GuestFilter struct {
	FullName    string
	Phone       string
	Email       string
	City        string
	MinBookings *int
	MinSpent    *float64
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepository) GetByPhone(ctx context.Context, phone string) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ExistsByPhone reports whether another guest already uses the phone number.
// excludeID is ignored when zero.
func (r *GuestRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Guest{}).Where("phone = ?", phone)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *GuestRepository) List(ctx context.Context, f GuestFilter, skip, limit int) ([]domain.Guest, error) {
	q := r.db.WithContext(ctx).Model(&domain.Guest{})
	if f.FullName != "" {
		q = q.Where("full_name LIKE ?", "%"+f.FullName+"%")
	}
	if f.Phone != "" {
		q = q.Where("phone LIKE ?", "%"+f.Phone+"%")
	}
	if f.Email != "" {
		q = q.Where("email LIKE ?", "%"+f.Email+"%")
	}
	if f.City != "" {
		q = q.Where("city LIKE ?", "%"+f.City+"%")
	}
	if f.MinBookings != nil {
		q = q.Where("total_bookings >= ?", *f.MinBookings)
	}
	if f.MinSpent != nil {
		q = q.Where("total_spent >= ?", *f.MinSpent)
	}

	var guests []domain.Guest
	err := q.Order("full_name").Offset(skip).Limit(limit).Find(&guests).Error
	return guests, err
}

// Search matches the term against name, phone and email.
func (r *GuestRepository) Search(ctx context.Context, term string, limit int) ([]domain.Guest, error) {
	like := "%" + term + "%"
	var guests []domain.Guest
	err := r.db.WithContext(ctx).
		Where("full_name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like).
		Limit(limit).
		Find(&guests).Error
	return guests, err
}

// Stays lists the bookings recorded under the guest's phone number, most
// recent stay first. Bookings carry the guest's phone rather than a foreign
// key, so history survives guest-profile edits other than the phone itself.
func (r *GuestRepository) Stays(ctx context.Context, phone string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("guest_phone = ?", phone).
		Order("check_in_date DESC").
		Find(&bookings).Error
	return bookings, err
}

// Top ranks guests by lifetime spend or stay count.
func (r *GuestRepository) Top(ctx context.Context, bySpent bool, limit int) ([]domain.Guest, error) {
	order := "total_bookings DESC, total_spent DESC"
	if bySpent {
		order = "total_spent DESC, total_bookings DESC"
	}
	var guests []domain.Guest
	err := r.db.WithContext(ctx).Order(order).Limit(limit).Find(&guests).Error
	return guests, err
}

func (r *GuestRepository) Save(ctx context.Context, g *domain.Guest) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Guest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
