package repository

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOverlappingBooking is returned when the availability check inside the
// create transaction finds a conflicting active booking for the room.
var ErrOverlappingBooking = errors.New("room already booked for overlapping dates")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilter narrows List; zero values mean "no filter".
type BookingFilter struct {
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	GuestName     string
	RoomNumber    string
	CheckInFrom   *time.Time
	CheckInTo     *time.Time
}

// BookingListRow is a booking joined with its room number for list views.
type BookingListRow struct {
	domain.Booking
	RoomNumber string
}

// blockingStatuses are the booking states that make a room unavailable.
// Cancelled, checked-out and no-show bookings never block dates.
var blockingStatuses = []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCheckedIn}

// IsAvailable reports whether the room has no active booking overlapping the
// half-open range [checkIn, checkOut). excludeID skips one booking (used when
// re-checking a booking's own dates) and is ignored when zero.
func (r *BookingRepository) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	cnt, err := r.countOverlapping(r.db.WithContext(ctx), roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

func (r *BookingRepository) countOverlapping(tx *gorm.DB, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := tx.Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", blockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// CreateIfAvailable runs the availability check and the insert in one
// transaction so that two concurrent requests cannot both observe a free
// room and both insert. Returns ErrOverlappingBooking on conflict.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cnt, err := r.countOverlapping(tx, b.RoomID, b.CheckInDate, b.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlappingBooking
		}
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter, skip, limit int) ([]BookingListRow, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("bookings.*, rooms.room_number AS room_number").
		Joins("JOIN rooms ON rooms.id = bookings.room_id")
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("bookings.payment_status = ?", f.PaymentStatus)
	}
	if f.GuestName != "" {
		q = q.Where("bookings.guest_name LIKE ?", "%"+f.GuestName+"%")
	}
	if f.RoomNumber != "" {
		q = q.Where("rooms.room_number LIKE ?", "%"+f.RoomNumber+"%")
	}
	if f.CheckInFrom != nil {
		q = q.Where("bookings.check_in_date >= ?", *f.CheckInFrom)
	}
	if f.CheckInTo != nil {
		q = q.Where("bookings.check_in_date <= ?", *f.CheckInTo)
	}

	var rows []BookingListRow
	err := q.Order("bookings.check_in_date DESC").Offset(skip).Limit(limit).Scan(&rows).Error
	return rows, err
}

// Save persists a fully derived booking. The caller is responsible for
// having re-run the financial derivation before saving.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Delete removes a booking and its service line items in one transaction.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&domain.BookingServiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Booking{}, id).Error
	})
}

// AddService inserts the line item and saves the booking's re-derived
// financials atomically.
func (r *BookingRepository) AddService(ctx context.Context, b *domain.Booking, svc *domain.BookingServiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(svc).Error; err != nil {
			return err
		}
		return tx.Save(b).Error
	})
}

// RemoveService deletes the line item and saves the booking's re-derived
// financials atomically.
func (r *BookingRepository) RemoveService(ctx context.Context, b *domain.Booking, serviceID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND booking_id = ?", serviceID, b.ID).Delete(&domain.BookingServiceItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Save(b).Error
	})
}

func (r *BookingRepository) GetService(ctx context.Context, bookingID, serviceID int64) (*domain.BookingServiceItem, error) {
	var svc domain.BookingServiceItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND booking_id = ?", serviceID, bookingID).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingRepository) ListServices(ctx context.Context, bookingID int64) ([]domain.BookingServiceItem, error) {
	var items []domain.BookingServiceItem
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("service_date DESC").
		Find(&items).Error
	return items, err
}

// UpdateWithLock reloads the booking under a row lock, applies mutate and
// saves, all in one transaction. Used for payment collection and other
// read-modify-write mutations on a single booking.
func (r *BookingRepository) UpdateWithLock(ctx context.Context, id int64, mutate func(b *domain.Booking) error) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, id).Error; err != nil {
			return err
		}
		if err := mutate(&b); err != nil {
			return err
		}
		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		out = &b
		return nil
	})
	return out, err
}

// PendingCheckIns lists confirmed bookings whose check-in date is on or
// before the given date, earliest first, with room numbers.
func (r *BookingRepository) PendingCheckIns(ctx context.Context, onOrBefore time.Time) ([]BookingListRow, error) {
	var rows []BookingListRow
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("bookings.*, rooms.room_number AS room_number").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.check_in_date <= ? AND bookings.status = ?", onOrBefore, domain.BookingConfirmed).
		Order("bookings.check_in_date ASC").
		Scan(&rows).Error
	return rows, err
}

// CheckedInGuests lists all currently checked-in bookings sorted by
// check-out date.
func (r *BookingRepository) CheckedInGuests(ctx context.Context) ([]BookingListRow, error) {
	var rows []BookingListRow
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("bookings.*, rooms.room_number AS room_number").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.status = ?", domain.BookingCheckedIn).
		Order("bookings.check_out_date ASC").
		Scan(&rows).Error
	return rows, err
}

// ListOverlappingRange returns the revenue-bearing bookings (confirmed,
// checked-in, checked-out) whose stay intersects [from, to].
func (r *BookingRepository) ListOverlappingRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status IN ?", []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCheckedIn, domain.BookingCheckedOut}).
		Where("check_in_date <= ? AND check_out_date > ?", to, from).
		Find(&bookings).Error
	return bookings, err
}
