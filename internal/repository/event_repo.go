package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilter narrows List; zero values mean "no filter". Search matches
// booking name or contact name.
type EventFilter struct {
	Search   string
	Status   domain.EventStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// Create inserts the event with any inline services in one transaction.
func (r *EventRepository) Create(ctx context.Context, ev *domain.EventBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ev).Error
	})
}

// GetByID loads the full aggregate: services with their vendor payments,
// plus customer payments. Every financial read goes through this so the
// derivation always sees the live children.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.EventBooking, error) {
	var ev domain.EventBooking
	err := r.db.WithContext(ctx).
		Preload("Services.VendorPayments").
		Preload("CustomerPayments").
		First(&ev, id).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// GetBare loads the event row without children, for status checks.
func (r *EventRepository) GetBare(ctx context.Context, id int64) (*domain.EventBooking, error) {
	var ev domain.EventBooking
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) applyFilter(q *gorm.DB, f EventFilter) *gorm.DB {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("booking_name LIKE ? OR contact_name LIKE ?", like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("booking_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("booking_date <= ?", *f.DateTo)
	}
	return q
}

func (r *EventRepository) List(ctx context.Context, f EventFilter, skip, limit int) ([]domain.EventBooking, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&domain.EventBooking{}), f).
		Preload("Services.VendorPayments").
		Preload("CustomerPayments").
		Order("booking_date DESC").
		Offset(skip).Limit(limit)

	var events []domain.EventBooking
	err := q.Find(&events).Error
	return events, err
}

// ListAll returns every matching event with children, unpaginated, for
// summary reports.
func (r *EventRepository) ListAll(ctx context.Context, f EventFilter) ([]domain.EventBooking, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&domain.EventBooking{}), f).
		Preload("Services.VendorPayments").
		Preload("CustomerPayments")

	var events []domain.EventBooking
	err := q.Find(&events).Error
	return events, err
}

// Save persists the event's own columns only, not the child collections.
func (r *EventRepository) Save(ctx context.Context, ev *domain.EventBooking) error {
	return r.db.WithContext(ctx).Omit("Services", "CustomerPayments").Save(ev).Error
}

// Delete removes the event and everything it owns: vendor payments under its
// services, the services, and the customer payments, in one transaction.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_service_id IN (?)",
			tx.Model(&domain.EventService{}).Select("id").Where("event_booking_id = ?", id),
		).Delete(&domain.EventVendorPayment{}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("event_booking_id = ?", id).Delete(&domain.EventService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_booking_id = ?", id).Delete(&domain.EventCustomerPayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.EventBooking{}, id).Error
	})
}

func (r *EventRepository) AddService(ctx context.Context, svc *domain.EventService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

// GetService loads a service with its vendor payments, scoped to the event.
func (r *EventRepository) GetService(ctx context.Context, eventID, serviceID int64) (*domain.EventService, error) {
	var svc domain.EventService
	err := r.db.WithContext(ctx).
		Preload("VendorPayments").
		Where("id = ? AND event_booking_id = ?", serviceID, eventID).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *EventRepository) SaveService(ctx context.Context, svc *domain.EventService) error {
	return r.db.WithContext(ctx).Omit("VendorPayments").Save(svc).Error
}

// DeleteService removes the service and its vendor payments atomically.
func (r *EventRepository) DeleteService(ctx context.Context, eventID, serviceID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var svc domain.EventService
		if err := tx.Where("id = ? AND event_booking_id = ?", serviceID, eventID).First(&svc).Error; err != nil {
			return err
		}
		if err := tx.Where("event_service_id = ?", serviceID).Delete(&domain.EventVendorPayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.EventService{}, serviceID).Error
	})
}

func (r *EventRepository) AddCustomerPayment(ctx context.Context, p *domain.EventCustomerPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *EventRepository) DeleteCustomerPayment(ctx context.Context, eventID, paymentID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND event_booking_id = ?", paymentID, eventID).
		Delete(&domain.EventCustomerPayment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) AddVendorPayment(ctx context.Context, p *domain.EventVendorPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// DeleteVendorPayment verifies the payment belongs to the given service and
// event before removing it.
func (r *EventRepository) DeleteVendorPayment(ctx context.Context, eventID, serviceID, paymentID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND event_service_id = ?", paymentID, serviceID).
		Where("event_service_id IN (?)",
			r.db.Model(&domain.EventService{}).Select("id").Where("event_booking_id = ?", eventID),
		).
		Delete(&domain.EventVendorPayment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts events per status within the optional date window,
// including cancelled ones.
func (r *EventRepository) CountByStatus(ctx context.Context, dateFrom, dateTo *time.Time) (map[domain.EventStatus]int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.EventBooking{})
	if dateFrom != nil {
		q = q.Where("booking_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		q = q.Where("booking_date <= ?", *dateTo)
	}

	var rows []struct {
		Status string
		Cnt    int64
	}
	if err := q.Select("status, COUNT(id) AS cnt").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[domain.EventStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.EventStatus(row.Status)] = row.Cnt
	}
	return out, nil
}
