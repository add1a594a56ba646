package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilter narrows List; zero values mean "no filter".
type RoomFilter struct {
	Status   domain.RoomStatus
	RoomType domain.RoomType
	Floor    *int
	MinPrice *float64
	MaxPrice *float64
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Room{}).Where("room_number = ?", number).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter, skip, limit int) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.Floor != nil {
		q = q.Where("floor_number = ?", *f.Floor)
	}
	if f.MinPrice != nil {
		q = q.Where("base_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("base_price <= ?", *f.MaxPrice)
	}

	var rooms []domain.Room
	err := q.Order("room_number").Offset(skip).Limit(limit).Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasBookings reports whether any booking references the room. Referenced
// rooms are deactivated instead of deleted.
func (r *RoomRepository) HasBookings(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("room_id = ?", roomID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AvailableBetween lists the active rooms with no blocking booking
// overlapping the half-open range [checkIn, checkOut).
func (r *RoomRepository) AvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	blocked := r.db.Model(&domain.Booking{}).
		Select("room_id").
		Where("status IN ?", blockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.RoomActive).
		Where("id NOT IN (?)", blocked).
		Order("room_number").
		Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Summary(ctx context.Context) (*domain.RoomSummary, error) {
	s := &domain.RoomSummary{RoomTypes: map[string]int64{}}

	if err := r.db.WithContext(ctx).Model(&domain.Room{}).Count(&s.TotalRooms).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		status domain.RoomStatus
		dst    *int64
	}{
		{domain.RoomActive, &s.ActiveRooms},
		{domain.RoomInactive, &s.InactiveRooms},
		{domain.RoomUnderMaintenance, &s.UnderMaintenance},
	}
	for _, c := range counts {
		tx := r.db.WithContext(ctx).Model(&domain.Room{}).Where("status = ?", c.status).Count(c.dst)
		if tx.Error != nil {
			return nil, tx.Error
		}
	}

	var rows []struct {
		RoomType string
		Cnt      int64
	}
	tx := r.db.WithContext(ctx).Model(&domain.Room{}).
		Select("room_type, COUNT(id) AS cnt").
		Group("room_type").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, row := range rows {
		s.RoomTypes[row.RoomType] = row.Cnt
	}
	return s, nil
}
