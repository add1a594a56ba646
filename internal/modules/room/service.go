package room

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

var validRoomTypes = map[domain.RoomType]bool{
	domain.RoomSingle:     true,
	domain.RoomDouble:     true,
	domain.RoomDeluxe:     true,
	domain.RoomSuite:      true,
	domain.RoomFamilyRoom: true,
	domain.RoomCustom:     true,
}

var validBedConfigs = map[domain.BedConfig]bool{
	domain.BedSingle: true,
	domain.BedDouble: true,
	domain.BedTwin:   true,
	domain.BedKing:   true,
}

var validRoomStatuses = map[domain.RoomStatus]bool{
	domain.RoomActive:           true,
	domain.RoomUnderMaintenance: true,
	domain.RoomInactive:         true,
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	rt := domain.RoomType(req.RoomType)
	if !validRoomTypes[rt] {
		return nil, ErrValidation
	}
	if rt == domain.RoomCustom && req.CustomRoomType == "" {
		return nil, ErrValidation
	}
	if req.BedConfig != "" && !validBedConfigs[domain.BedConfig(req.BedConfig)] {
		return nil, ErrValidation
	}
	if req.BasePrice <= 0 {
		return nil, ErrValidation
	}
	occupancy := req.MaxOccupancy
	if occupancy == 0 {
		occupancy = 2
	}
	if occupancy < 1 {
		return nil, ErrValidation
	}

	exists, err := s.rooms.ExistsByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	room := &domain.Room{
		RoomNumber:      req.RoomNumber,
		RoomType:        rt,
		BedConfig:       domain.BedConfig(req.BedConfig),
		Floor:           req.Floor,
		BasePrice:       req.BasePrice,
		MaxOccupancy:    occupancy,
		Status:          domain.RoomActive,
		HasAC:           req.HasAC,
		HasTV:           req.HasTV,
		HasWifi:         req.HasWifi,
		HasBalcony:      req.HasBalcony,
		HasRefrigerator: req.HasRefrigerator,
		HasMiniBar:      req.HasMiniBar,
		HasSafe:         req.HasSafe,
		HasBathtub:      req.HasBathtub,
		Notes:           req.Notes,
		CustomRoomType:  req.CustomRoomType,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) List(ctx context.Context, q ListRoomsQuery) ([]domain.Room, error) {
	if q.Status != "" && !validRoomStatuses[domain.RoomStatus(q.Status)] {
		return nil, ErrValidation
	}
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	return s.rooms.List(ctx, repository.RoomFilter{
		Status:   domain.RoomStatus(q.Status),
		RoomType: domain.RoomType(q.RoomType),
		Floor:    q.Floor,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}, q.Skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	// Once a booking references the room, its physical attributes are frozen
	// so historical bookings keep describing the room they were sold against.
	// Status and notes stay editable.
	if req.touchesStructure() {
		referenced, err := s.rooms.HasBookings(ctx, id)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, ErrInvalidState
		}
	}

	if req.RoomType != nil {
		rt := domain.RoomType(*req.RoomType)
		if !validRoomTypes[rt] {
			return nil, ErrValidation
		}
		room.RoomType = rt
	}
	if req.CustomRoomType != nil {
		room.CustomRoomType = *req.CustomRoomType
	}
	if room.RoomType == domain.RoomCustom && room.CustomRoomType == "" {
		return nil, ErrValidation
	}
	if req.BedConfig != nil {
		bc := domain.BedConfig(*req.BedConfig)
		if *req.BedConfig != "" && !validBedConfigs[bc] {
			return nil, ErrValidation
		}
		room.BedConfig = bc
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, ErrValidation
		}
		room.BasePrice = *req.BasePrice
	}
	if req.MaxOccupancy != nil {
		if *req.MaxOccupancy < 1 {
			return nil, ErrValidation
		}
		room.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Status != nil {
		st := domain.RoomStatus(*req.Status)
		if !validRoomStatuses[st] {
			return nil, ErrValidation
		}
		room.Status = st
	}
	if req.HasAC != nil {
		room.HasAC = *req.HasAC
	}
	if req.HasTV != nil {
		room.HasTV = *req.HasTV
	}
	if req.HasWifi != nil {
		room.HasWifi = *req.HasWifi
	}
	if req.HasBalcony != nil {
		room.HasBalcony = *req.HasBalcony
	}
	if req.HasRefrigerator != nil {
		room.HasRefrigerator = *req.HasRefrigerator
	}
	if req.HasMiniBar != nil {
		room.HasMiniBar = *req.HasMiniBar
	}
	if req.HasSafe != nil {
		room.HasSafe = *req.HasSafe
	}
	if req.HasBathtub != nil {
		room.HasBathtub = *req.HasBathtub
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Room, error) {
	st := domain.RoomStatus(status)
	if !validRoomStatuses[st] {
		return nil, ErrValidation
	}
	if err := s.rooms.UpdateStatus(ctx, id, st); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.Get(ctx, id)
}

// Delete retires a room. A room with booking history is never physically
// removed; it is deactivated so old bookings keep a valid reference.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	referenced, err := s.rooms.HasBookings(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return mapRepoErr(s.rooms.UpdateStatus(ctx, id, domain.RoomInactive))
	}
	return mapRepoErr(s.rooms.Delete(ctx, id))
}

// AvailableForDates lists the active rooms free over the half-open range
// [checkIn, checkOut).
func (s *Service) AvailableForDates(ctx context.Context, checkInStr, checkOutStr string) ([]domain.Room, error) {
	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	return s.rooms.AvailableBetween(ctx, checkIn, checkOut)
}

func (s *Service) Summary(ctx context.Context) (*domain.RoomSummary, error) {
	return s.rooms.Summary(ctx)
}
