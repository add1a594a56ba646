package room

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil && args.Error(0) == nil {
		room.ID = 7
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, f repository.RoomFilter, skip, limit int) ([]domain.Room, error) {
	args := m.Called(ctx, f, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRoomRepository) HasBookings(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) AvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Summary(ctx context.Context) (*domain.RoomSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomSummary), args.Error(1)
}

func TestCreateRoom(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("ExistsByNumber", mock.Anything, "204").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	room, err := svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "204",
		RoomType:   string(domain.RoomDeluxe),
		BedConfig:  string(domain.BedKing),
		Floor:      2,
		BasePrice:  2500,
		HasAC:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomActive, room.Status)
	assert.Equal(t, 2, room.MaxOccupancy) // default
	assert.Equal(t, int64(7), room.ID)
}

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("ExistsByNumber", mock.Anything, "204").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "204",
		RoomType:   string(domain.RoomDouble),
		BasePrice:  1500,
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateRoom_Validation(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "204", RoomType: "Penthouse", BasePrice: 1500,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "204", RoomType: string(domain.RoomDouble), BasePrice: 0,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Custom room type must name itself.
	_, err = svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "204", RoomType: string(domain.RoomCustom), BasePrice: 1500,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRoom_Patch(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	existing := &domain.Room{
		ID: 7, RoomNumber: "204", RoomType: domain.RoomDouble,
		BasePrice: 1500, MaxOccupancy: 2, Status: domain.RoomActive,
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("HasBookings", mock.Anything, int64(7)).Return(false, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	price := 1800.0
	ac := true
	room, err := svc.Update(context.Background(), 7, UpdateRoomRequest{
		BasePrice: &price,
		HasAC:     &ac,
	})

	require.NoError(t, err)
	assert.Equal(t, 1800.0, room.BasePrice)
	assert.True(t, room.HasAC)
	assert.Equal(t, domain.RoomDouble, room.RoomType) // untouched
}

func TestUpdateRoom_StructureFrozenWhenReferenced(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	existing := &domain.Room{ID: 7, RoomNumber: "204", RoomType: domain.RoomDouble, Status: domain.RoomActive}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("HasBookings", mock.Anything, int64(7)).Return(true, nil)

	price := 1800.0
	_, err := svc.Update(context.Background(), 7, UpdateRoomRequest{BasePrice: &price})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateRoom_StatusAndNotesStayEditable(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	existing := &domain.Room{ID: 7, RoomNumber: "204", RoomType: domain.RoomDouble, Status: domain.RoomActive}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	status := string(domain.RoomUnderMaintenance)
	notes := "AC unit replaced"
	room, err := svc.Update(context.Background(), 7, UpdateRoomRequest{Status: &status, Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomUnderMaintenance, room.Status)
	assert.Equal(t, "AC unit replaced", room.Notes)
	repo.AssertNotCalled(t, "HasBookings", mock.Anything, int64(7))
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), 7, "Closed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteRoom_WithBookings_Deactivates(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)
	repo.On("HasBookings", mock.Anything, int64(7)).Return(true, nil)
	repo.On("UpdateStatus", mock.Anything, int64(7), domain.RoomInactive).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7))
	repo.AssertNotCalled(t, "Delete", mock.Anything, int64(7))
}

func TestDeleteRoom_Unreferenced(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7}, nil)
	repo.On("HasBookings", mock.Anything, int64(7)).Return(false, nil)
	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7))
}

func TestAvailableForDates(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan13 := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	free := []domain.Room{{ID: 1, RoomNumber: "101"}, {ID: 4, RoomNumber: "202"}}
	repo.On("AvailableBetween", mock.Anything, jan10, jan13).Return(free, nil)

	rooms, err := svc.AvailableForDates(context.Background(), "2025-01-10", "2025-01-13")

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}

func TestAvailableForDates_Validation(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	_, err := svc.AvailableForDates(context.Background(), "not-a-date", "2025-01-13")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AvailableForDates(context.Background(), "2025-01-13", "2025-01-13")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetRoom_NotFound(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
