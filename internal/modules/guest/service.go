package guest

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	guests GuestRepository

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewService(guests GuestRepository) *Service {
	return &Service{guests: guests, now: time.Now}
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Create(ctx context.Context, req CreateGuestRequest) (*domain.Guest, error) {
	exists, err := s.guests.ExistsByPhone(ctx, req.Phone, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	g := &domain.Guest{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		IDProofType:   req.IDProofType,
		IDProofNumber: req.IDProofNumber,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Pincode:       req.Pincode,
		Preferences:   req.Preferences,
		SpecialNotes:  req.SpecialNotes,
	}
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return g, nil
}

func (s *Service) GetByPhone(ctx context.Context, phone string) (*domain.Guest, error) {
	if phone == "" {
		return nil, ErrValidation
	}
	g, err := s.guests.GetByPhone(ctx, phone)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return g, nil
}

func (s *Service) List(ctx context.Context, q ListGuestsQuery) ([]domain.Guest, error) {
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	return s.guests.List(ctx, repository.GuestFilter{
		FullName:    q.FullName,
		Phone:       q.Phone,
		Email:       q.Email,
		City:        q.City,
		MinBookings: q.MinBookings,
		MinSpent:    q.MinSpent,
	}, q.Skip, limit)
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Guest, error) {
	if term == "" {
		return nil, ErrValidation
	}
	return s.guests.Search(ctx, term, 20)
}

// Stays returns the guest's booking history, most recent stay first.
// Bookings are matched by phone number.
func (s *Service) Stays(ctx context.Context, id int64) ([]domain.Booking, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return s.guests.Stays(ctx, g.Phone)
}

// Top ranks guests by lifetime spend ("spent", the default) or by stay
// count ("bookings").
func (s *Service) Top(ctx context.Context, by string, limit int) ([]domain.Guest, error) {
	bySpent := false
	switch by {
	case "", "spent":
		bySpent = true
	case "bookings":
	default:
		return nil, ErrValidation
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.guests.Top(ctx, bySpent, limit)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateGuestRequest) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.Phone != nil && *req.Phone != g.Phone {
		if *req.Phone == "" {
			return nil, ErrValidation
		}
		taken, err := s.guests.ExistsByPhone(ctx, *req.Phone, g.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		g.Phone = *req.Phone
	}
	if req.FullName != nil {
		g.FullName = *req.FullName
	}
	if req.Email != nil {
		g.Email = *req.Email
	}
	if req.IDProofType != nil {
		g.IDProofType = *req.IDProofType
	}
	if req.IDProofNumber != nil {
		g.IDProofNumber = *req.IDProofNumber
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.City != nil {
		g.City = *req.City
	}
	if req.State != nil {
		g.State = *req.State
	}
	if req.Country != nil {
		g.Country = *req.Country
	}
	if req.Pincode != nil {
		g.Pincode = *req.Pincode
	}
	if req.Preferences != nil {
		g.Preferences = *req.Preferences
	}
	if req.SpecialNotes != nil {
		g.SpecialNotes = *req.SpecialNotes
	}

	if err := s.guests.Save(ctx, g); err != nil {
		return nil, mapRepoErr(err)
	}
	return g, nil
}

// RecordStay rolls a completed stay into the guest's lifetime stats:
// bookings count, amount spent and the first/last visit markers.
func (s *Service) RecordStay(ctx context.Context, id int64, req RecordStayRequest) (*domain.Guest, error) {
	if req.AmountSpent < 0 {
		return nil, ErrValidation
	}
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	visit := s.now()
	if req.VisitDate != "" {
		t, err := time.Parse(dateLayout, req.VisitDate)
		if err != nil {
			return nil, ErrValidation
		}
		visit = t
	}

	g.TotalBookings++
	g.TotalSpent += req.AmountSpent
	if g.FirstVisit == nil || visit.Before(*g.FirstVisit) {
		g.FirstVisit = &visit
	}
	if g.LastVisit == nil || visit.After(*g.LastVisit) {
		g.LastVisit = &visit
	}

	if err := s.guests.Save(ctx, g); err != nil {
		return nil, mapRepoErr(err)
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapRepoErr(s.guests.Delete(ctx, id))
}
