package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"time"

	"hoteldesk/internal/domain"
	jwtsvc "hoteldesk/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sharedSubject identifies sessions opened with the shared hotel password.
const sharedSubject = "hotel"

type Service struct {
	users  UserRepository
	tokens *jwtsvc.Service

	hotelPassword string
	sessionTTL    time.Duration
	rememberTTL   time.Duration
}

func NewService(users UserRepository, tokens *jwtsvc.Service, hotelPassword string, sessionTTL, rememberTTL time.Duration) *Service {
	return &Service{
		users:         users,
		tokens:        tokens,
		hotelPassword: hotelPassword,
		sessionTTL:    sessionTTL,
		rememberTTL:   rememberTTL,
	}
}

func (s *Service) ttl(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}
	return s.sessionTTL
}

// Login opens a session. Without an email the password is checked against
// the shared hotel password; with one it authenticates a registered account.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email != "" {
		return s.accountLogin(ctx, req)
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.hotelPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return s.issue(sharedSubject, "admin", req.Remember)
}

func (s *Service) accountLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(strconv.FormatInt(u.ID, 10), u.Email, req.Remember)
}

func (s *Service) issue(subject, username string, remember bool) (*LoginResponse, error) {
	ttl := s.ttl(remember)
	token, err := s.tokens.GenerateToken(subject, username, ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int64(ttl.Seconds()),
		Username:  username,
	}, nil
}

// Register creates a staff account in the persistent user store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}
	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Me resolves the caller's identity from the claims the middleware stored.
func (s *Service) Me(ctx context.Context, userID, username string) (*MeResponse, error) {
	if userID != sharedSubject {
		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			return nil, ErrNotFound
		}
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		username = u.Email
	}
	return &MeResponse{UserID: userID, Username: username}, nil
}
