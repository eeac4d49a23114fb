package service

import (
	"context"
	"errors"
	"log"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
	"github.com/Antonybyrt/ready-to-fly/pkg/hash"
	"github.com/Antonybyrt/ready-to-fly/pkg/token"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"pw" validate:"required"`
}

type LoginResponse struct {
	SessionToken string `json:"sessionToken"`
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Login verifies the credentials and mints a new session. Every failure path
// collapses into ErrInvalidCredentials so the response cannot reveal whether
// the email exists, the password was wrong, or the store misbehaved; the real
// cause is only logged. A successful call writes exactly one session row and
// leaves the user's other sessions untouched.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[AUTH] user lookup failed: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	if !hash.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := token.Generate()
	if err != nil {
		log.Printf("[AUTH] token generation failed: %v", err)
		return nil, ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:  sessionToken,
		UserID: user.ID,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Printf("[AUTH] session create failed: %v", err)
		return nil, ErrInvalidCredentials
	}

	return &LoginResponse{SessionToken: sessionToken}, nil
}

// CurrentUser returns the account behind an already-resolved session
// identity.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("[AUTH] current user lookup failed: %v", err)
		return nil, err
	}
	return user, nil
}
