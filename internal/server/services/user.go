// Package services contains server-side business logic. This file
// implements UserService, which handles registration, login, and profile
// lookup, and mints the session tokens returned to clients.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/auth"
	"github.com/knightride/knightride/internal/server/config"
	"github.com/knightride/knightride/internal/server/models"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/users"
)

// AuthResult bundles a freshly minted access token with the user it
// belongs to. Registration logs the user in immediately, so both Register
// and Login return one.
type AuthResult struct {
	AccessToken string
	User        *models.User
}

// UserService provides authentication-related operations:
// - Register: create users (and their empty contact sequence)
// - Login: verify credentials and mint a token
// - GetProfile: resolve a token subject back to the stored user
type UserService struct {
	repo                        users.Repository
	contactRepo                 contacts.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(repo users.Repository, contactRepo contacts.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                        repo,
		contactRepo:                 contactRepo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns an
// AuthResult. A duplicate email yields common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, email, phone, password, bikeModel string) (*AuthResult, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		BikeModel:    bikeModel,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, common.ErrInternal
	}

	if err := s.contactRepo.Init(ctx, user.Email); err != nil {
		return nil, common.ErrInternal
	}

	return s.authResult(user)
}

// Login verifies the provided password against the stored bcrypt hash and,
// on success, returns an AuthResult. Unknown emails and wrong passwords
// both yield common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}

	return s.authResult(user)
}

// GetProfile returns the user record for a token subject.
func (s *UserService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
