package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrMissingFields      = fmt.Errorf("%w: required fields missing", model.ErrValidation)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email", model.ErrValidation)
	ErrInvalidAgeGroup    = fmt.Errorf("%w: invalid age group", model.ErrValidation)
	ErrPasswordTooLong    = fmt.Errorf("%w: password too long", model.ErrValidation)
)

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// SignupRequest holds the fields submitted on signup
type SignupRequest struct {
	Name             string
	Email            string
	Password         string
	AgeGroup         *int
	StylePreferences []string
}

// Service handles account creation and credential checks
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cost    int
}

// Config holds configuration for the auth service
type Config struct {
	// BcryptCost is the bcrypt work factor
	BcryptCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		BcryptCost: bcrypt.DefaultCost,
	}
}

// New creates a new AuthService
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		storage: storage,
		clock:   clock,
		cost:    cfg.BcryptCost,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account with a bcrypt-hashed password
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if !model.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if req.AgeGroup != nil && !model.ValidAgeGroup(*req.AgeGroup) {
		return nil, ErrInvalidAgeGroup
	}

	// Check if email exists
	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:             name,
		Email:            email,
		PasswordHash:     string(hash),
		AgeGroup:         req.AgeGroup,
		StylePreferences: cleanPreferences(req.StylePreferences),
		CreatedAt:        s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login checks an email and password against the stored hash
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns every registered user
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// cleanPreferences trims entries and drops blanks and duplicates, keeping order
func cleanPreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	seen := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
