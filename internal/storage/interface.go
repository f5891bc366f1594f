package storage

import (
	"context"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// Storage defines the interface for user persistence.
// Users are created once and never updated or deleted.
type Storage interface {
	// CreateUser stores a new user and assigns its ID.
	// Returns model.ErrEmailTaken if the email is already registered.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ListUsers returns all users ordered by ID
	ListUsers(ctx context.Context) ([]*model.User, error)
}
