package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// UserRepository defines account storage for the dashboard's auth and
// profile screens.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
