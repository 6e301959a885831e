package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// DraftRepository holds in-progress invoice drafts. Each draft is owned
// by a single form instance; drafts are never shared between editors.
type DraftRepository interface {
	Create(ctx context.Context, draft *entity.Draft) error
	// GetByID returns a copy of the draft, or nil if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Draft, error)
	// Save replaces the stored draft with the given state.
	Save(ctx context.Context, draft *entity.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}
