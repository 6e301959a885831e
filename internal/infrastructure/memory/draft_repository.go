package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
)

// DraftRepository keeps in-progress drafts keyed by id.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*entity.Draft
}

// NewDraftRepository creates an empty draft repository.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[uuid.UUID]*entity.Draft)}
}

var _ repository.DraftRepository = (*DraftRepository)(nil)

func (r *DraftRepository) Create(ctx context.Context, draft *entity.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts[draft.ID] = draft.Clone()
	return nil
}

func (r *DraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[id]
	if !ok {
		return nil, nil
	}
	return draft.Clone(), nil
}

func (r *DraftRepository) Save(ctx context.Context, draft *entity.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts[draft.ID] = draft.Clone()
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, id)
	return nil
}
