package placement

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/errors"
)

type storedPlacement struct {
	placement *apparel.Placement
	updatedAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]storedPlacement
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]storedPlacement),
	}
}

// Get retrieves a copy of the stored placement
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.store[input.CharacterID]
	if !exists {
		return nil, errors.NotFoundf("placement for character %s not found", input.CharacterID)
	}

	return &GetOutput{
		CharacterID: input.CharacterID,
		Placement:   stored.placement.Clone(),
		UpdatedAt:   stored.updatedAt,
	}, nil
}

// Update stores a copy of the placement, replacing whatever was there
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Placement == nil {
		return nil, errors.InvalidArgument("placement cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.CharacterID] = storedPlacement{
		placement: input.Placement.Clone(),
		updatedAt: input.UpdatedAt,
	}

	return &UpdateOutput{
		CharacterID: input.CharacterID,
		Placement:   input.Placement.Clone(),
		UpdatedAt:   input.UpdatedAt,
	}, nil
}

// Delete removes a stored placement
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.CharacterID]; !exists {
		return nil, errors.NotFoundf("placement for character %s not found", input.CharacterID)
	}

	delete(r.store, input.CharacterID)
	return &DeleteOutput{}, nil
}
