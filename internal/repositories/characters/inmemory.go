package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the draft repository.
// Useful for testing and for the CLI when no Redis is configured.
type InMemoryRepository struct {
	mu           sync.RWMutex
	drafts       map[string]*Data
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		drafts:       make(map[string]*Data),
		timeProvider: systemTime{},
	}
}

// Create stores a new draft
func (r *InMemoryRepository) Create(ctx context.Context, survivor *character.Survivor) error {
	if survivor == nil {
		return dnderr.InvalidArgument("survivor cannot be nil")
	}
	if survivor.CharacterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[survivor.CharacterID]; exists {
		return dnderr.AlreadyExistsf("survivor with ID '%s' already exists", survivor.CharacterID).
			WithMeta("character_id", survivor.CharacterID)
	}

	now := r.timeProvider.Now()
	r.drafts[survivor.CharacterID] = &Data{
		ID:        survivor.CharacterID,
		OwnerID:   survivor.OwnerID,
		Survivor:  survivor.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return nil
}

// Get retrieves a draft by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Survivor, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.drafts[id]
	if !exists {
		return nil, dnderr.NotFoundf("survivor with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	survivor := data.Survivor.Clone()
	return &survivor, nil
}

// ListByOwner retrieves all drafts of an owner, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*character.Survivor, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*Data
	for _, data := range r.drafts {
		if data.OwnerID == ownerID {
			owned = append(owned, data)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	result := make([]*character.Survivor, len(owned))
	for i, data := range owned {
		survivor := data.Survivor.Clone()
		result[i] = &survivor
	}
	return result, nil
}

// Update replaces an existing draft
func (r *InMemoryRepository) Update(ctx context.Context, survivor *character.Survivor) error {
	if survivor == nil {
		return dnderr.InvalidArgument("survivor cannot be nil")
	}
	if survivor.CharacterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.drafts[survivor.CharacterID]
	if !exists {
		return dnderr.NotFoundf("survivor with ID '%s' not found", survivor.CharacterID).
			WithMeta("character_id", survivor.CharacterID)
	}

	r.drafts[survivor.CharacterID] = &Data{
		ID:        survivor.CharacterID,
		OwnerID:   survivor.OwnerID,
		Survivor:  survivor.Clone(),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.timeProvider.Now(),
	}

	return nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[id]; !exists {
		return dnderr.NotFoundf("survivor with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.drafts, id)
	return nil
}
