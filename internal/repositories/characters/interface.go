package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
)

// Repository persists survivor drafts between form edits and exports
type Repository interface {
	// Create stores a new draft. CharacterID must be set.
	Create(ctx context.Context, survivor *character.Survivor) error

	// Get retrieves a draft by character ID
	Get(ctx context.Context, id string) (*character.Survivor, error)

	// ListByOwner retrieves every draft belonging to ownerID
	ListByOwner(ctx context.Context, ownerID string) ([]*character.Survivor, error)

	// Update replaces an existing draft
	Update(ctx context.Context, survivor *character.Survivor) error

	// Delete removes a draft
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps for draft records
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }
