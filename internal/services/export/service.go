// Package export turns survivor drafts into save documents
package export

//go:generate mockgen -destination=mock/mock_service.go -package=mockexport -source=service.go Service

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/characters"
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/references"
	"github.com/KirkDiggler/survivor-save-builder/internal/serializer"
	"github.com/KirkDiggler/survivor-save-builder/internal/uuid"
)

// Repository is an alias for the draft repository interface
type Repository = characters.Repository

// Service defines the export service interface
type Service interface {
	// Export renders a stored draft or a given snapshot as a save document
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// CreateDraft stores a new survivor draft, assigning a character ID
	// when the survivor has none
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)

	// UpdateDraft replaces a stored draft
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) error

	// ListDrafts returns the drafts of an owner
	ListDrafts(ctx context.Context, ownerID string) ([]*character.Survivor, error)
}

// ExportInput selects what to export. Exactly one of CharacterID and
// Survivor must be set.
type ExportInput struct {
	CharacterID string
	Survivor    *character.Survivor

	// Strict runs Survivor.Validate before serializing and fails on any
	// semantic problem instead of exporting with defaults
	Strict bool
}

// ExportOutput contains the rendered document and what had to be patched
type ExportOutput struct {
	Document []byte
	Survivor character.Survivor
	Warnings []serializer.Warning
	Defaults []character.AppliedDefault
}

type CreateDraftInput struct {
	OwnerID  string
	Survivor *character.Survivor
}

type CreateDraftOutput struct {
	Survivor *character.Survivor
}

type UpdateDraftInput struct {
	Survivor *character.Survivor
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository      Repository             // Required
	ReferenceLoader references.Loader      // Optional, exports resolve nothing without it
	Serializer      *serializer.Serializer // Optional, defaults to serializer.New(nil)
	UUIDGenerator   uuid.Generator         // Optional
}

type service struct {
	repository    Repository
	loader        references.Loader
	serializer    *serializer.Serializer
	uuidGenerator uuid.Generator

	mu      sync.Mutex
	catalog *reference.Catalog
}

// NewService creates a new export service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		loader:        cfg.ReferenceLoader,
		serializer:    cfg.Serializer,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.serializer == nil {
		svc.serializer = serializer.New(nil)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Export implements Service
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, dnderr.Wrap(err, "invalid export input").
			WithMeta("operation", "Export")
	}

	snapshot := input.Survivor
	if input.CharacterID != "" {
		stored, err := s.repository.Get(ctx, input.CharacterID)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to load survivor %s", input.CharacterID).
				WithMeta("operation", "Export")
		}
		snapshot = stored
	}

	if input.Strict {
		if err := snapshot.Validate(); err != nil {
			return nil, dnderr.Wrap(err, "survivor failed validation").
				WithMeta("operation", "Export")
		}
	}

	store, warning := s.referenceStore(ctx)
	result := s.serializer.Serialize(*snapshot, store)

	warnings := result.Warnings
	if warning != nil {
		warnings = append([]serializer.Warning{*warning}, warnings...)
	}

	return &ExportOutput{
		Document: result.Document,
		Survivor: result.Survivor,
		Warnings: warnings,
		Defaults: result.Defaults,
	}, nil
}

// referenceStore returns the cached catalog, loading it on first use. A
// failed load is not cached; the export proceeds against an empty store.
func (s *service) referenceStore(ctx context.Context) (reference.Store, *serializer.Warning) {
	if s.loader == nil {
		return reference.Empty, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	catalog, err := s.loader.Load(ctx)
	if err != nil {
		log.Printf("Failed to load reference data, exporting without it: %v", err)
		return reference.Empty, &serializer.Warning{
			Kind:    serializer.WarningReferenceUnavailable,
			Field:   "reference",
			Message: err.Error(),
		}
	}

	s.catalog = catalog
	return catalog, nil
}

// CreateDraft implements Service
func (s *service) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil || input.Survivor == nil {
		return nil, dnderr.InvalidArgument("survivor is required").
			WithMeta("operation", "CreateDraft")
	}

	draft := input.Survivor.Clone()
	if draft.CharacterID == "" {
		draft.CharacterID = s.uuidGenerator.New()
	}
	if input.OwnerID != "" {
		draft.OwnerID = input.OwnerID
	}

	if err := s.repository.Create(ctx, &draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to create draft").
			WithMeta("operation", "CreateDraft").
			WithMeta("character_id", draft.CharacterID)
	}

	log.Printf("Created survivor draft %s for owner %q", draft.CharacterID, draft.OwnerID)
	return &CreateDraftOutput{Survivor: &draft}, nil
}

// UpdateDraft implements Service
func (s *service) UpdateDraft(ctx context.Context, input *UpdateDraftInput) error {
	if input == nil || input.Survivor == nil {
		return dnderr.InvalidArgument("survivor is required").
			WithMeta("operation", "UpdateDraft")
	}
	if input.Survivor.CharacterID == "" {
		return dnderr.InvalidArgument("character ID is required").
			WithMeta("operation", "UpdateDraft")
	}

	if err := s.repository.Update(ctx, input.Survivor); err != nil {
		return dnderr.Wrap(err, "failed to update draft").
			WithMeta("operation", "UpdateDraft").
			WithMeta("character_id", input.Survivor.CharacterID)
	}
	return nil
}

// ListDrafts implements Service
func (s *service) ListDrafts(ctx context.Context, ownerID string) ([]*character.Survivor, error) {
	drafts, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list drafts").
			WithMeta("operation", "ListDrafts")
	}
	return drafts, nil
}
