package services

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/characters"
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/references"
	"github.com/KirkDiggler/survivor-save-builder/internal/serializer"
	exportService "github.com/KirkDiggler/survivor-save-builder/internal/services/export"
	"github.com/KirkDiggler/survivor-save-builder/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ExportService exportService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	ReferenceLoader     references.Loader
	Serializer          *serializer.Serializer
	UUIDGenerator       uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	return &Provider{
		ExportService: exportService.NewService(&exportService.ServiceConfig{
			Repository:      charRepo,
			ReferenceLoader: cfg.ReferenceLoader,
			Serializer:      cfg.Serializer,
			UUIDGenerator:   cfg.UUIDGenerator,
		}),
	}
}
