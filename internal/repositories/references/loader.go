// Package references loads the display name to identifier tables the
// serializer resolves selections against.
package references

//go:generate mockgen -destination=mock/mock.go -package=mockreferences -source=loader.go

import (
	"context"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
)

// Loader produces a fully loaded catalog. Callers must wait for Load to
// return before serializing; a partially loaded catalog is never returned.
type Loader interface {
	Load(ctx context.Context) (*reference.Catalog, error)
}
