// Package uuid wraps google/uuid behind an interface so draft IDs can be mocked
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/KirkDiggler/survivor-save-builder/internal/uuid Generator

import (
	"github.com/google/uuid"
)

// Generator hands out new character GUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// survivorNamespace scopes name-based GUIDs so they never collide with other
// SHA1 UUIDs derived from the same text
var survivorNamespace = uuid.MustParse("7c1b6f0e-3a55-4d8e-9b52-52c3f6a7d0e1")

// FromName returns a stable GUID for name. Same input, same GUID.
func FromName(name string) string {
	return uuid.NewSHA1(survivorNamespace, []byte(name)).String()
}
