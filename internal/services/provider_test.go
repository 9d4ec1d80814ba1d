package services_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/survivor-save-builder/internal/services"
	exportService "github.com/KirkDiggler/survivor-save-builder/internal/services/export"
	"github.com/KirkDiggler/survivor-save-builder/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DefaultsToInMemoryRepository(t *testing.T) {
	provider := services.NewProvider(nil)
	require.NotNil(t, provider.ExportService)

	ctx := context.Background()
	created, err := provider.ExportService.CreateDraft(ctx, &exportService.CreateDraftInput{
		OwnerID:  "owner-1",
		Survivor: testutils.CreateTestSurvivor("draft-1", "", "Maya"),
	})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", created.Survivor.OwnerID)

	out, err := provider.ExportService.Export(ctx, &exportService.ExportInput{CharacterID: "draft-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Document)
	assert.Equal(t, "Maya", out.Survivor.FirstName)
}
