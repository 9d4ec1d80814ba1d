package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
	"github.com/KirkDiggler/survivor-save-builder/internal/serializer"
	"github.com/KirkDiggler/survivor-save-builder/internal/services/export"
	mockexport "github.com/KirkDiggler/survivor-save-builder/internal/services/export/mock"
)

const survivorYAML = `
first_name: Maya
last_name: Ortiz
gender: Female
philosophy1: Prudent
philosophy2: Heroic
skills:
  cardio:
    level: 6
`

func writeSurvivor(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maya.yaml")
	require.NoError(t, os.WriteFile(path, []byte(survivorYAML), 0o600))
	return path
}

func TestRun_ExportsSurvivorFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockexport.NewMockService(ctrl)
	stdout := &bytes.Buffer{}
	dir := t.TempDir()

	svc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *export.ExportInput) (*export.ExportOutput, error) {
			require.NotNil(t, input.Survivor)
			assert.Equal(t, "Maya", input.Survivor.FirstName)
			assert.Equal(t, 6, input.Survivor.Skills.Cardio.Level)
			assert.Empty(t, input.CharacterID)
			return &export.ExportOutput{
				Document: []byte("<Save />"),
				Survivor: character.Survivor{CharacterID: "abc"},
				Warnings: []serializer.Warning{{Kind: serializer.WarningUnknownCategory, Field: "inventory[0]"}},
			}, nil
		})

	r := &runner{service: svc, stdout: stdout}
	err := r.run(context.Background(), &options{SurvivorFile: writeSurvivor(t), OutputDir: dir})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "abc.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<Save />", string(data))
	assert.Contains(t, stdout.String(), "(1 warnings)")
}

func TestRun_StoredDraftToStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockexport.NewMockService(ctrl)
	stdout := &bytes.Buffer{}

	svc.EXPECT().Export(gomock.Any(), &export.ExportInput{CharacterID: "draft-1", Strict: true}).
		Return(&export.ExportOutput{Document: []byte("<Save />")}, nil)

	r := &runner{service: svc, stdout: stdout}
	err := r.run(context.Background(), &options{CharacterID: "draft-1", Strict: true, OutPath: "-"})
	require.NoError(t, err)
	assert.Equal(t, "<Save />", stdout.String())
}

func TestRun_SaveStoresDraftFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockexport.NewMockService(ctrl)
	stdout := &bytes.Buffer{}
	saved := &character.Survivor{CharacterID: "new-id", FirstName: "Maya"}

	gomock.InOrder(
		svc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *export.CreateDraftInput) (*export.CreateDraftOutput, error) {
				assert.Equal(t, "owner-1", input.OwnerID)
				return &export.CreateDraftOutput{Survivor: saved}, nil
			}),
		svc.EXPECT().Export(gomock.Any(), &export.ExportInput{Survivor: saved}).
			Return(&export.ExportOutput{Document: []byte("<Save />")}, nil),
	)

	r := &runner{service: svc, stdout: stdout}
	err := r.run(context.Background(), &options{
		SurvivorFile: writeSurvivor(t),
		OwnerID:      "owner-1",
		Save:         true,
		OutPath:      "-",
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "saved draft new-id")
}

func TestRun_ExportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockexport.NewMockService(ctrl)

	svc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, dnderr.NotFound("survivor not found"))

	r := &runner{service: svc, stdout: &bytes.Buffer{}}
	err := r.run(context.Background(), &options{CharacterID: "missing"})
	assert.True(t, dnderr.IsNotFound(err))
}

func TestRun_MissingSurvivorFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := &runner{service: mockexport.NewMockService(ctrl), stdout: &bytes.Buffer{}}

	err := r.run(context.Background(), &options{SurvivorFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.True(t, dnderr.IsNotFound(err))
}

func TestRun_MalformedSurvivorFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := &runner{service: mockexport.NewMockService(ctrl), stdout: &bytes.Buffer{}}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("first_name: [unclosed"), 0o600))

	err := r.run(context.Background(), &options{SurvivorFile: path})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRun_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockexport.NewMockService(ctrl)
	stdout := &bytes.Buffer{}

	svc.EXPECT().ListDrafts(gomock.Any(), "owner-1").Return([]*character.Survivor{
		{CharacterID: "a", FirstName: "Maya", LastName: "Ortiz"},
		{CharacterID: "b", FirstName: "Luis"},
	}, nil)

	r := &runner{service: svc, stdout: stdout}
	require.NoError(t, r.run(context.Background(), &options{List: true, OwnerID: "owner-1"}))

	assert.Contains(t, stdout.String(), "a\tMaya Ortiz\n")
	assert.Contains(t, stdout.String(), "b\tLuis\n")
}

func TestRun_ListRequiresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := &runner{service: mockexport.NewMockService(ctrl), stdout: &bytes.Buffer{}}

	err := r.run(context.Background(), &options{List: true})
	assert.True(t, dnderr.IsInvalidArgument(err))
}
