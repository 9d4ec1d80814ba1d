package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
	"github.com/KirkDiggler/survivor-save-builder/internal/services/export"
)

// options are the parsed command line flags
type options struct {
	SurvivorFile string
	CharacterID  string
	OwnerID      string
	OutPath      string
	OutputDir    string
	Strict       bool
	Save         bool
	List         bool
}

type runner struct {
	service export.Service
	stdout  io.Writer
}

func (r *runner) run(ctx context.Context, opts *options) error {
	if opts.List {
		return r.list(ctx, opts.OwnerID)
	}

	input := &export.ExportInput{
		CharacterID: opts.CharacterID,
		Strict:      opts.Strict,
	}

	if opts.SurvivorFile != "" {
		survivor, err := readSurvivor(opts.SurvivorFile)
		if err != nil {
			return err
		}

		if opts.Save {
			created, err := r.service.CreateDraft(ctx, &export.CreateDraftInput{
				OwnerID:  opts.OwnerID,
				Survivor: survivor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(r.stdout, "saved draft %s\n", created.Survivor.CharacterID)
			survivor = created.Survivor
		}
		input.Survivor = survivor
	}

	out, err := r.service.Export(ctx, input)
	if err != nil {
		return err
	}

	for _, w := range out.Warnings {
		log.Printf("warning: %s", w)
	}
	for _, d := range out.Defaults {
		log.Printf("default: %s = %q", d.Field, d.Value)
	}

	if opts.OutPath == "-" {
		_, err := r.stdout.Write(out.Document)
		return err
	}

	path := opts.OutPath
	if path == "" {
		path = filepath.Join(opts.OutputDir, out.Survivor.CharacterID+".xml")
	}
	if err := os.WriteFile(path, out.Document, 0o644); err != nil {
		return dnderr.Wrapf(err, "failed to write %s", path)
	}

	fmt.Fprintf(r.stdout, "wrote %s (%d warnings)\n", path, len(out.Warnings))
	return nil
}

func (r *runner) list(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return dnderr.InvalidArgument("-owner is required with -list")
	}

	drafts, err := r.service.ListDrafts(ctx, ownerID)
	if err != nil {
		return err
	}

	for _, d := range drafts {
		fmt.Fprintf(r.stdout, "%s\t%s\n", d.CharacterID, d.FullName())
	}
	return nil
}

// readSurvivor decodes a survivor from YAML. JSON input parses as well.
func readSurvivor(path string) (*character.Survivor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dnderr.NotFoundf("survivor file %s not found", path)
		}
		return nil, dnderr.Wrapf(err, "failed to read %s", path)
	}

	var survivor character.Survivor
	if err := yaml.Unmarshal(data, &survivor); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			fmt.Sprintf("failed to decode survivor file %s", path))
	}
	return &survivor, nil
}
