package references

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// FileLoader reads reference tables from a YAML document of the form
//
//	traits:
//	  - id: Trait_Gourmet
//	    name: Gourmet
//	weapons:
//	  - id: Weapon_Machete
//	    name: Machete
//
// The first entry of each table is its default.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the YAML file at path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load implements Loader
func (l *FileLoader) Load(ctx context.Context) (*reference.Catalog, error) {
	if l.path == "" {
		return nil, dnderr.InvalidArgument("reference file path is required")
	}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dnderr.NotFoundf("reference file '%s' not found", l.path).
			WithMeta("path", l.path)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read reference file")
	}

	catalog, err := Decode(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load reference file %s", l.path)
	}

	log.Printf("Loaded %d reference entries from %s", catalog.Len(), l.path)
	return catalog, nil
}

// Decode parses a YAML reference document. Unknown tables are ignored.
func Decode(data []byte) (*reference.Catalog, error) {
	var doc map[reference.Table][]reference.Entry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid reference document")
	}

	catalog := reference.NewCatalog()
	for _, t := range reference.Tables() {
		if entries, ok := doc[t]; ok {
			catalog.Add(t, entries...)
			delete(doc, t)
		}
	}
	for t := range doc {
		log.Printf("Ignoring unknown reference table %q", t)
	}

	return catalog, nil
}
