package export

import (
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// Validate checks that exactly one source is selected
func (i *ExportInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("ExportInput cannot be nil")
	}

	switch {
	case i.CharacterID == "" && i.Survivor == nil:
		return dnderr.InvalidArgument("character ID or survivor is required")
	case i.CharacterID != "" && i.Survivor != nil:
		return dnderr.InvalidArgument("character ID and survivor are mutually exclusive")
	}
	return nil
}
