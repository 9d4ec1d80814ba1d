// Package reference holds the lookup tables used to turn the display names a
// survivor was built from into the canonical identifiers the game loads.
package reference

//go:generate mockgen -destination=mock/mock_store.go -package=mockreference -source=reference.go

import (
	"strings"

	"golang.org/x/text/cases"
)

// Table names one reference lookup table
type Table string

const (
	TableTraits              Table = "traits"
	TableSkills              Table = "skills"
	TableWeapons             Table = "weapons"
	TableBackpacks           Table = "backpacks"
	TableItems               Table = "items"
	TableVoices              Table = "voices"
	TableCulturalBackgrounds Table = "cultural_backgrounds"
	TableHumanDefinitions    Table = "human_definitions"
)

// Tables lists every table a loader should fill
func Tables() []Table {
	return []Table{
		TableTraits,
		TableSkills,
		TableWeapons,
		TableBackpacks,
		TableItems,
		TableVoices,
		TableCulturalBackgrounds,
		TableHumanDefinitions,
	}
}

// Entry maps one display name to its canonical identifier
type Entry struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"name" yaml:"name"`
}

// Store resolves display names to canonical identifiers.
//
// A store that has not finished loading must behave like an empty one:
// Resolve reports false and Default returns "".
type Store interface {
	// Resolve maps a display name (or an already-canonical ID) to its ID
	Resolve(table Table, name string) (string, bool)

	// Default returns the first entry of table, the value a dropdown would preselect
	Default(table Table) string
}

// NormalizeName folds case and collapses whitespace so lookups tolerate
// "Red  Talon", "red talon" and "RED TALON" alike.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
