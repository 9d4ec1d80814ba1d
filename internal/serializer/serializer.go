// Package serializer turns a survivor snapshot into a save document.
//
// Serialization never fails. Unset fields are defaulted on a copy of the
// snapshot, junk traits are dropped, and identifiers that cannot be resolved
// are emitted as-is and reported as warnings on the Result.
package serializer

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

// InventoryCapacity is the fixed number of inventory slots in a document
const InventoryCapacity = 12

type WarningKind string

const (
	WarningUnresolvedIdentifier WarningKind = "unresolved_identifier"
	WarningUnknownCategory      WarningKind = "unknown_category"
	WarningInventoryOverflow    WarningKind = "inventory_overflow"
	WarningBlankItem            WarningKind = "blank_item"

	// WarningReferenceUnavailable is raised by callers that could not load
	// reference data and serialized against an empty store instead
	WarningReferenceUnavailable WarningKind = "reference_unavailable"
)

// Warning is a soft failure encountered while serializing
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field"`
	Value   string      `json:"value"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Kind, w.Field, w.Message)
}

// Result is the output of one serialization
type Result struct {
	Document []byte

	// Survivor is the snapshot actually written, with defaults applied
	Survivor character.Survivor

	Defaults []character.AppliedDefault
	Warnings []Warning
}

// Config tunes a Serializer. The zero value is ready to use.
type Config struct {
	// TraitPolicy decides which trait identifiers need a reference lookup.
	// Defaults to LooksLikeDisplayName.
	TraitPolicy TraitIdentifierPolicy

	// Quiet suppresses log output for warnings
	Quiet bool
}

// Serializer builds save documents. It holds no per-call state and is safe
// for concurrent use.
type Serializer struct {
	traitPolicy TraitIdentifierPolicy
	quiet       bool
}

// New creates a serializer
func New(cfg *Config) *Serializer {
	s := &Serializer{traitPolicy: LooksLikeDisplayName}
	if cfg == nil {
		return s
	}
	if cfg.TraitPolicy != nil {
		s.traitPolicy = cfg.TraitPolicy
	}
	s.quiet = cfg.Quiet
	return s
}

// Serialize is New(nil).Serialize
func Serialize(survivor character.Survivor, store reference.Store) *Result {
	return New(nil).Serialize(survivor, store)
}

// Serialize renders survivor using store to resolve display names. A nil
// store, or one that has not loaded yet, resolves nothing.
func (s *Serializer) Serialize(survivor character.Survivor, store reference.Store) *Result {
	if store == nil {
		store = reference.Empty
	}

	snapshot, defaults := survivor.WithDefaults(store)

	b := &build{
		survivor: snapshot,
		store:    store,
		policy:   s.traitPolicy,
		quiet:    s.quiet,
		equipped: make(map[equipment.Slot]string),
	}

	b.skills = b.skillRecords()
	b.traits = b.traitRecords()
	b.equipment = b.equipmentSlots()
	b.inventory = b.inventorySlots()

	doc := &savedoc.Document{
		Character: b.assemble(),
		Equipment: b.equipment,
		Inventory: b.inventory,
	}

	return &Result{
		Document: doc.Encode(),
		Survivor: snapshot,
		Defaults: defaults,
		Warnings: b.warnings,
	}
}

// build carries the state of one Serialize call
type build struct {
	survivor character.Survivor
	store    reference.Store
	policy   TraitIdentifierPolicy
	quiet    bool
	warnings []Warning

	skills    []*savedoc.Struct
	traits    []*savedoc.Struct
	equipment []savedoc.EquipmentSlot
	inventory []*savedoc.Struct

	healthBuff     float64
	staminaBuff    float64
	equipped       map[equipment.Slot]string
	inventoryCount int
}

func (b *build) warn(kind WarningKind, field, value, format string, args ...any) {
	w := Warning{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
	b.warnings = append(b.warnings, w)
	if !b.quiet {
		log.Printf("serializer: %s", w)
	}
}

// resolve looks selection up in table. On a miss the selection itself is
// returned and a warning recorded.
func (b *build) resolve(table reference.Table, field, selection string) string {
	if id, ok := b.store.Resolve(table, selection); ok {
		return id
	}
	b.warn(WarningUnresolvedIdentifier, field, selection, "no %s mapping for %q", table, selection)
	return selection
}
