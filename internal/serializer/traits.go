package serializer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

const StructTraitRecord = "TraitRecord"

// TraitIdentifierPolicy reports whether a stored trait identifier is a
// display name that must be mapped through the reference store before it
// is written.
type TraitIdentifierPolicy func(id string) bool

// LooksLikeDisplayName is the default policy. An identifier with a space or
// hyphen, or with neither an underscore nor the descriptor prefix, is taken
// to be a display name. The rule is known to misclassify single-word
// canonical IDs other than Default; those still resolve by exact ID.
func LooksLikeDisplayName(id string) bool {
	if id == character.TraitDefault {
		return false
	}
	if strings.ContainsAny(id, " -") {
		return true
	}
	return !strings.Contains(id, "_") && !strings.HasPrefix(id, character.DescriptorPrefix)
}

// junkMarkers appear in values scraped from form widgets instead of the
// underlying option value. Matched case-insensitively.
var junkMarkers = []string{"▶", "►", "[object", "{{", "placeholder", "--"}

var junkValues = map[string]bool{
	"undefined": true,
	"null":      true,
	"nan":       true,
	"none":      true,
	"select":    true,
}

// buffSummary matches option labels like "+10 Health" or "-5 Stamina"
var buffSummary = regexp.MustCompile(`^[+\-]\d`)

// IsJunkTrait reports whether id must never be written as a trait
func IsJunkTrait(id string) bool {
	id = strings.TrimSpace(id)
	if utf8.RuneCountInString(id) < 2 {
		return true
	}

	lower := strings.ToLower(id)
	if junkValues[lower] {
		return true
	}
	for _, marker := range junkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return buffSummary.MatchString(id) || isMalformedDescriptor(id)
}

// isMalformedDescriptor catches descriptors built from an empty value, such
// as "Descriptor_Philosophy_".
func isMalformedDescriptor(id string) bool {
	if !strings.HasPrefix(id, character.DescriptorPrefix) {
		return false
	}
	segments := 0
	for _, part := range strings.Split(id, "_") {
		if part != "" {
			segments++
		}
	}
	return segments < 3
}

type traitCandidate struct {
	id    string
	field string
	trait *character.Trait
}

// traitRecords emits the required traits followed by the surviving optional
// traits. Health and stamina buffs of the emitted optional traits are
// accumulated for the MaxHealth and MaxStamina properties.
func (b *build) traitRecords() []*savedoc.Struct {
	var candidates []traitCandidate
	for _, id := range b.survivor.RequiredTraits() {
		candidates = append(candidates, traitCandidate{id: id, field: "traits.required"})
	}
	for i := range b.survivor.Traits {
		t := &b.survivor.Traits[i]
		candidates = append(candidates, traitCandidate{
			id:    character.ResolveWithDefault(t.ID, t.DisplayName),
			field: fmt.Sprintf("traits[%d]", i),
			trait: t,
		})
	}

	var records []*savedoc.Struct
	for _, c := range candidates {
		if IsJunkTrait(c.id) {
			continue
		}

		id := strings.TrimSpace(c.id)
		if b.policy(id) {
			id = b.resolve(reference.TableTraits, c.field, id)
		}
		records = append(records, traitRecord(id))

		if c.trait != nil {
			b.healthBuff += c.trait.BuffTotal(character.BuffHealth)
			b.staminaBuff += c.trait.BuffTotal(character.BuffStamina)
		}
	}
	return records
}

// traitRecord has no buff records; the host recomputes them from the trait
// resource on load.
func traitRecord(id string) *savedoc.Struct {
	return savedoc.NewStruct(StructTraitRecord).
		Ident("TraitResourceId", id).
		Array("BuffRecords", nil)
}
