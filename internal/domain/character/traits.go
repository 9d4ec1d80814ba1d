package character

import "strings"

const (
	// TraitDefault is granted to every survivor and grants the base skills
	TraitDefault = "Default"

	// DescriptorPrefix starts every auto-derived descriptor trait ID
	DescriptorPrefix = "Descriptor_"
)

type BuffStat string

const (
	BuffHealth  BuffStat = "Health"
	BuffStamina BuffStat = "Stamina"
)

// Buff is an additive stat modifier carried by a trait
type Buff struct {
	Stat   BuffStat `json:"stat" yaml:"stat"`
	Amount float64  `json:"amount" yaml:"amount"`
}

// Trait is a user-selected trait. ID is the canonical resource identifier;
// older drafts sometimes stored the display name in ID instead.
type Trait struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Buffs       []Buff `json:"buffs,omitempty" yaml:"buffs,omitempty"`
}

// BuffTotal sums the amounts of all buffs for stat
func (t Trait) BuffTotal(stat BuffStat) float64 {
	total := 0.0
	for _, b := range t.Buffs {
		if b.Stat == stat {
			total += b.Amount
		}
	}
	return total
}

// RequiredTraits returns Default followed by the age, pronoun and philosophy
// descriptors. The second philosophy descriptor is only added when it
// differs from the first.
func RequiredTraits(age AgeRange, pronoun Pronoun, philosophy1, philosophy2 string) []string {
	first := descriptor("Philosophy", philosophy1)
	second := descriptor("Philosophy", philosophy2)

	traits := []string{
		TraitDefault,
		descriptor("Age", string(age)),
		descriptor("Pronoun", string(pronoun)),
		first,
	}
	if second != first {
		traits = append(traits, second)
	}
	return traits
}

func descriptor(kind, value string) string {
	return DescriptorPrefix + kind + "_" + strings.ReplaceAll(strings.TrimSpace(value), " ", "")
}
