package character

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
)

type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Unspecified"
)

type AgeRange string

const (
	AgeYoung      AgeRange = "Young"
	AgeMiddleAged AgeRange = "MiddleAged"
	AgeOld        AgeRange = "Old"
)

type Pronoun string

const (
	PronounHe   Pronoun = "He"
	PronounShe  Pronoun = "She"
	PronounThey Pronoun = "They"
)

type StandingLevel string

const (
	StandingRecruit StandingLevel = "Recruit"
	StandingCitizen StandingLevel = "Citizen"
	StandingHero    StandingLevel = "Hero"
	StandingLeader  StandingLevel = "Leader"
)

type LeaderType string

const (
	LeaderNone    LeaderType = "None"
	LeaderBuilder LeaderType = "Builder"
	LeaderSheriff LeaderType = "Sheriff"
	LeaderTrader  LeaderType = "Trader"
	LeaderWarlord LeaderType = "Warlord"
)

// Survivor is the attribute set a save document is generated from.
//
// The form mutates a Survivor in place; exports work on a copy passed by value,
// so slices must be cloned before anything writes to them (see Clone).
type Survivor struct {
	CharacterID           string `json:"character_id,omitempty" yaml:"character_id,omitempty"`
	OwnerID               string `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	FirstName             string `json:"first_name" yaml:"first_name"`
	LastName              string `json:"last_name" yaml:"last_name"`
	Nickname              string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	LastLegacyEnclaveName string `json:"last_legacy_enclave_name,omitempty" yaml:"last_legacy_enclave_name,omitempty"`

	Gender             Gender   `json:"gender,omitempty" yaml:"gender,omitempty"`
	AgeRange           AgeRange `json:"age_range,omitempty" yaml:"age_range,omitempty"`
	PronounOverride    Pronoun  `json:"pronoun,omitempty" yaml:"pronoun,omitempty"`
	CulturalBackground string   `json:"cultural_background,omitempty" yaml:"cultural_background,omitempty"`
	VoiceID            string   `json:"voice_id,omitempty" yaml:"voice_id,omitempty"`
	HumanDefinition    string   `json:"human_definition,omitempty" yaml:"human_definition,omitempty"`

	Philosophy1 string `json:"philosophy1" yaml:"philosophy1"`
	Philosophy2 string `json:"philosophy2" yaml:"philosophy2"`

	StandingLevel StandingLevel `json:"standing_level,omitempty" yaml:"standing_level,omitempty"`
	LeaderType    LeaderType    `json:"leader_type,omitempty" yaml:"leader_type,omitempty"`
	HeroBonus     string        `json:"hero_bonus,omitempty" yaml:"hero_bonus,omitempty"`

	Skills Skills  `json:"skills" yaml:"skills"`
	Traits []Trait `json:"traits,omitempty" yaml:"traits,omitempty"`

	BaseHealth  float64 `json:"base_health,omitempty" yaml:"base_health,omitempty"`
	BaseStamina float64 `json:"base_stamina,omitempty" yaml:"base_stamina,omitempty"`

	Inventory []equipment.InventoryItem `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Equipment equipment.Loadout         `json:"equipment" yaml:"equipment"`
}

// Pronoun returns the override when set, otherwise the pronoun implied by gender
func (s Survivor) Pronoun() Pronoun {
	if s.PronounOverride != "" {
		return s.PronounOverride
	}
	switch s.Gender {
	case GenderMale:
		return PronounHe
	case GenderFemale:
		return PronounShe
	}
	return PronounThey
}

// RequiredTraits derives the descriptor traits from the current age,
// pronoun and philosophies. It is recomputed on every call.
func (s Survivor) RequiredTraits() []string {
	return RequiredTraits(s.AgeRange, s.Pronoun(), s.Philosophy1, s.Philosophy2)
}

// Clone returns a deep copy
func (s Survivor) Clone() Survivor {
	out := s
	if s.Traits != nil {
		out.Traits = make([]Trait, len(s.Traits))
		for i, t := range s.Traits {
			out.Traits[i] = t
			if t.Buffs != nil {
				out.Traits[i].Buffs = append([]Buff(nil), t.Buffs...)
			}
		}
	}
	if s.Inventory != nil {
		out.Inventory = append([]equipment.InventoryItem(nil), s.Inventory...)
	}
	if s.Skills.Fifth != nil {
		fifth := *s.Skills.Fifth
		out.Skills.Fifth = &fifth
	}
	return out
}

// FullName joins the non-empty name parts
func (s Survivor) FullName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	}
	return s.LastName
}
