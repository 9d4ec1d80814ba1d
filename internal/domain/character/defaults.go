package character

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/uuid"
)

// Hardcoded last-resort values used when neither the survivor nor the
// reference data provides one
const (
	DefaultHumanDefinition    = "HumanDefinition_Generic"
	DefaultVoiceID            = "Kee"
	DefaultCulturalBackground = "Generic"
	DefaultHeroBonus          = "None"
	DefaultBaseHealth         = 100.0
	DefaultBaseStamina        = 100.0
	DefaultFifthSkillLevel    = 1
)

// AppliedDefault records a field that was unset on export and the value
// substituted for it
type AppliedDefault struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ResolveWithDefault returns value when it is non-blank, otherwise the first
// non-blank candidate. Candidates are tried in order; "" is returned when all
// are blank.
func ResolveWithDefault(value string, candidates ...string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

type defaulter struct {
	applied []AppliedDefault
}

func (d *defaulter) str(field string, target *string, candidates ...string) {
	resolved := ResolveWithDefault(*target, candidates...)
	if resolved != *target {
		*target = resolved
		d.applied = append(d.applied, AppliedDefault{Field: field, Value: resolved})
	}
}

func (d *defaulter) float(field string, target *float64, fallback float64) {
	if *target > 0 {
		return
	}
	*target = fallback
	d.applied = append(d.applied, AppliedDefault{
		Field: field,
		Value: strconv.FormatFloat(fallback, 'f', -1, 64),
	})
}

// WithDefaults returns a copy of s with every unset field the document needs
// filled in, along with the list of substitutions made. s itself is not
// modified. A nil store is treated as one without mappings.
func (s Survivor) WithDefaults(store reference.Store) (Survivor, []AppliedDefault) {
	if store == nil {
		store = reference.Empty
	}

	out := s.Clone()
	d := &defaulter{}

	if out.CharacterID == "" {
		out.CharacterID = uuid.FromName(out.FullName() + "|" + out.Nickname)
		d.applied = append(d.applied, AppliedDefault{Field: "character_id", Value: out.CharacterID})
	}

	d.str("human_definition", &out.HumanDefinition, store.Default(reference.TableHumanDefinitions), DefaultHumanDefinition)
	d.str("voice_id", &out.VoiceID, store.Default(reference.TableVoices), DefaultVoiceID)
	d.str("cultural_background", &out.CulturalBackground, store.Default(reference.TableCulturalBackgrounds), DefaultCulturalBackground)
	d.str("hero_bonus", &out.HeroBonus, DefaultHeroBonus)

	gender := string(out.Gender)
	d.str("gender", &gender, string(GenderUnspecified))
	out.Gender = Gender(gender)

	age := string(out.AgeRange)
	d.str("age_range", &age, string(AgeMiddleAged))
	out.AgeRange = AgeRange(age)

	standing := string(out.StandingLevel)
	d.str("standing_level", &standing, string(StandingCitizen))
	out.StandingLevel = StandingLevel(standing)

	leader := string(out.LeaderType)
	d.str("leader_type", &leader, string(LeaderNone))
	out.LeaderType = LeaderType(leader)

	d.float("base_health", &out.BaseHealth, DefaultBaseHealth)
	d.float("base_stamina", &out.BaseStamina, DefaultBaseStamina)

	if fifth := out.Skills.Fifth; fifth != nil {
		if fifth.Level <= 0 {
			fifth.Level = DefaultFifthSkillLevel
			d.applied = append(d.applied, AppliedDefault{
				Field: "skills.fifth.level",
				Value: strconv.Itoa(DefaultFifthSkillLevel),
			})
		}
		d.str("skills.fifth.granted_by", &fifth.GrantedBy, TraitDefault)
	}

	return out, d.applied
}
