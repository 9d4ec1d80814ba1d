package character

const (
	// MaxSkillLevel is the highest trainable skill level
	MaxSkillLevel = 7

	// SpecializationMinLevel is the lowest level that may carry a specialization
	SpecializationMinLevel = 5
)

// Canonical IDs of the four core skills
const (
	SkillCardio   = "Cardio"
	SkillWits     = "Wits"
	SkillFighting = "Fighting"
	SkillShooting = "Shooting"
)

type SkillPool string

const (
	SkillPoolCommunity SkillPool = "community"
	SkillPoolQuirk     SkillPool = "quirk"
)

// CoreSkill is the level and optional specialization of one core skill
type CoreSkill struct {
	Level          int    `json:"level" yaml:"level"`
	Specialization string `json:"specialization,omitempty" yaml:"specialization,omitempty"`
}

// ClampedLevel returns Level limited to [0, MaxSkillLevel]
func (c CoreSkill) ClampedLevel() int {
	return clampLevel(c.Level)
}

// EffectiveSpecialization returns the specialization only when the skill is
// trained high enough to hold one.
func (c CoreSkill) EffectiveSpecialization() string {
	if c.ClampedLevel() < SpecializationMinLevel {
		return ""
	}
	return c.Specialization
}

// FifthSkill is the optional skill chosen from the community or quirk pool
type FifthSkill struct {
	Pool           SkillPool `json:"pool" yaml:"pool"`
	ID             string    `json:"id" yaml:"id"`
	Level          int       `json:"level,omitempty" yaml:"level,omitempty"`
	Specialization string    `json:"specialization,omitempty" yaml:"specialization,omitempty"`
	GrantedBy      string    `json:"granted_by,omitempty" yaml:"granted_by,omitempty"`
}

// Skills holds the four core skills plus the optional fifth skill
type Skills struct {
	Cardio   CoreSkill   `json:"cardio" yaml:"cardio"`
	Wits     CoreSkill   `json:"wits" yaml:"wits"`
	Fighting CoreSkill   `json:"fighting" yaml:"fighting"`
	Shooting CoreSkill   `json:"shooting" yaml:"shooting"`
	Fifth    *FifthSkill `json:"fifth,omitempty" yaml:"fifth,omitempty"`
}

// NamedCoreSkill pairs a core skill with its canonical ID
type NamedCoreSkill struct {
	ID string
	CoreSkill
}

// Core returns the four core skills in document order
func (s Skills) Core() []NamedCoreSkill {
	return []NamedCoreSkill{
		{ID: SkillCardio, CoreSkill: s.Cardio},
		{ID: SkillWits, CoreSkill: s.Wits},
		{ID: SkillFighting, CoreSkill: s.Fighting},
		{ID: SkillShooting, CoreSkill: s.Shooting},
	}
}

func clampLevel(level int) int {
	switch {
	case level < 0:
		return 0
	case level > MaxSkillLevel:
		return MaxSkillLevel
	}
	return level
}
