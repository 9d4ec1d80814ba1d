package serializer

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

const StructSurvivorRecord = "SurvivorRecord"

// Values written into the trailing bookkeeping properties
const (
	CreatedBy     = "SurvivorSaveBuilder"
	ExportProfile = "Standard"
)

// Enum types of the top-level record
const (
	EnumGender        = "EGender"
	EnumAgeRange      = "EAgeRange"
	EnumPronoun       = "EPronoun"
	EnumStandingLevel = "EStandingLevel"
	EnumLeaderType    = "ELeaderType"
	EnumTraumaLevel   = "ETraumaLevel"
	EnumSkillSource   = "ESkillSource"
	EnumHeroBonus     = "EHeroBonus"
)

type encoder func(b *build, s *savedoc.Struct, name string)

type scheduled struct {
	name   string
	encode encoder
}

// schedule is the top-level record in index order. The loader binds several
// of these by position, so entries must never be reordered.
var schedule = []scheduled{
	// identity
	{"CharacterGuid", str(func(s character.Survivor) string { return s.CharacterID })},
	{"FirstName", text(func(s character.Survivor) string { return s.FirstName })},
	{"LastName", text(func(s character.Survivor) string { return s.LastName })},
	{"NickName", text(func(s character.Survivor) string { return s.Nickname })},
	{"LastLegacyEnclaveName", text(func(s character.Survivor) string { return s.LastLegacyEnclaveName })},
	{"HumanDefinition", lookup(reference.TableHumanDefinitions, func(s character.Survivor) string { return s.HumanDefinition })},
	{"VoiceId", lookup(reference.TableVoices, func(s character.Survivor) string { return s.VoiceID })},
	{"CulturalBackground", lookup(reference.TableCulturalBackgrounds, func(s character.Survivor) string { return s.CulturalBackground })},
	{"Gender", enum(EnumGender, func(s character.Survivor) string { return string(s.Gender) })},
	{"AgeRange", enum(EnumAgeRange, func(s character.Survivor) string { return string(s.AgeRange) })},
	{"Pronoun", enum(EnumPronoun, func(s character.Survivor) string { return string(s.Pronoun()) })},
	{"Philosophy1", ident(func(s character.Survivor) string { return s.Philosophy1 })},
	{"Philosophy2", ident(func(s character.Survivor) string { return s.Philosophy2 })},

	// booleans
	{"bIsLeader", flag(func(b *build) bool { return isLeader(b.survivor) })},
	{"bHasHeroBonus", flag(func(b *build) bool { return b.survivor.HeroBonus != character.DefaultHeroBonus })},
	{"bIsDead", flag(nil)},
	{"bIsInjured", flag(nil)},
	{"bIsSick", flag(nil)},
	{"bIsExhausted", flag(nil)},
	{"bIsOnMission", flag(nil)},
	{"bIsFavorite", flag(nil)},
	{"bIsImported", flag(func(*build) bool { return true })},

	// enums
	{"StandingLevel", enum(EnumStandingLevel, func(s character.Survivor) string { return string(s.StandingLevel) })},
	{"LeaderType", enum(EnumLeaderType, func(s character.Survivor) string { return string(s.LeaderType) })},
	{"TraumaLevel", enum(EnumTraumaLevel, func(character.Survivor) string { return savedoc.EnumNone })},
	{"FifthSkillSource", func(b *build, s *savedoc.Struct, name string) { s.Enum(name, EnumSkillSource, b.fifthSkillSource()) }},
	{"HeroBonus", enum(EnumHeroBonus, func(s character.Survivor) string { return s.HeroBonus })},

	// stats and counters
	{"BaseHealth", float(func(b *build) float64 { return b.survivor.BaseHealth })},
	{"BaseStamina", float(func(b *build) float64 { return b.survivor.BaseStamina })},
	{"MaxHealth", float((*build).maxHealth)},
	{"MaxStamina", float((*build).maxStamina)},
	{"CurrentHealth", float((*build).maxHealth)},
	{"CurrentStamina", float((*build).maxStamina)},
	{"HealthDamage", float(nil)},
	{"Fatigue", float(nil)},
	{"InfectionLevel", float(nil)},
	{"Morale", count(nil)},
	{"Influence", count(nil)},
	{"StandingPoints", count(nil)},
	{"DaysSurvived", count(nil)},
	{"ZombieKills", count(nil)},
	{"HumanKills", count(nil)},
	{"TotalPlayTime", func(_ *build, s *savedoc.Struct, name string) { s.Double(name, 0) }},

	// skills
	{"Skills", func(b *build, s *savedoc.Struct, name string) { s.Array(name, b.skills) }},
	{"SkillPointsAvailable", count(nil)},

	// traits
	{"Traits", func(b *build, s *savedoc.Struct, name string) { s.Array(name, b.traits) }},
	{"TraitCount", count(func(b *build) int { return len(b.traits) })},

	// equipment
	{"EquippedSlotCount", count(func(b *build) int { return b.survivor.Equipment.Filled() })},
	{"EquippedBackpackId", equippedID(equipment.SlotBackpack)},
	{"EquippedMeleeId", equippedID(equipment.SlotMelee)},
	{"EquippedRangedId", equippedID(equipment.SlotRanged)},

	// inventory
	{"InventoryCapacity", count(func(*build) int { return InventoryCapacity })},
	{"InventoryItemCount", count(func(b *build) int { return b.inventoryCount })},

	// bookkeeping
	{"RecordVersion", count(func(*build) int { return savedoc.SchemaVersion })},
	{"CreatedBy", func(_ *build, s *savedoc.Struct, name string) { s.Str(name, CreatedBy) }},
	{"ExportProfile", func(_ *build, s *savedoc.Struct, name string) { s.Str(name, ExportProfile) }},
	{"OriginCommunityId", ident(func(character.Survivor) string { return "" })},
	{"LegacyRecordId", str(func(character.Survivor) string { return "" })},
	{"bNeedsFixup", flag(nil)},
}

// TopLevelProperties returns the names of the top-level record in index order
func TopLevelProperties() []string {
	names := make([]string, len(schedule))
	for i, p := range schedule {
		names[i] = p.name
	}
	return names
}

func (b *build) assemble() *savedoc.Struct {
	record := savedoc.NewStruct(StructSurvivorRecord)
	for _, p := range schedule {
		p.encode(b, record, p.name)
	}
	return record
}

func (b *build) maxHealth() float64 {
	return b.survivor.BaseHealth + b.healthBuff
}

func (b *build) maxStamina() float64 {
	return b.survivor.BaseStamina + b.staminaBuff
}

func isLeader(s character.Survivor) bool {
	return s.StandingLevel == character.StandingLeader ||
		(s.LeaderType != "" && s.LeaderType != character.LeaderNone)
}

func str(get func(character.Survivor) string) encoder {
	return func(b *build, s *savedoc.Struct, name string) { s.Str(name, get(b.survivor)) }
}

func text(get func(character.Survivor) string) encoder {
	return func(b *build, s *savedoc.Struct, name string) { s.Text(name, get(b.survivor)) }
}

func ident(get func(character.Survivor) string) encoder {
	return func(b *build, s *savedoc.Struct, name string) { s.Ident(name, get(b.survivor)) }
}

// lookup maps the value through table when the store knows it. These fields
// normally hold an identifier already, so a miss is not reported.
func lookup(table reference.Table, get func(character.Survivor) string) encoder {
	return func(b *build, s *savedoc.Struct, name string) {
		v := get(b.survivor)
		if id, ok := b.store.Resolve(table, v); ok {
			v = id
		}
		s.Ident(name, v)
	}
}

func enum(enumType string, get func(character.Survivor) string) encoder {
	return func(b *build, s *savedoc.Struct, name string) { s.Enum(name, enumType, get(b.survivor)) }
}

// flag, float and count write the zero value when get is nil
func flag(get func(*build) bool) encoder {
	return func(b *build, s *savedoc.Struct, name string) {
		s.Bool(name, get != nil && get(b))
	}
}

func float(get func(*build) float64) encoder {
	return func(b *build, s *savedoc.Struct, name string) {
		v := 0.0
		if get != nil {
			v = get(b)
		}
		s.Float(name, v)
	}
}

func count(get func(*build) int) encoder {
	return func(b *build, s *savedoc.Struct, name string) {
		v := 0
		if get != nil {
			v = get(b)
		}
		s.Int(name, v)
	}
}

func equippedID(slot equipment.Slot) encoder {
	return func(b *build, s *savedoc.Struct, name string) { s.Ident(name, b.equipped[slot]) }
}
