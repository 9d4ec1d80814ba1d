package serializer

import (
	"strings"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

const StructSkillRecord = "SkillRecord"

// skillRecords emits one record per trained core skill, in document order,
// then the fifth skill when one is selected. Untrained core skills are left
// out entirely; the loader treats a missing skill as level 0.
func (b *build) skillRecords() []*savedoc.Struct {
	var records []*savedoc.Struct

	for _, skill := range b.survivor.Skills.Core() {
		level := skill.ClampedLevel()
		if level == 0 {
			continue
		}
		records = append(records, skillRecord(skill.ID, level, character.TraitDefault, skill.EffectiveSpecialization()))
	}

	fifth := b.survivor.Skills.Fifth
	if fifth == nil || strings.TrimSpace(fifth.ID) == "" {
		return records
	}

	id := b.resolve(reference.TableSkills, "skills.fifth.id", strings.TrimSpace(fifth.ID))
	core := character.CoreSkill{Level: fifth.Level, Specialization: fifth.Specialization}
	level := core.ClampedLevel()
	if level == 0 {
		level = character.DefaultFifthSkillLevel
	}
	grantedBy := character.ResolveWithDefault(fifth.GrantedBy, character.TraitDefault)

	return append(records, skillRecord(id, level, grantedBy, core.EffectiveSpecialization()))
}

func skillRecord(id string, level int, grantedBy, specialization string) *savedoc.Struct {
	record := savedoc.NewStruct(StructSkillRecord).
		Ident("SkillId", id).
		Int("Level", level).
		Int("Experience", 0).
		Ident("GrantedByTrait", grantedBy)
	if specialization != "" {
		record.Ident("SpecializationResourceID", specialization)
	}
	return record
}

// fifthSkillSource returns the ESkillSource member for the selected pool
func (b *build) fifthSkillSource() string {
	fifth := b.survivor.Skills.Fifth
	if fifth == nil || strings.TrimSpace(fifth.ID) == "" {
		return savedoc.EnumNone
	}
	switch fifth.Pool {
	case character.SkillPoolCommunity:
		return "Community"
	case character.SkillPoolQuirk:
		return "Quirk"
	}
	return savedoc.EnumNone
}
