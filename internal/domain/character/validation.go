package character

import (
	"strings"

	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// Validate checks the semantic rules the form is supposed to enforce. The
// serializer never calls it: a save document is produced for any survivor,
// and callers that want strictness run Validate first.
func (s Survivor) Validate() error {
	var errs dnderr.FieldErrors

	if strings.TrimSpace(s.FirstName) == "" {
		errs.Add("first_name", "is required")
	}

	switch {
	case strings.TrimSpace(s.Philosophy1) == "":
		errs.Add("philosophy1", "is required")
	case strings.TrimSpace(s.Philosophy2) == "":
		errs.Add("philosophy2", "is required")
	case strings.EqualFold(strings.TrimSpace(s.Philosophy1), strings.TrimSpace(s.Philosophy2)):
		errs.Add("philosophy2", "must differ from philosophy1 (%s)", s.Philosophy1)
	}

	for _, skill := range s.Skills.Core() {
		field := "skills." + strings.ToLower(skill.ID)
		if skill.Level < 0 || skill.Level > MaxSkillLevel {
			errs.Add(field, "level %d is outside 0-%d", skill.Level, MaxSkillLevel)
		}
		if skill.Specialization != "" && skill.Level < SpecializationMinLevel {
			errs.Add(field, "specialization %q requires level %d", skill.Specialization, SpecializationMinLevel)
		}
	}

	if fifth := s.Skills.Fifth; fifth != nil {
		if fifth.Pool != SkillPoolCommunity && fifth.Pool != SkillPoolQuirk {
			errs.Add("skills.fifth.pool", "must be %q or %q", SkillPoolCommunity, SkillPoolQuirk)
		}
		if strings.TrimSpace(fifth.ID) == "" {
			errs.Add("skills.fifth.id", "is required when a fifth skill is selected")
		}
		if fifth.Level < 0 || fifth.Level > MaxSkillLevel {
			errs.Add("skills.fifth.level", "level %d is outside 0-%d", fifth.Level, MaxSkillLevel)
		}
	}

	for i, item := range s.Inventory {
		if !item.Category.IsKnown() {
			errs.Add("inventory", "item %d has unknown category %q", i, item.Category)
		}
		if item.Selection() == "" {
			errs.Add("inventory", "item %d has neither id nor display name", i)
		}
		if item.Quantity < 0 {
			errs.Add("inventory", "item %d has negative quantity %d", i, item.Quantity)
		}
	}

	return errs.Err()
}
