package character

import (
	"testing"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSurvivor() Survivor {
	return Survivor{
		FirstName:   "Maya",
		LastName:    "Reyes",
		Philosophy1: "Prudent",
		Philosophy2: "Heroic",
		Skills: Skills{
			Cardio: CoreSkill{Level: 6, Specialization: "Powerhouse"},
			Wits:   CoreSkill{Level: 3},
		},
		Inventory: []equipment.InventoryItem{{Category: equipment.CategoryConsumable, ID: "Item_Painkillers", Quantity: 2}},
	}
}

func TestSurvivor_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *Survivor)
		wantField string
	}{
		{name: "valid", mutate: func(s *Survivor) {}},
		{name: "missing first name", mutate: func(s *Survivor) { s.FirstName = " " }, wantField: "first_name"},
		{name: "missing philosophy1", mutate: func(s *Survivor) { s.Philosophy1 = "" }, wantField: "philosophy1"},
		{name: "missing philosophy2", mutate: func(s *Survivor) { s.Philosophy2 = "" }, wantField: "philosophy2"},
		{name: "same philosophies", mutate: func(s *Survivor) { s.Philosophy2 = "prudent" }, wantField: "philosophy2"},
		{name: "level too high", mutate: func(s *Survivor) { s.Skills.Fighting.Level = 8 }, wantField: "skills.fighting"},
		{name: "specialization too early", mutate: func(s *Survivor) { s.Skills.Wits.Specialization = "Learning" }, wantField: "skills.wits"},
		{
			name:      "fifth skill without pool",
			mutate:    func(s *Survivor) { s.Skills.Fifth = &FifthSkill{ID: "Cooking", Level: 1} },
			wantField: "skills.fifth.pool",
		},
		{
			name:      "fifth skill without id",
			mutate:    func(s *Survivor) { s.Skills.Fifth = &FifthSkill{Pool: SkillPoolCommunity} },
			wantField: "skills.fifth.id",
		},
		{
			name: "inventory unknown category",
			mutate: func(s *Survivor) {
				s.Inventory = append(s.Inventory, equipment.InventoryItem{Category: "hovercraft", ID: "X_1"})
			},
			wantField: "inventory",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSurvivor()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, dnderr.IsValidation(err))
			assert.Contains(t, dnderr.GetMeta(err), tt.wantField)
		})
	}
}
