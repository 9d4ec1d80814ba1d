package serializer

import (
	"strings"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

// equipmentSlots emits all six slots in fixed order. Unfilled slots get the
// empty sentinel.
func (b *build) equipmentSlots() []savedoc.EquipmentSlot {
	slots := make([]savedoc.EquipmentSlot, 0, len(equipment.Slots()))

	for _, slot := range equipment.Slots() {
		selection := strings.TrimSpace(b.survivor.Equipment.Get(slot))
		if selection == "" {
			slots = append(slots, savedoc.EquipmentSlot{Name: string(slot), Body: emptySlot()})
			continue
		}

		category := slot.Category()
		id := b.resolveItem("equipment."+strings.ToLower(string(slot)), category, selection)
		b.equipped[slot] = id

		slots = append(slots, savedoc.EquipmentSlot{
			Name: string(slot),
			Body: shapeFor(category)(item{ID: id, Category: category, Quantity: 1}),
		})
	}

	return slots
}
