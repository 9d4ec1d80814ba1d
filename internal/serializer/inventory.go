package serializer

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

// inventorySlots emits exactly InventoryCapacity slots: the items in their
// original order, then empty sentinels. An item with neither ID nor display
// name keeps its position as an empty sentinel.
func (b *build) inventorySlots() []*savedoc.Struct {
	items := b.survivor.Inventory
	if len(items) > InventoryCapacity {
		b.warn(WarningInventoryOverflow, "inventory", fmt.Sprint(len(items)),
			"%d items exceed capacity %d, dropping the last %d", len(items), InventoryCapacity, len(items)-InventoryCapacity)
		items = items[:InventoryCapacity]
	}

	slots := make([]*savedoc.Struct, 0, InventoryCapacity)
	for i, it := range items {
		field := fmt.Sprintf("inventory[%d]", i)

		id, name := strings.TrimSpace(it.ID), strings.TrimSpace(it.DisplayName)
		if id == "" && name == "" {
			b.warn(WarningBlankItem, field, string(it.Category), "item has neither id nor display name, writing an empty slot")
			slots = append(slots, emptySlot())
			continue
		}
		b.inventoryCount++

		category := it.Category
		if !category.IsKnown() {
			b.warn(WarningUnknownCategory, field, string(category), "unknown item category %q, writing as %s", category, equipment.CategoryMisc)
			category = equipment.CategoryMisc
		}

		resolved := b.resolveItem(field, category, id, name)
		slots = append(slots, shapeFor(category)(item{ID: resolved, Category: category, Quantity: it.Quantity}))
	}

	for len(slots) < InventoryCapacity {
		slots = append(slots, emptySlot())
	}
	return slots
}
