package serializer

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

// Backing struct types of equipment and inventory slots
const (
	StructEmptySlot   = "EmptySlot"
	StructBackpack    = "BackpackItemInstance"
	StructWeapon      = "WeaponItemInstance"
	StructCloseCombat = "CloseCombatItemInstance"
	StructStackable   = "StackableItemInstance"
	StructStackCount  = "StackCount"
)

const (
	DefaultDurability      = 100
	DefaultCloseCombatUses = 10
)

// stackLimits is the MaxCount written for each stackable category
var stackLimits = map[equipment.Category]int{
	equipment.CategoryConsumable: 10,
	equipment.CategoryAmmo:       200,
	equipment.CategoryResource:   1,
	equipment.CategoryMisc:       20,
}

type item struct {
	ID       string
	Category equipment.Category
	Quantity int
}

type itemShape func(item) *savedoc.Struct

// shapeFor returns the encoder for category, or nil when the category is
// not one the document knows.
func shapeFor(category equipment.Category) itemShape {
	switch {
	case category == equipment.CategoryBackpack:
		return backpackShape
	case category == equipment.CategoryCloseCombat:
		return closeCombatShape
	case category.IsWeapon():
		return weaponShape
	case category.IsStackable():
		return stackableShape
	}
	return nil
}

func emptySlot() *savedoc.Struct {
	return savedoc.NewStruct(StructEmptySlot)
}

func backpackShape(it item) *savedoc.Struct {
	return savedoc.NewStruct(StructBackpack).
		Ident("ItemId", it.ID)
}

func weaponShape(it item) *savedoc.Struct {
	return savedoc.NewStruct(StructWeapon).
		Ident("ItemId", it.ID).
		Int("Durability", DefaultDurability).
		Int("MaxDurability", DefaultDurability).
		Bool("bIsBroken", false)
}

func closeCombatShape(it item) *savedoc.Struct {
	return savedoc.NewStruct(StructCloseCombat).
		Ident("ItemId", it.ID).
		Int("UsesRemaining", DefaultCloseCombatUses).
		Int("Durability", DefaultDurability)
}

func stackableShape(it item) *savedoc.Struct {
	count := it.Quantity
	if count < 1 {
		count = 1
	}
	limit := stackLimits[it.Category]
	if limit < count {
		limit = count
	}

	stack := savedoc.NewStruct(StructStackCount).
		Int("Count", count).
		Int("MaxCount", limit)

	return savedoc.NewStruct(StructStackable).
		Ident("ItemId", it.ID).
		Nested("Stack", stack)
}

// itemTable is the reference table holding identifiers for category
func itemTable(category equipment.Category) reference.Table {
	switch {
	case category == equipment.CategoryBackpack:
		return reference.TableBackpacks
	case category.IsWeapon():
		return reference.TableWeapons
	}
	return reference.TableItems
}

// resolveItem tries each non-blank selection against the category's table.
// When none resolve, the first non-blank selection is used as-is.
func (b *build) resolveItem(field string, category equipment.Category, selections ...string) string {
	table := itemTable(category)
	first := ""
	for _, sel := range selections {
		if sel == "" {
			continue
		}
		if id, ok := b.store.Resolve(table, sel); ok {
			return id
		}
		if first == "" {
			first = sel
		}
	}
	b.warn(WarningUnresolvedIdentifier, field, first, "no %s mapping for %q", table, first)
	return first
}
