package serializer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

func TestShapeFor_EveryCategory(t *testing.T) {
	expected := map[equipment.Category]string{
		equipment.CategoryBackpack:    StructBackpack,
		equipment.CategoryMelee:       StructWeapon,
		equipment.CategoryRanged:      StructWeapon,
		equipment.CategorySidearm:     StructWeapon,
		equipment.CategoryCloseCombat: StructCloseCombat,
		equipment.CategoryConsumable:  StructStackable,
		equipment.CategoryAmmo:        StructStackable,
		equipment.CategoryResource:    StructStackable,
		equipment.CategoryMisc:        StructStackable,
	}
	require.Len(t, expected, len(equipment.Categories()))

	for _, category := range equipment.Categories() {
		shape := shapeFor(category)
		require.NotNil(t, shape, category)
		assert.Equal(t, expected[category], shape(item{ID: "X_1", Category: category, Quantity: 1}).Type, category)
	}

	assert.Nil(t, shapeFor(equipment.CategoryUnknown))
	assert.Nil(t, shapeFor(equipment.Category("laser")))
}

func TestShapes_Fields(t *testing.T) {
	testCases := []struct {
		category equipment.Category
		fields   []string
	}{
		{equipment.CategoryBackpack, []string{"ItemId"}},
		{equipment.CategoryMelee, []string{"ItemId", "Durability", "MaxDurability", "bIsBroken"}},
		{equipment.CategoryCloseCombat, []string{"ItemId", "UsesRemaining", "Durability"}},
		{equipment.CategoryAmmo, []string{"ItemId", "Stack"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			body := shapeFor(tc.category)(item{ID: "X_1", Category: tc.category, Quantity: 1})

			var names []string
			for _, p := range body.Properties() {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.fields, names)
		})
	}
}

func TestStackableShape_Counts(t *testing.T) {
	testCases := []struct {
		name     string
		it       item
		count    string
		maxCount string
	}{
		{"defaults to one", item{ID: "Item_Bandage", Category: equipment.CategoryConsumable}, "1", "10"},
		{"within limit", item{ID: "Ammo_9mm", Category: equipment.CategoryAmmo, Quantity: 50}, "50", "200"},
		{"limit grows with count", item{ID: "Ammo_9mm", Category: equipment.CategoryAmmo, Quantity: 500}, "500", "500"},
		{"rucksack", item{ID: "Resource_Food", Category: equipment.CategoryResource, Quantity: 1}, "1", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stack, ok := stackableShape(tc.it).Lookup("Stack")
			require.True(t, ok)
			require.NotNil(t, stack.Child)
			assert.Equal(t, StructStackCount, stack.StructType)

			count, _ := stack.Child.Lookup("Count")
			maxCount, _ := stack.Child.Lookup("MaxCount")
			assert.Equal(t, tc.count, count.Value)
			assert.Equal(t, tc.maxCount, maxCount.Value)
		})
	}
}

func TestEquipmentSlots(t *testing.T) {
	b := newBuild(testSurvivor(), testCatalog())
	slots := b.equipmentSlots()
	require.Len(t, slots, 6)

	expected := []struct {
		name       string
		structType string
		itemID     string
	}{
		{"Backpack", StructBackpack, "Backpack_Hiking"},
		{"Melee", StructWeapon, "Weapon_Machete"},
		{"CloseCombat", StructEmptySlot, ""},
		{"Ranged", StructWeapon, "Weapon_Rifle_Hunting"},
		{"Sidearm", StructWeapon, "Weapon_Pistol_9mm"},
		{"Rucksack", StructStackable, "Resource_Food"},
	}
	for i, want := range expected {
		assert.Equal(t, want.name, slots[i].Name)
		assert.Equal(t, want.structType, slots[i].Body.Type, want.name)
		if want.itemID == "" {
			assert.Zero(t, slots[i].Body.Len())
			continue
		}
		id, _ := slots[i].Body.Lookup("ItemId")
		assert.Equal(t, want.itemID, id.Value, want.name)
	}

	assert.Len(t, b.equipped, 5)
	assert.Empty(t, b.warnings)
}

func TestEquipmentSlots_CloseCombat(t *testing.T) {
	s := testSurvivor()
	s.Equipment.CloseCombat = "kitchen knife"

	slots := newBuild(s, testCatalog()).equipmentSlots()

	assert.Equal(t, StructCloseCombat, slots[2].Body.Type)
	id, _ := slots[2].Body.Lookup("ItemId")
	assert.Equal(t, "Weapon_Knife_Kitchen", id.Value)
}

func TestEquipmentSlots_InDocument(t *testing.T) {
	root := parse(Serialize(testSurvivor(), testCatalog()).Document)

	slots := root.Child(savedoc.ElemEquipment).Children(savedoc.ElemSlot)
	require.Len(t, slots, 6)
	assert.Equal(t, "Backpack", slots[0].Attr(savedoc.AttrName))
	assert.Equal(t, StructBackpack, slots[0].Attr(savedoc.AttrStructType))
	assert.Equal(t, StructEmptySlot, slots[2].Attr(savedoc.AttrStructType))
	assert.Empty(t, stats(slots[2]))
}

func inventoryOf(n int) []equipment.InventoryItem {
	items := make([]equipment.InventoryItem, n)
	for i := range items {
		items[i] = equipment.InventoryItem{
			Category: equipment.CategoryMisc,
			ID:       fmt.Sprintf("Item_%02d", i),
			Quantity: 1,
		}
	}
	return items
}

func TestInventorySlots_Padding(t *testing.T) {
	for k := 0; k <= InventoryCapacity; k++ {
		s := character.Survivor{Inventory: inventoryOf(k)}

		b := newBuild(s, nil)
		slots := b.inventorySlots()

		require.Len(t, slots, InventoryCapacity, "k=%d", k)
		for i, slot := range slots {
			if i < k {
				assert.Equal(t, StructStackable, slot.Type, "k=%d slot %d", k, i)
				id, _ := slot.Lookup("ItemId")
				assert.Equal(t, fmt.Sprintf("Item_%02d", i), id.Value)
				continue
			}
			assert.Equal(t, StructEmptySlot, slot.Type, "k=%d slot %d", k, i)
			assert.Zero(t, slot.Len())
		}
		assert.Equal(t, k, b.inventoryCount)
	}
}

func TestInventorySlots_Overflow(t *testing.T) {
	s := character.Survivor{Inventory: inventoryOf(InventoryCapacity + 2)}

	b := newBuild(s, nil)
	slots := b.inventorySlots()

	assert.Len(t, slots, InventoryCapacity)
	assert.Equal(t, InventoryCapacity, b.inventoryCount)

	var overflow []Warning
	for _, w := range b.warnings {
		if w.Kind == WarningInventoryOverflow {
			overflow = append(overflow, w)
		}
	}
	require.Len(t, overflow, 1)
	assert.Equal(t, "14", overflow[0].Value)
}

func TestInventorySlots_UnknownCategory(t *testing.T) {
	s := character.Survivor{
		Inventory: []equipment.InventoryItem{
			{Category: equipment.Category("laser"), ID: "Item_Laser", Quantity: 2},
		},
	}

	b := newBuild(s, nil)
	slots := b.inventorySlots()

	assert.Equal(t, StructStackable, slots[0].Type)
	require.NotEmpty(t, b.warnings)
	assert.Equal(t, WarningUnknownCategory, b.warnings[0].Kind)
	assert.Equal(t, "inventory[0]", b.warnings[0].Field)
	assert.Equal(t, "laser", b.warnings[0].Value)
}

func TestInventorySlots_BlankItemKeepsPositionEmpty(t *testing.T) {
	s := character.Survivor{
		Inventory: []equipment.InventoryItem{
			{Category: equipment.CategoryAmmo, Quantity: 30},
			{Category: equipment.CategoryConsumable, ID: "Item_Bandage", Quantity: 2},
		},
	}

	b := newBuild(s, testCatalog())
	slots := b.inventorySlots()

	require.Len(t, slots, InventoryCapacity)
	assert.Equal(t, StructEmptySlot, slots[0].Type)
	assert.Equal(t, StructStackable, slots[1].Type)
	id, _ := slots[1].Lookup("ItemId")
	assert.Equal(t, "Item_Bandage", id.Value)
	assert.Equal(t, 1, b.inventoryCount)

	require.Len(t, b.warnings, 1)
	assert.Equal(t, WarningBlankItem, b.warnings[0].Kind)
	assert.Equal(t, "inventory[0]", b.warnings[0].Field)
}

func TestInventorySlots_ResolvesByIDThenName(t *testing.T) {
	s := character.Survivor{
		Inventory: []equipment.InventoryItem{
			{Category: equipment.CategoryConsumable, ID: "Bandages", Quantity: 2},
			{Category: equipment.CategoryConsumable, ID: "Old_Bandage", DisplayName: "Bandages", Quantity: 2},
			{Category: equipment.CategoryBackpack, DisplayName: "Hiking Pack"},
		},
	}

	b := newBuild(s, testCatalog())
	slots := b.inventorySlots()

	for i, want := range []string{"Item_Bandage", "Item_Bandage", "Backpack_Hiking"} {
		id, _ := slots[i].Lookup("ItemId")
		assert.Equal(t, want, id.Value, "slot %d", i)
	}
	assert.Empty(t, b.warnings)
}

func TestInventorySlots_InDocument(t *testing.T) {
	root := parse(Serialize(testSurvivor(), testCatalog()).Document)

	inventory := root.Child(savedoc.ElemInventory)
	assert.Equal(t, "12", inventory.Attr(savedoc.AttrCapacity))

	slots := inventory.Children(savedoc.ElemSlot)
	require.Len(t, slots, InventoryCapacity)
	for i, slot := range slots {
		assert.Equal(t, fmt.Sprint(i), slot.Attr(savedoc.AttrIndex))
	}
	assert.Equal(t, "Item_Bandage", property(slots[0], "ItemId").Attr(savedoc.AttrValue))
	stack := subStructure(slots[0], "Stack")
	require.NotNil(t, stack)
	assert.Equal(t, "3", property(stack, "Count").Attr(savedoc.AttrValue))
	assert.Equal(t, StructEmptySlot, slots[2].Attr(savedoc.AttrStructType))
}
