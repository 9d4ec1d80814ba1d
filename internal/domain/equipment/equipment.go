package equipment

import "strings"

// Category is the closed set of item kinds the save format distinguishes.
// Each category maps to exactly one backing struct shape in the document.
type Category string

const (
	CategoryBackpack    Category = "backpack"
	CategoryMelee       Category = "melee"
	CategoryCloseCombat Category = "close-combat"
	CategoryRanged      Category = "ranged"
	CategorySidearm     Category = "sidearm"
	CategoryConsumable  Category = "consumable"
	CategoryAmmo        Category = "ammo"
	CategoryResource    Category = "resource"
	CategoryMisc        Category = "misc"
	CategoryUnknown     Category = ""
)

// Categories lists every known category in a stable order
func Categories() []Category {
	return []Category{
		CategoryBackpack,
		CategoryMelee,
		CategoryCloseCombat,
		CategoryRanged,
		CategorySidearm,
		CategoryConsumable,
		CategoryAmmo,
		CategoryResource,
		CategoryMisc,
	}
}

// ParseCategory accepts the category names the form and CSV exports use,
// e.g. "Close Combat", "close_combat" and "CloseCombat" all map to CategoryCloseCombat.
func ParseCategory(s string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)

	switch key {
	case "backpack", "backpacks":
		return CategoryBackpack, true
	case "melee":
		return CategoryMelee, true
	case "closecombat":
		return CategoryCloseCombat, true
	case "ranged", "rifle", "rifles":
		return CategoryRanged, true
	case "sidearm", "sidearms", "pistol":
		return CategorySidearm, true
	case "consumable", "consumables", "medicine", "food":
		return CategoryConsumable, true
	case "ammo", "ammunition":
		return CategoryAmmo, true
	case "resource", "resources", "rucksack":
		return CategoryResource, true
	case "misc", "miscellaneous", "other":
		return CategoryMisc, true
	}

	return CategoryUnknown, false
}

// UnmarshalText lets survivor files spell categories loosely
func (c *Category) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CategoryUnknown
		return nil
	}
	if parsed, ok := ParseCategory(string(text)); ok {
		*c = parsed
		return nil
	}
	// Keep the raw value so the serializer can report it
	*c = Category(text)
	return nil
}

// IsKnown reports whether c is one of Categories()
func (c Category) IsKnown() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// IsWeapon reports whether items of this category carry durability counters
func (c Category) IsWeapon() bool {
	switch c {
	case CategoryMelee, CategoryCloseCombat, CategoryRanged, CategorySidearm:
		return true
	}
	return false
}

// IsStackable reports whether items of this category carry a stack count
func (c Category) IsStackable() bool {
	switch c {
	case CategoryConsumable, CategoryAmmo, CategoryResource, CategoryMisc:
		return true
	}
	return false
}
