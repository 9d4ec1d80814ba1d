package equipment

import "strings"

// Slot names one of the six fixed equipment positions
type Slot string

const (
	SlotBackpack    Slot = "Backpack"
	SlotMelee       Slot = "Melee"
	SlotCloseCombat Slot = "CloseCombat"
	SlotRanged      Slot = "Ranged"
	SlotSidearm     Slot = "Sidearm"
	SlotRucksack    Slot = "Rucksack"
)

// Slots returns the equipment slots in document order
func Slots() []Slot {
	return []Slot{SlotBackpack, SlotMelee, SlotCloseCombat, SlotRanged, SlotSidearm, SlotRucksack}
}

// Category returns the item category an equipped item in s is encoded as
func (s Slot) Category() Category {
	switch s {
	case SlotBackpack:
		return CategoryBackpack
	case SlotMelee:
		return CategoryMelee
	case SlotCloseCombat:
		return CategoryCloseCombat
	case SlotRanged:
		return CategoryRanged
	case SlotSidearm:
		return CategorySidearm
	case SlotRucksack:
		return CategoryResource
	}
	return CategoryUnknown
}

// Loadout holds the item selection for each equipment slot. An empty string
// means the slot is empty. Values may be canonical IDs or display names.
type Loadout struct {
	Backpack    string `json:"backpack,omitempty" yaml:"backpack,omitempty"`
	Melee       string `json:"melee,omitempty" yaml:"melee,omitempty"`
	CloseCombat string `json:"close_combat,omitempty" yaml:"close_combat,omitempty"`
	Ranged      string `json:"ranged,omitempty" yaml:"ranged,omitempty"`
	Sidearm     string `json:"sidearm,omitempty" yaml:"sidearm,omitempty"`
	Rucksack    string `json:"rucksack,omitempty" yaml:"rucksack,omitempty"`
}

// Get returns the selection held in s
func (l Loadout) Get(s Slot) string {
	switch s {
	case SlotBackpack:
		return l.Backpack
	case SlotMelee:
		return l.Melee
	case SlotCloseCombat:
		return l.CloseCombat
	case SlotRanged:
		return l.Ranged
	case SlotSidearm:
		return l.Sidearm
	case SlotRucksack:
		return l.Rucksack
	}
	return ""
}

// Filled returns the number of slots holding a non-blank selection
func (l Loadout) Filled() int {
	n := 0
	for _, s := range Slots() {
		if strings.TrimSpace(l.Get(s)) != "" {
			n++
		}
	}
	return n
}
