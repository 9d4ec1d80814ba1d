package serializer

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
	"github.com/KirkDiggler/survivor-save-builder/internal/savedoc"
)

func testCatalog() *reference.Catalog {
	c := reference.NewCatalog()
	c.Add(reference.TableTraits,
		reference.Entry{ID: "Trait_Gourmet", DisplayName: "Gourmet"},
		reference.Entry{ID: "Trait_Athlete", DisplayName: "Former Athlete"},
	)
	c.Add(reference.TableSkills,
		reference.Entry{ID: "Skill_Chemistry", DisplayName: "Chemistry"},
	)
	c.Add(reference.TableWeapons,
		reference.Entry{ID: "Weapon_Machete", DisplayName: "Machete"},
		reference.Entry{ID: "Weapon_Rifle_Hunting", DisplayName: "Hunting Rifle"},
		reference.Entry{ID: "Weapon_Pistol_9mm", DisplayName: "9mm Pistol"},
		reference.Entry{ID: "Weapon_Knife_Kitchen", DisplayName: "Kitchen Knife"},
	)
	c.Add(reference.TableBackpacks,
		reference.Entry{ID: "Backpack_Hiking", DisplayName: "Hiking Pack"},
	)
	c.Add(reference.TableItems,
		reference.Entry{ID: "Item_Bandage", DisplayName: "Bandages"},
		reference.Entry{ID: "Ammo_9mm", DisplayName: "9mm Ammo"},
		reference.Entry{ID: "Resource_Food", DisplayName: "Food Rucksack"},
	)
	return c
}

func testSurvivor() character.Survivor {
	return character.Survivor{
		CharacterID: "2f1b6c0e-3b7a-4c8e-9d55-0f6a1d2e3c4b",
		FirstName:   "Maya",
		LastName:    "Ortiz",
		Nickname:    "Doc",
		Gender:      character.GenderFemale,
		AgeRange:    character.AgeYoung,
		Philosophy1: "Prudent",
		Philosophy2: "Heroic",
		Skills: character.Skills{
			Cardio:   character.CoreSkill{Level: 6, Specialization: "Powerhouse"},
			Wits:     character.CoreSkill{Level: 4, Specialization: "Scholar"},
			Shooting: character.CoreSkill{Level: 2},
			Fifth: &character.FifthSkill{
				Pool:  character.SkillPoolCommunity,
				ID:    "Chemistry",
				Level: 3,
			},
		},
		Traits: []character.Trait{
			{ID: "Gourmet", Buffs: []character.Buff{{Stat: character.BuffHealth, Amount: 10}}},
			{ID: "▶ +10 Health"},
			{ID: "Trait_Athlete", Buffs: []character.Buff{{Stat: character.BuffStamina, Amount: 15}}},
		},
		Equipment: equipment.Loadout{
			Backpack: "Hiking Pack",
			Melee:    "Machete",
			Ranged:   "Hunting Rifle",
			Sidearm:  "9mm Pistol",
			Rucksack: "Food Rucksack",
		},
		Inventory: []equipment.InventoryItem{
			{Category: equipment.CategoryConsumable, DisplayName: "Bandages", Quantity: 3},
			{Category: equipment.CategoryAmmo, ID: "Ammo_9mm", Quantity: 50},
		},
	}
}

// parse renders and re-reads a document, failing loudly on bad XML
func parse(doc []byte) *savedoc.Node {
	root, err := savedoc.Parse(doc)
	if err != nil {
		panic(err)
	}
	return root
}

func stats(n *savedoc.Node) []*savedoc.Node {
	return n.Child(savedoc.ElemStats).Children(savedoc.ElemProperty)
}

func property(n *savedoc.Node, name string) *savedoc.Node {
	for _, p := range stats(n) {
		if p.Attr(savedoc.AttrName) == name {
			return p
		}
	}
	return nil
}

func subStructure(n *savedoc.Node, name string) *savedoc.Node {
	for _, sub := range n.Child(savedoc.ElemSubStructures).Children(savedoc.ElemSubStructure) {
		if sub.Attr(savedoc.AttrName) == name {
			return sub
		}
	}
	return nil
}

func characterData(doc []byte) *savedoc.Node {
	return parse(doc).Child(savedoc.ElemCharacterData)
}

func elements(n *savedoc.Node, name string) []*savedoc.Node {
	return subStructure(n, name).Children(savedoc.ElemElement)
}

func newBuild(s character.Survivor, store reference.Store) *build {
	if store == nil {
		store = reference.Empty
	}
	snapshot, _ := s.WithDefaults(store)
	return &build{
		survivor: snapshot,
		store:    store,
		policy:   LooksLikeDisplayName,
		quiet:    true,
		equipped: make(map[equipment.Slot]string),
	}
}
