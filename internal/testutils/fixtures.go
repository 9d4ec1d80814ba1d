package testutils

import (
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/character"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/equipment"
	"github.com/KirkDiggler/survivor-save-builder/internal/domain/reference"
)

// CreateTestSurvivor creates a fully specified survivor whose selections all
// resolve against CreateTestCatalog.
func CreateTestSurvivor(id, ownerID, firstName string) *character.Survivor {
	return &character.Survivor{
		CharacterID: id,
		OwnerID:     ownerID,
		FirstName:   firstName,
		LastName:    "Ortiz",
		Nickname:    "Doc",
		Gender:      character.GenderFemale,
		AgeRange:    character.AgeYoung,
		Philosophy1: "Prudent",
		Philosophy2: "Heroic",
		Skills: character.Skills{
			Cardio:   character.CoreSkill{Level: 6, Specialization: "Powerhouse"},
			Wits:     character.CoreSkill{Level: 3},
			Fighting: character.CoreSkill{Level: 2},
			Fifth: &character.FifthSkill{
				Pool:  character.SkillPoolCommunity,
				ID:    "Chemistry",
				Level: 2,
			},
		},
		Traits: []character.Trait{
			{ID: "Gourmet", Buffs: []character.Buff{{Stat: character.BuffHealth, Amount: 10}}},
			{DisplayName: "Former Athlete", Buffs: []character.Buff{{Stat: character.BuffStamina, Amount: 15}}},
		},
		Equipment: equipment.Loadout{
			Backpack: "Hiking Pack",
			Melee:    "Machete",
			Ranged:   "Hunting Rifle",
		},
		Inventory: []equipment.InventoryItem{
			{Category: equipment.CategoryConsumable, DisplayName: "Bandages", Quantity: 3},
			{Category: equipment.CategoryAmmo, DisplayName: "9mm Ammo", Quantity: 40},
		},
	}
}

// CreateTestCatalog creates a catalog covering every table
func CreateTestCatalog() *reference.Catalog {
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
	)
	c.Add(reference.TableBackpacks,
		reference.Entry{ID: "Backpack_Hiking", DisplayName: "Hiking Pack"},
	)
	c.Add(reference.TableItems,
		reference.Entry{ID: "Item_Bandage", DisplayName: "Bandages"},
		reference.Entry{ID: "Ammo_9mm", DisplayName: "9mm Ammo"},
	)
	c.Add(reference.TableVoices,
		reference.Entry{ID: "Voice_Ava", DisplayName: "Ava"},
	)
	c.Add(reference.TableCulturalBackgrounds,
		reference.Entry{ID: "Background_Rural", DisplayName: "Rural"},
	)
	c.Add(reference.TableHumanDefinitions,
		reference.Entry{ID: "HumanDefinition_Adult_F", DisplayName: "Adult Female"},
	)
	return c
}
