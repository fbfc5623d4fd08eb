package mockapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gmdesk/console/internal/gm"
)

// Seed populates the store with a small demo campaign and a game-master
// account (username "gm", password "torchlight")
func (service *Service) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("torchlight"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := service.storage.Put(tableUsers, &User{
		Username:     "gm",
		Email:        "gm@example.com",
		PasswordHash: hash,
		Role:         "ADMIN",
	}); err != nil {
		return err
	}

	items := []*gm.Item{
		{Name: "Torch", Type: "Utility", Description: "A stick wrapped in oiled rags.", Weight: 1, GoldValue: 1},
		{Name: "Longsword", Type: "WEAPON", Description: "A well-balanced blade.", Weight: 3, GoldValue: 15, DamageType: "Slashing", DamageRoll: "1d8"},
		{Name: "Ring of Warmth", Type: "RING", Description: "Keeps its wearer comfortable in the cold.", Weight: 0, GoldValue: 250, Magic: true, MagicalProperties: "Cold resistance"},
	}
	for _, item := range items {
		item.ID = service.storage.NextID(tableItems)
		if err := service.storage.Put(tableItems, item); err != nil {
			return err
		}
	}

	spells := []*gm.Spell{
		{Name: "Light", Type: "Evocation", Level: 0, Description: "An object sheds bright light."},
		{Name: "Fireball", Type: "Evocation", Level: 3, Description: "A bright streak blossoms into flame."},
	}
	for _, spell := range spells {
		spell.ID = service.storage.NextID(tableSpells)
		if err := service.storage.Put(tableSpells, spell); err != nil {
			return err
		}
	}

	monsters := []*gm.Monster{
		{Name: "Goblin", Type: "Humanoid", Health: 7, Attack: 4, Defense: 15, Abilities: "Nimble Escape"},
		{Name: "Young Red Dragon", Type: "Dragon", Health: 178, Attack: 10, Defense: 18, Boss: true, Abilities: "Fire Breath"},
	}
	for _, monster := range monsters {
		monster.ID = service.storage.NextID(tableMonsters)
		if err := service.storage.Put(tableMonsters, monster); err != nil {
			return err
		}
	}

	characters := []*gm.Character{
		{
			Name: "Brynn", Level: 3, Race: "HALFLING", CharacterClass: "ROGUE", Status: "Alive",
			Alignment: "Chaotic Good", Strength: 10, Dexterity: 17, Constitution: 12,
			Intelligence: 13, Wisdom: 11, Charisma: 14, CurrentHP: 21, MaxHP: 21,
		},
		{
			Name: "Thorgrim", Level: 3, Race: "DWARF", CharacterClass: "FIGHTER", Status: "Alive",
			Alignment: "Lawful Neutral", Strength: 16, Dexterity: 10, Constitution: 16,
			Intelligence: 9, Wisdom: 12, Charisma: 8, CurrentHP: 18, MaxHP: 31,
		},
	}
	for _, character := range characters {
		character.ID = service.storage.NextID(tableCharacters)
		if err := service.storage.Put(tableCharacters, character); err != nil {
			return err
		}
	}

	npc := &gm.NPC{Name: "Mira the Innkeeper", Role: "Merchant", Description: "Knows every rumor in town.", Hostility: false}
	npc.ID = service.storage.NextID(tableNPCs)
	if err := service.storage.Put(tableNPCs, npc); err != nil {
		return err
	}

	location := &gm.Location{
		Name:        "The Gilded Tankard",
		Description: "A smoky tavern at the edge of the market square.",
		NPCs:        []gm.NPC{*npc},
	}
	location.ID = service.storage.NextID(tableLocations)
	if err := service.storage.Put(tableLocations, location); err != nil {
		return err
	}

	quest := &gm.Quest{Title: "Rats in the Cellar", Type: "Side", Description: "The innkeeper hears scratching below.", Completion: false}
	quest.ID = service.storage.NextID(tableQuests)
	if err := service.storage.Put(tableQuests, quest); err != nil {
		return err
	}

	return service.storage.Put(tableStory, &gm.Story{
		ID:   storyID,
		Text: "The party arrives in Oakhaven as the autumn rains set in.",
	})
}
