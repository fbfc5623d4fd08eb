package mockapi

import (
	"net/http"
	"strings"

	"github.com/gmdesk/console/internal/gm"
)

// characterByPath resolves the character addressed by the request's id path parameter
func (service *Service) characterByPath(writer http.ResponseWriter, request *http.Request) (*gm.Character, bool) {
	id, ok := pathID(service, writer, request, "id")
	if !ok {
		return nil, false
	}
	character, err := Get[*gm.Character](service.storage, tableCharacters, id)
	if err != nil {
		service.writeInternalError(writer, err)
		return nil, false
	}
	if character == nil {
		service.writeError(writer, http.StatusNotFound, "Character not found")
		return nil, false
	}

	// Records inside the store are shared; hand out a mutable clone
	clone := *character
	clone.Items = append([]gm.Item(nil), character.Items...)
	clone.Spells = append([]gm.Spell(nil), character.Spells...)
	return &clone, true
}

// heal restores a character to full hit points
func heal(character *gm.Character) {
	character.CurrentHP = character.MaxHP
	character.Status = "Alive"
}

// endpointHealCharacter restores a single character to full hit points
func (service *Service) endpointHealCharacter(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	heal(character)
	if err := service.storage.Put(tableCharacters, character); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, character)
}

// endpointHealParty restores a batch of characters to full hit points.
// Unknown IDs are skipped, matching the backend's findAllById semantics.
func (service *Service) endpointHealParty(writer http.ResponseWriter, request *http.Request) {
	ids, ok := decodeBody[[]int](service, writer, request)
	if !ok {
		return
	}

	healed := []*gm.Character{}
	for _, id := range *ids {
		character, err := Get[*gm.Character](service.storage, tableCharacters, id)
		if err != nil {
			service.writeInternalError(writer, err)
			return
		}
		if character == nil {
			continue
		}
		clone := *character
		heal(&clone)
		if err := service.storage.Put(tableCharacters, &clone); err != nil {
			service.writeInternalError(writer, err)
			return
		}
		healed = append(healed, &clone)
	}
	service.writeJSON(writer, http.StatusOK, healed)
}

// endpointAssignItem adds an item to a character's inventory, enforcing the
// carry limits (at most 2 weapons, at most 4 rings)
func (service *Service) endpointAssignItem(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	itemID, ok := pathID(service, writer, request, "itemId")
	if !ok {
		return
	}
	item, err := Get[*gm.Item](service.storage, tableItems, itemID)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if item == nil {
		service.writeError(writer, http.StatusNotFound, "Item not found")
		return
	}

	for _, owned := range character.Items {
		if owned.ID == item.ID {
			service.writeJSON(writer, http.StatusOK, character)
			return
		}
	}

	weapons, rings := 0, 0
	for i := range character.Items {
		if character.Items[i].Weapon() {
			weapons++
		}
		if isRing(&character.Items[i]) {
			rings++
		}
	}
	if item.Weapon() && weapons >= 2 {
		service.writeError(writer, http.StatusBadRequest, "Character can't carry more than 2 weapons.")
		return
	}
	if isRing(item) && rings >= 4 {
		service.writeError(writer, http.StatusBadRequest, "Character can't wear more than 4 rings.")
		return
	}

	character.Items = append(character.Items, *item)
	if err := service.storage.Put(tableCharacters, character); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, character)
}

// endpointRemoveItem removes an item from a character's inventory and unequips it
func (service *Service) endpointRemoveItem(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	itemID, ok := pathID(service, writer, request, "itemId")
	if !ok {
		return
	}
	item, err := Get[*gm.Item](service.storage, tableItems, itemID)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if item == nil {
		service.writeError(writer, http.StatusNotFound, "Item not found")
		return
	}

	kept := make([]gm.Item, 0, len(character.Items))
	for _, owned := range character.Items {
		if owned.ID != itemID {
			kept = append(kept, owned)
		}
	}
	character.Items = kept

	unequipped := *item
	unequipped.EquipState = false
	if err := service.storage.Put(tableItems, &unequipped); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if err := service.storage.Put(tableCharacters, character); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, character)
}

// endpointAssignSpell teaches a spell to a character if it does not know it yet
func (service *Service) endpointAssignSpell(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	spellID, ok := pathID(service, writer, request, "spellId")
	if !ok {
		return
	}
	spell, err := Get[*gm.Spell](service.storage, tableSpells, spellID)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if spell == nil {
		service.writeError(writer, http.StatusNotFound, "Spell not found")
		return
	}

	known := false
	for _, owned := range character.Spells {
		if owned.ID == spellID {
			known = true
			break
		}
	}
	if !known {
		character.Spells = append(character.Spells, *spell)
		if err := service.storage.Put(tableCharacters, character); err != nil {
			service.writeInternalError(writer, err)
			return
		}
	}
	service.writeJSON(writer, http.StatusOK, character)
}

// endpointRemoveSpell removes a spell from a character
func (service *Service) endpointRemoveSpell(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	spellID, ok := pathID(service, writer, request, "spellId")
	if !ok {
		return
	}

	kept := make([]gm.Spell, 0, len(character.Spells))
	for _, owned := range character.Spells {
		if owned.ID != spellID {
			kept = append(kept, owned)
		}
	}
	character.Spells = kept

	if err := service.storage.Put(tableCharacters, character); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, character)
}

// endpointEquipItem equips or unequips an item the character owns
func (service *Service) endpointEquipItem(writer http.ResponseWriter, request *http.Request) {
	character, ok := service.characterByPath(writer, request)
	if !ok {
		return
	}
	body, ok := decodeBody[struct {
		ItemID int  `json:"itemId"`
		Equip  bool `json:"equip"`
	}](service, writer, request)
	if !ok {
		return
	}

	owned := -1
	for i := range character.Items {
		if character.Items[i].ID == body.ItemID {
			owned = i
			break
		}
	}
	if owned < 0 {
		service.writeError(writer, http.StatusBadRequest, "Character does not own this item.")
		return
	}

	item := &character.Items[owned]
	if body.Equip && !item.Equippable() {
		service.writeError(writer, http.StatusBadRequest, "This item cannot be equipped.")
		return
	}
	item.EquipState = body.Equip

	if record, err := Get[*gm.Item](service.storage, tableItems, item.ID); err != nil {
		service.writeInternalError(writer, err)
		return
	} else if record != nil {
		updated := *record
		updated.EquipState = body.Equip
		if err := service.storage.Put(tableItems, &updated); err != nil {
			service.writeInternalError(writer, err)
			return
		}
	}

	if err := service.storage.Put(tableCharacters, character); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, character)
}

func isRing(item *gm.Item) bool {
	return strings.EqualFold(item.Type, "RING")
}
