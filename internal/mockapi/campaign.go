package mockapi

import (
	"math/rand"
	"net/http"

	"github.com/gmdesk/console/internal/gm"
)

// storyID is the key of the singleton running-story record
const storyID = 1

// endpointAddRandomMonster rolls a uniformly random bestiary entry into the
// location, incrementing the headcount if the monster already lurks there
func (service *Service) endpointAddRandomMonster(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(service, writer, request, "id")
	if !ok {
		return
	}
	location, err := Get[*gm.Location](service.storage, tableLocations, id)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if location == nil {
		service.writeError(writer, http.StatusNotFound, "Location not found")
		return
	}

	monsters, err := List[*gm.Monster](service.storage, tableMonsters)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if len(monsters) == 0 {
		service.writeError(writer, http.StatusBadRequest, "The bestiary is empty.")
		return
	}
	rolled := monsters[rand.Intn(len(monsters))]

	clone := *location
	clone.MonstersInLocation = append([]gm.MonsterInLocation(nil), location.MonstersInLocation...)

	found := false
	for i := range clone.MonstersInLocation {
		link := &clone.MonstersInLocation[i]
		if link.Monster != nil && link.Monster.ID == rolled.ID {
			link.Quantity++
			found = true
			break
		}
	}
	if !found {
		clone.MonstersInLocation = append(clone.MonstersInLocation, gm.MonsterInLocation{
			ID:       len(clone.MonstersInLocation) + 1,
			Monster:  rolled,
			Quantity: 1,
		})
	}

	if err := service.storage.Put(tableLocations, &clone); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, &clone)
}

// endpointGetStory retrieves the singleton running-story record
func (service *Service) endpointGetStory(writer http.ResponseWriter, request *http.Request) {
	story, err := Get[*gm.Story](service.storage, tableStory, storyID)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if story == nil {
		story = &gm.Story{ID: storyID}
	}
	service.writeJSON(writer, http.StatusOK, story)
}

// endpointUpdateStory replaces the singleton running-story record
func (service *Service) endpointUpdateStory(writer http.ResponseWriter, request *http.Request) {
	story, ok := decodeBody[gm.Story](service, writer, request)
	if !ok {
		return
	}
	story.ID = storyID
	if err := service.storage.Put(tableStory, story); err != nil {
		service.writeInternalError(writer, err)
		return
	}
	service.writeJSON(writer, http.StatusOK, story)
}
