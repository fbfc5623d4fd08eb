// Package mockapi implements a development stub of the game-master API. It
// serves the REST surface the console client consumes so the client can be
// developed and integration-tested without the real backend. It mirrors the
// backend's wire behavior, including its `{"error": ...}` failure payloads
// and bearer-token session handling.
package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/gmdesk/console/internal/function"
	"github.com/gmdesk/console/internal/gm"
)

// Config holds the stub API configuration
type Config struct {
	ListenAddress string
	AllowedOrigin string
	SessionTTL    time.Duration
}

// Service represents the stub API service
type Service struct {
	config  Config
	storage *Store
	server  *http.Server
}

// New creates a new stub API service with an empty resource store
func New(config Config) (*Service, error) {
	storage, err := NewStore()
	if err != nil {
		return nil, err
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 12 * time.Hour
	}
	return &Service{
		config:  config,
		storage: storage,
	}, nil
}

// Storage exposes the underlying resource store for seeding
func (service *Service) Storage() *Store {
	return service.storage
}

// Handler builds the HTTP handler serving the stub API
func (service *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.config.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writeError(writer, http.StatusNotFound, "Resource not found")
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writeError(writer, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Protected endpoints require a live bearer session
	protected := func(end http.HandlerFunc) http.HandlerFunc {
		return function.Nest(end, service.middlewareVerifySession)
	}

	router.Route("/api", func(router chi.Router) {
		router.Post("/auth/login", service.endpointLogin)
		router.Post("/auth/register", service.endpointRegister)
		router.Get("/auth/validate", service.endpointValidate)

		registerResource(service, router, "characters", protected, resource[gm.Character]{
			table:    tableCharacters,
			notFound: "Character not found",
			id:       func(character *gm.Character) int { return character.ID },
			setID:    func(character *gm.Character, id int) { character.ID = id },
		})
		router.Put("/characters/heal-batch", protected(service.endpointHealParty))
		router.Put("/characters/{id}/heal", protected(service.endpointHealCharacter))
		router.Post("/characters/{id}/items/{itemId}", protected(service.endpointAssignItem))
		router.Delete("/characters/{id}/items/{itemId}", protected(service.endpointRemoveItem))
		router.Post("/characters/{id}/spells/{spellId}", protected(service.endpointAssignSpell))
		router.Delete("/characters/{id}/spells/{spellId}", protected(service.endpointRemoveSpell))
		router.Post("/characters/{id}/equip", protected(service.endpointEquipItem))

		registerResource(service, router, "items", protected, resource[gm.Item]{
			table:    tableItems,
			notFound: "Item not found",
			id:       func(item *gm.Item) int { return item.ID },
			setID:    func(item *gm.Item, id int) { item.ID = id },
		})
		registerResource(service, router, "spells", protected, resource[gm.Spell]{
			table:    tableSpells,
			notFound: "Spell not found",
			id:       func(spell *gm.Spell) int { return spell.ID },
			setID:    func(spell *gm.Spell, id int) { spell.ID = id },
		})
		registerResource(service, router, "monsters", protected, resource[gm.Monster]{
			table:    tableMonsters,
			notFound: "Monster not found",
			id:       func(monster *gm.Monster) int { return monster.ID },
			setID:    func(monster *gm.Monster, id int) { monster.ID = id },
		})
		registerResource(service, router, "npcs", protected, resource[gm.NPC]{
			table:    tableNPCs,
			notFound: "NPC not found",
			id:       func(npc *gm.NPC) int { return npc.ID },
			setID:    func(npc *gm.NPC, id int) { npc.ID = id },
		})
		registerResource(service, router, "locations", protected, resource[gm.Location]{
			table:    tableLocations,
			notFound: "Location not found",
			id:       func(location *gm.Location) int { return location.ID },
			setID:    func(location *gm.Location, id int) { location.ID = id },
		})
		router.Post("/locations/{id}/add-random-monster", protected(service.endpointAddRandomMonster))

		registerResource(service, router, "quests", protected, resource[gm.Quest]{
			table:    tableQuests,
			notFound: "Quest not found",
			id:       func(quest *gm.Quest) int { return quest.ID },
			setID:    func(quest *gm.Quest, id int) { quest.ID = id },
		})

		router.Get("/story", protected(service.endpointGetStory))
		router.Put("/story", protected(service.endpointUpdateStory))
	})

	return router
}

// Startup starts up the stub API server.
// Any error raised by the underlying listener is reported to the given channel.
func (service *Service) Startup(errs chan<- error) {
	server := &http.Server{
		Addr:    service.config.ListenAddress,
		Handler: service.Handler(),
	}
	service.server = server
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()
}

// Shutdown shuts down the stub API server
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

// middlewareVerifySession makes sure the requesting client carries a live
// bearer session and injects it into the request context
func (service *Service) middlewareVerifySession(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		session, err := service.sessionFromRequest(request)
		if err != nil {
			service.writeInternalError(writer, err)
			return
		}
		if session == nil || session.Expired() {
			service.writeError(writer, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		request = request.WithContext(context.WithValue(request.Context(), sessionContextKey, session))
		next(writer, request)
	}
}

type contextKey string

var sessionContextKey contextKey = "session"

// sessionFromRequest resolves the session referenced by the request's bearer
// token, or nil if the request carries none
func (service *Service) sessionFromRequest(request *http.Request) (*Session, error) {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}
	rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if rawToken == "" {
		return nil, nil
	}
	return service.storage.SessionByRawToken(rawToken)
}

// writeJSON writes the JSON representation of value using the given status code
func (service *Service) writeJSON(writer http.ResponseWriter, code int, value any) {
	raw, _ := json.Marshal(value)
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(code)
	writer.Write(raw)
}

// writeError sends a failure payload in the backend's `{"error": ...}` shape
func (service *Service) writeError(writer http.ResponseWriter, status int, message string) {
	service.writeJSON(writer, status, map[string]string{"error": message})
}

// writeInternalError processes an internal server error and writes it to the response
func (service *Service) writeInternalError(writer http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("the stub API experienced an unexpected error")
	service.writeError(writer, http.StatusInternalServerError, "Internal error")
}
