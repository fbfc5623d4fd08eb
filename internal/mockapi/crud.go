package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// resource describes one uniformly-shaped REST resource backed by a store table
type resource[V any] struct {
	table    string
	notFound string
	id       func(*V) int
	setID    func(*V, int)
}

// registerResource registers the conventional list/get/create/update/delete
// endpoints of a resource
func registerResource[V any](service *Service, router chi.Router, pattern string, protect func(http.HandlerFunc) http.HandlerFunc, res resource[V]) {
	router.Get("/"+pattern, protect(func(writer http.ResponseWriter, request *http.Request) {
		records, err := List[*V](service.storage, res.table)
		if err != nil {
			service.writeInternalError(writer, err)
			return
		}
		service.writeJSON(writer, http.StatusOK, records)
	}))

	router.Get("/"+pattern+"/{id}", protect(func(writer http.ResponseWriter, request *http.Request) {
		record, ok := lookup(service, writer, request, res)
		if !ok {
			return
		}
		service.writeJSON(writer, http.StatusOK, record)
	}))

	router.Post("/"+pattern, protect(func(writer http.ResponseWriter, request *http.Request) {
		record, ok := decodeBody[V](service, writer, request)
		if !ok {
			return
		}
		res.setID(record, service.storage.NextID(res.table))
		if err := service.storage.Put(res.table, record); err != nil {
			service.writeInternalError(writer, err)
			return
		}
		service.writeJSON(writer, http.StatusCreated, record)
	}))

	router.Put("/"+pattern+"/{id}", protect(func(writer http.ResponseWriter, request *http.Request) {
		existing, ok := lookup(service, writer, request, res)
		if !ok {
			return
		}
		record, ok := decodeBody[V](service, writer, request)
		if !ok {
			return
		}
		res.setID(record, res.id(existing))
		if err := service.storage.Put(res.table, record); err != nil {
			service.writeInternalError(writer, err)
			return
		}
		service.writeJSON(writer, http.StatusOK, record)
	}))

	router.Delete("/"+pattern+"/{id}", protect(func(writer http.ResponseWriter, request *http.Request) {
		id, ok := pathID(service, writer, request, "id")
		if !ok {
			return
		}
		deleted, err := service.storage.DeleteByID(res.table, id)
		if err != nil {
			service.writeInternalError(writer, err)
			return
		}
		if !deleted {
			service.writeError(writer, http.StatusNotFound, res.notFound)
			return
		}
		writer.WriteHeader(http.StatusNoContent)
	}))
}

// lookup resolves the record addressed by the request's id path parameter,
// writing the appropriate failure response when it cannot
func lookup[V any](service *Service, writer http.ResponseWriter, request *http.Request, res resource[V]) (*V, bool) {
	id, ok := pathID(service, writer, request, "id")
	if !ok {
		return nil, false
	}
	record, err := Get[*V](service.storage, res.table, id)
	if err != nil {
		service.writeInternalError(writer, err)
		return nil, false
	}
	if record == nil {
		service.writeError(writer, http.StatusNotFound, res.notFound)
		return nil, false
	}
	return record, true
}

// pathID parses an integer path parameter
func pathID(service *Service, writer http.ResponseWriter, request *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		service.writeError(writer, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// decodeBody parses the JSON request body into a fresh record
func decodeBody[V any](service *Service, writer http.ResponseWriter, request *http.Request) (*V, bool) {
	raw, err := io.ReadAll(request.Body)
	if err != nil {
		service.writeInternalError(writer, err)
		return nil, false
	}
	record := new(V)
	if err := json.Unmarshal(raw, record); err != nil {
		service.writeError(writer, http.StatusBadRequest, "Request body is not valid JSON")
		return nil, false
	}
	return record, true
}
