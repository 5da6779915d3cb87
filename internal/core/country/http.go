package country

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the country endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCountries)
	router.Post("/", handler.createCountry)
	router.Put("/", handler.updateCountry)
	router.Delete("/", handler.deleteCountry)

	return router
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, created)
}

func (handler *Handler) updateCountry(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCountry(writer http.ResponseWriter, request *http.Request) {
	id := query.Fold(request.URL.Query()).Int("id")
	if id == nil || *id <= 0 {
		respond.Error(writer, request, apperr.ValidationError("Invalid identifier", apperr.FieldError{
			Field:   FieldID,
			Message: "Must be a positive integer",
		}))
		return
	}

	if err := handler.service.Delete(request.Context(), *id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}
