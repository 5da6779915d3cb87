/*
Package category exposes the category tree over HTTP.

# Routing Strategy

  - GET    /Category              : Nested forest of active categories.
  - POST   /Category              : Add-or-update (insert when id is absent or 0).
  - DELETE /Category?categoryIds= : Batch soft delete.
*/
package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/query"
)

// # Handler Implementation

// Handler translates category HTTP requests into [Service] calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getTree)
	router.Post("/", handler.addOrUpdate)
	router.Delete("/", handler.deleteCategories)

	return router
}

func (handler *Handler) getTree(writer http.ResponseWriter, request *http.Request) {
	forest, err := handler.service.GetTree(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, forest)
}

func (handler *Handler) addOrUpdate(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.service.AddOrUpdate(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, saved)
}

func (handler *Handler) deleteCategories(writer http.ResponseWriter, request *http.Request) {
	ids := query.Fold(request.URL.Query()).Ints("categoryIds")

	if err := handler.service.Delete(request.Context(), ids); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}
