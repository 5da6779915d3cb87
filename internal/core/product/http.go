/*
Package product exposes product listing and maintenance over HTTP.

# Routing Strategy

  - GET    /Products             : Filtered, sorted and windowed listing.
  - POST   /Products             : Add-or-update.
  - PUT    /Products             : Add-or-update (same semantics as POST).
  - DELETE /Products?productIds= : Batch soft delete.
  - DELETE /Products/{id}        : Single soft delete.
*/
package product

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pagination"
	"github.com/taibuivan/catalog/pkg/query"
)

// # Handler Implementation

// Handler translates product HTTP requests into [Service] calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the product endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Post("/", handler.addOrUpdate)
	router.Put("/", handler.addOrUpdate)
	router.Delete("/", handler.deleteProducts)
	router.Delete("/{id}", handler.deleteProduct)

	return router
}

/*
FilterFromQuery parses listing criteria from URL query parameters.

Parameter names are case-insensitive. Malformed numbers and dates are
ignored rather than rejected, and sortByDescendingOrder defaults to true.
*/
func FilterFromQuery(values query.Values) Filter {
	return Filter{
		IDs:         values.Ints("ids"),
		CategoryIDs: values.Ints("categoryIds"),
		Code:        values.Get("code"),
		Name:        values.Get("name"),
		PriceStart:  values.Float("priceStart"),
		PriceEnd:    values.Float("priceEnd"),
		CountryIDs:  values.Ints("countryIds"),
		DateStart:   values.Time("dateStart"),
		DateEnd:     values.Time("dateEnd"),
		SortBy:      SortKey(strings.ToLower(values.Get("sortBy"))),
		Descending:  values.Bool("sortByDescendingOrder", true),
		Window:      pagination.FromQuery(values),
	}
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	filter := FilterFromQuery(query.Fold(request.URL.Query()))

	result, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
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

func (handler *Handler) deleteProducts(writer http.ResponseWriter, request *http.Request) {
	ids := query.Fold(request.URL.Query()).Ints("productIds")

	if err := handler.service.Delete(request.Context(), ids); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOne(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}
