package location

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/internal/platform/middleware"
	requestutil "github.com/f3nation/f3api/internal/platform/request"
	"github.com/f3nation/f3api/internal/platform/respond"
	"github.com/f3nation/f3api/internal/platform/sec"
	"github.com/f3nation/f3api/pkg/entityid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listLocations)
	router.Get("/{id}", handler.getLocation)

	// Site changes require at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/upsert", handler.upsertLocation)
}

func (handler *Handler) listLocations(writer http.ResponseWriter, request *http.Request) {
	orgID := request.URL.Query().Get("orgId")

	list, resultErr := handler.service.ListLocationsByOrg(request.Context(), orgID).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if list == nil {
		list = []*Location{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, resultErr := handler.service.GetLocation(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

type upsertLocationInput struct {
	Location *Location `json:"location"`
}

func (handler *Handler) upsertLocation(writer http.ResponseWriter, request *http.Request) {
	var input upsertLocationInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.Location == nil {
		respond.DomainError(writer, request, result.MissingField("location"))
		return
	}

	applyLocationDefaults(input.Location, time.Now().UTC())

	saved, resultErr := handler.service.UpsertLocation(request.Context(), input.Location).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, saved)
}

func applyLocationDefaults(l *Location, now time.Time) {
	if l.ID == "" {
		l.ID = entityid.NewLocationID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
}
