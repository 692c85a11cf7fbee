package series

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
	router.Get("/", handler.listSeries)
	router.Get("/{id}", handler.getSeries)

	// Schedule changes require at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/upsert", handler.upsertSeries)
}

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	orgID := queryParams.Get("orgId")
	activeOnly := queryParams.Get("activeOnly") == "true"

	list, resultErr := handler.service.ListSeriesByOrg(request.Context(), orgID, activeOnly).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if list == nil {
		list = []*Series{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, resultErr := handler.service.GetSeries(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

type upsertSeriesInput struct {
	Series *Series `json:"series"`
}

func (handler *Handler) upsertSeries(writer http.ResponseWriter, request *http.Request) {
	var input upsertSeriesInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.Series == nil {
		respond.DomainError(writer, request, result.MissingField("series"))
		return
	}

	applySeriesDefaults(input.Series, time.Now().UTC())

	saved, resultErr := handler.service.UpsertSeries(request.Context(), input.Series).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, saved)
}

func applySeriesDefaults(s *Series, now time.Time) {
	if s.ID == "" {
		s.ID = entityid.NewEventSeriesID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
