package taxonomy

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
	router.Get("/", handler.listTerms)
	router.Get("/{kind}/{key}", handler.getTerm)

	// Vocabulary changes require at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/upsert", handler.upsertTerm)
}

func (handler *Handler) listTerms(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	orgID := queryParams.Get("orgId")
	kind := queryParams.Get("kind")
	activeOnly := queryParams.Get("activeOnly") == "true"

	list, resultErr := handler.service.ListTerms(request.Context(), orgID, kind, activeOnly).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if list == nil {
		list = []*Term{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getTerm(writer http.ResponseWriter, request *http.Request) {
	orgID := request.URL.Query().Get("orgId")
	kind := requestutil.Param(request, "kind")
	key := requestutil.Param(request, "key")

	found, resultErr := handler.service.GetTerm(request.Context(), orgID, kind, key).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

type upsertTermInput struct {
	Term *Term `json:"term"`
}

func (handler *Handler) upsertTerm(writer http.ResponseWriter, request *http.Request) {
	var input upsertTermInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.Term == nil {
		respond.DomainError(writer, request, result.MissingField("term"))
		return
	}

	applyTermDefaults(input.Term, time.Now().UTC())

	saved, resultErr := handler.service.UpsertTerm(request.Context(), input.Term).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, saved)
}

func applyTermDefaults(term *Term, now time.Time) {
	if term.ID == "" {
		term.ID = entityid.NewTaxonomyTermID()
	}
	if term.CreatedAt.IsZero() {
		term.CreatedAt = now
	}
	term.UpdatedAt = now
}
