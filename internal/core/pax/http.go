package pax

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
	router.Get("/", handler.listPax)
	router.Get("/{id}", handler.getPax)

	// Roster changes require at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/upsert", handler.upsertPax)
}

func (handler *Handler) listPax(writer http.ResponseWriter, request *http.Request) {
	orgID := request.URL.Query().Get("orgId")

	list, resultErr := handler.service.ListPaxByOrg(request.Context(), orgID).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	// An org with no pax serializes as an empty array, not null
	if list == nil {
		list = []*Pax{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getPax(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, resultErr := handler.service.GetPax(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

type upsertPaxInput struct {
	Pax *Pax `json:"pax"`
}

func (handler *Handler) upsertPax(writer http.ResponseWriter, request *http.Request) {
	var input upsertPaxInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.Pax == nil {
		respond.DomainError(writer, request, result.MissingField("pax"))
		return
	}

	applyPaxDefaults(input.Pax, time.Now().UTC())

	saved, resultErr := handler.service.UpsertPax(request.Context(), input.Pax).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, saved)
}

// applyPaxDefaults fills the writer-side fields: a generated id when absent,
// a preserved-or-fresh creation stamp, and an always-fresh update stamp.
func applyPaxDefaults(p *Pax, now time.Time) {
	if p.ID == "" {
		p.ID = entityid.NewPaxID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
