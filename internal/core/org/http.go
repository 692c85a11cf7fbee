package org

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
	router.Get("/", handler.listOrgs)
	router.Get("/{id}", handler.getOrg)
	router.Get("/slug/{slug}", handler.getOrgBySlug)

	// Structural changes require at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/upsert", handler.upsertOrg)
}

func (handler *Handler) listOrgs(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	orgType := queryParams.Get("orgType")

	// The parent filter is tri-state: parameter absent, the literal "null"
	// (top-level orgs only), or a specific parent id.
	parent := AnyParent()
	if queryParams.Has("parentId") {
		if raw := queryParams.Get("parentId"); raw == "null" || raw == "" {
			parent = RootOnly()
		} else {
			parent = ChildOf(raw)
		}
	}

	list, resultErr := handler.service.ListOrgsByType(request.Context(), orgType, parent).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if list == nil {
		list = []*Org{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getOrg(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, resultErr := handler.service.GetOrg(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) getOrgBySlug(writer http.ResponseWriter, request *http.Request) {
	slugParam := requestutil.Param(request, "slug")

	found, resultErr := handler.service.GetOrgBySlug(request.Context(), slugParam).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

type upsertOrgInput struct {
	Org *Org `json:"org"`
}

func (handler *Handler) upsertOrg(writer http.ResponseWriter, request *http.Request) {
	var input upsertOrgInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.Org == nil {
		respond.DomainError(writer, request, result.MissingField("org"))
		return
	}

	applyOrgDefaults(input.Org, time.Now().UTC())

	saved, resultErr := handler.service.UpsertOrg(request.Context(), input.Org).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, saved)
}

func applyOrgDefaults(o *Org, now time.Time) {
	if o.ID == "" {
		o.ID = entityid.NewOrgID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}
