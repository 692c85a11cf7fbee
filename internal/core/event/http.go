package event

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
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Get("/{id}/attendance", handler.listAttendance)

	// Posting a beatdown requires at least a site Q
	router.With(middleware.RequireRole(sec.RoleSiteQ)).Post("/", handler.createEvent)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	orgID := queryParams.Get("orgId")
	dates := DateRange{
		From: queryParams.Get("fromDate"),
		To:   queryParams.Get("toDate"),
	}

	list, resultErr := handler.service.ListEventsByOrg(request.Context(), orgID, dates).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if list == nil {
		list = []*Instance{}
	}
	respond.OK(writer, list)
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, resultErr := handler.service.GetEvent(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) listAttendance(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	rows, resultErr := handler.service.ListAttendance(request.Context(), id).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}

	if rows == nil {
		rows = []*Attendance{}
	}
	respond.OK(writer, rows)
}

type createEventInput struct {
	EventInstance *Instance     `json:"eventInstance"`
	Attendance    []*Attendance `json:"attendance"`
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input createEventInput
	if resultErr := requestutil.DecodeJSON(request, &input); resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	if input.EventInstance == nil {
		respond.DomainError(writer, request, result.MissingField("eventInstance"))
		return
	}

	now := time.Now().UTC()
	applyEventDefaults(input.EventInstance, now)
	for _, row := range input.Attendance {
		applyAttendanceDefaults(row, now)
	}

	created, resultErr := handler.service.CreateEventWithAttendance(
		request.Context(), input.EventInstance, input.Attendance,
	).Unpack()
	if resultErr != nil {
		respond.DomainError(writer, request, resultErr)
		return
	}
	respond.Created(writer, created)
}

// applyEventDefaults fills the writer-side fields: a generated id when
// absent, a preserved-or-fresh creation stamp, and a fresh update stamp.
func applyEventDefaults(instance *Instance, now time.Time) {
	if instance.ID == "" {
		instance.ID = entityid.NewEventInstanceID()
	}
	if instance.CreatedAt.IsZero() {
		instance.CreatedAt = now
	}
	instance.UpdatedAt = now
}

func applyAttendanceDefaults(row *Attendance, now time.Time) {
	if row == nil {
		return
	}
	if row.ID == "" {
		row.ID = entityid.NewAttendanceID()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
}
