package event

import (
	"context"
	"log/slog"

	"github.com/f3nation/f3api/internal/domain/result"
)

// Service coordinates event instances and their attendance rows.
type Service struct {
	events     Repository
	attendance AttendanceRepository
	logger     *slog.Logger
}

func NewService(events Repository, attendance AttendanceRepository, logger *slog.Logger) *Service {
	return &Service{
		events:     events,
		attendance: attendance,
		logger:     logger,
	}
}

// GetEvent looks up a single event instance by id.
func (service *Service) GetEvent(ctx context.Context, id string) result.Result[*Instance] {
	if id == "" {
		return result.Failure[*Instance](result.MissingField(FieldID))
	}

	found, err := service.events.GetByID(ctx, id)
	if err != nil {
		return result.Failure[*Instance](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Instance](result.EventNotFound(id))
	}

	return result.Success(found)
}

// ListEventsByOrg returns the org's live event instances within the optional
// inclusive date range, ascending by start date.
func (service *Service) ListEventsByOrg(ctx context.Context, orgID string, dates DateRange) result.Result[[]*Instance] {
	if orgID == "" {
		return result.Failure[[]*Instance](result.MissingField(FieldOrgID))
	}

	list, err := service.events.ListByOrg(ctx, orgID, dates)
	if err != nil {
		return result.Failure[[]*Instance](result.FromError(err))
	}

	return result.Success(list)
}

// ListAttendance returns the attendance rows recorded for one event instance.
func (service *Service) ListAttendance(ctx context.Context, eventInstanceID string) result.Result[[]*Attendance] {
	if eventInstanceID == "" {
		return result.Failure[[]*Attendance](result.MissingField("eventInstanceId"))
	}

	rows, err := service.attendance.ListByEventInstance(ctx, eventInstanceID)
	if err != nil {
		return result.Failure[[]*Attendance](result.FromError(err))
	}

	return result.Success(rows)
}

// CreateEventWithAttendance creates an event instance and, when a non-empty
// batch is supplied, records its attendance rows.
//
// Every attendance row's EventInstanceID is stamped with the created event's
// id, overriding whatever the caller supplied. The two writes are not wrapped
// in a transaction: a failure after the event insert leaves the event durable
// with a partial or absent batch, and the error reports the batch failure.
func (service *Service) CreateEventWithAttendance(ctx context.Context, instance *Instance, rows []*Attendance) result.Result[*Instance] {
	if instance.ID == "" {
		return result.Failure[*Instance](result.MissingField(FieldID))
	}
	if instance.OrgID == "" {
		return result.Failure[*Instance](result.MissingField(FieldOrgID))
	}
	if instance.StartDate == "" {
		return result.Failure[*Instance](result.MissingField(FieldStartDate))
	}

	if err := service.events.Create(ctx, instance); err != nil {
		return result.Failure[*Instance](result.FromError(err))
	}

	if len(rows) > 0 {
		for _, row := range rows {
			row.EventInstanceID = instance.ID
		}

		if err := service.attendance.AddMany(ctx, rows); err != nil {
			return result.Failure[*Instance](result.FromError(err))
		}
	}

	service.logger.Info("event_created",
		slog.String("event_id", instance.ID),
		slog.String("org_id", instance.OrgID),
		slog.String("start_date", instance.StartDate),
		slog.Int("attendance_rows", len(rows)),
	)
	return result.Success(instance)
}
