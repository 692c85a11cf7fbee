package location

import (
	"context"
	"log/slog"

	"github.com/f3nation/f3api/internal/domain/result"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetLocation looks up a single location by id.
func (service *Service) GetLocation(ctx context.Context, id string) result.Result[*Location] {
	if id == "" {
		return result.Failure[*Location](result.MissingField(FieldID))
	}

	found, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failure[*Location](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Location](result.LocationNotFound(id))
	}

	return result.Success(found)
}

// ListLocationsByOrg returns every live location owned by orgID.
func (service *Service) ListLocationsByOrg(ctx context.Context, orgID string) result.Result[[]*Location] {
	if orgID == "" {
		return result.Failure[[]*Location](result.MissingField(FieldOrgID))
	}

	list, err := service.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return result.Failure[[]*Location](result.FromError(err))
	}

	return result.Success(list)
}

// UpsertLocation creates or replaces a location keyed by its id.
func (service *Service) UpsertLocation(ctx context.Context, l *Location) result.Result[*Location] {
	if l.ID == "" {
		return result.Failure[*Location](result.MissingField(FieldID))
	}
	if l.OrgID == "" {
		return result.Failure[*Location](result.MissingField(FieldOrgID))
	}
	if l.Name == "" {
		return result.Failure[*Location](result.MissingField(FieldName))
	}

	if err := service.repo.Upsert(ctx, l); err != nil {
		return result.Failure[*Location](result.FromError(err))
	}

	service.logger.Info("location_upserted",
		slog.String("location_id", l.ID),
		slog.String("org_id", l.OrgID),
	)
	return result.Success(l)
}
