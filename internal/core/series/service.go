package series

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

// GetSeries looks up a single series by id.
func (service *Service) GetSeries(ctx context.Context, id string) result.Result[*Series] {
	if id == "" {
		return result.Failure[*Series](result.MissingField(FieldID))
	}

	found, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failure[*Series](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Series](result.NotFound("Series", id))
	}

	return result.Success(found)
}

// ListSeriesByOrg returns the org's series, optionally only active ones.
func (service *Service) ListSeriesByOrg(ctx context.Context, orgID string, activeOnly bool) result.Result[[]*Series] {
	if orgID == "" {
		return result.Failure[[]*Series](result.MissingField(FieldOrgID))
	}

	list, err := service.repo.ListByOrg(ctx, orgID, activeOnly)
	if err != nil {
		return result.Failure[[]*Series](result.FromError(err))
	}

	return result.Success(list)
}

// UpsertSeries creates or replaces a series keyed by its id.
func (service *Service) UpsertSeries(ctx context.Context, s *Series) result.Result[*Series] {
	if s.ID == "" {
		return result.Failure[*Series](result.MissingField(FieldID))
	}
	if s.OrgID == "" {
		return result.Failure[*Series](result.MissingField(FieldOrgID))
	}
	if s.Name == "" {
		return result.Failure[*Series](result.MissingField(FieldName))
	}

	if err := service.repo.Upsert(ctx, s); err != nil {
		return result.Failure[*Series](result.FromError(err))
	}

	service.logger.Info("series_upserted",
		slog.String("series_id", s.ID),
		slog.String("org_id", s.OrgID),
	)
	return result.Success(s)
}
