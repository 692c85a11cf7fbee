package pax

import (
	"context"
	"log/slog"

	"github.com/f3nation/f3api/internal/domain/result"
)

// Service enforces the presence rules storage cannot, then delegates to the
// repository port. All outcomes are returned as results, never raised.
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

// GetPax looks up a single pax by id.
func (service *Service) GetPax(ctx context.Context, id string) result.Result[*Pax] {
	if id == "" {
		return result.Failure[*Pax](result.MissingField(FieldID))
	}

	found, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failure[*Pax](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Pax](result.PaxNotFound(id))
	}

	return result.Success(found)
}

// ListPaxByOrg returns every live pax whose primary org matches orgID.
func (service *Service) ListPaxByOrg(ctx context.Context, orgID string) result.Result[[]*Pax] {
	if orgID == "" {
		return result.Failure[[]*Pax](result.MissingField(FieldOrgID))
	}

	list, err := service.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return result.Failure[[]*Pax](result.FromError(err))
	}

	return result.Success(list)
}

// UpsertPax creates or replaces a pax keyed by its id.
func (service *Service) UpsertPax(ctx context.Context, p *Pax) result.Result[*Pax] {
	if p.ID == "" {
		return result.Failure[*Pax](result.MissingField(FieldID))
	}
	if p.OrgID == "" {
		return result.Failure[*Pax](result.MissingField(FieldOrgID))
	}
	if p.F3Name == "" {
		return result.Failure[*Pax](result.MissingField(FieldF3Name))
	}

	if err := service.repo.Upsert(ctx, p); err != nil {
		return result.Failure[*Pax](result.FromError(err))
	}

	service.logger.Info("pax_upserted",
		slog.String("pax_id", p.ID),
		slog.String("org_id", p.OrgID),
	)
	return result.Success(p)
}
