package taxonomy

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

// ListTerms returns an org's terms, optionally narrowed to one kind and to
// active terms only.
func (service *Service) ListTerms(ctx context.Context, orgID, kind string, activeOnly bool) result.Result[[]*Term] {
	if orgID == "" {
		return result.Failure[[]*Term](result.MissingField(FieldOrgID))
	}

	list, err := service.repo.List(ctx, orgID, kind, activeOnly)
	if err != nil {
		return result.Failure[[]*Term](result.FromError(err))
	}

	return result.Success(list)
}

// GetTerm looks up one term by its (orgId, kind, key) triple.
func (service *Service) GetTerm(ctx context.Context, orgID, kind, key string) result.Result[*Term] {
	if orgID == "" {
		return result.Failure[*Term](result.MissingField(FieldOrgID))
	}
	if kind == "" {
		return result.Failure[*Term](result.MissingField(FieldKind))
	}
	if key == "" {
		return result.Failure[*Term](result.MissingField(FieldKey))
	}

	found, err := service.repo.GetByKey(ctx, orgID, kind, key)
	if err != nil {
		return result.Failure[*Term](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Term](result.NotFound("Taxonomy term", kind+"/"+key))
	}

	return result.Success(found)
}

// UpsertTerm creates or replaces a term keyed by its id.
func (service *Service) UpsertTerm(ctx context.Context, term *Term) result.Result[*Term] {
	if term.ID == "" {
		return result.Failure[*Term](result.MissingField(FieldID))
	}
	if term.OrgID == "" {
		return result.Failure[*Term](result.MissingField(FieldOrgID))
	}
	if term.Kind == "" {
		return result.Failure[*Term](result.MissingField(FieldKind))
	}
	if term.Key == "" {
		return result.Failure[*Term](result.MissingField(FieldKey))
	}
	if term.Label == "" {
		return result.Failure[*Term](result.MissingField(FieldLabel))
	}

	if err := service.repo.Upsert(ctx, term); err != nil {
		return result.Failure[*Term](result.FromError(err))
	}

	service.logger.Info("taxonomy_term_upserted",
		slog.String("term_id", term.ID),
		slog.String("org_id", term.OrgID),
		slog.String("kind", term.Kind),
		slog.String("key", term.Key),
	)
	return result.Success(term)
}
