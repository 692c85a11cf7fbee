package org

import (
	"context"
	"log/slog"

	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/pkg/pointer"
	"github.com/f3nation/f3api/pkg/slug"
)

// maxAncestorDepth bounds the cycle walk on upsert. Real hierarchies are
// nation > sector > area > region > ao, so anything deeper is malformed.
const maxAncestorDepth = 16

// Service validates org writes, normalizes slugs, and guards the parent
// hierarchy against self references and cycles.
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

// GetOrg looks up a single org by id.
func (service *Service) GetOrg(ctx context.Context, id string) result.Result[*Org] {
	if id == "" {
		return result.Failure[*Org](result.MissingField(FieldID))
	}

	found, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failure[*Org](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Org](result.OrgNotFound(id))
	}

	return result.Success(found)
}

// GetOrgBySlug looks up a single org by its normalized slug.
func (service *Service) GetOrgBySlug(ctx context.Context, rawSlug string) result.Result[*Org] {
	if rawSlug == "" {
		return result.Failure[*Org](result.MissingField(FieldSlug))
	}

	normalized := slug.From(rawSlug)
	found, err := service.repo.GetBySlug(ctx, normalized)
	if err != nil {
		return result.Failure[*Org](result.FromError(err))
	}
	if found == nil {
		return result.Failure[*Org](result.OrgNotFound(normalized))
	}

	return result.Success(found)
}

// ListOrgsByType returns live orgs of one type, optionally narrowed by the
// tri-state parent filter.
func (service *Service) ListOrgsByType(ctx context.Context, orgType string, parent ParentFilter) result.Result[[]*Org] {
	if orgType == "" {
		return result.Failure[[]*Org](result.MissingField(FieldOrgType))
	}

	list, err := service.repo.ListByType(ctx, orgType, parent)
	if err != nil {
		return result.Failure[[]*Org](result.FromError(err))
	}

	return result.Success(list)
}

// UpsertOrg creates or replaces an org keyed by its id.
//
// The slug, when supplied, is normalized before storage so lookups match
// regardless of the caller's casing. An empty slug is derived from the name.
func (service *Service) UpsertOrg(ctx context.Context, o *Org) result.Result[*Org] {
	if o.ID == "" {
		return result.Failure[*Org](result.MissingField(FieldID))
	}
	if o.Name == "" {
		return result.Failure[*Org](result.MissingField(FieldName))
	}
	if o.OrgType == "" {
		return result.Failure[*Org](result.MissingField(FieldOrgType))
	}

	if pointer.Val(o.Slug) != "" {
		o.Slug = pointer.To(slug.From(*o.Slug))
	} else {
		o.Slug = pointer.To(slug.From(o.Name))
	}

	if resultErr := service.checkParentLink(ctx, o); resultErr != nil {
		return result.Failure[*Org](resultErr)
	}

	if err := service.repo.Upsert(ctx, o); err != nil {
		return result.Failure[*Org](result.FromError(err))
	}

	service.logger.Info("org_upserted",
		slog.String("org_id", o.ID),
		slog.String("org_type", o.OrgType),
		slog.String("slug", pointer.Val(o.Slug)),
	)
	return result.Success(o)
}

// checkParentLink rejects self references and parent chains that loop back
// to the org being written. The walk is bounded; a chain deeper than
// maxAncestorDepth is treated as a violation rather than walked forever.
func (service *Service) checkParentLink(ctx context.Context, o *Org) *result.Error {
	parentID := pointer.Val(o.ParentID)
	if parentID == "" {
		return nil
	}
	if parentID == o.ID {
		return result.BusinessRule("Org cannot be its own parent")
	}

	currentID := parentID
	for depth := 0; depth < maxAncestorDepth; depth++ {
		ancestor, err := service.repo.GetByID(ctx, currentID)
		if err != nil {
			return result.FromError(err)
		}
		if ancestor == nil || ancestor.ParentID == nil {
			return nil
		}
		if *ancestor.ParentID == o.ID {
			return result.BusinessRule("Org parent chain forms a cycle")
		}
		currentID = *ancestor.ParentID
	}

	return result.BusinessRule("Org parent chain exceeds the maximum depth")
}
