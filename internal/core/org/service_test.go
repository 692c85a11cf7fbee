package org_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/core/org"
	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/pkg/pointer"
)

// fakeOrgRepo is an in-memory Repository used to observe service behavior.
type fakeOrgRepo struct {
	byID    map[string]*org.Org
	upserts int

	// lastParent records the filter passed to ListByType
	lastParent org.ParentFilter
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{byID: make(map[string]*org.Org)}
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id string) (*org.Org, error) {
	return f.byID[id], nil
}

func (f *fakeOrgRepo) GetBySlug(_ context.Context, slug string) (*org.Org, error) {
	for _, o := range f.byID {
		if pointer.Val(o.Slug) == slug {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) ListByType(_ context.Context, orgType string, parent org.ParentFilter) ([]*org.Org, error) {
	f.lastParent = parent

	var list []*org.Org
	for _, o := range f.byID {
		if o.OrgType != orgType {
			continue
		}
		if parent.Requested() {
			if parent.ParentID() == nil && o.ParentID != nil {
				continue
			}
			if parent.ParentID() != nil && pointer.Val(o.ParentID) != *parent.ParentID() {
				continue
			}
		}
		list = append(list, o)
	}
	return list, nil
}

func (f *fakeOrgRepo) Upsert(_ context.Context, o *org.Org) error {
	f.upserts++

	clone := *o
	if existing, ok := f.byID[o.ID]; ok {
		clone.CreatedAt = existing.CreatedAt
	}
	f.byID[o.ID] = &clone
	return nil
}

func testService(repo org.Repository) *org.Service {
	return org.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestGetOrgBySlug verifies that lookups run against the normalized slug form.
*/
func TestGetOrgBySlug(t *testing.T) {
	repo := newFakeOrgRepo()
	repo.byID["org_1"] = &org.Org{
		ID: "org_1", OrgType: org.TypeRegion, Name: "F3 Carpex",
		Slug: pointer.To("f3-carpex"),
	}
	service := testService(repo)

	t.Run("normalizes_before_lookup", func(t *testing.T) {
		found, err := service.GetOrgBySlug(context.Background(), "F3 Carpex").Unpack()
		require.Nil(t, err)
		assert.Equal(t, "org_1", found.ID)
	})

	t.Run("unknown_slug", func(t *testing.T) {
		res := service.GetOrgBySlug(context.Background(), "nowhere")
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeOrgNotFound, res.Err().Code)
	})
}

/*
TestListOrgsByType checks that the tri-state parent filter reaches the
repository unchanged.
*/
func TestListOrgsByType(t *testing.T) {
	repo := newFakeOrgRepo()
	repo.byID["org_root"] = &org.Org{ID: "org_root", OrgType: org.TypeRegion, Name: "Rootless"}
	repo.byID["org_child"] = &org.Org{
		ID: "org_child", OrgType: org.TypeRegion, Name: "Child",
		ParentID: pointer.To("org_root"),
	}
	service := testService(repo)

	t.Run("any_parent", func(t *testing.T) {
		list, err := service.ListOrgsByType(context.Background(), org.TypeRegion, org.AnyParent()).Unpack()
		require.Nil(t, err)
		assert.Len(t, list, 2)
		assert.False(t, repo.lastParent.Requested())
	})

	t.Run("root_only", func(t *testing.T) {
		list, err := service.ListOrgsByType(context.Background(), org.TypeRegion, org.RootOnly()).Unpack()
		require.Nil(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "org_root", list[0].ID)
		assert.True(t, repo.lastParent.Requested())
		assert.Nil(t, repo.lastParent.ParentID())
	})

	t.Run("specific_parent", func(t *testing.T) {
		list, err := service.ListOrgsByType(context.Background(), org.TypeRegion, org.ChildOf("org_root")).Unpack()
		require.Nil(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "org_child", list[0].ID)
	})

	t.Run("empty_org_type", func(t *testing.T) {
		res := service.ListOrgsByType(context.Background(), "", org.AnyParent())
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
	})
}

/*
TestUpsertOrg covers required fields, slug derivation, and the parent
hierarchy guards.
*/
func TestUpsertOrg(t *testing.T) {
	t.Run("missing_name", func(t *testing.T) {
		repo := newFakeOrgRepo()
		service := testService(repo)

		res := service.UpsertOrg(context.Background(), &org.Org{ID: "org_1", OrgType: org.TypeRegion})
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
		assert.Equal(t, "name", res.Err().Field)
		assert.Zero(t, repo.upserts)
	})

	t.Run("slug_derived_from_name", func(t *testing.T) {
		repo := newFakeOrgRepo()
		service := testService(repo)

		saved, err := service.UpsertOrg(context.Background(), &org.Org{
			ID: "org_1", OrgType: org.TypeRegion, Name: "F3 South Wake",
		}).Unpack()
		require.Nil(t, err)
		assert.Equal(t, "f3-south-wake", pointer.Val(saved.Slug))
	})

	t.Run("provided_slug_normalized", func(t *testing.T) {
		repo := newFakeOrgRepo()
		service := testService(repo)

		saved, err := service.UpsertOrg(context.Background(), &org.Org{
			ID: "org_1", OrgType: org.TypeRegion, Name: "Whatever",
			Slug: pointer.To("The Mothership!"),
		}).Unpack()
		require.Nil(t, err)
		assert.Equal(t, "the-mothership", pointer.Val(saved.Slug))
	})

	t.Run("self_parent_rejected", func(t *testing.T) {
		repo := newFakeOrgRepo()
		service := testService(repo)

		res := service.UpsertOrg(context.Background(), &org.Org{
			ID: "org_1", OrgType: org.TypeAO, Name: "Loop",
			ParentID: pointer.To("org_1"),
		})
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeBusinessRuleViolation, res.Err().Code)
		assert.Zero(t, repo.upserts)
	})

	t.Run("ancestor_cycle_rejected", func(t *testing.T) {
		repo := newFakeOrgRepo()
		repo.byID["org_a"] = &org.Org{
			ID: "org_a", OrgType: org.TypeArea, Name: "A",
			ParentID: pointer.To("org_b"),
		}
		service := testService(repo)

		// org_b -> org_a -> org_b would close the loop
		res := service.UpsertOrg(context.Background(), &org.Org{
			ID: "org_b", OrgType: org.TypeRegion, Name: "B",
			ParentID: pointer.To("org_a"),
		})
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeBusinessRuleViolation, res.Err().Code)
	})

	t.Run("valid_parent_chain_accepted", func(t *testing.T) {
		repo := newFakeOrgRepo()
		repo.byID["org_nation"] = &org.Org{ID: "org_nation", OrgType: org.TypeNation, Name: "Nation"}
		service := testService(repo)

		res := service.UpsertOrg(context.Background(), &org.Org{
			ID: "org_region", OrgType: org.TypeRegion, Name: "Region",
			ParentID: pointer.To("org_nation"),
		})
		require.True(t, res.Ok())
		assert.Equal(t, 1, repo.upserts)
	})
}
