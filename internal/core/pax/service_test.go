package pax_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/core/pax"
	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/pkg/pointer"
)

// fakePaxRepo is an in-memory Repository used to observe service behavior.
type fakePaxRepo struct {
	byID    map[string]*pax.Pax
	upserts int
}

func newFakePaxRepo() *fakePaxRepo {
	return &fakePaxRepo{byID: make(map[string]*pax.Pax)}
}

func (f *fakePaxRepo) GetByID(_ context.Context, id string) (*pax.Pax, error) {
	return f.byID[id], nil
}

func (f *fakePaxRepo) ListByOrg(_ context.Context, orgID string) ([]*pax.Pax, error) {
	var list []*pax.Pax
	for _, p := range f.byID {
		if p.OrgID == orgID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakePaxRepo) Upsert(_ context.Context, p *pax.Pax) error {
	f.upserts++

	clone := *p
	if existing, ok := f.byID[p.ID]; ok {
		clone.CreatedAt = existing.CreatedAt
	}
	f.byID[p.ID] = &clone
	return nil
}

func testService(repo pax.Repository) *pax.Service {
	return pax.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestGetPax covers lookup by id, including the not-found case carrying the
requested id in the message.
*/
func TestGetPax(t *testing.T) {
	repo := newFakePaxRepo()
	repo.byID["pax_1"] = &pax.Pax{ID: "pax_1", OrgID: "org_1", F3Name: "Chappie"}
	service := testService(repo)

	t.Run("found", func(t *testing.T) {
		found, err := service.GetPax(context.Background(), "pax_1").Unpack()
		require.Nil(t, err)
		assert.Equal(t, "Chappie", found.F3Name)
	})

	t.Run("missing_id", func(t *testing.T) {
		res := service.GetPax(context.Background(), "")
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
	})

	t.Run("not_found", func(t *testing.T) {
		res := service.GetPax(context.Background(), "pax_does_not_exist")
		require.False(t, res.Ok())
		assert.Equal(t, result.CodePaxNotFound, res.Err().Code)
		assert.Contains(t, res.Err().Message, "pax_does_not_exist")
	})
}

/*
TestListPaxByOrg verifies the org id presence rule fires before any
repository access.
*/
func TestListPaxByOrg(t *testing.T) {
	repo := newFakePaxRepo()
	repo.byID["pax_1"] = &pax.Pax{ID: "pax_1", OrgID: "org_1", F3Name: "Chappie"}
	repo.byID["pax_2"] = &pax.Pax{ID: "pax_2", OrgID: "org_2", F3Name: "Bluth"}
	service := testService(repo)

	t.Run("scoped_to_org", func(t *testing.T) {
		list, err := service.ListPaxByOrg(context.Background(), "org_1").Unpack()
		require.Nil(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "pax_1", list[0].ID)
	})

	t.Run("empty_org_id", func(t *testing.T) {
		res := service.ListPaxByOrg(context.Background(), "")
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
		assert.Equal(t, "orgId", res.Err().Field)
	})
}

/*
TestUpsertPax checks the required-field gates and that validation failures
never reach the repository.
*/
func TestUpsertPax(t *testing.T) {
	tests := []struct {
		name      string
		input     *pax.Pax
		wantField string
	}{
		{"missing_id", &pax.Pax{OrgID: "org_1", F3Name: "Chappie"}, "id"},
		{"missing_org_id", &pax.Pax{ID: "pax_1", F3Name: "Chappie"}, "orgId"},
		{"missing_f3_name", &pax.Pax{ID: "pax_1", OrgID: "org_1"}, "f3Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePaxRepo()
			service := testService(repo)

			res := service.UpsertPax(context.Background(), tt.input)
			require.False(t, res.Ok())
			assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
			assert.Equal(t, tt.wantField, res.Err().Field)
			assert.Zero(t, repo.upserts, "repository must not be called on validation failure")
		})
	}

	t.Run("valid_upsert_persists", func(t *testing.T) {
		repo := newFakePaxRepo()
		service := testService(repo)

		now := time.Now().UTC()
		input := &pax.Pax{
			ID:        "pax_1",
			OrgID:     "org_1",
			F3Name:    "Chappie",
			Email:     pointer.To("chappie@example.com"),
			CreatedAt: now,
			UpdatedAt: now,
		}

		saved, err := service.UpsertPax(context.Background(), input).Unpack()
		require.Nil(t, err)
		assert.Equal(t, input, saved)
		assert.Equal(t, 1, repo.upserts)
	})

	t.Run("second_upsert_keeps_created_at", func(t *testing.T) {
		repo := newFakePaxRepo()
		service := testService(repo)

		first := time.Date(2026, 1, 10, 6, 0, 0, 0, time.UTC)
		second := first.Add(48 * time.Hour)

		service.UpsertPax(context.Background(), &pax.Pax{
			ID: "pax_1", OrgID: "org_1", F3Name: "Chappie",
			CreatedAt: first, UpdatedAt: first,
		})
		service.UpsertPax(context.Background(), &pax.Pax{
			ID: "pax_1", OrgID: "org_1", F3Name: "Chappie Renamed",
			CreatedAt: second, UpdatedAt: second,
		})

		stored := repo.byID["pax_1"]
		assert.Equal(t, "Chappie Renamed", stored.F3Name)
		assert.Equal(t, first, stored.CreatedAt)
		assert.Equal(t, second, stored.UpdatedAt)
	})
}
