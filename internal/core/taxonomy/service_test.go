package taxonomy_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/core/taxonomy"
	"github.com/f3nation/f3api/internal/domain/result"
)

type fakeTermRepo struct {
	byID    map[string]*taxonomy.Term
	upserts int
}

func newFakeTermRepo() *fakeTermRepo {
	return &fakeTermRepo{byID: make(map[string]*taxonomy.Term)}
}

func (f *fakeTermRepo) List(_ context.Context, orgID, kind string, activeOnly bool) ([]*taxonomy.Term, error) {
	var list []*taxonomy.Term
	for _, term := range f.byID {
		if term.OrgID != orgID {
			continue
		}
		if kind != "" && term.Kind != kind {
			continue
		}
		if activeOnly && !term.IsActive {
			continue
		}
		list = append(list, term)
	}
	return list, nil
}

func (f *fakeTermRepo) GetByKey(_ context.Context, orgID, kind, key string) (*taxonomy.Term, error) {
	for _, term := range f.byID {
		if term.OrgID == orgID && term.Kind == kind && term.Key == key {
			return term, nil
		}
	}
	return nil, nil
}

func (f *fakeTermRepo) Upsert(_ context.Context, term *taxonomy.Term) error {
	f.upserts++
	f.byID[term.ID] = term
	return nil
}

func testService(repo taxonomy.Repository) *taxonomy.Service {
	return taxonomy.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestListTerms covers kind and active-only narrowing plus the org id gate.
*/
func TestListTerms(t *testing.T) {
	repo := newFakeTermRepo()
	repo.byID["tax_1"] = &taxonomy.Term{
		ID: "tax_1", OrgID: "org_1", Kind: taxonomy.KindAOType,
		Key: "bootcamp", Label: "Bootcamp", IsActive: true,
	}
	repo.byID["tax_2"] = &taxonomy.Term{
		ID: "tax_2", OrgID: "org_1", Kind: taxonomy.KindAOType,
		Key: "ruck", Label: "Ruck", IsActive: false,
	}
	repo.byID["tax_3"] = &taxonomy.Term{
		ID: "tax_3", OrgID: "org_1", Kind: taxonomy.KindEventType,
		Key: "convergence", Label: "Convergence", IsActive: true,
	}
	service := testService(repo)

	t.Run("filter_by_kind_and_active", func(t *testing.T) {
		list, err := service.ListTerms(context.Background(), "org_1", taxonomy.KindAOType, true).Unpack()
		require.Nil(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "bootcamp", list[0].Key)
	})

	t.Run("all_kinds", func(t *testing.T) {
		list, err := service.ListTerms(context.Background(), "org_1", "", false).Unpack()
		require.Nil(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("empty_org_id", func(t *testing.T) {
		res := service.ListTerms(context.Background(), "", taxonomy.KindAOType, false)
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
	})
}

/*
TestGetTerm covers the triple lookup and its not-found shape.
*/
func TestGetTerm(t *testing.T) {
	repo := newFakeTermRepo()
	repo.byID["tax_1"] = &taxonomy.Term{
		ID: "tax_1", OrgID: "org_1", Kind: taxonomy.KindAOType,
		Key: "bootcamp", Label: "Bootcamp",
	}
	service := testService(repo)

	t.Run("found", func(t *testing.T) {
		found, err := service.GetTerm(context.Background(), "org_1", taxonomy.KindAOType, "bootcamp").Unpack()
		require.Nil(t, err)
		assert.Equal(t, "Bootcamp", found.Label)
	})

	t.Run("not_found", func(t *testing.T) {
		res := service.GetTerm(context.Background(), "org_1", taxonomy.KindAOType, "murph")
		require.False(t, res.Ok())
		assert.Equal(t, result.CodeResourceNotFound, res.Err().Code)
	})
}

/*
TestUpsertTerm checks the five required-field gates.
*/
func TestUpsertTerm(t *testing.T) {
	tests := []struct {
		name      string
		input     *taxonomy.Term
		wantField string
	}{
		{"missing_id", &taxonomy.Term{OrgID: "org_1", Kind: "k", Key: "x", Label: "X"}, "id"},
		{"missing_org", &taxonomy.Term{ID: "tax_1", Kind: "k", Key: "x", Label: "X"}, "orgId"},
		{"missing_kind", &taxonomy.Term{ID: "tax_1", OrgID: "org_1", Key: "x", Label: "X"}, "kind"},
		{"missing_key", &taxonomy.Term{ID: "tax_1", OrgID: "org_1", Kind: "k", Label: "X"}, "key"},
		{"missing_label", &taxonomy.Term{ID: "tax_1", OrgID: "org_1", Kind: "k", Key: "x"}, "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTermRepo()
			service := testService(repo)

			res := service.UpsertTerm(context.Background(), tt.input)
			require.False(t, res.Ok())
			assert.Equal(t, result.CodeMissingRequiredField, res.Err().Code)
			assert.Equal(t, tt.wantField, res.Err().Field)
			assert.Zero(t, repo.upserts)
		})
	}

	t.Run("valid_term_persists", func(t *testing.T) {
		repo := newFakeTermRepo()
		service := testService(repo)

		res := service.UpsertTerm(context.Background(), &taxonomy.Term{
			ID: "tax_1", OrgID: "org_1", Kind: taxonomy.KindAOType,
			Key: "bootcamp", Label: "Bootcamp",
		})
		require.True(t, res.Ok())
		assert.Equal(t, 1, repo.upserts)
	})
}
