package pax_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/core/pax"
	"github.com/f3nation/f3api/internal/platform/ctxutil"
	"github.com/f3nation/f3api/internal/platform/sec"
)

func testRouter(repo pax.Repository) *chi.Mux {
	router := chi.NewRouter()
	handler := pax.NewHandler(testService(repo))
	router.Route("/pax", handler.RegisterRoutes)
	return router
}

func asSiteQ(request *http.Request) *http.Request {
	claims := &sec.AuthClaims{PaxID: "pax_siteq", Role: string(sec.RoleSiteQ)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

/*
TestGetPaxHTTP pins the wire envelope for the lookup endpoint, including the
exact not-found failure shape.
*/
func TestGetPaxHTTP(t *testing.T) {
	repo := newFakePaxRepo()
	repo.byID["pax_1"] = &pax.Pax{ID: "pax_1", OrgID: "org_1", F3Name: "Chappie"}
	router := testRouter(repo)

	t.Run("found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/pax/pax_1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			OK   bool     `json:"ok"`
			Data *pax.Pax `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.OK)
		assert.Equal(t, "Chappie", envelope.Data.F3Name)
	})

	t.Run("not_found_envelope", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/pax/pax_does_not_exist", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t,
			`{"ok":false,"error":{"code":"NOT_FOUND","message":"PAX not found: pax_does_not_exist"}}`,
			recorder.Body.String(),
		)
	})
}

/*
TestListPaxHTTP checks the empty-org-id rejection and the empty-array shape.
*/
func TestListPaxHTTP(t *testing.T) {
	router := testRouter(newFakePaxRepo())

	t.Run("missing_org_id_is_400", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/pax", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope struct {
			OK    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.False(t, envelope.OK)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	})

	t.Run("no_rows_is_empty_array", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/pax?orgId=org_1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"ok":true,"data":[]}`, recorder.Body.String())
	})
}

/*
TestUpsertPaxHTTP covers id generation, timestamp stamping, the validation
failure path, and the role gate.
*/
func TestUpsertPaxHTTP(t *testing.T) {
	t.Run("generates_prefixed_id_and_stamps", func(t *testing.T) {
		repo := newFakePaxRepo()
		router := testRouter(repo)

		body := `{"pax":{"f3Name":"Chappie","orgId":"org_1"}}`
		request := asSiteQ(httptest.NewRequest(http.MethodPost, "/pax/upsert", strings.NewReader(body)))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			OK   bool     `json:"ok"`
			Data *pax.Pax `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.OK)
		assert.True(t, strings.HasPrefix(envelope.Data.ID, "pax_"))
		assert.False(t, envelope.Data.CreatedAt.IsZero())
		assert.Equal(t, envelope.Data.CreatedAt, envelope.Data.UpdatedAt)
		assert.Equal(t, 1, repo.upserts)
	})

	t.Run("missing_f3_name_is_400", func(t *testing.T) {
		repo := newFakePaxRepo()
		router := testRouter(repo)

		body := `{"pax":{"orgId":"org_1"}}`
		request := asSiteQ(httptest.NewRequest(http.MethodPost, "/pax/upsert", strings.NewReader(body)))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, repo.upserts)
	})

	t.Run("anonymous_is_401", func(t *testing.T) {
		router := testRouter(newFakePaxRepo())

		body := `{"pax":{"f3Name":"Chappie","orgId":"org_1"}}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/pax/upsert", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("plain_pax_role_is_403", func(t *testing.T) {
		router := testRouter(newFakePaxRepo())

		body := `{"pax":{"f3Name":"Chappie","orgId":"org_1"}}`
		request := httptest.NewRequest(http.MethodPost, "/pax/upsert", strings.NewReader(body))
		claims := &sec.AuthClaims{PaxID: "pax_2", Role: string(sec.RolePax)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
