// Copyright (c) 2026 F3 Nation. All rights reserved.

package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/internal/platform/respond"
)

/*
TestMapDomainCode verifies every row of the fixed mapping table plus the
default clause for unknown codes.
*/
func TestMapDomainCode(t *testing.T) {
	tests := []struct {
		code       result.Code
		wantStatus int
		wantAPI    respond.ApiErrorCode
	}{
		{result.CodeMissingRequiredField, 400, respond.ApiValidationError},
		{result.CodeInvalidFieldValue, 400, respond.ApiValidationError},
		{result.CodeValidationFailed, 400, respond.ApiValidationError},
		{result.CodePaxNotFound, 404, respond.ApiNotFound},
		{result.CodeOrgNotFound, 404, respond.ApiNotFound},
		{result.CodeEventNotFound, 404, respond.ApiNotFound},
		{result.CodeLocationNotFound, 404, respond.ApiNotFound},
		{result.CodeResourceNotFound, 404, respond.ApiNotFound},
		{result.CodeDuplicateEntry, 409, respond.ApiConflict},
		{result.CodeAlreadyExists, 409, respond.ApiConflict},
		{result.CodeBusinessRuleViolation, 422, respond.ApiValidationError},
		{result.CodeNotAuthorized, 401, respond.ApiUnauthorized},
		{result.CodeForbiddenAction, 403, respond.ApiForbidden},
		// Default clause
		{result.CodeUnexpected, 500, respond.ApiInternalError},
		{result.Code("SOME_FUTURE_CODE"), 500, respond.ApiInternalError},
		{result.Code(""), 500, respond.ApiInternalError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			status, apiCode := respond.MapDomainCode(tt.code)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantAPI, apiCode)
		})
	}
}

/*
TestOK_EnvelopeBytes pins the exact success wire shape.
*/
func TestOK_EnvelopeBytes(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"data":{"hello":"world"}}`, recorder.Body.String())
}

/*
TestCreated_Status verifies the 201 variant keeps the same envelope.
*/
func TestCreated_Status(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"n":1}}`, recorder.Body.String())
}

/*
TestDomainError_EnvelopeBytes pins the failure wire shape, including the
omission of details when absent.
*/
func TestDomainError_EnvelopeBytes(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/pax/pax_missing", nil)

	respond.DomainError(recorder, request, result.PaxNotFound("pax_missing"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t,
		`{"ok":false,"error":{"code":"NOT_FOUND","message":"PAX not found: pax_missing"}}`,
		recorder.Body.String(),
	)
}

/*
TestDomainError_Details verifies the optional details passthrough.
*/
func TestDomainError_Details(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/orgs/upsert", nil)

	domainErr := result.ValidationFailed("invalid org payload")
	domainErr.Details = map[string]string{"slug": "must be lowercase"}
	respond.DomainError(recorder, request, domainErr)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t,
		`{"ok":false,"error":{"code":"VALIDATION_ERROR","message":"invalid org payload","details":{"slug":"must be lowercase"}}}`,
		recorder.Body.String(),
	)
}

/*
TestError_UnexpectedIsSanitized ensures raw storage errors never reach the
client message and yield the 500 fallback.
*/
func TestError_UnexpectedIsSanitized(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/pax", nil)

	respond.Error(recorder, request, errors.New("pgx: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	body := recorder.Body.String()
	require.Contains(t, body, `"INTERNAL_ERROR"`)
	assert.Contains(t, body, `"ok":false`)
	assert.NotContains(t, body, "pgx")
	assert.NotContains(t, body, "connection reset")
}
