// Copyright (c) 2026 F3 Nation. All rights reserved.

package result_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3nation/f3api/internal/domain/result"
)

/*
TestResult_SuccessAndFailure verifies the two variants and their accessors.
*/
func TestResult_SuccessAndFailure(t *testing.T) {
	ok := result.Success(42)
	assert.True(t, ok.Ok())
	assert.Equal(t, 42, ok.Value())
	assert.Nil(t, ok.Err())

	fail := result.Failure[int](result.MissingField("orgId"))
	assert.False(t, fail.Ok())
	assert.Zero(t, fail.Value())
	require.NotNil(t, fail.Err())
	assert.Equal(t, result.CodeMissingRequiredField, fail.Err().Code)

	value, err := fail.Unpack()
	assert.Zero(t, value)
	assert.Same(t, fail.Err(), err)
}

/*
TestResult_MustValue verifies the unwrap escape hatch panics on failure.
*/
func TestResult_MustValue(t *testing.T) {
	assert.Equal(t, "x", result.Success("x").MustValue())

	assert.PanicsWithValue(t,
		"result: unwrapped failure PAX_NOT_FOUND: PAX not found: pax_1",
		func() { result.Failure[string](result.PaxNotFound("pax_1")).MustValue() },
	)
}

/*
TestConstructors checks code, message, and field wiring for every helper.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         *result.Error
		wantCode    result.Code
		wantMessage string
		wantField   string
	}{
		{"missing_field", result.MissingField("f3Name"), result.CodeMissingRequiredField, "f3Name is required", "f3Name"},
		{"invalid_field", result.InvalidField("startDate", "must be YYYY-MM-DD"), result.CodeInvalidFieldValue, "startDate: must be YYYY-MM-DD", "startDate"},
		{"validation_failed", result.ValidationFailed("bad input"), result.CodeValidationFailed, "bad input", ""},
		{"pax_not_found", result.PaxNotFound("pax_9"), result.CodePaxNotFound, "PAX not found: pax_9", ""},
		{"org_not_found", result.OrgNotFound("org_9"), result.CodeOrgNotFound, "Org not found: org_9", ""},
		{"event_not_found", result.EventNotFound("evt_9"), result.CodeEventNotFound, "Event not found: evt_9", ""},
		{"location_not_found", result.LocationNotFound("loc_9"), result.CodeLocationNotFound, "Location not found: loc_9", ""},
		{"generic_not_found", result.NotFound("Term", "tax_9"), result.CodeResourceNotFound, "Term not found: tax_9", ""},
		{"generic_not_found_no_id", result.NotFound("Term", ""), result.CodeResourceNotFound, "Term not found", ""},
		{"duplicate", result.Duplicate("duplicate attendance"), result.CodeDuplicateEntry, "duplicate attendance", ""},
		{"already_exists", result.AlreadyExists("Org", "f3-tulsa"), result.CodeAlreadyExists, "Org already exists: f3-tulsa", ""},
		{"business_rule", result.BusinessRule("org cannot be its own parent"), result.CodeBusinessRuleViolation, "org cannot be its own parent", ""},
		{"not_authorized", result.NotAuthorized("token required"), result.CodeNotAuthorized, "token required", ""},
		{"forbidden", result.Forbidden("siteq role required"), result.CodeForbiddenAction, "siteq role required", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.Equal(t, tt.wantField, tt.err.Field)
		})
	}
}

/*
TestUnexpected verifies that storage failures keep a generic client message
while retaining the cause for logging.
*/
func TestUnexpected(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := result.Unexpected(cause)

	assert.Equal(t, result.CodeUnexpected, err.Code)
	assert.Equal(t, "An unexpected error occurred", err.Message)
	assert.NotContains(t, err.Message, "connection refused")
	assert.ErrorIs(t, err, cause)
}

/*
TestFromError verifies pass-through of domain errors, unwrap of wrapped ones,
and Unexpected conversion for everything else.
*/
func TestFromError(t *testing.T) {
	domain := result.Duplicate("duplicate slug")
	assert.Same(t, domain, result.FromError(domain))

	wrapped := fmt.Errorf("upsert_org: %w", domain)
	assert.Same(t, domain, result.FromError(wrapped))

	raw := errors.New("disk full")
	converted := result.FromError(raw)
	assert.Equal(t, result.CodeUnexpected, converted.Code)
	assert.ErrorIs(t, converted, raw)
}
