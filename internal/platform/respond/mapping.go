// Copyright (c) 2026 F3 Nation. All rights reserved.

package respond

import (
	"net/http"

	"github.com/f3nation/f3api/internal/domain/result"
)

// ApiErrorCode is the coarse error classification exposed on the wire.
type ApiErrorCode string

const (
	ApiUnauthorized    ApiErrorCode = "UNAUTHORIZED"
	ApiForbidden       ApiErrorCode = "FORBIDDEN"
	ApiNotFound        ApiErrorCode = "NOT_FOUND"
	ApiValidationError ApiErrorCode = "VALIDATION_ERROR"
	ApiConflict        ApiErrorCode = "CONFLICT"
	ApiInternalError   ApiErrorCode = "INTERNAL_ERROR"
)

type httpMapping struct {
	status  int
	apiCode ApiErrorCode
}

// domainToHTTP is the fixed, total mapping from domain error codes to HTTP
// responses. Codes absent from this table (result.CodeUnexpected, anything
// added later) fall through to 500/INTERNAL_ERROR.
var domainToHTTP = map[result.Code]httpMapping{
	// Validation → 400
	result.CodeMissingRequiredField: {http.StatusBadRequest, ApiValidationError},
	result.CodeInvalidFieldValue:    {http.StatusBadRequest, ApiValidationError},
	result.CodeValidationFailed:     {http.StatusBadRequest, ApiValidationError},

	// Not found → 404
	result.CodePaxNotFound:      {http.StatusNotFound, ApiNotFound},
	result.CodeOrgNotFound:      {http.StatusNotFound, ApiNotFound},
	result.CodeEventNotFound:    {http.StatusNotFound, ApiNotFound},
	result.CodeLocationNotFound: {http.StatusNotFound, ApiNotFound},
	result.CodeResourceNotFound: {http.StatusNotFound, ApiNotFound},

	// Conflict → 409
	result.CodeDuplicateEntry: {http.StatusConflict, ApiConflict},
	result.CodeAlreadyExists:  {http.StatusConflict, ApiConflict},

	// Business rules → 422
	result.CodeBusinessRuleViolation: {http.StatusUnprocessableEntity, ApiValidationError},

	// Authorization
	result.CodeNotAuthorized:   {http.StatusUnauthorized, ApiUnauthorized},
	result.CodeForbiddenAction: {http.StatusForbidden, ApiForbidden},
}

// MapDomainCode resolves a domain error code to its HTTP status and API error
// code. The mapping is total: unknown codes map to 500/INTERNAL_ERROR.
func MapDomainCode(code result.Code) (int, ApiErrorCode) {
	if mapping, ok := domainToHTTP[code]; ok {
		return mapping.status, mapping.apiCode
	}
	return http.StatusInternalServerError, ApiInternalError
}
