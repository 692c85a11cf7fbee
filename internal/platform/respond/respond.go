// Copyright (c) 2026 F3 Nation. All rights reserved.

/*
Package respond provides HTTP response helpers used by all API handlers.

# Architecture

This package centralizes the presentation logic for HTTP responses. Every
response follows a strict JSON envelope that clients (web, mobile, the Slack
bridge) parse byte-for-byte:

	Success: { "ok": true,  "data": { ... } }
	Failure: { "ok": false, "error": { "code": "...", "message": "...", "details"?: ... } }

Domain error codes are translated to HTTP statuses and API error codes through
the fixed mapping in mapping.go; handlers never choose statuses for failures.
*/
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

// ErrorEnvelope is the JSON envelope for failure responses.
type ErrorEnvelope struct {
	OK    bool      `json:"ok"`
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the client-facing error fields.
type ErrorBody struct {
	Code    ApiErrorCode `json:"code"`
	Message string       `json:"message"`
	Details interface{}  `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 response with data wrapped in the success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{OK: true, Data: data})
}

// Created writes a 201 response with data wrapped in the success envelope.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{OK: true, Data: data})
}

// DomainError converts a [*result.Error] into the failure envelope using the
// fixed domain-to-HTTP mapping.
func DomainError(writer http.ResponseWriter, request *http.Request, domainErr *result.Error) {
	status, apiCode := MapDomainCode(domainErr.Code)

	// 5xx means a server-side defect or storage failure: log the full cause,
	// which is never sent to the client.
	if status >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("domain_code", string(domainErr.Code)),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", domainErr.Unwrap()),
		)
	}

	JSON(writer, status, ErrorEnvelope{
		OK: false,
		Error: ErrorBody{
			Code:    apiCode,
			Message: domainErr.Message,
			Details: domainErr.Details,
		},
	})
}

// Error converts any Go error into the failure envelope. Non-domain errors
// are wrapped as unexpected so internal details stay server-side.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	DomainError(writer, request, result.FromError(err))
}
