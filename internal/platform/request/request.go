// Copyright (c) 2026 F3 Nation. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/f3nation/f3api/internal/domain/result"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - *result.Error: a VALIDATION_FAILED error if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) *result.Error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return result.ValidationFailed("Invalid JSON request body")
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID retrieves a named URL parameter holding an entity id.
*/
func ID(request *http.Request, name string) string {
	return Param(request, name)
}
