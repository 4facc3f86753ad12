// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/respond"
	"github.com/taibuivan/kaamelott/pkg/pagination"
)

func TestError_DomainError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/actors/9", nil)

	respond.Error(recorder, request, apperr.NotFound("Actor"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{
		"statusCode": 404,
		"message": "(Actor)[NO_DATA_FOUND] Cannot perform operation: Resource not found",
		"code": "NO_DATA_FOUND"
	}`, recorder.Body.String())
}

func TestError_UnclassifiedErrorIsHidden(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/actors", nil)

	respond.Error(recorder, request, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}

func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/actors", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "firstName", Message: "This field is required"}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"details":[{"field":"firstName","message":"This field is required"}]`)
}

func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Paginated(recorder, pagination.NewPage([]string{"Arthur"}, 12, pagination.Params{Offset: 0, Limit: 1}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["Arthur"],"metadata":{"total":12,"offset":0,"limit":1}}`, recorder.Body.String())
}
