// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes catalogue responses.
//
// Single records are written bare, listings use the `{data, metadata}`
// envelope and failures use `{statusCode, message, code, details}`.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/ctxutil"
	"github.com/taibuivan/kaamelott/pkg/pagination"
)

type ErrorEnvelope struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Code       string              `json:"code"`
	Details    []apperr.FieldError `json:"details,omitempty"`
}

func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func OK(writer http.ResponseWriter, record any) {
	JSON(writer, http.StatusOK, record)
}

func Created(writer http.ResponseWriter, record any) {
	JSON(writer, http.StatusCreated, record)
}

func Paginated[T any](writer http.ResponseWriter, page pagination.Page[T]) {
	JSON(writer, http.StatusOK, page)
}

func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error writes err as an error envelope. Errors that are not an
// [apperr.AppError] become INTERNAL_ERROR and their text stays in the logs.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctx := request.Context()
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("error", err),
		)
	}

	JSON(writer, appError.HTTPStatus, envelope(appError))
}

func envelope(appError *apperr.AppError) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode: appError.HTTPStatus,
		Message:    appError.Message,
		Code:       appError.Code,
		Details:    appError.Details,
	}
}
