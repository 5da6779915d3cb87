// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (success or error) is wrapped in the same [Envelope] so the
// admin UI can branch on `success` without inspecting status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
)

// Envelope is the JSON shape shared by every API response.
//
// The field spelling (`errorOccured`) is part of the public contract.
type Envelope struct {
	Success      bool                `json:"success"`
	ErrorOccured bool                `json:"errorOccured"`
	ErrorMessage string              `json:"errorMessage"`
	Code         string              `json:"code,omitempty"`
	Details      []apperr.FieldError `json:"details,omitempty"`
	Data         any                 `json:"data"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Data: data})
}

// Done writes a 200 OK success envelope without a payload.
func Done(writer http.ResponseWriter) {
	OK(writer, nil)
}

// Failure writes an error envelope with an explicit status and code.
//
// It is used by middleware that rejects a request before any handler runs.
func Failure(writer http.ResponseWriter, statusCode int, code, message string) {
	JSON(writer, statusCode, Envelope{
		ErrorOccured: true,
		ErrorMessage: message,
		Code:         code,
	})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, Envelope{
		ErrorOccured: true,
		ErrorMessage: appError.Message,
		Code:         appError.Code,
		Details:      appError.Details,
	})
}
