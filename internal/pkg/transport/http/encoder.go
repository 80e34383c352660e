package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// CreatedResponseWithBody encodes response with a 201 status.
func CreatedResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr exception.ApplicationError
		status int
		body   dto.ErrorResponse
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}

		body = dto.ErrorResponse{
			Error:           appErr.Message,
			Details:         appErr.Details,
			RedirectTo:      appErr.RedirectTo,
			RedirectAfterMs: appErr.RedirectAfter.Milliseconds(),
		}

		if status >= http.StatusInternalServerError {
			slog.WarnContext(ctx, appErr.Message, slog.Any("error", err))
		}
	} else {
		status = http.StatusInternalServerError
		body = dto.ErrorResponse{Error: err.Error()}

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
