package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrInvalidRequestBody = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "invalid request body",
}

type binder[T any] interface {
	*T
	render.Binder
}

// DecodeRequest decodes the JSON body into a new T and runs its Bind.
func DecodeRequest[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrInvalidRequestBody.WithCause(err)
	}

	return req, nil
}

// DecodeParams runs Bind on a new T without reading the body, for requests carried
// entirely by the path and query.
func DecodeParams[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}
