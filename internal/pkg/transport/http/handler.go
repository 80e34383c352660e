package http

import (
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

// MakeHandlerFunc serves an endpoint through go-kit with the shared error encoder.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder kithttp.DecodeRequestFunc,
	encoder kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		endpt,
		decoder,
		encoder,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}
