package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type CheckoutService interface {
	CreateSelection(ctx context.Context, req dto.CheckoutSelectionRequest) (dto.CheckoutSelectionResponse, error)
	GetSelection(ctx context.Context, req dto.CheckoutSelectionLookup) (dto.CheckoutSelectionResponse, error)
	Book(ctx context.Context, req dto.BookingRequest) (dto.BookingResponse, error)
}

type CheckoutEndpoint struct {
	CreateSelection endpoint.Endpoint
	GetSelection    endpoint.Endpoint
	Book            endpoint.Endpoint
}

func MakeCheckoutEndpoint(service CheckoutService) CheckoutEndpoint {
	return CheckoutEndpoint{
		CreateSelection: makeCreateSelectionEndpoint(service),
		GetSelection:    makeGetSelectionEndpoint(service),
		Book:            makeBookEndpoint(service),
	}
}

func makeCreateSelectionEndpoint(service CheckoutService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CheckoutSelectionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		selection, err := service.CreateSelection(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("checkout service: %w", err)
		}

		return selection, nil
	}
}

func makeGetSelectionEndpoint(service CheckoutService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CheckoutSelectionLookup)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		selection, err := service.GetSelection(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("checkout service: %w", err)
		}

		return selection, nil
	}
}

func makeBookEndpoint(service CheckoutService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		booking, err := service.Book(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("checkout service: %w", err)
		}

		return booking, nil
	}
}
