package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request represents a command or query.
type Request interface{}

// Response represents the result of handling a request.
type Response interface{}

// RequestHandler handles a specific request type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator dispatches requests to their handlers so presentation only
// depends on request/response DTOs.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
}

type mediator struct {
	handlers map[reflect.Type]RequestHandler
}

// NewMediator creates an empty mediator.
func NewMediator() Mediator {
	return &mediator{handlers: make(map[reflect.Type]RequestHandler)}
}

// Register registers a handler for a request type. Double registration
// is an error since it would silently shadow the earlier handler.
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}
	m.handlers[requestType] = handler
	return nil
}

// Send dispatches a request to its registered handler.
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	handler, ok := m.handlers[reflect.TypeOf(request)]
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", reflect.TypeOf(request))
	}
	return handler.Handle(ctx, request)
}

// RegisterHandler registers a handler using the request type parameter.
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}
