package common_test

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/application/common"
)

type pingQuery struct{ Value string }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*pingQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return "pong:" + query.Value, nil
}

func TestMediator_DispatchesToRegisteredHandler(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	response, err := m.Send(context.Background(), &pingQuery{Value: "x"})

	require.NoError(t, err)
	assert.Equal(t, "pong:x", response)
}

func TestMediator_UnregisteredRequestFails(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &pingQuery{})

	assert.Error(t, err)
}

func TestMediator_NilRequestFails(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), nil)

	assert.Error(t, err)
}

func TestMediator_DoubleRegistrationFails(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	err := common.RegisterHandler[*pingQuery](m, &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_RegisterValidation(t *testing.T) {
	m := common.NewMediator()

	assert.Error(t, m.Register(nil, &pingHandler{}))
	assert.Error(t, m.Register(reflect.TypeOf(&pingQuery{}), nil))
}

func TestLoggerFromContext_NoOpFallback(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())

	require.NotNil(t, logger)
	// Must not panic.
	logger.Log("INFO", "ignored", nil)
}

func TestWriterLogger_RoundTripThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := common.WithLogger(context.Background(), common.NewWriterLogger(&buf))

	common.LoggerFromContext(ctx).Log("INFO", "snapshot refreshed", map[string]interface{}{"entries": 3})

	assert.Contains(t, buf.String(), "[INFO]")
	assert.Contains(t, buf.String(), "snapshot refreshed")
}
