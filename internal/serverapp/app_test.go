package serverapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-graphql/internal/config"
	"campaign-graphql/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{Level: "error"})
}

func TestNewRequiresConfigAndLogger(t *testing.T) {
	_, err := New(nil, testLogger())
	require.Error(t, err)

	_, err = New(&config.Config{}, nil)
	require.Error(t, err)

	app, err := New(&config.Config{}, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, app.Plugins())
	assert.Nil(t, app.Engine())
}

func TestStartRequiresInit(t *testing.T) {
	app, err := New(&config.Config{}, testLogger())
	require.NoError(t, err)

	_, err = app.Start()
	require.Error(t, err)
	assert.EqualError(t, err, "app is not initialized")
}

func TestWaitForStopWithNilChannels(t *testing.T) {
	app, err := New(&config.Config{}, testLogger())
	require.NoError(t, err)

	_, err = app.WaitForStop(nil, nil)
	require.Error(t, err)
}

func TestWaitForStopServerError(t *testing.T) {
	app, err := New(&config.Config{}, testLogger())
	require.NoError(t, err)

	serverErrors := make(chan error, 1)
	serverErrors <- assert.AnError
	reason, err := app.WaitForStop(nil, serverErrors)
	assert.Equal(t, "server_error", reason)
	require.Error(t, err)
}

func TestCleanupRunsInReverseOrder(t *testing.T) {
	var order []string
	stack := cleanupStack{}
	stack.push("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	stack.push("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	stack.run(context.Background(), testLogger())
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestShutdownIsIdempotent(t *testing.T) {
	app, err := New(&config.Config{}, testLogger())
	require.NoError(t, err)

	calls := 0
	app.cleanup.push("resource", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, app.Shutdown(context.Background()))
	require.NoError(t, app.Shutdown(context.Background()))
	assert.Equal(t, 1, calls)
}
