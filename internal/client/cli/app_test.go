package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/schoolplatform/internal/client/config"
	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
)

func TestNewApp_LocalStoreRestoresSession(t *testing.T) {
	captureOutput(t)
	ctx := context.Background()

	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = store.Options{Driver: store.DriverSQLite, DSN: filepath.Join(t.TempDir(), "data", "school.db")}
	c.SessionSecret = "top secret"
	c.LogLevel = "error"

	a, err := NewApp(ctx, c)
	require.NoError(t, err)
	assert.False(t, a.isLoggedIn())

	registerAndLogin(t, a)
	a.close(ctx)

	b, err := NewApp(ctx, c)
	require.NoError(t, err)
	defer b.close(ctx)

	assert.True(t, b.isLoggedIn())
	assert.Equal(t, "(Ann)", b.getStatus())
}

func TestNewApp_RejectsBadLogLevel(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.LogLevel = "chatty"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestNewApp_RemoteDaemonDown(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.ServerEndpointAddr = "127.0.0.1:1"
	c.RequestTimeout = 200 * time.Millisecond
	c.LogLevel = "error"

	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	defer a.close(context.Background())

	assert.False(t, a.isLoggedIn())
}

func TestRun_PrintsWelcomeAndExits(t *testing.T) {
	out := captureOutput(t)
	a, _ := newTestApp(t)
	a.reader = rdr("help\nexit\n")

	a.Run(context.Background())

	assert.Equal(t, "Welcome to the School Platform CLI (type 'help' for commands)", (*out)[0])
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}
