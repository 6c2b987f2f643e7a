package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/mock"
	"github.com/oksasatya/go-user-lookup/pkg/helpers"
)

const johnDoeLines = "id: 1\nname: John Doe\nemail: john@example.com\nstatus: Active\n"

func newTestApp(t *testing.T, src repository.RecordSource) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &out)
	app, err := NewApp(context.Background(), src, logger, &out)
	require.NoError(t, err)
	require.Equal(t, StateReady, app.State())
	return app, &out
}

func TestRunRendersProfile(t *testing.T) {
	app, out := newTestApp(t, &fakeSource{})
	app.Run(context.Background(), "1")
	require.Equal(t, johnDoeLines, out.String())
}

func TestRunDefaultsToFirstUser(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "1.5"} {
		src := &fakeSource{}
		app, out := newTestApp(t, src)
		app.Run(context.Background(), raw)
		require.Equal(t, johnDoeLines, out.String(), "raw %q", raw)
		require.Equal(t, []int64{1}, src.fetched)
	}
}

func TestRunLogsInvalidIdentifier(t *testing.T) {
	src := &fakeSource{}
	app, out := newTestApp(t, src)

	app.Run(context.Background(), "0")
	require.Equal(t, "[ERROR] invalid id\n", out.String())
	require.Empty(t, src.fetched)
}

func TestRunLogsSourceErrorWithoutOutput(t *testing.T) {
	app, out := newTestApp(t, &fakeSource{fetchErr: repository.ErrNotFound})
	app.Run(context.Background(), "12")
	require.Equal(t, "[ERROR] user not found\n", out.String())
}

func TestNewAppFailsWithoutPassword(t *testing.T) {
	var out bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &out)
	src := mock.NewRecordSource(repository.DefaultSourceConfig(), logger)

	app, err := NewApp(context.Background(), src, logger, &out)
	require.Nil(t, app)
	require.ErrorIs(t, err, ErrConnectionFailure)
	require.ErrorIs(t, err, repository.ErrConnection)

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "connect", appErr.Op)
	require.Equal(t, "failed to connect to database: connection error: database password not set", err.Error())
	require.Empty(t, out.String())
}

func TestNewAppWithMockSource(t *testing.T) {
	cfg := repository.DefaultSourceConfig()
	cfg.Password = "secret"
	var out bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &out)

	app, err := NewApp(context.Background(), mock.NewRecordSource(cfg, logger), logger, &out)
	require.NoError(t, err)
	app.Run(context.Background(), "")
	require.Equal(t, "[INFO] Database connected successfully\n"+johnDoeLines, out.String())
}

func TestRunOnUnreadyApp(t *testing.T) {
	var out bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &out)
	app := &App{state: StateFailed, logger: logger, out: &out}

	app.Run(context.Background(), "1")
	require.Equal(t, "[ERROR] application not ready\n", out.String())
}

func TestCloseReleasesSource(t *testing.T) {
	src := &fakeSource{}
	app, _ := newTestApp(t, src)
	require.NoError(t, app.Close())
	require.True(t, src.closed)
}

func TestResolveUserID(t *testing.T) {
	cases := map[string]int64{
		"":     1,
		"abc":  1,
		"7":    7,
		" 42 ": 42,
		"0":    0,
		"-3":   -3,
	}
	for raw, want := range cases {
		require.Equal(t, want, ResolveUserID(raw), "raw %q", raw)
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "init", StateInit.String())
	require.Equal(t, "ready", StateReady.String())
	require.Equal(t, "failed", StateFailed.String())
	require.True(t, strings.HasPrefix(State(9).String(), "unknown"))
}
