package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := InitWriter(&buf)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) }
	t.Cleanup(Reset)
	return &buf
}

func TestLog_FormatsEntry(t *testing.T) {
	buf := withBuffer(t)

	Info(CatAPI, "request done", "path", "/refs", "status", 200)

	require.Equal(t, "2026-01-02T15:04:05 [INFO] [api] request done path=/refs status=200\n", buf.String())
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := withBuffer(t)

	Debug(CatUI, "resize", "width")

	require.Contains(t, buf.String(), "width=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	buf := withBuffer(t)
	SetMinLevel(LevelWarn)

	Debug(CatSession, "hidden")
	Warn(CatSession, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [session] shown")
}

func TestLog_Disabled(t *testing.T) {
	buf := withBuffer(t)
	SetEnabled(false)

	Error(CatCache, "nope")

	require.Empty(t, buf.String())
}

func TestLog_ErrorErr(t *testing.T) {
	buf := withBuffer(t)

	ErrorErr(CatConfig, "write failed", errors.New("disk full"), "path", "x.yaml")
	ErrorErr(CatConfig, "nil error", nil)

	require.Contains(t, buf.String(), "path=x.yaml error=disk full")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	Reset()
	require.NotPanics(t, func() { Info(CatUI, "nothing") })
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_ListenerReceivesEntries(t *testing.T) {
	withBuffer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener(ctx)
	require.NotNil(t, l)

	Info(CatWatcher, "changed", "dir", "prompts")

	msg := l.Listen()()
	event, ok := msg.(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "[watcher] changed dir=prompts")
}

func TestDebugEnabledFromEnv(t *testing.T) {
	t.Setenv("IVAULT_PLAYGROUND_DEBUG", "true")
	require.True(t, DebugEnabledFromEnv())
	t.Setenv("IVAULT_PLAYGROUND_DEBUG", "0")
	require.False(t, DebugEnabledFromEnv())
}
