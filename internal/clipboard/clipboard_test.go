package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystem_UsesClipboardUtility(t *testing.T) {
	var got string
	var term bytes.Buffer
	s := &System{Terminal: &term, writeAll: func(text string) error { got = text; return nil }}

	require.NoError(t, s.Copy(`{"name": "greet"}`))
	require.Equal(t, `{"name": "greet"}`, got)
	require.Zero(t, term.Len(), "no fallback when the utility succeeds")
}

func TestSystem_FallsBackToOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	var term bytes.Buffer
	s := &System{Terminal: &term, writeAll: func(string) error { return errors.New("no xclip") }}

	require.NoError(t, s.Copy("hello"))
	require.Contains(t, term.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestSystem_UnsupportedSkipsUtility(t *testing.T) {
	called := false
	var term bytes.Buffer
	s := &System{Terminal: &term, unsupported: true, writeAll: func(string) error { called = true; return nil }}

	require.NoError(t, s.Copy("x"))
	require.False(t, called)
	require.NotZero(t, term.Len())
}

func TestSystem_NoFallback(t *testing.T) {
	s := &System{unsupported: true}
	require.ErrorIs(t, s.Copy("x"), ErrUnavailable)

	s = &System{writeAll: func(string) error { return errors.New("denied") }}
	require.ErrorContains(t, s.Copy("x"), "denied")
}

func TestMock(t *testing.T) {
	m := &Mock{}
	require.NoError(t, m.Copy("a"))
	require.Equal(t, []string{"a"}, m.Copied())

	m.Err = errors.New("denied")
	require.Error(t, m.Copy("b"))
	require.Equal(t, []string{"a"}, m.Copied())
}
