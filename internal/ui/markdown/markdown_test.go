package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/instructvault/ivault-playground/internal/api"
)

func TestTranscript(t *testing.T) {
	got := Transcript([]api.Message{
		{Role: "system", Content: "Be brief.\n"},
		{Role: "user", Content: "Hello Ava"},
	})

	require.Equal(t, "### system\n\nBe brief.\n\n---\n\n### user\n\nHello Ava\n", got)
}

func TestTranscript_Empty(t *testing.T) {
	require.Equal(t, "_No messages._\n", Transcript(nil))
}

func TestTranscript_MissingRole(t *testing.T) {
	require.Contains(t, Transcript([]api.Message{{Content: "x"}}), "### message")
}

func TestRenderer_RenderMessages(t *testing.T) {
	r, err := New(40, "notty")
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())

	out, err := r.RenderMessages([]api.Message{{Role: "user", Content: "Hello Ava"}})
	require.NoError(t, err)
	require.Contains(t, out, "user")
	require.Contains(t, out, "Hello Ava")
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New(40, "/nonexistent/style.json")
	require.Error(t, err)
}
