// Package clipboard copies text to the system clipboard, falling back to
// the OSC 52 terminal escape when no clipboard utility is available (for
// example over SSH).
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither the system clipboard nor a
// terminal for OSC 52 is available.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System copies through the platform clipboard utility and falls back to
// OSC 52 on Terminal.
type System struct {
	// Terminal receives the OSC 52 sequence. Nil disables the fallback.
	Terminal io.Writer

	writeAll    func(string) error
	unsupported bool
}

// NewSystem returns a clipboard writing OSC 52 to stderr, which stays
// attached to the terminal while the TUI owns stdout.
func NewSystem() *System {
	return &System{
		Terminal:    os.Stderr,
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Copy implements Clipboard.
func (s *System) Copy(text string) error {
	var sysErr error
	if !s.unsupported && s.writeAll != nil {
		if sysErr = s.writeAll(text); sysErr == nil {
			return nil
		}
	}
	if s.Terminal == nil {
		if sysErr != nil {
			return fmt.Errorf("copying to clipboard: %w", sysErr)
		}
		return ErrUnavailable
	}
	if _, err := sequence(text).WriteTo(s.Terminal); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", errors.Join(err, sysErr))
	}
	return nil
}

// sequence wraps text for the multiplexer named by TERM, if any.
func sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	term := os.Getenv("TERM")
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}

// Mock records copied text. The zero value succeeds.
type Mock struct {
	mu     sync.Mutex
	copied []string
	Err    error
}

// Copy implements Clipboard.
func (m *Mock) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.copied = append(m.copied, text)
	return nil
}

// Copied returns everything copied so far.
func (m *Mock) Copied() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.copied...)
}
