package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfarias/tuido/pkg/ui/backend"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

func newTestBackend(t *testing.T, w, h int) *Backend {
	t.Helper()
	b := New(w, h)
	require.NoError(t, b.Init())
	t.Cleanup(b.Fini)
	return b
}

// pollKey skips the resize event tcell queues on startup.
func pollKey(t *testing.T, b *Backend) terminal.KeyEvent {
	t.Helper()
	for {
		ev := b.PollEvent()
		require.NotNil(t, ev)
		if ke, ok := ev.(terminal.KeyEvent); ok {
			return ke
		}
	}
}

func TestCaptureAndFindText(t *testing.T) {
	b := newTestBackend(t, 40, 10)

	style := backend.DefaultStyle()
	for i, r := range "hello" {
		b.SetContent(5+i, 3, r, nil, style)
	}
	b.Show()

	assert.True(t, b.ContainsText("hello"))
	x, y := b.FindText("hello")
	assert.Equal(t, 5, x)
	assert.Equal(t, 3, y)

	x, _ = b.FindText("absent")
	assert.Equal(t, -1, x)
}

func TestCaptureCellStyle(t *testing.T) {
	b := newTestBackend(t, 10, 4)

	b.SetContent(2, 1, 'Q', nil, backend.DefaultStyle().Bold(true).Foreground(backend.ColorRed))
	b.Show()

	r, _, style := b.CaptureCell(2, 1)
	assert.Equal(t, 'Q', r)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&backend.AttrBold)
	fg, _, _ := style.Decompose()
	assert.Equal(t, backend.ColorRed, fg)
}

func TestInjectKeyRoundTrip(t *testing.T) {
	b := newTestBackend(t, 20, 5)

	b.InjectKeyRune('x')
	ke := pollKey(t, b)
	assert.Equal(t, terminal.KeyRune, ke.Key)
	assert.Equal(t, 'x', ke.Rune)

	b.InjectKey(terminal.BackTab())
	ke = pollKey(t, b)
	assert.Equal(t, terminal.KeyTab, ke.Key)
	assert.True(t, ke.Shift)

	b.InjectKey(terminal.KeyOf(terminal.KeyF5))
	ke = pollKey(t, b)
	assert.Equal(t, terminal.KeyF5, ke.Key)
}

func TestInjectKeyString(t *testing.T) {
	b := newTestBackend(t, 20, 5)

	b.InjectKeyString("ab")
	assert.Equal(t, 'a', pollKey(t, b).Rune)
	assert.Equal(t, 'b', pollKey(t, b).Rune)
}

func TestInjectResize(t *testing.T) {
	b := newTestBackend(t, 20, 5)

	b.InjectResize(100, 40)

	for {
		ev := b.PollEvent()
		require.NotNil(t, ev)
		re, ok := ev.(terminal.ResizeEvent)
		if !ok {
			continue
		}
		if re.Width == 100 {
			assert.Equal(t, 40, re.Height)
			break
		}
	}
	w, h := b.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}
