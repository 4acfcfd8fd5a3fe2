package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/terminal"
)

func TestDateInputRejectsImpossibleDates(t *testing.T) {
	in := NewDateInput()

	assert.Error(t, in.SetDate(31, 2, 2024), "February 31st does not exist")
	assert.Error(t, in.SetDate(31, 2, 2025))
	assert.Error(t, in.SetDate(29, 2, 2025), "2025 is a common year")
	assert.Error(t, in.SetDate(31, 4, 2024), "April has 30 days")
	assert.Error(t, in.SetDate(0, 1, 2024))
	assert.Error(t, in.SetDate(1, 13, 2024))

	assert.NoError(t, in.SetDate(29, 2, 2024), "2024 is a leap year")
	assert.NoError(t, in.SetDate(31, 12, 2024))
}

func TestDateInputMonthChangeClampsDay(t *testing.T) {
	in := NewDateInput()
	require.NoError(t, in.SetDate(31, 1, 2025))

	// Enter edit mode, move to the month field, step up to February.
	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	in.HandleKey(terminal.KeyOf(terminal.KeyRight))
	in.HandleKey(terminal.KeyOf(terminal.KeyUp))

	d := in.Date()
	assert.Equal(t, 2, int(d.Month()))
	assert.Equal(t, 28, d.Day(), "Jan 31 clamps to Feb 28 in a common year")
}

func TestDateInputDayWraps(t *testing.T) {
	in := NewDateInput()
	require.NoError(t, in.SetDate(28, 2, 2025))

	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	in.HandleKey(terminal.KeyOf(terminal.KeyUp))

	assert.Equal(t, 1, in.Date().Day(), "stepping past the month end wraps to 1")
}

func TestDateInputIgnoredWhenNotEditing(t *testing.T) {
	in := NewDateInput()
	require.NoError(t, in.SetDate(15, 6, 2025))

	out := in.HandleKey(terminal.KeyOf(terminal.KeyUp))

	assert.Equal(t, runtime.Ignored, out)
	assert.Equal(t, 15, in.Date().Day())
	assert.False(t, in.Editing())
}

func TestDateInputTabFallsThroughWhileEditing(t *testing.T) {
	in := NewDateInput()
	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	require.True(t, in.Editing())

	out := in.HandleKey(terminal.KeyOf(terminal.KeyTab))

	assert.Equal(t, runtime.Ignored, out, "Tab is left for focus traversal")
	assert.True(t, in.Editing())
}

func TestDateInputEnterTogglesEditing(t *testing.T) {
	in := NewDateInput()

	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	assert.True(t, in.Editing())

	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	assert.False(t, in.Editing())
}

func TestDateInputEscapeLeavesEditing(t *testing.T) {
	in := NewDateInput()
	in.HandleKey(terminal.KeyOf(terminal.KeyEnter))
	require.True(t, in.Editing())

	in.HandleKey(terminal.KeyOf(terminal.KeyEscape))
	assert.False(t, in.Editing())
}
