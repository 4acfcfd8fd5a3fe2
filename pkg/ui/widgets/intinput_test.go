package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfarias/tuido/pkg/ui/terminal"
)

func TestIntInputRangeRejectsOutOfBounds(t *testing.T) {
	in := NewIntInput(1)
	in.SetRange(1, 5)

	in.HandleKey(terminal.RuneOf('6'))
	assert.Equal(t, 1, in.Value(), "typing 6 over 1 would give 16 then 6, both out of range")

	in.HandleKey(terminal.RuneOf('0'))
	assert.Equal(t, 1, in.Value(), "0 is below the range")

	in.HandleKey(terminal.RuneOf('4'))
	assert.Equal(t, 4, in.Value(), "typing over replaces when appending overflows")
}

func TestIntInputStepsStayInRange(t *testing.T) {
	in := NewIntInput(5)
	in.SetRange(1, 5)

	in.HandleKey(terminal.KeyOf(terminal.KeyUp))
	assert.Equal(t, 5, in.Value(), "Up at the top is rejected")

	in.HandleKey(terminal.KeyOf(terminal.KeyDown))
	assert.Equal(t, 4, in.Value())

	in.SetValue(1)
	in.HandleKey(terminal.KeyOf(terminal.KeyDown))
	assert.Equal(t, 1, in.Value(), "Down at the bottom is rejected")
}

func TestIntInputAppendDigits(t *testing.T) {
	in := NewIntInput(0)

	in.HandleKey(terminal.RuneOf('1'))
	in.HandleKey(terminal.RuneOf('2'))
	in.HandleKey(terminal.RuneOf('3'))
	assert.Equal(t, 123, in.Value())

	in.HandleKey(terminal.KeyOf(terminal.KeyBackspace))
	assert.Equal(t, 12, in.Value())
}

func TestIntInputBackspaceClampsToRange(t *testing.T) {
	in := NewIntInput(12)
	in.SetRange(5, 99)

	in.HandleKey(terminal.KeyOf(terminal.KeyBackspace))
	assert.Equal(t, 5, in.Value(), "dropping to 1 clamps up to the minimum")
}

func TestIntInputSetValueClamps(t *testing.T) {
	in := NewIntInput(0)
	in.SetRange(1, 5)
	assert.Equal(t, 1, in.Value())

	in.SetValue(9)
	assert.Equal(t, 5, in.Value())
}
