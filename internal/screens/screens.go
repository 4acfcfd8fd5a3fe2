// Package screens implements the application screens on top of the
// widget runtime: list management, task views, forms, and search.
package screens

import (
	"log/slog"

	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/theme"
)

// Env bundles what every screen needs: the app for stack operations
// and dialogs, the task manager, the palette, and the logger.
type Env struct {
	App     *runtime.App
	Manager *tasks.Manager
	Theme   theme.Theme
	Log     *slog.Logger

	// ArrowTraversal is handed to each screen's key routing.
	ArrowTraversal bool
}

// Save persists the task data, telling the user when it fails.
// Mutations are saved immediately so a crash loses nothing.
func (e *Env) Save() {
	if err := e.Manager.Save(); err != nil {
		e.Log.Error("save failed", "error", err)
		e.App.Alert("Could not save: " + err.Error())
	}
}

func (e *Env) styledButton(label string, onPress func()) *button {
	return newButton(e.Theme, label, onPress)
}

// layout constants for the 80x24 terminal the screens are designed
// against; larger terminals get extra margin, smaller ones clip.
const (
	screenWidth  = 80
	screenHeight = 24

	buttonWidth  = 22
	buttonHeight = 3
)

func buttonColumn(x, y int, buttons ...runtime.Widget) {
	for i, b := range buttons {
		b.SetBounds(runtime.Rect{X: x, Y: y + i*buttonHeight, Width: buttonWidth, Height: buttonHeight})
	}
}
