package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/shhac/textviewer/internal/editor"
)

// shortcutTable maps Ctrl/Cmd+key to menu actions.
var shortcutTable = []struct {
	key    fyne.KeyName
	action editor.Action
	label  string
}{
	{fyne.KeyN, editor.ActionNew, "New"},
	{fyne.KeyO, editor.ActionOpen, "Open"},
	{fyne.KeyS, editor.ActionSave, "Save"},
	{fyne.KeyR, editor.ActionToggleReadOnly, "Toggle Read-only"},
}

func shortcutFor(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{
		KeyName:  key,
		Modifier: fyne.KeyModifierShortcutDefault, // Cmd on macOS, Ctrl elsewhere
	}
}

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window.
// On desktop the glfw driver matches shortcuts against the main menu items
// first and stops there, so these handlers only fire on drivers without a
// main menu (mobile). There the canvas handles them when nothing is focused
// and the text area forwards them while it has focus.
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	for _, s := range shortcutTable {
		canvas.AddShortcut(shortcutFor(s.key), func(shortcut fyne.Shortcut) {
			w.handleShortcut(shortcut)
		})
	}
	w.textArea.SetShortcutHandler(w.handleShortcut)

	w.logger.Debug("keyboard shortcuts configured")
}

// handleShortcut dispatches a custom shortcut and reports whether it was one
// of ours.
func (w *MainWindow) handleShortcut(shortcut fyne.Shortcut) bool {
	custom, ok := shortcut.(*desktop.CustomShortcut)
	if !ok || custom.Modifier != fyne.KeyModifierShortcutDefault {
		return false
	}

	for _, s := range shortcutTable {
		if s.key == custom.KeyName {
			w.logger.Debug("keyboard shortcut", slog.String("action", s.action.String()))
			w.Dispatch(s.action)
			return true
		}
	}
	return false
}
