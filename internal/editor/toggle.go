package editor

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
)

// Notification texts emitted by the toggle.
const (
	MsgReadOnlyOn = "Read-only ON – long-press to copy"
	MsgEditable   = "Editable mode"
)

// KeyListener turns keyboard events into text mutations.
type KeyListener interface {
	TypedRune(r rune)
	TypedKey(ev *fyne.KeyEvent)
	TypedShortcut(s fyne.Shortcut)
}

// Field is the text widget whose properties follow the mode.
type Field interface {
	KeyListener() KeyListener
	// ApplyProperties sets cursor visibility, selectability, key listener
	// and hint colour in one call. A nil listener rejects all edits.
	ApplyProperties(cursorVisible, selectable bool, keys KeyListener, hint color.Color)
}

// Notifier shows a short, non-blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// ReadOnlyToggle owns the editor mode and keeps the field consistent with it.
type ReadOnlyToggle struct {
	field       Field
	notifier    Notifier
	logger      *slog.Logger
	mode        Mode
	defaultKeys KeyListener
}

// NewReadOnlyToggle captures the field's current key listener as the one
// restored when leaving read-only mode. It must be called before anything
// else mutates the field's listener.
func NewReadOnlyToggle(field Field, notifier Notifier, logger *slog.Logger) *ReadOnlyToggle {
	return &ReadOnlyToggle{
		field:       field,
		notifier:    notifier,
		logger:      logger,
		mode:        Editable,
		defaultKeys: field.KeyListener(),
	}
}

// Mode returns the current mode.
func (t *ReadOnlyToggle) Mode() Mode {
	return t.mode
}

// Toggle flips the mode, applies it to the field and notifies the user.
func (t *ReadOnlyToggle) Toggle() Mode {
	t.mode = t.mode.Toggled()
	t.apply()

	t.logger.Debug("editor mode changed", slog.String("mode", t.mode.String()))

	if t.mode == ReadOnly {
		t.notifier.Notify(MsgReadOnlyOn)
	} else {
		t.notifier.Notify(MsgEditable)
	}
	return t.mode
}

func (t *ReadOnlyToggle) apply() {
	props := t.mode.Properties()

	var keys KeyListener
	if props.AcceptsInput {
		keys = t.defaultKeys
	}
	t.field.ApplyProperties(props.CursorVisible, props.Selectable, keys, props.HintColor)
}
