package textarea

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/shhac/textviewer/internal/editor"
)

// Compile-time interface check.
var _ editor.TextField = (*TextArea)(nil)

// TextArea is the screen's multi-line text field. Keyboard input is routed
// through a swappable key listener. Hiding the cursor disables the entry,
// which stops the caret from being drawn; the hint colour is applied with a
// theme override around the entry.
type TextArea struct {
	entry *inputEntry
	view  *container.ThemeOverride
	theme *fieldTheme
}

// New creates an editable text area showing placeholder when empty.
func New(placeholder string) *TextArea {
	e := &inputEntry{selectable: true}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.PlaceHolder = placeholder
	e.ExtendBaseWidget(e)
	e.keys = &entryKeys{entry: &e.Entry}

	th := &fieldTheme{hint: editor.EditableHintColor}

	return &TextArea{
		entry: e,
		view:  container.NewThemeOverride(e, th),
		theme: th,
	}
}

// CanvasObject returns the object to place in a layout.
func (t *TextArea) CanvasObject() fyne.CanvasObject {
	return t.view
}

// Focusable returns the widget that receives keyboard focus.
func (t *TextArea) Focusable() fyne.Focusable {
	return t.entry
}

// Text returns the full content.
func (t *TextArea) Text() string {
	return t.entry.Text
}

// SetText replaces the full content. Programmatic changes are allowed in
// every mode.
func (t *TextArea) SetText(text string) {
	t.entry.SetText(text)
}

// KeyListener returns the attached listener, nil while read-only.
func (t *TextArea) KeyListener() editor.KeyListener {
	return t.entry.keys
}

// ApplyProperties implements editor.Field.
func (t *TextArea) ApplyProperties(cursorVisible, selectable bool, keys editor.KeyListener, hint color.Color) {
	t.entry.keys = keys
	t.entry.selectable = selectable
	t.theme.readOnly = !cursorVisible
	t.theme.hint = hint
	if cursorVisible {
		t.entry.Enable()
	} else {
		t.entry.Disable()
	}
	t.view.Refresh()
}

// SetShortcutHandler installs fn to receive desktop shortcuts while the
// field has focus. fn reports whether it consumed the shortcut. Drivers that
// show a main menu resolve its item shortcuts before they reach the field.
func (t *TextArea) SetShortcutHandler(fn func(fyne.Shortcut) bool) {
	t.entry.onShortcut = fn
}

// CursorVisible reports whether the caret is drawn.
func (t *TextArea) CursorVisible() bool {
	return !t.entry.Disabled()
}

// Selectable reports whether text can be selected and copied.
func (t *TextArea) Selectable() bool {
	return t.entry.selectable
}

// HintColor returns the placeholder colour.
func (t *TextArea) HintColor() color.Color {
	return t.theme.hint
}
