package textarea

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/textviewer/internal/editor"
)

// inputEntry is an Entry that forwards keyboard input to keys. With no
// listener it behaves as a read-only view: typing and editing keys are
// dropped, while navigation, copy and select-all still work.
type inputEntry struct {
	widget.Entry

	keys       editor.KeyListener
	selectable bool

	// onShortcut sees custom shortcuts first, in every mode
	onShortcut func(fyne.Shortcut) bool
}

// TypedRune forwards to the listener, or drops the rune when read-only.
func (e *inputEntry) TypedRune(r rune) {
	if e.keys != nil {
		e.keys.TypedRune(r)
	}
}

// TypedKey forwards to the listener; read-only allows only cursor movement.
func (e *inputEntry) TypedKey(key *fyne.KeyEvent) {
	if e.keys != nil {
		e.keys.TypedKey(key)
		return
	}

	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut forwards to the listener; read-only allows copy and
// select-all but blocks paste, cut, undo and redo.
func (e *inputEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if _, ok := shortcut.(*desktop.CustomShortcut); ok && e.onShortcut != nil && e.onShortcut(shortcut) {
		return
	}
	if e.keys != nil {
		e.keys.TypedShortcut(shortcut)
		return
	}
	if !e.selectable {
		return
	}

	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}

// TappedSecondary handles right click and long press. The stock Entry menu
// offers Cut and Paste, so read-only mode shows its own copy-only menu.
func (e *inputEntry) TappedSecondary(pe *fyne.PointEvent) {
	if e.keys != nil {
		e.Entry.TappedSecondary(pe)
		return
	}
	if !e.selectable {
		return
	}

	c := fyne.CurrentApp().Driver().CanvasForObject(e)
	if c == nil {
		return
	}

	clipboard := fyne.CurrentApp().Clipboard()
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Copy", func() {
			e.Entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: clipboard})
		}),
		fyne.NewMenuItem("Select all", func() {
			e.Entry.TypedShortcut(&fyne.ShortcutSelectAll{})
		}),
	)
	widget.ShowPopUpMenuAtRelativePosition(menu, c, pe.Position, e)
}

// entryKeys is the Entry's own input handling, captured once at creation
// and restored when editing is re-enabled.
type entryKeys struct {
	entry *widget.Entry
}

func (k *entryKeys) TypedRune(r rune) {
	k.entry.TypedRune(r)
}

func (k *entryKeys) TypedKey(key *fyne.KeyEvent) {
	k.entry.TypedKey(key)
}

func (k *entryKeys) TypedShortcut(shortcut fyne.Shortcut) {
	k.entry.TypedShortcut(shortcut)
}
