package ui

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/textviewer/internal/document"
	"github.com/shhac/textviewer/internal/editor"
	apperrors "github.com/shhac/textviewer/internal/errors"
	"github.com/shhac/textviewer/internal/model"
	"github.com/shhac/textviewer/internal/ui/status"
	"github.com/shhac/textviewer/internal/ui/textarea"
)

// Placeholder is shown in the empty text area.
const Placeholder = "Start typing…"

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.EditorState
	Logger() *slog.Logger
	Codec() editor.Codec
	Theme() string
	ToastDuration() time.Duration
	SetOnThemeChange(fn func(mode string))
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.EditorState
	logger *slog.Logger
	app    AppController

	textArea   *textarea.TextArea
	statusBar  *status.StatusBar
	menuButton *widget.Button
	dialogs    *document.Dialogs
	controller *editor.Controller

	mainMenu     *fyne.MainMenu
	readOnlyItem *fyne.MenuItem
}

// NewMainWindow creates the single editor screen:
//   - Top: toolbar with the overflow menu button
//   - Center: the text area
//   - Bottom: status bar with mode indicator and notifications
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Text Viewer")

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	mw.textArea = textarea.New(Placeholder)
	mw.statusBar = status.NewStatusBar(mw.state, app.ToastDuration(), mw.logger)
	mw.dialogs = document.NewDialogs(window, mw.logger)
	mw.controller = editor.NewController(editor.Deps{
		Field:    mw.textArea,
		Notifier: mw.statusBar,
		Opener:   mw.dialogs,
		Saver:    mw.dialogs,
		Codec:    app.Codec(),
		Logger:   mw.logger,
	})
	mw.menuButton = widget.NewButtonWithIcon("", theme.MoreVerticalIcon(), mw.showOverflowMenu)

	ApplyTheme(fyneApp, app.Theme())
	app.SetOnThemeChange(func(mode string) {
		mw.logger.Info("applying theme", slog.String("mode", mode))
		ApplyTheme(fyneApp, mode)
	})

	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()
	mw.SetContent()

	window.Resize(fyne.NewSize(800, 600))

	return mw
}

// Dispatch runs a menu action and syncs the observable mode afterwards.
func (w *MainWindow) Dispatch(action editor.Action) {
	if !w.controller.Dispatch(action) {
		return
	}

	mode := w.controller.Mode()
	_ = w.state.Mode.Set(mode.String())
	if mode == editor.Editable {
		w.window.Canvas().Focus(w.textArea.Focusable())
	}
	if w.readOnlyItem != nil && w.readOnlyItem.Checked != (mode == editor.ReadOnly) {
		w.readOnlyItem.Checked = mode == editor.ReadOnly
		w.mainMenu.Refresh()
	}
}

// OpenFile loads the document at path, as if picked with Open.
func (w *MainWindow) OpenFile(path string) {
	r, name, err := document.OpenPath(path)
	if err != nil {
		uiErr := apperrors.ClassifyError(&apperrors.FileError{Op: apperrors.OpOpen, Name: path, Err: err})
		w.logger.Log(context.Background(), uiErr.Severity.Level(), "failed to open file",
			slog.String("path", path),
			slog.Any("error", err),
		)
		w.statusBar.Notify(uiErr.Message)
		return
	}
	w.controller.Load(r, name)
}

// overflowMenu builds the menu from the controller's current actions so the
// read-only check mark always reflects the mode.
func (w *MainWindow) overflowMenu() *fyne.Menu {
	entries := w.controller.Actions()
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, entry := range entries {
		action := entry.Action
		item := fyne.NewMenuItem(entry.Label, func() { w.Dispatch(action) })
		item.Checked = entry.Checked
		items = append(items, item)
	}
	return fyne.NewMenu("", items...)
}

func (w *MainWindow) showOverflowMenu() {
	widget.ShowPopUpMenuAtRelativePosition(
		w.overflowMenu(),
		w.window.Canvas(),
		fyne.NewPos(0, w.menuButton.Size().Height),
		w.menuButton,
	)
}

// setupMainMenu mirrors the overflow menu in the desktop menu bar.
func (w *MainWindow) setupMainMenu() {
	item := func(label string, action editor.Action, key fyne.KeyName) *fyne.MenuItem {
		mi := fyne.NewMenuItem(label, func() { w.Dispatch(action) })
		mi.Shortcut = shortcutFor(key)
		return mi
	}

	w.readOnlyItem = item("Read-only", editor.ActionToggleReadOnly, fyne.KeyR)

	w.mainMenu = fyne.NewMainMenu(
		fyne.NewMenu("File",
			item("New", editor.ActionNew, fyne.KeyN),
			item("Open…", editor.ActionOpen, fyne.KeyO),
			item("Save…", editor.ActionSave, fyne.KeyS),
		),
		fyne.NewMenu("View", w.readOnlyItem),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
			fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
		),
	)
	w.window.SetMainMenu(w.mainMenu)
}

// SetContent builds and sets the main window layout.
func (w *MainWindow) SetContent() {
	toolbar := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle("Text Viewer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		w.menuButton,
	)

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		w.statusBar,
		nil, nil,
		w.textArea.CanvasObject(),
	)

	w.window.SetContent(content)
	w.window.Canvas().Focus(w.textArea.Focusable())
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Controller returns the document controller.
func (w *MainWindow) Controller() *editor.Controller {
	return w.controller
}
