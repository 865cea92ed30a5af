package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	apperrors "github.com/shhac/textviewer/internal/errors"
)

// MIMEPlainText is the only document type the editor opens or creates.
const MIMEPlainText = "text/plain"

// Notification texts emitted by document actions.
const (
	MsgNewFile    = "New file"
	MsgFileOpened = "File opened"
	MsgFileSaved  = "File saved"
)

// TextBuffer is the content of the text field.
type TextBuffer interface {
	Text() string
	SetText(text string)
}

// Opener picks a document for reading. done receives a nil reader and a nil
// error when the user cancels.
type Opener interface {
	Open(mimeType string, done func(r io.ReadCloser, name string, err error))
}

// Saver creates a document for writing. done receives a nil writer and a nil
// error when the user cancels.
type Saver interface {
	Save(suggestedName, mimeType string, done func(w io.WriteCloser, name string, err error))
}

// Codec converts between document bytes and editor text.
type Codec interface {
	Decode(r io.Reader) (string, error)
	Encode(w io.Writer, text string) error
}

// TextField is a Field that also exposes its content.
type TextField interface {
	Field
	TextBuffer
}

// Deps holds the collaborators of a Controller.
type Deps struct {
	Field    TextField
	Notifier Notifier
	Opener   Opener
	Saver    Saver
	Codec    Codec
	Logger   *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller implements the screen's menu actions.
type Controller struct {
	text     TextBuffer
	toggle   *ReadOnlyToggle
	notifier Notifier
	opener   Opener
	saver    Saver
	codec    Codec
	logger   *slog.Logger
	now      func() time.Time

	// docName is the name of the last opened document.
	docName string

	handlers map[Action]func()
}

// NewController wires a controller. The field's key listener is captured
// here, so the field must still be in its initial editable state.
func NewController(deps Deps) *Controller {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	c := &Controller{
		text:     deps.Field,
		toggle:   NewReadOnlyToggle(deps.Field, deps.Notifier, deps.Logger),
		notifier: deps.Notifier,
		opener:   deps.Opener,
		saver:    deps.Saver,
		codec:    deps.Codec,
		logger:   deps.Logger,
		now:      now,
	}
	c.handlers = map[Action]func(){
		ActionNew:            c.New,
		ActionOpen:           c.Open,
		ActionSave:           c.Save,
		ActionToggleReadOnly: func() { c.toggle.Toggle() },
	}
	return c
}

// Mode returns the current editor mode.
func (c *Controller) Mode() Mode {
	return c.toggle.Mode()
}

// ToggleReadOnly flips between editable and read-only mode.
func (c *Controller) ToggleReadOnly() Mode {
	return c.toggle.Toggle()
}

// DocumentName returns the name of the last opened document, if any.
func (c *Controller) DocumentName() string {
	return c.docName
}

// New clears the text and forgets the current document.
func (c *Controller) New() {
	c.text.SetText("")
	c.docName = ""
	c.logger.Debug("new document")
	c.notifier.Notify(MsgNewFile)
}

// Open asks the user for a plain-text document and loads it.
func (c *Controller) Open() {
	c.opener.Open(MIMEPlainText, func(r io.ReadCloser, name string, err error) {
		if err != nil {
			c.fail(&apperrors.FileError{Op: apperrors.OpOpen, Name: name, Err: err})
			return
		}
		if r == nil {
			c.logger.Debug("open cancelled")
			return
		}
		c.Load(r, name)
	})
}

// Load replaces the text with the decoded content of r and closes it.
func (c *Controller) Load(r io.ReadCloser, name string) {
	text, err := c.read(r)
	if err != nil {
		c.fail(&apperrors.FileError{Op: apperrors.OpOpen, Name: name, Err: err})
		return
	}

	c.text.SetText(text)
	c.docName = name

	c.logger.Info("document opened",
		slog.String("name", name),
		slog.Int("length", len(text)),
	)
	c.notifier.Notify(MsgFileOpened)
}

func (c *Controller) read(r io.ReadCloser) (string, error) {
	defer r.Close()
	return c.codec.Decode(r)
}

// Save writes the text to a new document chosen by the user.
func (c *Controller) Save() {
	text := c.text.Text()
	if text == "" {
		c.notifier.Notify(apperrors.UserMessage(apperrors.ErrNothingToSave))
		return
	}

	c.saver.Save(SuggestedFileName(c.now()), MIMEPlainText, func(w io.WriteCloser, name string, err error) {
		if err != nil {
			c.fail(&apperrors.FileError{Op: apperrors.OpSave, Name: name, Err: err})
			return
		}
		if w == nil {
			c.logger.Debug("save cancelled")
			return
		}
		if err := c.write(w, text); err != nil {
			c.fail(&apperrors.FileError{Op: apperrors.OpSave, Name: name, Err: err})
			return
		}

		c.logger.Info("document saved",
			slog.String("name", name),
			slog.Int("length", len(text)),
		)
		c.notifier.Notify(MsgFileSaved)
	})
}

func (c *Controller) write(w io.WriteCloser, text string) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return c.codec.Encode(w, text)
}

// fail logs err at its classified severity and notifies the user.
func (c *Controller) fail(err *apperrors.FileError) {
	uiErr := apperrors.ClassifyError(err)
	c.logger.Log(context.Background(), uiErr.Severity.Level(), "document operation failed",
		slog.String("op", err.Op),
		slog.String("name", err.Name),
		slog.Any("error", err.Err),
	)
	c.notifier.Notify(uiErr.Message)
}

// SuggestedFileName returns the default name offered when saving.
func SuggestedFileName(t time.Time) string {
	return fmt.Sprintf("note_%d.txt", t.UnixMilli())
}
