package editor

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"strings"

	"fyne.io/fyne/v2"
)

// recordingKeys is a KeyListener that records what it receives.
type recordingKeys struct {
	runes []rune
}

func (k *recordingKeys) TypedRune(r rune)            { k.runes = append(k.runes, r) }
func (k *recordingKeys) TypedKey(*fyne.KeyEvent)     {}
func (k *recordingKeys) TypedShortcut(fyne.Shortcut) {}

// fakeField records every property application.
type fakeField struct {
	text          string
	keys          KeyListener
	cursorVisible bool
	selectable    bool
	hint          color.Color
	applyCalls    int
}

func newFakeField() *fakeField {
	return &fakeField{
		keys:          &recordingKeys{},
		cursorVisible: true,
		selectable:    true,
		hint:          EditableHintColor,
	}
}

func (f *fakeField) Text() string             { return f.text }
func (f *fakeField) SetText(text string)      { f.text = text }
func (f *fakeField) KeyListener() KeyListener { return f.keys }

func (f *fakeField) ApplyProperties(cursorVisible, selectable bool, keys KeyListener, hint color.Color) {
	f.applyCalls++
	f.cursorVisible = cursorVisible
	f.selectable = selectable
	f.keys = keys
	f.hint = hint
}

// properties reports the field's state in the same shape as Mode.Properties.
func (f *fakeField) properties() Properties {
	hint, _ := f.hint.(color.NRGBA)
	return Properties{
		CursorVisible: f.cursorVisible,
		AcceptsInput:  f.keys != nil,
		Selectable:    f.selectable,
		HintColor:     hint,
	}
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

// trackedReader records whether Close was called.
type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

// trackedWriter records writes and Close; it can fail either step.
// The buffer is a named field so io.WriteString cannot reach
// Buffer.WriteString and skip writeErr.
type trackedWriter struct {
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (w *trackedWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

func (w *trackedWriter) String() string {
	return w.buf.String()
}

func (w *trackedWriter) Close() error {
	w.closed = true
	return w.closeErr
}

// fakeOpener answers every Open call with a fixed result.
type fakeOpener struct {
	reader io.ReadCloser
	name   string
	err    error
	mimes  []string
}

func (o *fakeOpener) Open(mimeType string, done func(io.ReadCloser, string, error)) {
	o.mimes = append(o.mimes, mimeType)
	done(o.reader, o.name, o.err)
}

// fakeSaver answers every Save call with a fixed result.
type fakeSaver struct {
	writer    *trackedWriter
	err       error
	cancel    bool
	suggested []string
	mimes     []string
}

func (s *fakeSaver) Save(suggestedName, mimeType string, done func(io.WriteCloser, string, error)) {
	s.suggested = append(s.suggested, suggestedName)
	s.mimes = append(s.mimes, mimeType)
	switch {
	case s.err != nil:
		done(nil, "", s.err)
	case s.cancel:
		done(nil, "", nil)
	default:
		done(s.writer, suggestedName, nil)
	}
}

// plainCodec passes bytes through unchanged, like UTF-8 without a BOM.
type plainCodec struct{}

func (plainCodec) Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	return string(data), err
}

func (plainCodec) Encode(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

var errDisk = errors.New("disk unavailable")

func newReader(s string) *trackedReader {
	return &trackedReader{Reader: strings.NewReader(s)}
}
