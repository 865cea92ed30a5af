package document

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/textviewer/internal/logging"
)

type pickResult struct {
	calls int
	name  string
	err   error
	rc    io.Closer
}

// findInTree walks the rendered tree of o and returns the first object match
// accepts.
func findInTree(o fyne.CanvasObject, match func(fyne.CanvasObject) bool) fyne.CanvasObject {
	if o == nil || !o.Visible() {
		return nil
	}
	if match(o) {
		return o
	}

	var children []fyne.CanvasObject
	switch obj := o.(type) {
	case fyne.Widget:
		children = test.WidgetRenderer(obj).Objects()
	case *fyne.Container:
		children = obj.Objects
	}
	for _, child := range children {
		if found := findInTree(child, match); found != nil {
			return found
		}
	}
	return nil
}

func buttonLabelled(label string) func(fyne.CanvasObject) bool {
	return func(o fyne.CanvasObject) bool {
		b, ok := o.(*widget.Button)
		return ok && b.Text == label
	}
}

func newDialogWindow(t *testing.T) fyne.Window {
	t.Helper()
	w := test.NewWindow(widget.NewLabel("editor"))
	w.Resize(fyne.NewSize(900, 700))
	t.Cleanup(w.Close)
	return w
}

func TestDialogs_OpenCancelled(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := newDialogWindow(t)
	d := NewDialogs(w, logging.NewNopLogger())

	var got pickResult
	d.Open("text/plain", func(r io.ReadCloser, name string, err error) {
		got.calls++
		got.name, got.err, got.rc = name, err, r
	})

	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top, "the picker is shown")

	cancel := findInTree(top, buttonLabelled("Cancel"))
	require.NotNil(t, cancel)
	test.Tap(cancel.(*widget.Button))

	assert.Equal(t, 1, got.calls)
	assert.Nil(t, got.rc)
	assert.Equal(t, "", got.name)
	assert.NoError(t, got.err)
}

func TestDialogs_SaveSuggestsNameAndCancels(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := newDialogWindow(t)
	d := NewDialogs(w, logging.NewNopLogger())

	var got pickResult
	d.Save("note_1700000000123.txt", "text/plain", func(wc io.WriteCloser, name string, err error) {
		got.calls++
		got.name, got.err, got.rc = name, err, wc
	})

	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top, "the picker is shown")

	nameEntry := findInTree(top, func(o fyne.CanvasObject) bool {
		e, ok := o.(*widget.Entry)
		return ok && e.Text == "note_1700000000123.txt"
	})
	assert.NotNil(t, nameEntry, "the suggested file name is pre-filled")

	cancel := findInTree(top, buttonLabelled("Cancel"))
	require.NotNil(t, cancel)
	test.Tap(cancel.(*widget.Button))

	assert.Equal(t, 1, got.calls)
	assert.Nil(t, got.rc)
	assert.NoError(t, got.err)
}

func TestDialogs_OpenCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewDialogs(test.NewWindow(widget.NewLabel("")), logging.NewNopLogger())
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("picked"), 0644))

	var got pickResult
	var body []byte
	cb := d.openCallback(func(r io.ReadCloser, name string, err error) {
		got.calls++
		got.name, got.err = name, err
		if r != nil {
			body, _ = io.ReadAll(r)
			r.Close()
		}
	})

	reader, err := storage.Reader(storage.NewFileURI(path))
	require.NoError(t, err)
	cb(reader, nil)
	assert.Equal(t, "notes.txt", got.name)
	assert.Equal(t, "picked", string(body))

	pickErr := errors.New("picker crashed")
	cb(nil, pickErr)
	assert.ErrorIs(t, got.err, pickErr)
	assert.Equal(t, "", got.name)
	assert.Equal(t, 2, got.calls)
}

func TestDialogs_SaveCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewDialogs(test.NewWindow(widget.NewLabel("")), logging.NewNopLogger())
	path := filepath.Join(t.TempDir(), "out.txt")

	var name string
	var gotErr error
	cb := d.saveCallback("text/plain", func(wc io.WriteCloser, n string, err error) {
		name, gotErr = n, err
		if wc != nil {
			_, _ = io.WriteString(wc, "saved")
			wc.Close()
		}
	})

	writer, err := storage.Writer(storage.NewFileURI(path))
	require.NoError(t, err)
	cb(writer, nil)

	require.NoError(t, gotErr)
	assert.Equal(t, "out.txt", name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", string(data))

	cb(nil, nil)
	assert.Equal(t, "", name, "a nil writer is a cancellation")
	assert.NoError(t, gotErr)
}

func TestMimeFilter(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	dir := t.TempDir()
	text := filepath.Join(dir, "plain.txt")
	image := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(text, []byte("just words\n"), 0644))
	require.NoError(t, os.WriteFile(image, []byte("\x89PNG\r\n\x1a\n"), 0644))

	filter := mimeFilter("text/plain")
	assert.True(t, filter.Matches(storage.NewFileURI(text)))
	assert.False(t, filter.Matches(storage.NewFileURI(image)))
}
