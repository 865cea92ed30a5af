package document

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Dialogs opens and creates documents through the platform file picker.
// On Android this is the system document picker; on desktop it is Fyne's
// file dialog.
type Dialogs struct {
	window fyne.Window
	logger *slog.Logger
}

// NewDialogs creates pickers parented to window.
func NewDialogs(window fyne.Window, logger *slog.Logger) *Dialogs {
	return &Dialogs{window: window, logger: logger}
}

// Open shows a picker restricted to mimeType.
func (d *Dialogs) Open(mimeType string, done func(r io.ReadCloser, name string, err error)) {
	fd := dialog.NewFileOpen(d.openCallback(done), d.window)
	fd.SetFilter(mimeFilter(mimeType))
	fd.Show()
}

// Save shows a create-document picker with suggestedName pre-filled.
func (d *Dialogs) Save(suggestedName, mimeType string, done func(w io.WriteCloser, name string, err error)) {
	fd := dialog.NewFileSave(d.saveCallback(mimeType, done), d.window)
	fd.SetFileName(suggestedName)
	fd.SetFilter(mimeFilter(mimeType))
	fd.Show()
}

func mimeFilter(mimeType string) storage.FileFilter {
	return storage.NewMimeTypeFileFilter([]string{mimeType})
}

// openCallback maps the picker result onto done. A nil reader without an
// error is a cancellation.
func (d *Dialogs) openCallback(done func(r io.ReadCloser, name string, err error)) func(fyne.URIReadCloser, error) {
	return func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done(nil, "", err)
			return
		}
		if reader == nil {
			done(nil, "", nil) // User cancelled
			return
		}
		d.logger.Debug("document picked", slog.String("uri", reader.URI().String()))
		done(reader, reader.URI().Name(), nil)
	}
}

func (d *Dialogs) saveCallback(mimeType string, done func(w io.WriteCloser, name string, err error)) func(fyne.URIWriteCloser, error) {
	return func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			done(nil, "", err)
			return
		}
		if writer == nil {
			done(nil, "", nil) // User cancelled
			return
		}
		d.logger.Debug("document created",
			slog.String("uri", writer.URI().String()),
			slog.String("mime", mimeType),
		)
		done(writer, writer.URI().Name(), nil)
	}
}

// OpenURI reads an existing document without a picker.
func OpenURI(uri fyne.URI) (io.ReadCloser, error) {
	reader, err := storage.Reader(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri.Name(), err)
	}
	return reader, nil
}

// OpenPath reads a local file through the Fyne storage layer.
func OpenPath(path string) (io.ReadCloser, string, error) {
	uri := storage.NewFileURI(path)
	r, err := OpenURI(uri)
	if err != nil {
		return nil, uri.Name(), err
	}
	return r, uri.Name(), nil
}
