package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrNothingToSave  = errors.New("nothing to save")
	ErrUnknownCharset = errors.New("unknown charset")
)

// Operations reported by FileError.
const (
	OpOpen = "open"
	OpSave = "save"
)

// FileError records a failed document read or write.
type FileError struct {
	Op   string // OpOpen or OpSave
	Name string // document name, may be empty when the picker failed
	Err  error
}

func (e *FileError) Error() string {
	if e.Name == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Key     string
	Message string
}

func (e ConfigError) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return e.Key + ": " + e.Message
}
