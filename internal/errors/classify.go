package errors

import (
	"errors"
	"log/slog"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
)

// Level returns the log level failures of this severity are recorded at.
func (s ErrorSeverity) Level() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Message  string // Text shown in the notification
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity and notification message.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	if errors.Is(err, ErrNothingToSave) {
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Message:  "Nothing to save",
		}
	}

	var fileErr *FileError
	if errors.As(err, &fileErr) {
		switch fileErr.Op {
		case OpOpen:
			return &UIError{
				Err:      err,
				Severity: SeverityError,
				Message:  "Error opening file: " + fileErr.Err.Error(),
			}
		case OpSave:
			return &UIError{
				Err:      err,
				Severity: SeverityError,
				Message:  "Error saving file: " + fileErr.Err.Error(),
			}
		}
	}

	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Message:  cfgErr.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Message:  err.Error(),
	}
}

// UserMessage returns the notification text for err, "" for nil.
func UserMessage(err error) string {
	uiErr := ClassifyError(err)
	if uiErr == nil {
		return ""
	}
	return uiErr.Message
}
