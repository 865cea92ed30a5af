package status

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/textviewer/internal/model"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 2 * time.Second

// StatusBar shows the current editor mode and the latest transient
// notification. The mode uses a distinct icon shape per state:
//   - editable: document-create icon (pencil)
//   - read-only: visibility icon (eye)
//
// A newer notification replaces the visible one and restarts its timer.
type StatusBar struct {
	widget.BaseWidget

	state     *model.EditorState
	logger    *slog.Logger
	duration  time.Duration
	message   *widget.Label
	modeLabel *widget.Label
	indicator *widget.Icon

	// seq and timer are only touched on the UI goroutine.
	seq   uint64
	timer *time.Timer
}

// NewStatusBar creates a status bar bound to the given editor state.
func NewStatusBar(state *model.EditorState, duration time.Duration, logger *slog.Logger) *StatusBar {
	if duration <= 0 {
		duration = DefaultDuration
	}

	message := widget.NewLabel("")
	message.Truncation = fyne.TextTruncateEllipsis

	modeLabel := widget.NewLabel("")
	modeLabel.Importance = widget.LowImportance

	s := &StatusBar{
		state:     state,
		logger:    logger,
		duration:  duration,
		message:   message,
		modeLabel: modeLabel,
		indicator: widget.NewIcon(theme.DocumentCreateIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Notification.AddListener(binding.NewDataListener(s.updateMessage))
	state.Mode.AddListener(binding.NewDataListener(s.updateMode))

	s.updateMessage()
	s.updateMode()

	return s
}

// Notify shows message until the duration elapses or another message arrives.
// Fire and forget: it never blocks.
func (s *StatusBar) Notify(message string) {
	if message == "" {
		return
	}

	s.seq++
	seq := s.seq
	_ = s.state.Notification.Set(message)
	s.logger.Debug("notification shown", slog.String("message", message))

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.duration, func() {
		fyne.Do(func() {
			if s.seq == seq {
				_ = s.state.Notification.Set("")
			}
		})
	})
}

// Message returns the visible notification text.
func (s *StatusBar) Message() string {
	msg, _ := s.state.Notification.Get()
	return msg
}

func (s *StatusBar) updateMessage() {
	msg, _ := s.state.Notification.Get()
	s.message.SetText(msg)
}

func (s *StatusBar) updateMode() {
	mode, _ := s.state.Mode.Get()

	switch mode {
	case "read-only":
		s.indicator.SetResource(theme.VisibilityIcon())
		s.modeLabel.SetText("Read-only")
	default:
		s.indicator.SetResource(theme.DocumentCreateIcon())
		s.modeLabel.SetText("Editable")
	}
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil,
		container.NewHBox(s.indicator, s.modeLabel),
		nil,
		s.message,
	)
	return widget.NewSimpleRenderer(content)
}
