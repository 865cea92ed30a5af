package editor

import "log/slog"

// Action identifies a menu entry.
type Action int

const (
	ActionNew Action = iota
	ActionOpen
	ActionSave
	ActionToggleReadOnly
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionOpen:
		return "open"
	case ActionSave:
		return "save"
	case ActionToggleReadOnly:
		return "toggle_read_only"
	default:
		return "unknown"
	}
}

// MenuEntry describes how an action appears in a menu.
type MenuEntry struct {
	Action    Action
	Label     string
	Checkable bool
	Checked   bool
}

var menuLabels = []struct {
	action    Action
	label     string
	checkable bool
}{
	{ActionNew, "New", false},
	{ActionOpen, "Open", false},
	{ActionSave, "Save", false},
	{ActionToggleReadOnly, "Read-only", true},
}

// Actions returns the menu entries in display order. The read-only entry is
// checked when the editor is in read-only mode.
func (c *Controller) Actions() []MenuEntry {
	entries := make([]MenuEntry, 0, len(menuLabels))
	for _, l := range menuLabels {
		entries = append(entries, MenuEntry{
			Action:    l.action,
			Label:     l.label,
			Checkable: l.checkable,
			Checked:   l.checkable && c.Mode() == ReadOnly,
		})
	}
	return entries
}

// Dispatch runs the handler for a and reports whether one exists.
func (c *Controller) Dispatch(a Action) bool {
	handler, ok := c.handlers[a]
	if !ok {
		c.logger.Warn("unhandled action", slog.String("action", a.String()))
		return false
	}
	c.logger.Debug("dispatching action", slog.String("action", a.String()))
	handler()
	return true
}
