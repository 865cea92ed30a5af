package model

import "fyne.io/fyne/v2/data/binding"

// EditorState holds the screen's observable values as Fyne data bindings.
// Widgets bind to these values for reactive updates.
type EditorState struct {
	Notification binding.String // latest transient message, "" when none
	Mode         binding.String // "editable" or "read-only"
}

// NewEditorState creates an EditorState in editable mode with no message.
func NewEditorState() *EditorState {
	mode := binding.NewString()
	_ = mode.Set("editable")

	return &EditorState{
		Notification: binding.NewString(),
		Mode:         mode,
	}
}
