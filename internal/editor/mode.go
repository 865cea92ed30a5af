package editor

import (
	"image/color"
)

// Mode is the editability state of the text field.
type Mode int

const (
	Editable Mode = iota
	ReadOnly
)

// Hint colours used for the placeholder text in each mode.
var (
	EditableHintColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	ReadOnlyHintColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Editable:
		return "editable"
	case ReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == ReadOnly {
		return Editable
	}
	return ReadOnly
}

// Properties is the widget configuration implied by a Mode.
type Properties struct {
	CursorVisible bool
	AcceptsInput  bool // default key listener attached
	Selectable    bool
	HintColor     color.NRGBA
}

// Properties returns the derived widget configuration for m.
func (m Mode) Properties() Properties {
	if m == ReadOnly {
		return Properties{
			CursorVisible: false,
			AcceptsInput:  false,
			Selectable:    true,
			HintColor:     ReadOnlyHintColor,
		}
	}
	return Properties{
		CursorVisible: true,
		AcceptsInput:  true,
		Selectable:    true,
		HintColor:     EditableHintColor,
	}
}
