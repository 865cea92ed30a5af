package textarea

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// fieldTheme overrides the app theme for the text area only. A read-only
// field is a disabled entry, so disabled text keeps the foreground colour.
type fieldTheme struct {
	readOnly bool
	hint     color.Color
}

func (f *fieldTheme) base() fyne.Theme {
	if app := fyne.CurrentApp(); app != nil {
		return app.Settings().Theme()
	}
	return theme.DefaultTheme()
}

// Color implements fyne.Theme.
func (f *fieldTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePlaceHolder:
		return f.hint
	case theme.ColorNameDisabled:
		if f.readOnly {
			return f.base().Color(theme.ColorNameForeground, variant)
		}
	}
	return f.base().Color(name, variant)
}

// Font implements fyne.Theme.
func (f *fieldTheme) Font(style fyne.TextStyle) fyne.Resource {
	return f.base().Font(style)
}

// Icon implements fyne.Theme.
func (f *fieldTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return f.base().Icon(name)
}

// Size implements fyne.Theme.
func (f *fieldTheme) Size(name fyne.ThemeSizeName) float32 {
	return f.base().Size(name)
}
