package app

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/textviewer/internal/document"
	"github.com/shhac/textviewer/internal/logging"
)

func TestNewApp(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	cfg.Charset = "latin1"

	a, err := newApp(fyneApp, cfg, logging.NewNopLogger())
	require.NoError(t, err)

	assert.Same(t, fyneApp, a.FyneApp())
	assert.Same(t, cfg, a.Config())
	assert.Equal(t, 2*time.Second, a.ToastDuration())
	assert.Equal(t, ThemeSystem, a.Theme())

	codec, ok := a.Codec().(*document.Codec)
	require.True(t, ok)
	assert.Equal(t, "windows-1252", codec.Charset())

	mode, err := a.State().Mode.Get()
	require.NoError(t, err)
	assert.Equal(t, "editable", mode)
}

func TestNewApp_BadCharset(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	cfg.Charset = "klingon"

	_, err := newApp(fyneApp, cfg, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestApp_ApplyConfigTheme(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	a, err := newApp(fyneApp, DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	var themes []string
	a.SetOnThemeChange(func(mode string) { themes = append(themes, mode) })

	dark := DefaultConfig()
	dark.Theme = ThemeDark
	a.applyConfig(dark)
	a.applyConfig(dark)

	assert.Equal(t, []string{ThemeDark}, themes, "unchanged theme is not reapplied")
	assert.Equal(t, ThemeDark, a.Theme())
}

func TestApp_CloseWithoutWatcher(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	a, err := newApp(fyneApp, DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	assert.NotPanics(t, a.Close)
}
