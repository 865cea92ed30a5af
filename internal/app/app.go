package app

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/textviewer/internal/document"
	"github.com/shhac/textviewer/internal/editor"
	"github.com/shhac/textviewer/internal/logging"
	"github.com/shhac/textviewer/internal/model"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	codec   *document.Codec
	state   *model.EditorState
	watcher *ConfigWatcher

	onThemeChange func(mode string)
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger(AppName, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newApp(fyneApp, cfg, logger)
}

func newApp(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing textviewer",
		slog.Bool("debug", cfg.Debug),
		slog.String("charset", cfg.Charset),
		slog.String("config_path", cfg.ConfigPath),
	)

	codec, err := document.NewCodec(cfg.Charset)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize codec: %w", err)
	}

	logger.Info("application initialized successfully")

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		codec:   codec,
		state:   model.NewEditorState(),
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.watchConfig()
	defer a.Close()

	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// watchConfig starts reloading the theme when the config file changes.
// A watcher that cannot start only costs live reload.
func (a *App) watchConfig() {
	if a.config.ConfigPath == "" {
		return
	}

	w, err := NewConfigWatcher(a.config.ConfigPath, a.logger, a.applyConfig)
	if err != nil {
		a.logger.Warn("config reload disabled", slog.Any("error", err))
		return
	}
	a.watcher = w
}

// applyConfig takes the settings that can change at runtime from cfg. The
// charset stays fixed for the lifetime of the process.
func (a *App) applyConfig(cfg *Config) {
	fyne.Do(func() {
		if cfg.Theme != a.config.Theme && a.onThemeChange != nil {
			a.onThemeChange(cfg.Theme)
		}
		a.config.Theme = cfg.Theme
	})
}

// Close releases background resources.
func (a *App) Close() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		a.logger.Warn("failed to stop config watcher", slog.Any("error", err))
	}
	a.watcher = nil
}

// SetOnThemeChange registers fn to run on the UI goroutine when the theme
// in the config file changes.
func (a *App) SetOnThemeChange(fn func(mode string)) {
	a.onThemeChange = fn
}

// Theme returns the configured theme mode.
func (a *App) Theme() string {
	return a.config.Theme
}

// ToastDuration returns how long notifications stay visible.
func (a *App) ToastDuration() time.Duration {
	return time.Duration(a.config.ToastDuration)
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// State returns the application state for use by UI components.
func (a *App) State() *model.EditorState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Codec returns the document text codec.
func (a *App) Codec() editor.Codec {
	return a.codec
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
