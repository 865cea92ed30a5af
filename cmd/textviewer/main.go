package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/shhac/textviewer/internal/app"
	"github.com/shhac/textviewer/internal/ui"
)

// Global flags
var (
	debugMode  bool
	configPath string
	charset    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "textviewer [file]",
		Short: "Minimal plain text viewer and editor",
		Long: `Text Viewer - a single-screen plain text editor

Open, edit and save plain text documents. Toggle read-only mode to browse a
document without accidental edits while still being able to select and copy.`,
		Example: `  # Start with an empty document
  textviewer

  # Open a file on startup
  textviewer notes.txt

  # Read and write Latin-1 documents
  textviewer --charset windows-1252 legacy.txt

  # Write the default configuration file
  textviewer config init`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return runApp(cmd, file)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.Flags().StringVar(&charset, "charset", "", "Text encoding for documents (default from config, utf-8)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textviewer configuration",
		Long:  `Manage the textviewer configuration file`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path of the configuration file that would be loaded`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath(cmd)
		},
	}

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write a configuration file containing the default settings
Refuses to replace an existing file unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, force)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(ui.Version),
	); err != nil {
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp(cmd *cobra.Command, file string) (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
	if charset != "" {
		cfg.Charset = charset
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --charset: %w", err)
		}
	}

	tempLogger.Info("starting textviewer", slog.String("config", cfg.ConfigPath))

	fyneApp := fyneapp.NewWithID("com.shhac.textviewer")

	textApp, err := app.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(
		textApp.FyneApp(),
		textApp, // Pass the app as the controller
	)
	if file != "" {
		mainWindow.OpenFile(file)
	}

	// Run the application (blocking)
	textApp.Run(mainWindow.Window())

	textApp.Logger().Info("application shutdown complete")
	return nil
}

func printConfigPath(cmd *cobra.Command) error {
	path, err := app.ResolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func initConfig(cmd *cobra.Command, force bool) error {
	path, err := app.ResolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if err := app.WriteDefaultConfig(path, force); err != nil {
		if errors.Is(err, app.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
