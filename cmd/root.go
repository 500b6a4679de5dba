// Package cmd provides the CLI commands for Tìmeadair.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"timeadair/internal/adapters/notification"
	"timeadair/internal/adapters/tui"
	"timeadair/internal/config"
	"timeadair/internal/domain"
	"timeadair/internal/logging"
	"timeadair/internal/session"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global dependencies
	appConfig *config.Config
	notifier  *notification.Notifier
	logResult *logging.Result
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timeadair",
	Short: "Tìmeadair - a terminal Pomodoro timer",
	Long: `Tìmeadair is a terminal Pomodoro timer that alternates 25-minute
work sessions with 5-minute breaks, drawing a live progress bar.

During a session, press 'q' to quit or 'r' to reset the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runLoop,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Tìmeadair\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// initializeServices loads configuration and sets up logging and
// notifications.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	notifier = notification.New(&appConfig.Notifications)

	dataDir, err := config.GetDataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Logs go to a rotating file: stdout belongs to the timer display.
	logResult = logging.Setup(dataDir, slog.LevelInfo, appConfig.Log)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// runLoop runs the interactive work/break loop for the bare command.
func runLoop(cmd *cobra.Command, args []string) error {
	logger := logResult.Logger

	session.RegisterInterruptHandler(os.Stdout, logger, tui.ReleaseActive)

	loop := session.New(session.Options{
		Run: func(sessionType domain.SessionType, duration int) (domain.Outcome, error) {
			return tui.Run(sessionType, duration, &appConfig.Theme)
		},
		In:            os.Stdin,
		Out:           os.Stdout,
		Logger:        logger,
		WorkDuration:  appConfig.Timer.WorkDuration.Seconds(),
		BreakDuration: appConfig.Timer.BreakDuration.Seconds(),
		OnComplete:    notifyComplete,
	})

	return loop.Run()
}

// notifyComplete sends a desktop notification for a finished session.
// Notification failures are logged, never fatal.
func notifyComplete(sessionType domain.SessionType) {
	var err error
	switch sessionType {
	case domain.SessionTypeWork:
		err = notifier.NotifyWorkComplete(appConfig.Timer.WorkDuration.String())
	case domain.SessionTypeBreak:
		err = notifier.NotifyBreakComplete()
	}

	if err != nil {
		logResult.Logger.Warn("notification failed", "error", err)
	}
}
