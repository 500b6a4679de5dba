// Package logging sets up file-backed logging for the application.
// Stdout belongs to the timer display, so logs must never go there.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"timeadair/internal/config"
)

// Result contains the logger and the file it writes to.
type Result struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *Result) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// Setup creates a logger that writes JSON records to a rotating file
// under logDir. Rotation is handled by lumberjack using the provided
// settings.
func Setup(logDir string, level slog.Leveler, rotation config.LogConfig) *Result {
	logPath := filepath.Join(logDir, "timeadair.log")

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))

	return &Result{
		Logger:   logger,
		LogFile:  writer,
		FilePath: logPath,
	}
}

// SetupWithWriter creates a logger that writes to the given writer.
// Useful in tests to capture output.
func SetupWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
