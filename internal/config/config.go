// Package config provides configuration management for Tìmeadair.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
	Log           LogConfig          `mapstructure:"log"`
}

// TimerConfig holds the session durations.
type TimerConfig struct {
	WorkDuration  Duration `mapstructure:"work_duration"`
	BreakDuration Duration `mapstructure:"break_duration"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds color customization for the timer display.
type ThemeConfig struct {
	ColorFill  string `mapstructure:"color_fill"`
	ColorEmpty string `mapstructure:"color_empty"`
	ColorTitle string `mapstructure:"color_title"`
	ColorHelp  string `mapstructure:"color_help"`
}

// LogConfig holds log file rotation settings.
type LogConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFill:  "#2ECC71",
		ColorEmpty: "#6B7280",
		ColorTitle: "#E74C3C",
		ColorHelp:  "#95A5A6",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Seconds returns the duration as whole seconds.
func (d Duration) Seconds() int {
	return int(time.Duration(d) / time.Second)
}

// DefaultConfig returns the default configuration: the classic 25/5
// Pomodoro intervals.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkDuration:  Duration(25 * time.Minute),
			BreakDuration: Duration(5 * time.Minute),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Theme: DefaultThemeConfig(),
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 2,
			MaxAgeDays: 14,
			Compress:   false,
		},
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("timer.work_duration", cfg.Timer.WorkDuration.String())
	v.Set("timer.break_duration", cfg.Timer.BreakDuration.String())
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("theme.color_fill", cfg.Theme.ColorFill)
	v.Set("theme.color_empty", cfg.Theme.ColorEmpty)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)
	v.Set("log.max_age_days", cfg.Log.MaxAgeDays)
	v.Set("log.compress", cfg.Log.Compress)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".timeadair", "config.toml"), nil
}

// GetDataDir returns the directory holding log files.
func GetDataDir() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("timer.work_duration", "25m0s")
	v.SetDefault("timer.break_duration", "5m0s")
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.sound", true)
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 2)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.compress", false)

	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_fill", defaults.ColorFill)
	v.SetDefault("theme.color_empty", defaults.ColorEmpty)
	v.SetDefault("theme.color_title", defaults.ColorTitle)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
}
