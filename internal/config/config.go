package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "09:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue","Wed","Thu","Fri"]
	Holidays []string `mapstructure:"holidays"` // ["2026-12-25"]
}

type DailyConfig struct {
	Folder   string `mapstructure:"folder"`   // relative to the vault
	Format   string `mapstructure:"format"`   // moment style, "YYYY-MM-DD"
	Template string `mapstructure:"template"` // relative to the vault
}

type PluginsConfig struct {
	NaturalLanguageDates bool `mapstructure:"nldates"`
}

type Config struct {
	Vault    string         `mapstructure:"vault"`
	Editor   string         `mapstructure:"editor"`
	Timezone string         `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
	LogLevel string         `mapstructure:"log_level"`
	Desktop  bool           `mapstructure:"desktop_notifications"`
	Daily    DailyConfig    `mapstructure:"daily"`
	Plugins  PluginsConfig  `mapstructure:"plugins"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Vault:    filepath.Join(home, "notes"),
		LogLevel: "info",
		Daily: DailyConfig{
			Format: "YYYY-MM-DD",
		},
		Plugins: PluginsConfig{NaturalLanguageDates: true},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "09:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Holidays: []string{},
		},
	}
}

// Path is ~/.config/dailynote/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dailynote", "config.yaml"), nil
}

// Load reads the config at the default path.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads path; a missing file leaves the defaults in place.
// DAILYNOTE_* environment variables override file values.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("dailynote")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("vault", cfg.Vault)
	v.SetDefault("editor", cfg.Editor)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("desktop_notifications", cfg.Desktop)
	v.SetDefault("daily.folder", cfg.Daily.Folder)
	v.SetDefault("daily.format", cfg.Daily.Format)
	v.SetDefault("daily.template", cfg.Daily.Template)
	v.SetDefault("plugins.nldates", cfg.Plugins.NaturalLanguageDates)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("config read: %w", err)
		}
	}
	// decode into a zero value so list settings replace the defaults instead
	// of being merged into them
	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	cfg = out

	cfg.Vault = expandHome(cfg.Vault)

	// normalize workdays
	days := cfg.Reminder.Workdays[:0]
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		days = append(days, strings.ToUpper(d[:1])+strings.ToLower(d[1:3]))
	}
	cfg.Reminder.Workdays = days
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
