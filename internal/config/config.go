package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"cantina/internal/dpi"

	"github.com/adrg/xdg"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
	errInvalid    = errors.New("invalid config value")
)

const (
	ConfigDirName     = "cantina"
	DefaultConfigName = "cantina"
	DefaultLogName    = "cantina.log"
	EnvPrefix         = "cantina"

	DefaultWidth  = 1100
	DefaultHeight = 720
	MinWidth      = 900
	MinHeight     = 600
)

type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// Scale pins the display scale factor (1.0 is 96 DPI). Zero follows the
	// monitor.
	Scale    float64 `mapstructure:"scale"`
	LogLevel string  `mapstructure:"log_level"`
	// TPS is the input polling rate of the window loop.
	TPS   int  `mapstructure:"tps"`
	Debug bool `mapstructure:"debug"`
	// Preload decodes every photo before the window opens.
	Preload bool `mapstructure:"preload"`
}

// Default is the configuration used when no file or environment overrides
// anything.
func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		LogLevel: "info",
		TPS:      60,
		Preload:  true,
	}
}

// Level is the slog level for LogLevel. Debug wins over the configured level.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DPI is the pinned display density, or 0 when the monitor decides.
func (c Config) DPI() int {
	if c.Scale <= 0 {
		return 0
	}
	return dpi.FromFactor(c.Scale)
}

// Validate rejects values the window cannot use. Sizes below the minimum are
// raised to it rather than rejected.
func (c *Config) Validate() error {
	c.Width = max(c.Width, MinWidth)
	c.Height = max(c.Height, MinHeight)
	if c.Scale < 0 || c.Scale > 8 {
		return fmt.Errorf("%w: scale %g", errInvalid, c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", errInvalid, c.TPS)
	}
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("%w: log_level %q", errInvalid, c.LogLevel)
		}
	}
	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LogPath is the default log file under $XDG_STATE_HOME.
func LogPath() string {
	fullPath, errFullPath := xdg.StateFile(path.Join(ConfigDirName, DefaultLogName))
	if errFullPath != nil {
		return path.Join(xdg.StateHome, ConfigDirName, DefaultLogName)
	}

	return fullPath
}

// LoggerInit sets the slog default handler to a size-rotated log file. The
// returned closer flushes and closes the file.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	if logPath == "" {
		return nil, errors.Join(errors.New("empty log path"), errLoggerInit)
	}
	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	if _, err := rotator.Write(nil); err != nil {
		return nil, errors.Join(err, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(rotator, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return rotator, nil
}
