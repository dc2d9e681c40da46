package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader searches dirs for the config file, or the xdg config dir and the
// working directory when none are given. changes may be nil.
func NewLoader(changes chan<- Config, dirs ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	def := Default()
	loader.SetDefault("width", def.Width)
	loader.SetDefault("height", def.Height)
	loader.SetDefault("scale", def.Scale)
	loader.SetDefault("log_level", def.LogLevel)
	loader.SetDefault("tps", def.TPS)
	loader.SetDefault("debug", def.Debug)
	loader.SetDefault("preload", def.Preload)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	if len(dirs) == 0 {
		dirs = []string{Path(""), "."}
	}
	for _, dir := range dirs {
		loader.AddConfigPath(dir)
	}
	loader.AutomaticEnv()

	return &loader
}

// UseFile reads from file instead of searching. The file must exist.
func (cl *Loader) UseFile(file string) {
	if file != "" {
		cl.SetConfigFile(file)
	}
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Watch reloads the config whenever the file changes and sends the result
// on the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes == nil {
		return
	}
	select {
	case cl.changes <- config:
	default:
		slog.Warn("Dropped config reload, previous one still pending")
	}
}

// Read loads the file if there is one and applies defaults and environment
// overrides. A missing file is not an error.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
