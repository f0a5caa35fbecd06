package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/internal/oklink"
	"github.com/gaze-network/brc20-export/pkg/logger"
	"github.com/gaze-network/brc20-export/pkg/logger/slogx"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Exporter: Exporter{
			OutputDir: "csv",
		},
	}
)

type Config struct {
	Logger   logger.Config `mapstructure:"logger"`
	OKLink   oklink.Config `mapstructure:"oklink"`
	Exporter Exporter      `mapstructure:"exporter"`
}

type Exporter struct {
	OutputDir string `mapstructure:"output_dir"`
}

// BindPFlag binds a command-line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given config file (optional) and
// environment variables. E.g. `OKLINK_API_KEY` maps to `oklink.api_key`.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.DebugContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the previously parsed configuration.
func Load() Config {
	return *config
}
