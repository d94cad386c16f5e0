package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/epiphany/pkg/paths"
	"github.com/mattsolo1/epiphany/pkg/service"
)

var (
	settingsFile string
	configDir    string
)

// InitConfig loads CLI settings from settings.yaml in the application config
// directory and from EPIPHANY_* environment variables.
func InitConfig() {
	if settingsFile != "" {
		viper.SetConfigFile(settingsFile)
	} else {
		if dir, err := paths.NewResolver(configDir).ConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("EPIPHANY")
	viper.AutomaticEnv()

	viper.SetDefault("config_dir", "")
	viper.SetDefault("log_level", "warn")

	// A missing settings file is normal.
	_ = viper.ReadInConfig()
}

// InitService builds the service from the loaded settings.
func InitService() (*service.Service, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", viper.GetString("log_level"), err)
	}
	logger.SetLevel(level)

	dir := configDir
	if dir == "" {
		dir = viper.GetString("config_dir")
	}
	if dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}

	return service.New(&service.Config{ConfigDir: dir}, logger)
}

// AddGlobalFlags registers the settings flags on the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default is <config dir>/settings.yaml)")
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding epiphany.conf.json (default is the platform config dir)")
}
