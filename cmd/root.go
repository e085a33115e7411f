package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/menukit/internal/config"
	"github.com/zjrosen/menukit/internal/log"
)

var (
	version = "dev"
	cfgFile string
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "menukit",
	Short:   "Build and render HTML navigation menus",
	Long:    `menukit renders hierarchical navigation menus defined in YAML to HTML markup.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/menukit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"enable debug logging to stderr")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("active_class", defaults.ActiveClass)
	viper.SetDefault("url_prefix", defaults.URLPrefix)
	viper.SetDefault("watch_debounce_ms", defaults.WatchDebounceMS)
	viper.SetDefault("log_level", defaults.LogLevel)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .menukit/config.yaml (current directory)
		// 2. ~/.config/menukit/config.yaml (user config)
		if _, err := os.Stat(".menukit/config.yaml"); err == nil {
			viper.SetConfigFile(".menukit/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "menukit"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".menukit/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if os.Getenv("MENUKIT_DEBUG") != "" {
		verbose = true
	}
	if verbose {
		log.InitStderr("debug")
	} else {
		log.InitStderr(cfg.LogLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
