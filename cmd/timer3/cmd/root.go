package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gilrrei/timer3/pkg/logging"
)

var (
	cfgFile  string
	logLevel string
	logJSON  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "timer3",
	Short: "Nested call timing instrumentation",
	Long: `timer3 times nested code regions, reconstructs the call hierarchy from
the recorded log and renders it as a table, CSV export or Prometheus metrics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.timer3/config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit log lines as JSON")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".timer3/config" (without extension)
		configDir := filepath.Join(home, ".timer3")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("log_level", "TIMER3_LOG_LEVEL")
	viper.BindEnv("log_json", "TIMER3_LOG_JSON")
	viper.BindEnv("listen", "TIMER3_LISTEN")

	// If a config file is found, read it in; flags win over config values
	if err := viper.ReadInConfig(); err == nil {
		if logLevel == "" && viper.GetString("log_level") != "" {
			logLevel = viper.GetString("log_level")
		}
		if !logJSON && viper.GetBool("log_json") {
			logJSON = true
		}
	}

	if logLevel == "" && viper.GetString("log_level") != "" {
		logLevel = viper.GetString("log_level")
	}
	if !logJSON && viper.GetBool("log_json") {
		logJSON = true
	}
	if logLevel == "" {
		logLevel = "info"
	}
}

// newLogger builds the CLI logger from the resolved configuration
func newLogger() *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(logLevel), logJSON)
}
