package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aireport/preflight/internal/ollama"
	"github.com/aireport/preflight/internal/precheck"
)

var (
	cfgFile      string
	processName  string
	modelName    string
	ollamaURL    string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Readiness gate for the local report assistant",
	Long: `preflight verifies that the local Ollama daemon is running and that the
required model is installed, then hands off to the report assistant.

Invoked with no arguments it behaves exactly like "preflight run".`,
	SilenceUsage: true,
	Args:         cobra.ArbitraryArgs,
	RunE:         runLaunch,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.preflight/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&processName, "process", "", "process name that must be running (default ollama)")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "model that must be installed (default qwen2.5:3b-instruct)")
	rootCmd.PersistentFlags().StringVar(&ollamaURL, "ollama-url", "", "Ollama API URL (default http://localhost:11434)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json or yaml")
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

		// Search config in home directory with name ".preflight/config"
		viper.AddConfigPath(filepath.Join(home, ".preflight"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("process", "PREFLIGHT_PROCESS")
	viper.BindEnv("model", "PREFLIGHT_MODEL")
	viper.BindEnv("ollama_url", "PREFLIGHT_OLLAMA_URL")

	// Config file is optional; running without one reproduces the
	// original launcher behavior exactly
	viper.ReadInConfig()

	if processName == "" {
		processName = viper.GetString("process")
	}
	if modelName == "" {
		modelName = viper.GetString("model")
	}
	if ollamaURL == "" {
		ollamaURL = viper.GetString("ollama_url")
	}

	// Set defaults if still empty
	if processName == "" {
		processName = precheck.DefaultProcessName
	}
	if modelName == "" {
		modelName = precheck.DefaultModel
	}
	if ollamaURL == "" {
		ollamaURL = ollama.DefaultBaseURL
	}
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}

// IsYAMLOutput returns true if YAML output is requested
func IsYAMLOutput() bool {
	return outputFormat == "yaml"
}
