package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("perfgate")
	}

	viper.SetEnvPrefix("PERFGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("baseline_dir", "baselines")
	viper.SetDefault("history_file", ".perfgate/history.json")
	viper.SetDefault("strict", false)
	viper.SetDefault("regression_analysis", false)
	viper.SetDefault("save", false)

	// If a config file is found, read it in; absence is not an error.
	_ = viper.ReadInConfig()
}
