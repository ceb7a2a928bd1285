package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Comma-separated list of extra allowed CORS origins.
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Simulated GDS latency. When MOCK_DELAYS is true every API call
	// sleeps a random interval between the min and max (milliseconds)
	// to emulate real-world Amadeus response times.
	MockDelays     bool `mapstructure:"MOCK_DELAYS"`
	MockDelayMinMS int  `mapstructure:"MOCK_DELAY_MIN_MS"`
	MockDelayMaxMS int  `mapstructure:"MOCK_DELAY_MAX_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_URL", "")
	viper.SetDefault("MOCK_DELAYS", false)
	viper.SetDefault("MOCK_DELAY_MIN_MS", 1000)
	viper.SetDefault("MOCK_DELAY_MAX_MS", 5000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
