package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Addr    string `mapstructure:"ADDR"`
	DataDir string `mapstructure:"DATA_DIR"`
	DataURL string `mapstructure:"DATA_URL"`

	// Lookback window applied to the whole dashboard at load time, and the
	// default window reported to clients for the year slider.
	YearsBack        int `mapstructure:"YEARS_BACK"`
	YearsBackDefault int `mapstructure:"YEARS_BACK_DEFAULT"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogDir   string `mapstructure:"LOG_DIR"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("ADDR", ":8080")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DATA_URL", "")
	viper.SetDefault("YEARS_BACK", 10)
	viper.SetDefault("YEARS_BACK_DEFAULT", 10)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("CACHE_TTL_SECONDS", 600)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_DIR", "")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
