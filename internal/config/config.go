package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values are read by
// Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Export ExportConfig `mapstructure:"export"`
	Auth   AuthConfig   `mapstructure:"auth"`
	JWT    JWTConfig    `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// BaseURL is the externally reachable root used when building share
	// links, e.g. "http://localhost:8080".
	BaseURL string `mapstructure:"base_url"`
}

type DataConfig struct {
	// Dir holds the per-store JSON blobs.
	Dir string `mapstructure:"dir"`
	// MaxBlobBytes caps each store blob, imitating the browser storage
	// quota the original app lived under. Zero disables the cap.
	MaxBlobBytes int64 `mapstructure:"max_blob_bytes"`
}

type ExportConfig struct {
	// Dir receives the files written by multi-day exports.
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	// PasswordHash is the bcrypt hash of the trainer's password.
	PasswordHash string `mapstructure:"password_hash"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Nested keys map to env vars with underscores, e.g. server.address
	// -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("data.max_blob_bytes", int64(5*1024*1024))
	viper.SetDefault("export.dir", "./exports")
	viper.SetDefault("jwt.expiration", "12h")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults carry it.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
