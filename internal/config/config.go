package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full server configuration, loaded from config.yaml with
// ISCOL_-prefixed environment variable overrides.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// DevMode serves content from StaticDir instead of the embedded files
	// and enables the live-reload endpoint for local authoring.
	DevMode   bool   `mapstructure:"dev_mode"`
	StaticDir string `mapstructure:"static_dir"`

	ForceHTTPS     bool     `mapstructure:"force_https"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AdminConfig guards the operational endpoints (/metrics, /api/admin/*).
// KeyHash is a bcrypt hash of the operator key; tokens minted with `sitectl
// token` are signed with JWTSecret.
type AdminConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	KeyHash   string        `mapstructure:"key_hash"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// DatabaseConfig is used only by the registration import tooling; the server
// itself never touches a database.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads config.yaml from the working directory (or ./configs) and applies
// environment overrides. A missing config file is not an error; defaults and
// the environment carry a zero-config dev setup.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("ISCOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("server.force_https", false)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("admin.enabled", false)
	v.SetDefault("admin.token_ttl", 24*time.Hour)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	return &cfg
}
