package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AuthScheme constants
const (
	AuthSchemeCookie = "cookie"
	AuthSchemeBearer = "bearer"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Session  SessionConfig  `mapstructure:"session"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// BackendConfig describes the remote HR platform API.
type BackendConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	AuthScheme string        `mapstructure:"auth_scheme"` // "cookie" or "bearer"
}

// IsCookie returns true if the backend session rides on a cookie.
func (b *BackendConfig) IsCookie() bool {
	return b.AuthScheme == AuthSchemeCookie || b.AuthScheme == ""
}

// IsBearer returns true if the backend expects a bearer token.
func (b *BackendConfig) IsBearer() bool {
	return b.AuthScheme == AuthSchemeBearer
}

// SessionConfig controls how the backend session credential is handled.
type SessionConfig struct {
	CookieName        string `mapstructure:"cookie_name"`         // Name of the backend session cookie
	CredentialTTLDays int    `mapstructure:"credential_ttl_days"` // How long a persisted credential stays valid
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// UploadConfig bounds what the agent accepts before touching the network.
type UploadConfig struct {
	MaxSizeMB    int      `mapstructure:"max_size_mb"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Convert timeout to duration
	cfg.Backend.Timeout = cfg.Backend.Timeout * time.Second

	if cfg.Backend.AuthScheme == "" {
		cfg.Backend.AuthScheme = AuthSchemeCookie
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "hr_session"
	}
	if cfg.Session.CredentialTTLDays <= 0 {
		cfg.Session.CredentialTTLDays = 30
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		cfg.Upload.MaxSizeMB = 10
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
