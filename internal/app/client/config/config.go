package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress     = "localhost:8000"
	defaultWebAddress        = "localhost:8090"
	defaultLogLevel          = "info"
	defaultEnv               = "local"
	defaultConfigDir         = ".banker"
	defaultCredentialBackend = BackendFile
	defaultRequestTimeout    = 30
)

// Credential backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Env               string        `mapstructure:"app_env"`
	ServerAddress     string        `mapstructure:"server_address"`
	LogLevel          string        `mapstructure:"log_level"`
	ConfigDir         string        `mapstructure:"config_dir"`
	TokenPath         string        `mapstructure:"token_path"`
	DatabasePath      string        `mapstructure:"database_path"`
	CredentialBackend string        `mapstructure:"credential_backend"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout_seconds"`
	EnableTLS         bool          `mapstructure:"enable_tls"`
	WebAddress        string        `mapstructure:"web_address"`
	AllowedOrigins    []string      `mapstructure:"web_allowed_origins"`
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// Load reads .env, the environment and whatever viper already has
// (a config file or bound flags).
func Load() (*Config, error) {
	// .env is looked up in the working directory and its parent
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", envPath, err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("CREDENTIAL_BACKEND", defaultCredentialBackend)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("WEB_ADDRESS", defaultWebAddress)
	viper.SetDefault("WEB_ALLOWED_ORIGINS", "")

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	cfg := &Config{
		Env:               viper.GetString("APP_ENV"),
		ServerAddress:     strings.TrimRight(viper.GetString("SERVER_ADDRESS"), "/"),
		LogLevel:          viper.GetString("LOG_LEVEL"),
		ConfigDir:         configDir,
		TokenPath:         filepath.Join(configDir, "token"),
		DatabasePath:      filepath.Join(configDir, "banker.db"),
		CredentialBackend: strings.ToLower(viper.GetString("CREDENTIAL_BACKEND")),
		RequestTimeout:    time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		EnableTLS:         viper.GetBool("ENABLE_TLS"),
		WebAddress:        viper.GetString("WEB_ADDRESS"),
		AllowedOrigins:    splitList(viper.GetString("WEB_ALLOWED_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	switch c.CredentialBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown credential_backend %q", c.CredentialBackend)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}
	return nil
}

// BaseURL returns the backend root URL. SERVER_ADDRESS may carry its own scheme.
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return c.ServerAddress
	}
	if c.EnableTLS {
		return "https://" + c.ServerAddress
	}
	return "http://" + c.ServerAddress
}

// IsProd reports whether APP_ENV is prod.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev reports whether APP_ENV is dev.
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal reports whether APP_ENV is local.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
