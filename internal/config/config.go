package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "todo"
	envPrefix  = "TODO"

	ServerAddrKey            = "server.addr"
	ServerStaticDirKey       = "server.static_dir"
	ServerShutdownTimeoutKey = "server.shutdown_timeout"
	ServerCORSOriginsKey     = "server.cors_origins"
	ClientBaseURLKey         = "client.base_url"
	ClientTimeoutKey         = "client.timeout"
	LogLevelKey              = "log.level"
	LogFormatKey             = "log.format"
)

type Config struct {
	Server ServerConfig
	Client ClientConfig
	Log    LogConfig
}

type ServerConfig struct {
	Addr            string
	StaticDir       string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// New prepares a viper instance with defaults, env bindings and config file
// search paths. Values set on the returned instance (flags, tests) win over
// the config file.
func New(cfg *viper.Viper) *viper.Viper {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, ".config", configDir))
	}
	cfg.AddConfigPath(".")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(ServerAddrKey, ":3000")
	cfg.SetDefault(ServerStaticDirKey, ".")
	cfg.SetDefault(ServerShutdownTimeoutKey, 5*time.Second)
	cfg.SetDefault(ServerCORSOriginsKey, []string{"*"})
	cfg.SetDefault(ClientBaseURLKey, "http://localhost:3000")
	cfg.SetDefault(ClientTimeoutKey, 10*time.Second)
	cfg.SetDefault(LogLevelKey, "info")
	cfg.SetDefault(LogFormatKey, "text")

	return cfg
}

// Load reads the optional config file and resolves the final settings.
func Load(cfg *viper.Viper) (Config, error) {
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	resolved := Config{
		Server: ServerConfig{
			Addr:            strings.TrimSpace(cfg.GetString(ServerAddrKey)),
			StaticDir:       cfg.GetString(ServerStaticDirKey),
			ShutdownTimeout: cfg.GetDuration(ServerShutdownTimeoutKey),
			CORSOrigins:     cfg.GetStringSlice(ServerCORSOriginsKey),
		},
		Client: ClientConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(cfg.GetString(ClientBaseURLKey)), "/"),
			Timeout: cfg.GetDuration(ClientTimeoutKey),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(cfg.GetString(LogLevelKey))),
			Format: strings.ToLower(strings.TrimSpace(cfg.GetString(LogFormatKey))),
		},
	}

	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}

	return resolved, nil
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%s is required", ServerAddrKey)
	}
	if c.Server.StaticDir == "" {
		return fmt.Errorf("%s is required", ServerStaticDirKey)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s must be positive", ServerShutdownTimeoutKey)
	}
	if c.Client.BaseURL == "" {
		return fmt.Errorf("%s is required", ClientBaseURLKey)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", ClientTimeoutKey)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported %s %q", LogFormatKey, c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}
