package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string        `mapstructure:"listen_addr"`
	Port          string        `mapstructure:"port"`
	DatabasePath  string        `mapstructure:"database_path"`
	SessionSecret string        `mapstructure:"session_secret"`
	CookieName    string        `mapstructure:"cookie_name"`
	GinMode       string        `mapstructure:"gin_mode"`
	UploadDir     string        `mapstructure:"upload_dir"`
	UploadURLPath string        `mapstructure:"upload_url_path"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
	AdminName     string        `mapstructure:"admin_name"`
	SiteBaseURL   string        `mapstructure:"site_base_url"`
	Log           LogConfig     `mapstructure:"log"`
	Metrics       MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// MetricsConfig controls the OpenTelemetry meter provider.
type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// EnvPrefix is prepended to every environment override, e.g. DEVBOOK_PORT.
const EnvPrefix = "DEVBOOK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", "")
	v.SetDefault("port", "8080")
	v.SetDefault("database_path", "devbook.db")
	v.SetDefault("session_secret", "devbook-dev-secret")
	v.SetDefault("cookie_name", "devbook_token")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("upload_dir", "web/static/uploads")
	v.SetDefault("upload_url_path", "/static/uploads")
	v.SetDefault("admin_email", "admin@devbook.com")
	v.SetDefault("admin_password", "")
	v.SetDefault("admin_name", "Admin DevBook")
	v.SetDefault("site_base_url", "http://localhost:8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.interval", "1m")
}

// Load reads config.yml (from . or ./configs) and DEVBOOK_* environment
// variables on top of the defaults. A missing config file is not an error.
func Load() (AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *AppConfig) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}
	c.AdminEmail = strings.ToLower(strings.TrimSpace(c.AdminEmail))
	c.UploadURLPath = "/" + strings.Trim(strings.TrimSpace(c.UploadURLPath), "/")
}
