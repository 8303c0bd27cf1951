package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config maps config.yaml and the environment.
type Config struct {
	App struct {
		Title string `mapstructure:"title"`
	} `mapstructure:"app"`

	Server struct {
		Host           string        `mapstructure:"host"`
		Port           int           `mapstructure:"port"`
		Mode           string        `mapstructure:"mode"`
		TrustedProxies []string      `mapstructure:"trusted_proxies"`
		ShutdownPeriod time.Duration `mapstructure:"shutdown_period"`
	} `mapstructure:"server"`

	DB struct {
		DSN             string        `mapstructure:"dsn"`
		MaxOpenConns    int           `mapstructure:"max_open_conns"`
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
		SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
	} `mapstructure:"db"`

	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`

	Log struct {
		Level      string `mapstructure:"level"`
		Path       string `mapstructure:"path"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	} `mapstructure:"log"`

	Security struct {
		// Blacklist holds exact client hosts answered with 403.
		Blacklist []string `mapstructure:"-"`
	} `mapstructure:"security"`

	Ping struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"ping"`

	Reconcile struct {
		// Schedule is a cron spec; empty disables the job.
		Schedule string `mapstructure:"schedule"`
	} `mapstructure:"reconcile"`

	Cors struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Variable names inherited from earlier deployments.
var legacyEnv = map[string]string{
	"app.title":          "PROJECT_NAME",
	"server.host":        "PROJECT_HOST",
	"server.port":        "PROJECT_PORT",
	"db.dsn":             "DATABASE_DSN",
	"security.blacklist": "BLACKLISTED_IPS",
}

// LoadConfig reads .env, then path (or ./config.yaml when empty), then the environment.
// A missing config file is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Security.Blacklist = splitList(v.Get("security.blacklist"))
	cfg.Server.TrustedProxies = splitList(v.Get("server.trusted_proxies"))
	cfg.Cors.AllowedOrigins = splitList(v.Get("cors.allowed_origins"))

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid server mode %q", cfg.Server.Mode)
	}
	if cfg.DB.DSN == "" {
		return nil, errors.New("db.dsn must not be empty")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.title", "UrlShortener")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.shutdown_period", 10*time.Second)
	v.SetDefault("db.dsn", "shortener.db")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", time.Hour)
	v.SetDefault("db.slow_threshold", 200*time.Millisecond)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.ttl", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "logs/shortener.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("security.blacklist", []string{})
	v.SetDefault("ping.timeout", time.Second)
	v.SetDefault("reconcile.schedule", "*/10 * * * *")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// splitList accepts a YAML list or a comma separated env value.
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case string:
		parts = strings.Split(val, ",")
	case []string:
		parts = val
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
