package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	DB struct {
		Driver          string        `mapstructure:"driver"`
		Host            string        `mapstructure:"host"`
		Port            string        `mapstructure:"port"`
		User            string        `mapstructure:"user"`
		Password        string        `mapstructure:"password"`
		Name            string        `mapstructure:"name"`
		Path            string        `mapstructure:"path"`
		MaxOpenConns    int           `mapstructure:"max_open_conns"`
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	} `mapstructure:"db"`
	JWT struct {
		Secret string        `mapstructure:"secret"`
		Expiry time.Duration `mapstructure:"expiry"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

var keys = []string{
	"port",
	"gin_mode",
	"log.level",
	"db.driver",
	"db.host",
	"db.port",
	"db.user",
	"db.password",
	"db.name",
	"db.path",
	"db.max_open_conns",
	"db.max_idle_conns",
	"db.conn_max_lifetime",
	"jwt.secret",
	"jwt.expiry",
	"cors.allowed_origins",
}

// Load reads .env (if any) and the process environment. Keys map to
// environment variables by upper-casing and replacing "." with "_",
// so db.host is DB_HOST.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
		log.Info().Msg(".env not found, using environment variables only")
	}
	return FromViper(viper.New())
}

func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	v.SetDefault("port", "3000")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.path", "sportplans.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 3*time.Minute)
	v.SetDefault("jwt.expiry", time.Hour)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	// env values arrive as a single comma separated string
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.JWT.Expiry <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRY must be positive, got %s", cfg.JWT.Expiry)
	}
	switch cfg.DB.Driver {
	case "mysql", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
