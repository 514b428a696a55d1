package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	defaultRunAddress    = "localhost:8080"
	defaultMigrationsDir = "internal/db/migrations"
	defaultSessionTTL    = 7 * 24 * time.Hour
	defaultSweepInterval = time.Minute
)

type Config struct {
	ConfigFile    string        `toml:"-"`
	RunAddress    string        `env:"RUN_ADDRESS"     toml:"run_address"`
	DatabaseDSN   string        `env:"DATABASE_URI"    toml:"database_uri"`
	MigrationsDir string        `env:"MIGRATIONS_DIR"  toml:"migrations_dir"`
	JWTSecret     string        `env:"JWT_SECRET"      toml:"jwt_secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL"     toml:"session_ttl"`
	RedisAddress  string        `env:"REDIS_ADDRESS"   toml:"redis_address"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"  toml:"sweep_interval"`
	CORSOrigins   []string      `env:"CORS_ORIGINS"    toml:"cors_origins"   envSeparator:","`
	CookieSecure  bool          `env:"COOKIE_SECURE"   toml:"cookie_secure"`
	LogLevel      string        `env:"LOG_LEVEL"       toml:"log_level"`
}

// String не выводит секреты в лог.
func (c Config) String() string {
	masked := c
	if masked.JWTSecret != "" {
		masked.JWTSecret = "***"
	}
	type plain Config
	return fmt.Sprintf("%+v", plain(masked))
}

func defaults() Config {
	return Config{
		RunAddress:    defaultRunAddress,
		MigrationsDir: defaultMigrationsDir,
		SessionTTL:    defaultSessionTTL,
		SweepInterval: defaultSweepInterval,
	}
}

// RegisterFlags описывает флаги командной строки. Значения по умолчанию у флагов совпадают с defaults,
// но в конфиг попадают только явно указанные флаги.
func RegisterFlags(flags *pflag.FlagSet) {
	d := defaults()
	flags.StringP("config", "c", "", "Path to TOML config file")
	flags.StringP("address", "a", d.RunAddress, "Run address in format host:port")
	flags.StringP("database-uri", "d", "", "Database DSN")
	flags.StringP("migrations-dir", "m", d.MigrationsDir, "Database migrations directory")
	flags.String("jwt-secret", "", "Secret used to sign session tokens")
	flags.Duration("session-ttl", d.SessionTTL, "Session lifetime")
	flags.String("redis-address", "", "Redis address host:port, empty disables redis")
	flags.Duration("sweep-interval", d.SweepInterval, "Pause between overdue sweeps")
	flags.StringSlice("cors-origins", nil, "Allowed CORS origins, empty allows all")
	flags.Bool("cookie-secure", false, "Set Secure attribute on the session cookie")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
}

// LoadConfig собирает конфиг. Приоритет по возрастанию: значения по умолчанию, TOML файл, переменные окружения
// (включая .env), явно указанные флаги. flags может быть nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	conf := defaults()

	configFile := os.Getenv("CONFIG_FILE")
	if flags != nil && flags.Changed("config") {
		configFile, _ = flags.GetString("config")
	}
	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, &conf); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
		conf.ConfigFile = configFile
	}

	if envParseErr := env.Parse(&conf); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	if flags != nil {
		if err := applyFlags(flags, &conf); err != nil {
			return nil, err
		}
	}

	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	return &conf, nil
}

// Validate проверяет настройки, обязательные для запуска сервера.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret is not set")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}

func applyFlags(flags *pflag.FlagSet, conf *Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && flags.Changed(name) {
			err = apply()
		}
	}

	set("address", func() (e error) { conf.RunAddress, e = flags.GetString("address"); return })
	set("database-uri", func() (e error) { conf.DatabaseDSN, e = flags.GetString("database-uri"); return })
	set("migrations-dir", func() (e error) { conf.MigrationsDir, e = flags.GetString("migrations-dir"); return })
	set("jwt-secret", func() (e error) { conf.JWTSecret, e = flags.GetString("jwt-secret"); return })
	set("session-ttl", func() (e error) { conf.SessionTTL, e = flags.GetDuration("session-ttl"); return })
	set("redis-address", func() (e error) { conf.RedisAddress, e = flags.GetString("redis-address"); return })
	set("sweep-interval", func() (e error) { conf.SweepInterval, e = flags.GetDuration("sweep-interval"); return })
	set("cors-origins", func() (e error) { conf.CORSOrigins, e = flags.GetStringSlice("cors-origins"); return })
	set("cookie-secure", func() (e error) { conf.CookieSecure, e = flags.GetBool("cookie-secure"); return })
	set("log-level", func() (e error) { conf.LogLevel, e = flags.GetString("log-level"); return })

	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
