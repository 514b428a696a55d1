package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"CONFIG_FILE", "RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_SECRET", "SESSION_TTL",
		"REDIS_ADDRESS", "SWEEP_INTERVAL", "CORS_ORIGINS", "COOKIE_SECURE", "LOG_LEVEL",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) writeFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "tradecredit.toml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) flags(args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	s.Require().NoError(fs.Parse(args))
	return fs
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("DATABASE_URI", "postgres://localhost/tc")

	conf, err := LoadConfig(s.flags())
	s.Require().NoError(err)
	s.Equal(defaultRunAddress, conf.RunAddress)
	s.Equal(defaultMigrationsDir, conf.MigrationsDir)
	s.Equal(defaultSessionTTL, conf.SessionTTL)
	s.Equal(defaultSweepInterval, conf.SweepInterval)
	s.Empty(conf.RedisAddress)
	s.False(conf.CookieSecure)
}

func (s *ConfigTestSuite) TestMissingDSN() {
	_, err := LoadConfig(s.flags())
	s.Error(err)
}

// TestPrecedence флаг важнее окружения, окружение важнее файла.
func (s *ConfigTestSuite) TestPrecedence() {
	path := s.writeFile(`
run_address = "file:1"
database_uri = "postgres://file/tc"
jwt_secret = "from-file"
session_ttl = "2h"
sweep_interval = "30s"
cors_origins = ["https://file.example"]
log_level = "warn"
`)
	s.T().Setenv("CONFIG_FILE", path)
	s.T().Setenv("RUN_ADDRESS", "env:2")
	s.T().Setenv("JWT_SECRET", "from-env")
	s.T().Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	s.T().Setenv("COOKIE_SECURE", "true")

	conf, err := LoadConfig(s.flags("--address", "flag:3", "--sweep-interval", "5s"))
	s.Require().NoError(err)

	s.Equal(path, conf.ConfigFile)
	s.Equal("flag:3", conf.RunAddress)
	s.Equal("postgres://file/tc", conf.DatabaseDSN)
	s.Equal("from-env", conf.JWTSecret)
	s.Equal(2*time.Hour, conf.SessionTTL)
	s.Equal(5*time.Second, conf.SweepInterval)
	s.Equal([]string{"https://a.example", "https://b.example"}, conf.CORSOrigins)
	s.True(conf.CookieSecure)
	s.Equal("warn", conf.LogLevel)
}

func (s *ConfigTestSuite) TestConfigFlagOverridesEnvFile() {
	envPath := s.writeFile(`database_uri = "postgres://env-file/tc"`)
	flagPath := filepath.Join(s.T().TempDir(), "flag.toml")
	s.Require().NoError(os.WriteFile(flagPath, []byte(`database_uri = "postgres://flag-file/tc"`), 0o600))
	s.T().Setenv("CONFIG_FILE", envPath)

	conf, err := LoadConfig(s.flags("-c", flagPath))
	s.Require().NoError(err)
	s.Equal("postgres://flag-file/tc", conf.DatabaseDSN)
}

func (s *ConfigTestSuite) TestBadFile() {
	path := s.writeFile(`run_address = `)
	s.T().Setenv("DATABASE_URI", "postgres://localhost/tc")
	_, err := LoadConfig(s.flags("--config", path))
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	conf := defaults()
	s.Error(conf.Validate())

	conf.JWTSecret = "secret"
	s.NoError(conf.Validate())

	conf.SessionTTL = 0
	s.Error(conf.Validate())
}

func (s *ConfigTestSuite) TestStringMasksSecret() {
	conf := defaults()
	conf.JWTSecret = "top-secret"
	s.NotContains(conf.String(), "top-secret")
	s.Contains(conf.String(), "***")
}
