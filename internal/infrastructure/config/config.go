// Package config loads application configuration from file and environment.
// Environment variables use the MENUQR_ prefix with underscores, e.g.
// MENUQR_DATABASE_PASSWORD overrides database.password.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Email    EmailConfig    `mapstructure:"email"`
	Razorpay RazorpayConfig `mapstructure:"razorpay"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Name      string `mapstructure:"name"`
	Charset   string `mapstructure:"charset"`
	ParseTime bool   `mapstructure:"parse_time"`

	// Migration strategy: "auto" (gorm AutoMigrate, development) or
	// "script" (SQL files, production).
	MigrationStrategy string `mapstructure:"migration_strategy"`
	MigrationPath     string `mapstructure:"migration_path"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name, c.Charset, c.ParseTime)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// RazorpayConfig holds payment gateway credentials. Both values empty means
// the payment feature is disabled; the server still starts.
type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

func (c RazorpayConfig) Enabled() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

type WorkerConfig struct {
	// SweepInterval is a duration string, e.g. "24h".
	SweepInterval string `mapstructure:"sweep_interval"`
}

type AppConfig struct {
	// BaseURL is the public origin used to build menu URLs for QR codes.
	BaseURL  string `mapstructure:"base_url"`
	Timezone string `mapstructure:"timezone"`
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration from the given file path (optional) plus
// environment variables, and caches the result.
func Load(configPath string) (*Config, error) {
	var loadErr error
	once.Do(func() {
		v := viper.New()

		v.SetDefault("server.host", "0.0.0.0")
		v.SetDefault("server.port", 8080)
		v.SetDefault("server.mode", "release")
		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.port", 3306)
		v.SetDefault("database.user", "menuqr")
		v.SetDefault("database.name", "menuqr")
		v.SetDefault("database.charset", "utf8mb4")
		v.SetDefault("database.parse_time", true)
		v.SetDefault("database.migration_strategy", "auto")
		v.SetDefault("database.migration_path", "internal/infrastructure/migration/scripts")
		v.SetDefault("redis.addr", "localhost:6379")
		v.SetDefault("redis.db", 0)
		v.SetDefault("jwt.expiry_hours", 72)
		v.SetDefault("logger.level", "info")
		v.SetDefault("logger.format", "console")
		v.SetDefault("logger.output_path", "stdout")
		v.SetDefault("email.port", 587)
		v.SetDefault("worker.sweep_interval", "24h")
		v.SetDefault("app.base_url", "http://localhost:8080")
		v.SetDefault("app.timezone", "Asia/Kolkata")

		if configPath != "" {
			v.SetConfigFile(configPath)
		} else {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath("./configs")
			v.AddConfigPath(".")
		}

		v.SetEnvPrefix("MENUQR")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err := v.ReadInConfig(); err != nil {
			// Missing config file is fine; environment variables and
			// defaults still apply.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
				loadErr = fmt.Errorf("failed to read config file: %w", err)
				return
			}
		}

		c := &Config{}
		if err := v.Unmarshal(c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		if c.JWT.Secret == "" {
			loadErr = fmt.Errorf("jwt.secret is required (set MENUQR_JWT_SECRET)")
			return
		}

		cfg = c
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return cfg, nil
}

// Get returns the loaded configuration. Panics when Load was never called.
func Get() *Config {
	if cfg == nil {
		panic("config: Get called before Load")
	}
	return cfg
}
