package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Database Database `mapstructure:"database"`
	Admin    Admin    `mapstructure:"admin"`
	Seed     Seed     `mapstructure:"seed"`
	Log      Log      `mapstructure:"log"`
}

type Database struct {
	Provider   string `mapstructure:"provider"`
	URLEnv     string `mapstructure:"url_env"`
	DriverName string `mapstructure:"driver_name"` // postgres only: "" for pgx, "postgres" for lib/pq
	LogLevel   string `mapstructure:"log_level"`
}

type Admin struct {
	Email       string `mapstructure:"email"`
	Name        string `mapstructure:"name"`
	Password    string `mapstructure:"password"`
	PasswordEnv string `mapstructure:"password_env"`
}

type Seed struct {
	DataFile          string `mapstructure:"data_file"`
	BcryptCost        int    `mapstructure:"bcrypt_cost"`
	ConcurrentDetails bool   `mapstructure:"concurrent_details"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var supportedProviders = []string{"postgres", "postgresql", "mysql", "sqlite", "sqlite3"}

// LoadEnv loads .env and .env.local into the process environment. Missing
// files are not an error.
func LoadEnv() {
	_ = godotenv.Load()
	_ = godotenv.Load(".env.local")
}

// Init points v at the config file (or ./seed.config.yaml) and enables
// environment overrides such as DATABASE_PROVIDER.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("seed.config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{
		"database.provider", "database.url_env", "database.driver_name", "database.log_level",
		"admin.email", "admin.name", "admin.password", "admin.password_env",
		"seed.data_file", "seed.bcrypt_cost", "seed.concurrent_details",
		"log.level", "log.format",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgres"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = "warn"
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@example.com"
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = "Admin User"
	}
	if cfg.Admin.PasswordEnv == "" {
		cfg.Admin.PasswordEnv = "SEED_ADMIN_PASSWORD"
	}
	if pw := os.Getenv(cfg.Admin.PasswordEnv); pw != "" {
		cfg.Admin.Password = pw
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
	}
	if cfg.Seed.BcryptCost == 0 {
		cfg.Seed.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Database.URLEnv == "" {
		return fmt.Errorf("database.url_env cannot be empty")
	}

	if c.Seed.BcryptCost < bcrypt.MinCost || c.Seed.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("seed.bcrypt_cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Seed.BcryptCost)
	}

	if c.Admin.Email == "" {
		return fmt.Errorf("admin.email cannot be empty")
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
