package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the conversion service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring and conversion API server.
// - Workers: The number of concurrent workers converting tasks.
// - BatchSize: The maximum number of tasks fetched per poll.
// - Interval: The duration between polls.
// - APIRate: The number of conversion API requests allowed per second.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env       string         `mapstructure:"env"`        // Env is the current environment: local, development, production.
	Port      int            `mapstructure:"port"`       // Port is the monitoring server port.
	Workers   int            `mapstructure:"workers"`    // The number of concurrent workers for processing tasks.
	BatchSize int            `mapstructure:"batch_size"` // The maximum number of tasks fetched per poll.
	Interval  time.Duration  `mapstructure:"interval"`   // The duration between processing intervals.
	APIRate   int            `mapstructure:"api_rate"`   // Requests per second allowed on the conversion API.
	Database  PostgresConfig `mapstructure:"postgres"`   // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

// Environment variables bound to configuration keys. Values from the
// environment take precedence over the optional YAML file.
var bindings = map[string]string{
	"env":               "SEXTANT_ENV",
	"interval":          "SEXTANT_INTERVAL",
	"port":              "SEXTANT_HEALTH_PORT",
	"workers":           "SEXTANT_WORKERS",
	"batch_size":        "SEXTANT_BATCH_SIZE",
	"api_rate":          "SEXTANT_API_RATE",
	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.user":     "DB_USERNAME",
	"postgres.password": "DB_PASSWORD",
	"postgres.db_name":  "DB_NAME",
}

// MustLoad loads the configuration from the environment, a .env file and the
// YAML file named by SEXTANT_CONFIG_PATH, and panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("interval", "10m")
	v.SetDefault("port", "8080")
	v.SetDefault("workers", "10")
	v.SetDefault("batch_size", "100")
	v.SetDefault("api_rate", "50")
	v.SetDefault("postgres.port", "5432")

	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	_ = v.BindEnv("config_path", "SEXTANT_CONFIG_PATH")
	if path := v.GetString("config_path"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	interval, err := time.ParseDuration(v.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("workers"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	batchSize, err := strconv.Atoi(v.GetString("batch_size"))
	if err != nil {
		panic("failed to parse batch size from configuration, must be an integer types")
	}

	apiRate, err := strconv.Atoi(v.GetString("api_rate"))
	if err != nil {
		panic("failed to parse api rate from configuration, must be an integer types")
	}

	return &Config{
		Env:       v.GetString("env"),
		Port:      healthPort,
		Workers:   workers,
		BatchSize: batchSize,
		Interval:  interval,
		APIRate:   apiRate,
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
		},
	}
}
