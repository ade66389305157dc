package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver     string
	User       string
	Password   string
	Name       string
	Host       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type Config struct {
	DB          DBConfig
	RedisAddr   string
	KafkaBroker string
	SeedFile    string
	Port        string
}

// Load membaca .env (jika ada) lalu environment variable.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			Host:       os.Getenv("DB_HOST"),
			Port:       os.Getenv("DB_PORT"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		SeedFile:    getEnv("SEED_FILE", "data.json"),
		Port:        getEnv("PORT", "3000"),
	}

	if err := cfg.DB.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c DBConfig) Validate() error {
	missing := []string{}

	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		if c.User == "" {
			missing = append(missing, "DB_USER")
		}
		if c.Name == "" {
			missing = append(missing, "DB_NAME")
		}
		if c.Host == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.Port == "" {
			missing = append(missing, "DB_PORT")
		}
	case DriverSQLite:
		if c.Name == "" {
			missing = append(missing, "DB_NAME")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.Driver)
	}

	if len(missing) > 0 {
		return errors.New("missing env: " + strings.Join(missing, ", "))
	}
	return nil
}

// DSN assembles the connection string for the configured driver.
func (c DBConfig) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s)/%s?parseTime=true",
			c.User, c.Password, net.JoinHostPort(c.Host, c.Port), c.Name,
		)
	case DriverSQLite:
		return c.Name
	default:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Password),
			Host:   net.JoinHostPort(c.Host, c.Port),
			Path:   "/" + c.Name,
		}
		if c.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
		}
		return u.String()
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
