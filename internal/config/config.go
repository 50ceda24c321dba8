package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Поддерживаемые драйверы БД.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver string

	// Путь к файлу sqlite (или ":memory:").
	SQLitePath string

	// Параметры postgres.
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

type HTTPConfig struct {
	Addr       string
	CORSOrigin string
}

type CalendarConfig struct {
	// Начало недели в сетке: 0 — воскресенье ... 6 — суббота.
	WeekStart time.Weekday
}

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Calendar CalendarConfig

	// Генерировать ли демо-данные при пустом каталоге.
	SeedDemoData bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "booking.db"),
			Host:            getEnv("DB_HOST", "postgres"),
			User:            getEnv("DB_USER", "booking"),
			Password:        getEnv("DB_PASSWORD", "booking"),
			Name:            getEnv("DB_NAME", "booking_db"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			Port:            getEnvInt("DB_PORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		HTTP: HTTPConfig{
			Addr:       getEnv("HTTP_ADDR", ":4000"),
			CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		},
		Calendar: CalendarConfig{
			WeekStart: time.Weekday(getEnvInt("WEEK_START", 0)),
		},
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
	}

	// минимальная валидация
	switch cfg.DB.Driver {
	case DriverSQLite:
		if cfg.DB.SQLitePath == "" {
			return nil, fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	case DriverPostgres:
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unknown driver %q", cfg.DB.Driver)
	}

	if cfg.Calendar.WeekStart < time.Sunday || cfg.Calendar.WeekStart > time.Saturday {
		return nil, fmt.Errorf("invalid WEEK_START: must be 0..6")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
