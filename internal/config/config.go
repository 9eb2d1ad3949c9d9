package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Session SessionConfig
	Deskpro DeskproConfig
	API     APIConfig
	Support SupportConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	BaseURL               string
	RequestTimeoutSeconds int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig defines session cookie parameters.
type SessionConfig struct {
	CookieName         string
	JWTSecret          string
	TTLMinutes         int
	FeedbackTTLMinutes int
}

// DeskproConfig holds helpdesk ticketing endpoint values.
type DeskproConfig struct {
	APIHost        string
	APIKey         string
	DepartmentID   string
	AgentTeamID    string
	TimeoutSeconds int
}

// APIConfig holds the notification API endpoint values.
type APIConfig struct {
	BaseURL        string
	ClientID       string
	Secret         string
	TimeoutSeconds int
}

// SupportConfig locates the support-hours calendar file.
type SupportConfig struct {
	HoursFile string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "notify-admin"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			BaseURL:               getEnv("ADMIN_BASE_URL", "http://localhost:8080"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			CookieName:         getEnv("SESSION_COOKIE_NAME", "notify_admin_session"),
			JWTSecret:          getEnv("SESSION_JWT_SECRET", "dev-secret"),
			TTLMinutes:         getEnvAsInt("SESSION_TTL_MINUTES", 60),
			FeedbackTTLMinutes: getEnvAsInt("SESSION_FEEDBACK_TTL_MINUTES", 60),
		},
		Deskpro: DeskproConfig{
			APIHost:        getEnv("DESKPRO_API_HOST", ""),
			APIKey:         os.Getenv("DESKPRO_API_KEY"),
			DepartmentID:   getEnv("DESKPRO_DEPT_ID", ""),
			AgentTeamID:    getEnv("DESKPRO_TEAM_ID", ""),
			TimeoutSeconds: getEnvAsInt("DESKPRO_TIMEOUT_SECONDS", 10),
		},
		API: APIConfig{
			BaseURL:        getEnv("NOTIFY_API_URL", "http://localhost:6011"),
			ClientID:       getEnv("NOTIFY_API_CLIENT_ID", "notify-admin"),
			Secret:         os.Getenv("NOTIFY_API_SECRET"),
			TimeoutSeconds: getEnvAsInt("NOTIFY_API_TIMEOUT_SECONDS", 10),
		},
		Support: SupportConfig{
			HoursFile: getEnv("SUPPORT_HOURS_FILE", "config/support_hours.yaml"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
