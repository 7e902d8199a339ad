package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                  string
	AllowedOrigins        []string
	DatabaseURL           string
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxLifetimeMin  int
	RedisURL              string
	RedisPassword         string
	JWTSecret             string
	MatchTokenTTL         time.Duration
	ParamTTL              time.Duration
	DecisionRetentionDays int
	SearchDepth           int
	LogLevel              string
	LogPretty             bool
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// CORS: localhost plus CSV values
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Storage is optional; an empty URL disables the decision log
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 10)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	matchTokenTTLHours := GetEnvAsInt("MATCH_TOKEN_TTL_HOURS", 24)

	AppConfig = &Config{
		Port:                  port,
		AllowedOrigins:        allowedOrigins,
		DatabaseURL:           dbURL,
		DBMaxOpenConns:        dbMaxOpenConns,
		DBMaxIdleConns:        dbMaxIdleConns,
		DBConnMaxLifetimeMin:  dbConnMaxLifetimeMin,
		RedisURL:              redisURL,
		RedisPassword:         redisPassword,
		JWTSecret:             jwtSecret,
		MatchTokenTTL:         time.Duration(matchTokenTTLHours) * time.Hour,
		ParamTTL:              time.Duration(GetEnvAsInt("PARAM_TTL_HOURS", 6)) * time.Hour,
		DecisionRetentionDays: GetEnvAsInt("DECISION_RETENTION_DAYS", 30),
		SearchDepth:           GetEnvAsInt("SEARCH_DEPTH", 4),
		LogLevel:              GetEnv("LOG_LEVEL", "info"),
		LogPretty:             GetEnvAsBool("LOG_PRETTY", false),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid-integer-env")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid-bool-env")
		return defaultValue
	}
	return value
}
