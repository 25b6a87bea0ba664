package config

import (
	"os"
	"strconv"
	"time"
)

// CreditPolicy holds the point value of every balance-affecting action.
// It is fixed at load time and passed to services by value.
type CreditPolicy struct {
	SignupBonus  int
	SaveReward   int
	ShareReward  int
	ReportReward int
	// ReportReasonReward applies instead of ReportReward when the
	// reporter supplies a non-empty reason.
	ReportReasonReward int
	DailyLoginBonus    int
}

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Admin bootstrap
	AdminEmail    string
	AdminPassword string

	// Server
	Port        string
	CORSOrigins string

	Credits CreditPolicy
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "learninghub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "720h")),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		Credits: CreditPolicy{
			SignupBonus:        getEnvInt("CREDITS_SIGNUP_BONUS", 50),
			SaveReward:         getEnvInt("CREDITS_SAVE_REWARD", 1),
			ShareReward:        getEnvInt("CREDITS_SHARE_REWARD", 3),
			ReportReward:       getEnvInt("CREDITS_REPORT_REWARD", 1),
			ReportReasonReward: getEnvInt("CREDITS_REPORT_REASON_REWARD", 2),
			DailyLoginBonus:    getEnvInt("CREDITS_DAILY_LOGIN_BONUS", 2),
		},
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}
