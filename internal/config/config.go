// internal/config/config.go
//
// Environment-driven configuration. main calls godotenv.Load() first so a
// local .env file can provide any of these.
//
// Environment variables:
//   PORT              listen port (default 5175)
//   DB_PATH           SQLite file (default ./data/app.db)
//   LOG_LEVEL         zerolog level (default info)
//   JWT_SECRET        HS256 signing secret
//   JWT_EXPIRES_DAYS  token lifetime in days (default 14)
//   COOKIE_NAME       auth cookie name (default balance_token)
//   CLIENT_ORIGIN     CORS origin for a separately served client
//   NODE_ENV          "production" enables Secure/SameSite=None cookies

package config

import (
	"os"
	"strconv"
)

const devSecret = "dev_secret_change_me"

type Config struct {
	Port           string
	DBPath         string
	LogLevel       string
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "5175"),
		DBPath:         getEnv("DB_PATH", "./data/app.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", devSecret),
		JWTExpiresDays: envInt("JWT_EXPIRES_DAYS", 14),
		CookieName:     getEnv("COOKIE_NAME", "balance_token"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:     os.Getenv("NODE_ENV") == "production",
	}
}

// InsecureSecret reports whether the signing secret is the built-in default.
func (c Config) InsecureSecret() bool { return c.JWTSecret == devSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
