package config

import (
	"os"
	"strings"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	StripeSecretKey string
	AppEnv          string
	CORSOrigins     []string
	LogLevel        string
}

// Production reports whether the server runs with production cookie
// attributes (Secure, SameSite=None for the cross-site SPA).
func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. JWT_SECRET and
// MONGODB_URI are required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDB:         getEnv("MONGODB_DB", "chatter-box"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AppEnv:          getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:5173,https://chatter-box-x.vercel.app")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		return cfg, ErrMissingEnv("JWT_SECRET")
	}
	if cfg.MongoURI == "" {
		return cfg, ErrMissingEnv("MONGODB_URI")
	}
	return cfg, nil
}

// ErrMissingEnv names a required environment variable that was not set.
type ErrMissingEnv string

func (e ErrMissingEnv) Error() string {
	return string(e) + " must be set"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
