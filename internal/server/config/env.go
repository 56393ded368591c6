package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv seeds the process environment from .env.local and .env when
// they exist. Variables already set in the environment are not overridden.
func loadDotEnv() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// parseEnv overlays values found in the environment.
//
// Recognised variables:
//
//	HTTP_ADDRESS, PORT       REST bind address (PORT is turned into ":<port>")
//	GRPC_ADDRESS             gRPC health bind address
//	DATABASE_URL             PostgreSQL DSN
//	JWT_SECRET               HMAC signing key
//	TOKEN_TTL                token lifetime, Go duration syntax ("15m")
//	BCRYPT_COST              integer work factor
//	APP_ENV, NODE_ENV        deployment environment
//	CORS_ALLOWED_ORIGINS     comma-separated origins
//	COOKIE_NAME              session cookie name
//
// Malformed numeric or duration values are ignored.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.HTTPAddr = ":" + v
	}
	setString(&cfg.HTTPAddr, lookup, "HTTP_ADDRESS")
	setString(&cfg.GRPCAddr, lookup, "GRPC_ADDRESS")
	setString(&cfg.DatabaseDSN, lookup, "DATABASE_URL")
	setString(&cfg.SecretKey, lookup, "JWT_SECRET")
	setString(&cfg.Environment, lookup, "NODE_ENV")
	setString(&cfg.Environment, lookup, "APP_ENV")
	setString(&cfg.CORSAllowedOrigins, lookup, "CORS_ALLOWED_ORIGINS")
	setString(&cfg.CookieName, lookup, "COOKIE_NAME")

	if v, ok := lookup("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidityDuration = d
		}
	}
	if v, ok := lookup("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
}

func setString(dst *string, lookup func(string) (string, bool), key string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}
