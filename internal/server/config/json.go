package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/acquisitions/internal/flagx"
	"github.com/dmitrijs2005/acquisitions/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	HTTPAddr              string         `json:"http_address"`
	GRPCAddr              string         `json:"grpc_address"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	Environment           string         `json:"environment"`
	CORSAllowedOrigins    string         `json:"cors_allowed_origins"`
	CookieName            string         `json:"cookie_name"`
}

// parseJson overlays the file named by -c/-config, if any. Empty fields in
// the file leave the current value untouched. An unreadable or invalid file
// panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.HTTPAddr, c.HTTPAddr)
	overlay(&config.GRPCAddr, c.GRPCAddr)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.Environment, c.Environment)
	overlay(&config.CORSAllowedOrigins, c.CORSAllowedOrigins)
	overlay(&config.CookieName, c.CookieName)
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
