package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Environment
// values win over defaults, JSON, and flags so that deployments can keep
// the signing secret out of command lines and config files.
//
//	ADDRESS       HTTP bind address
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    JWT HMAC secret key
//	TOKEN_TTL     access token validity (Go duration string, e.g. "24h")
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
