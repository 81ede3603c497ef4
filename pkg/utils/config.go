package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("NEWSHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("NEWSHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "newshub"
	}

	dur := 24 * time.Hour
	if ttl := os.Getenv("NEWSHUB_JWT_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			dur = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
	}
}

type NewsConfig struct {
	// APIKeys is the pool of GNews credentials, comma separated in the
	// environment. An empty pool is allowed: every upstream call then fails
	// and the handlers serve mock fallback content.
	APIKeys []string
	BaseURL string
}

func LoadNewsConfig() NewsConfig {
	cfg := NewsConfig{
		BaseURL: "https://gnews.io/api/v4",
	}

	if u := os.Getenv("NEWSHUB_GNEWS_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	raw := os.Getenv("NEWSHUB_GNEWS_KEYS")
	if raw == "" {
		raw = os.Getenv("GNEWS_API_KEY")
	}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			cfg.APIKeys = append(cfg.APIKeys, k)
		}
	}
	return cfg
}

func ListenAddr() string {
	if a := os.Getenv("NEWSHUB_ADDR"); a != "" {
		return a
	}
	return ":8080"
}
