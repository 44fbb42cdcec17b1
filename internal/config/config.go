package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// R2 holds the object storage credentials. Either all fields are set or none.
type R2 struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func (r R2) Enabled() bool {
	return r.Endpoint != ""
}

// Config is read once at startup and passed down; nothing mutates it afterwards.
type Config struct {
	Env                 string
	Port                string
	JWTSecret           []byte
	JWTTTL              time.Duration
	StoreDriver         string
	DatabaseURL         string
	CORSOrigins         []string
	RecomputeCostOnEdit bool
	UploadDir           string
	PublicBaseURL       string
	R2                  R2
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads an optional .env file (outside production) and then the environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply values directly.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:           get("APP_ENV", "development"),
		Port:          get("PORT", "8000"),
		StoreDriver:   get("STORE_DRIVER", StorePostgres),
		DatabaseURL:   get("DATABASE_URL", ""),
		UploadDir:     get("UPLOAD_DIR", "uploads"),
		PublicBaseURL: strings.TrimRight(get("PUBLIC_BASE_URL", ""), "/"),
		R2: R2{
			Endpoint:      get("R2_ENDPOINT", ""),
			AccessKey:     get("R2_ACCESS_KEY", ""),
			SecretKey:     get("R2_SECRET_KEY", ""),
			Bucket:        get("R2_BUCKET_NAME", ""),
			PublicBaseURL: strings.TrimRight(get("R2_PUBLIC_BASE_URL", ""), "/"),
		},
	}

	secret := get("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	cfg.JWTSecret = []byte(secret)

	ttl, err := time.ParseDuration(get("JWT_TTL", "168h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL %q", getenv("JWT_TTL"))
	}
	cfg.JWTTTL = ttl

	recompute, err := strconv.ParseBool(get("RECOMPUTE_COST_ON_EDIT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMPUTE_COST_ON_EDIT: %w", err)
	}
	cfg.RecomputeCostOnEdit = recompute

	origins := get("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	switch cfg.StoreDriver {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is not set")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if err := cfg.R2.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r R2) validate() error {
	fields := map[string]string{
		"R2_ENDPOINT":        r.Endpoint,
		"R2_ACCESS_KEY":      r.AccessKey,
		"R2_SECRET_KEY":      r.SecretKey,
		"R2_BUCKET_NAME":     r.Bucket,
		"R2_PUBLIC_BASE_URL": r.PublicBaseURL,
	}

	var set, missing []string
	for k, v := range fields {
		if v == "" {
			missing = append(missing, k)
		} else {
			set = append(set, k)
		}
	}
	if len(set) > 0 && len(missing) > 0 {
		return fmt.Errorf("incomplete R2 configuration, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
