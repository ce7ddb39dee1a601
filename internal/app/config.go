package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/db"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/middleware"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/platform/envutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime/bus"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Port    string
	LogMode string

	DB db.Config

	JWTSecretKey       string
	AccessTokenTTL     time.Duration
	AllowPasswordReset bool
	SessionPruneEvery  time.Duration

	Redis bus.RedisConfig

	CORSOrigins    []string
	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// LoadConfig reads the environment. When WORKHUB_CONFIG names a YAML file its
// top-level keys fill in whatever the environment leaves unset.
func LoadConfig(log *logger.Logger) (Config, error) {
	if path := envutil.String("WORKHUB_CONFIG", ""); path != "" {
		fileVals, err := readConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		prev := envutil.Lookup
		envutil.Lookup = overlay(prev, fileVals)
		defer func() { envutil.Lookup = prev }()
		log.Info("Config file loaded", "path", path, "keys", len(fileVals))
	}

	cfg := Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "workhub"),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:       envutil.String("SQLITE_PATH", "workhub.db"),
		},
		JWTSecretKey:       envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		AccessTokenTTL:     envutil.Duration("ACCESS_TOKEN_TTL", time.Hour),
		AllowPasswordReset: envutil.Bool("ALLOW_PASSWORD_RESET", false),
		SessionPruneEvery:  envutil.Duration("SESSION_PRUNE_INTERVAL", 10*time.Minute),
		Redis: bus.RedisConfig{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
			Channel:  envutil.String("REDIS_CHANNEL", bus.DefaultChannel),
		},
		CORSOrigins:    envutil.List("CORS_ORIGINS", middleware.DefaultCORSOrigins),
		MetricsEnabled: envutil.Bool("METRICS_ENABLED", true),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", observability.DefaultServiceName),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development"),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLE_RATIO", 1),
		},
	}

	if cfg.AccessTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set; using the built-in development secret")
	}
	return cfg, nil
}

func readConfigFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	out := make(map[string]string, len(doc))
	for k, v := range doc {
		switch vv := v.(type) {
		case nil:
			continue
		case []any:
			parts := make([]string, 0, len(vv))
			for _, p := range vv {
				parts = append(parts, fmt.Sprint(p))
			}
			out[strings.ToUpper(k)] = strings.Join(parts, ",")
		default:
			out[strings.ToUpper(k)] = fmt.Sprint(vv)
		}
	}
	return out, nil
}

func overlay(env func(string) (string, bool), file map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}
