package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS      CORSConfig
	Log       LogConfig
	Allocator AllocatorConfig
	Exports   ExportsConfig
	Imports   ImportsConfig
	Seed      SeedConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// RangeConfig is one inclusive id block.
type RangeConfig struct {
	Start int64
	End   int64
}

// AllocatorConfig carries the id range layout and the usage ratio at which
// capacity warnings fire.
type AllocatorConfig struct {
	PersonRange     RangeConfig
	StudentRange    RangeConfig
	CourseRange     RangeConfig
	EnrollmentRange RangeConfig
	TrainerRange    RangeConfig
	WarnThreshold   float64
}

// ExportsConfig configures asynchronous export generation.
type ExportsConfig struct {
	StorageDir        string
	ResultTTL         time.Duration
	CleanupInterval   time.Duration
	WorkerConcurrency int
	WorkerRetries     int
	QueueSize         int
}

// ImportsConfig bounds batch imports.
type ImportsConfig struct {
	MaxBatchSize int
}

// SeedConfig toggles demo data loading at startup.
type SeedConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Allocator = AllocatorConfig{
		PersonRange:     RangeConfig{Start: v.GetInt64("ID_RANGE_PERSON_START"), End: v.GetInt64("ID_RANGE_PERSON_END")},
		StudentRange:    RangeConfig{Start: v.GetInt64("ID_RANGE_STUDENT_START"), End: v.GetInt64("ID_RANGE_STUDENT_END")},
		CourseRange:     RangeConfig{Start: v.GetInt64("ID_RANGE_COURSE_START"), End: v.GetInt64("ID_RANGE_COURSE_END")},
		EnrollmentRange: RangeConfig{Start: v.GetInt64("ID_RANGE_ENROLLMENT_START"), End: v.GetInt64("ID_RANGE_ENROLLMENT_END")},
		TrainerRange:    RangeConfig{Start: v.GetInt64("ID_RANGE_TRAINER_START"), End: v.GetInt64("ID_RANGE_TRAINER_END")},
		WarnThreshold:   v.GetFloat64("ID_WARN_THRESHOLD"),
	}

	cfg.Exports = ExportsConfig{
		StorageDir:        v.GetString("EXPORTS_STORAGE_DIR"),
		ResultTTL:         parseDuration(v.GetString("EXPORTS_RESULT_TTL"), 24*time.Hour),
		CleanupInterval:   parseDuration(v.GetString("EXPORTS_CLEANUP_INTERVAL"), time.Hour),
		WorkerConcurrency: v.GetInt("EXPORTS_WORKER_CONCURRENCY"),
		WorkerRetries:     v.GetInt("EXPORTS_WORKER_RETRIES"),
		QueueSize:         v.GetInt("EXPORTS_QUEUE_SIZE"),
	}

	cfg.Imports = ImportsConfig{
		MaxBatchSize: v.GetInt("IMPORTS_MAX_BATCH_SIZE"),
	}

	cfg.Seed = SeedConfig{
		Enabled: v.GetBool("SEED_DEMO_DATA"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ID_RANGE_PERSON_START", 100)
	v.SetDefault("ID_RANGE_PERSON_END", 999)
	v.SetDefault("ID_RANGE_STUDENT_START", 1000)
	v.SetDefault("ID_RANGE_STUDENT_END", 1999)
	v.SetDefault("ID_RANGE_COURSE_START", 2000)
	v.SetDefault("ID_RANGE_COURSE_END", 2999)
	v.SetDefault("ID_RANGE_ENROLLMENT_START", 3000)
	v.SetDefault("ID_RANGE_ENROLLMENT_END", 3999)
	v.SetDefault("ID_RANGE_TRAINER_START", 4000)
	v.SetDefault("ID_RANGE_TRAINER_END", 4999)
	v.SetDefault("ID_WARN_THRESHOLD", 0.9)

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_RESULT_TTL", "24h")
	v.SetDefault("EXPORTS_CLEANUP_INTERVAL", "1h")
	v.SetDefault("EXPORTS_WORKER_CONCURRENCY", 1)
	v.SetDefault("EXPORTS_WORKER_RETRIES", 3)
	v.SetDefault("EXPORTS_QUEUE_SIZE", 16)

	v.SetDefault("IMPORTS_MAX_BATCH_SIZE", 500)

	v.SetDefault("SEED_DEMO_DATA", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
