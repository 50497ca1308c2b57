// Package config reads worker settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type R2Config struct {
	AccountID string `env:"R2_ACCOUNT_ID,required,notEmpty"`
	Bucket    string `env:"R2_BUCKET,required,notEmpty"`
	AccessKey string `env:"R2_ACCESS_KEY,required,notEmpty"`
	SecretKey string `env:"R2_SECRET_KEY,required,notEmpty"`
}

// Endpoint is the S3 compatible URL of the account's R2 storage.
func (r R2Config) Endpoint() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.AccountID)
}

type Config struct {
	DBURL       string `env:"DB_URL,required,notEmpty"`
	RabbitMQURL string `env:"RABBITMQ_URL,required,notEmpty"`
	R2          R2Config

	Workers          int    `env:"WORKERS" envDefault:"3"`
	CheckQueue       string `env:"CHECK_QUEUE" envDefault:"ats_checks"`
	UpdatesExchange  string `env:"UPDATES_EXCHANGE" envDefault:"check_updates"`
	KeywordsPath     string `env:"KEYWORDS_PATH"`
	MetricsAddr      string `env:"METRICS_ADDR" envDefault:":9090"`
	DownloadAttempts uint64 `env:"DOWNLOAD_ATTEMPTS" envDefault:"3"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("WORKERS must be at least 1, got %d", cfg.Workers)
	}
	if cfg.DownloadAttempts < 1 {
		return Config{}, fmt.Errorf("DOWNLOAD_ATTEMPTS must be at least 1, got %d", cfg.DownloadAttempts)
	}
	return cfg, nil
}
