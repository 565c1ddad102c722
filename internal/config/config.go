package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

// DefaultResultsLimit - размер страницы таблицы записей по умолчанию
const DefaultResultsLimit = 10

type Arguments struct {
	APIBaseURL      string  `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"warn"`
	StoragePath     string  `env:"STORAGE_PATH" envDefault:""`
	ResultsLimit    int     `env:"RESULTS_LIMIT" envDefault:"10"`
	RequestTimeout  string  `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	BreakerFailures int     `env:"BREAKER_FAILURES" envDefault:"5"`
	RateLimit       float64 `env:"RATE_LIMIT" envDefault:"0"`
}

// ClientConfig модель настроек работы с API калькулятора
type ClientConfig struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	BreakerFailures uint32
	// RateLimit - запросов в секунду, 0 - без ограничения
	RateLimit float64
}

// Config модель настроек приложения
type Config struct {
	Client       ClientConfig
	LogLevel     string
	StoragePath  string
	ResultsLimit int
}

// NewConfig - загружает настройки из окружения и флагов командной строки.
// Возвращает также аргументы, оставшиеся после флагов (команда и её параметры).
func NewConfig() (Config, []string) {
	cfg, rest, err := ParseConfig(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse configuration: %s", err.Error()))
	}
	return cfg, rest
}

// ParseConfig - разбор настроек: переменные окружения задают значения по умолчанию для флагов
func ParseConfig(arguments []string) (Config, []string, error) {
	var args Arguments
	if err := env.Parse(&args); err != nil {
		return Config{}, nil, fmt.Errorf("failed to parse enviroment var: %w", err)
	}
	defaultTimeout, err := time.ParseDuration(args.RequestTimeout)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", args.RequestTimeout, err)
	}

	flags := pflag.NewFlagSet("calcweb", pflag.ContinueOnError)
	// флаги команды разбираются отдельно
	flags.SetInterspersed(false)
	var (
		apiURL   = flags.StringP("api", "a", args.APIBaseURL, "Calculator API base URL.")
		logLevel = flags.StringP("log_level", "l", args.LogLevel, "Log level.")
		storage  = flags.StringP("storage", "s", args.StoragePath, "Local storage file path.")
		limit    = flags.IntP("limit", "n", args.ResultsLimit, "Records per page.")
		timeout  = flags.DurationP("timeout", "t", defaultTimeout, "Request timeout.")
		failures = flags.IntP("breaker_failures", "b", args.BreakerFailures, "Consecutive failures before the circuit breaker opens.")
		rps      = flags.Float64P("rate_limit", "r", args.RateLimit, "Requests per second, 0 disables the limit.")
	)
	if err := flags.Parse(arguments); err != nil {
		return Config{}, nil, err
	}

	if *limit <= 0 {
		return Config{}, nil, fmt.Errorf("results limit must be positive, got %d", *limit)
	}
	if *failures <= 0 {
		return Config{}, nil, fmt.Errorf("breaker failures must be positive, got %d", *failures)
	}
	if *rps < 0 {
		return Config{}, nil, fmt.Errorf("rate limit must not be negative, got %v", *rps)
	}
	storagePath := *storage
	if storagePath == "" {
		storagePath = DefaultStoragePath()
	}

	return Config{
		Client: ClientConfig{
			APIBaseURL:      *apiURL,
			RequestTimeout:  *timeout,
			BreakerFailures: uint32(*failures),
			RateLimit:       *rps,
		},
		LogLevel:     *logLevel,
		StoragePath:  storagePath,
		ResultsLimit: *limit,
	}, flags.Args(), nil
}

// DefaultStoragePath - файл локального хранилища в пользовательском каталоге настроек
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "calcweb", "storage.db")
}

func DefaultConfig() Config {
	return Config{
		Client: ClientConfig{
			APIBaseURL:      "http://localhost:3000",
			RequestTimeout:  10 * time.Second,
			BreakerFailures: 5,
		},
		LogLevel:     "info",
		StoragePath:  "file::memory:",
		ResultsLimit: DefaultResultsLimit,
	}
}
