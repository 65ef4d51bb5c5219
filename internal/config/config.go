package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	AuthSecret    string `env:"AUTH_SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS"`
	PageSize      int    `env:"PAGE_SIZE"`
	MaxPageSize   int    `env:"MAX_PAGE_SIZE"`
	SeedFile      string `env:"SEED_FILE"`
	EnableHTTPS   bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера (host:port)")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к sqlite-файлу)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи токенов")
	flag.IntVar(&cfg.TokenTTLHours, "token-ttl", cfg.TokenTTLHours, "срок жизни токена, часов")
	flag.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "размер страницы списка по умолчанию")
	flag.IntVar(&cfg.MaxPageSize, "max-page-size", cfg.MaxPageSize, "потолок для page_size из запроса")
	flag.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "путь к JSON-файлу с начальными записями")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for ServerURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTLHours <= 0 {
		cfg.TokenTTLHours = 24
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	// validate RunAddress: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddress) {
		cfg.RunAddress = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.RunAddress
	} else {
		cfg.ServerURL = "http://" + cfg.RunAddress
	}

	// Fill client defaults if empty
	if cfg.TokenFile == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenFile = filepath.Join(home, ".ik_token")
	}

	return cfg
}
