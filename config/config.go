package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultTickers is the ticker universe used when neither TICKERS nor
// TICKERS_FILE is set: Argentine ADRs listed in New York.
var DefaultTickers = []string{
	"BBAR", "BMA", "CEPU", "CRESY", "EDN", "GGAL", "IRS",
	"LOMA", "PAM", "SUPV", "TEO", "TGS", "YPF",
}

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	TICKERS=GGAL,YPF,PAM
//	MARKET_PROVIDER=yahoo
//	MARKET_TIMEZONE=America/New_York
//	TOP_N=10
//	POSTGRES_HOST=localhost
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Market   MarketConfig   // Ticker universe and data provider
	Analysis AnalysisConfig // Ranking and chart settings
	Cache    CacheConfig    // Fetch memoization
	Alpaca   AlpacaConfig   // Credentials for MARKET_PROVIDER=alpaca
	Postgres PostgresConfig // Connection for MARKET_PROVIDER=postgres
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int           // Requests per client IP per minute; 0 disables the limiter
	RequestTimeout     time.Duration // Upper bound for one API request
}

// MarketConfig selects where prices come from and for which tickers.
type MarketConfig struct {
	Provider    string
	Timezone    string
	Tickers     []string
	TickersFile string
	Parallel    int // concurrent per-ticker fetches; 1 keeps them sequential
}

// Location returns the market time zone, falling back to UTC when it cannot
// be loaded. validateConfig rejects unknown zones at startup.
func (m MarketConfig) Location() *time.Location {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type AnalysisConfig struct {
	TopN           int
	ChartWatermark string
}

type CacheConfig struct {
	Limit int
	TTL   time.Duration
}

type AlpacaConfig struct {
	APIKey    string
	SecretKey string
	Feed      string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// envFiles are loaded, in order, before reading the environment. Values
// already present in the environment win.
var envFiles = []string{".env"}

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//  4. TICKERS_FILE, when set, replaces TICKERS.
//
// The .env file is loaded into the process environment (godotenv), so
// packages that read os.Getenv directly, like the logger, see it too.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	for _, f := range envFiles {
		_ = godotenv.Load(f) // a missing .env is fine
	}

	setDefaults()
	viper.AutomaticEnv()

	AppConfig = fromViper()
	if AppConfig.Market.TickersFile != "" {
		tickers, err := LoadTickers(AppConfig.Market.TickersFile)
		if err != nil {
			log.Fatalf("❌ Cannot load TICKERS_FILE: %v\n", err)
		}
		AppConfig.Market.Tickers = tickers
	}

	validateConfig()
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("REQUEST_TIMEOUT", "30s")

	viper.SetDefault("MARKET_PROVIDER", "yahoo")
	viper.SetDefault("MARKET_TIMEZONE", "America/New_York")
	viper.SetDefault("TICKERS", strings.Join(DefaultTickers, ","))
	viper.SetDefault("TICKERS_FILE", "")
	viper.SetDefault("FETCH_PARALLEL", 1)

	viper.SetDefault("TOP_N", 10)
	viper.SetDefault("CHART_WATERMARK", "maxminpulse")

	viper.SetDefault("CACHE_LIMIT", 512)
	viper.SetDefault("CACHE_TTL", "24h")

	viper.SetDefault("ALPACA_API_KEY", "")
	viper.SetDefault("ALPACA_SECRET_KEY", "")
	viper.SetDefault("ALPACA_FEED", "iex")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "maxminpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
}

func fromViper() Config {
	cfg := Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Market: MarketConfig{
			Provider:    strings.ToLower(strings.TrimSpace(viper.GetString("MARKET_PROVIDER"))),
			Timezone:    viper.GetString("MARKET_TIMEZONE"),
			Tickers:     ParseTickers(viper.GetString("TICKERS")),
			TickersFile: viper.GetString("TICKERS_FILE"),
			Parallel:    viper.GetInt("FETCH_PARALLEL"),
		},
		Analysis: AnalysisConfig{
			TopN:           viper.GetInt("TOP_N"),
			ChartWatermark: viper.GetString("CHART_WATERMARK"),
		},
		Cache: CacheConfig{
			Limit: viper.GetInt("CACHE_LIMIT"),
			TTL:   viper.GetDuration("CACHE_TTL"),
		},
		Alpaca: AlpacaConfig{
			APIKey:    viper.GetString("ALPACA_API_KEY"),
			SecretKey: viper.GetString("ALPACA_SECRET_KEY"),
			Feed:      viper.GetString("ALPACA_FEED"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	cfg.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)
	return cfg
}

// validateConfig terminates the application when AppConfig is unusable.
func validateConfig() {
	if problems := validate(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}

// validate lists the variables that are missing or invalid. Credentials are
// only required by the provider that uses them.
func validate(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if len(cfg.Market.Tickers) == 0 {
		problems = append(problems, "TICKERS")
	}
	if _, err := time.LoadLocation(cfg.Market.Timezone); err != nil || cfg.Market.Timezone == "" {
		problems = append(problems, "MARKET_TIMEZONE")
	}
	if cfg.Analysis.TopN <= 0 {
		problems = append(problems, "TOP_N")
	}
	if cfg.Market.Parallel <= 0 {
		problems = append(problems, "FETCH_PARALLEL")
	}

	switch cfg.Market.Provider {
	case "yahoo":
	case "alpaca":
		if cfg.Alpaca.APIKey == "" {
			problems = append(problems, "ALPACA_API_KEY")
		}
		if cfg.Alpaca.SecretKey == "" {
			problems = append(problems, "ALPACA_SECRET_KEY")
		}
	case "postgres":
		if cfg.Postgres.Host == "" {
			problems = append(problems, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			problems = append(problems, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			problems = append(problems, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			problems = append(problems, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			problems = append(problems, "POSTGRES_DB")
		}
	default:
		problems = append(problems, "MARKET_PROVIDER")
	}

	return problems
}
