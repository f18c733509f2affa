package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Draft   DraftConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// DraftConfig controls how long an untouched prescription draft is kept
type DraftConfig struct {
	TTL time.Duration
}

// CatalogConfig selects where prescription history is read from.
// "static" serves the built-in demo records, "database" reads Postgres.
type CatalogConfig struct {
	CorpusSource        string
	MedicineSearchLimit int
}

const (
	CorpusSourceDatabase = "database"
	CorpusSourceStatic   = "static"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "prescription_portal")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")

	v.SetDefault("DRAFT_TTL", "2h")
	v.SetDefault("CORPUS_SOURCE", CorpusSourceDatabase)
	v.SetDefault("MEDICINE_SEARCH_LIMIT", 20)
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	draftTTL, err := time.ParseDuration(v.GetString("DRAFT_TTL"))
	if err != nil {
		draftTTL = 2 * time.Hour
	}

	corpusSource := v.GetString("CORPUS_SOURCE")
	if corpusSource != CorpusSourceStatic {
		corpusSource = CorpusSourceDatabase
	}

	searchLimit := v.GetInt("MEDICINE_SEARCH_LIMIT")
	if searchLimit <= 0 {
		searchLimit = 20
	}

	return &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Draft: DraftConfig{
			TTL: draftTTL,
		},
		Catalog: CatalogConfig{
			CorpusSource:        corpusSource,
			MedicineSearchLimit: searchLimit,
		},
	}
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
