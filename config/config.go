package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	StaticData StaticDataConfig
	Session    SessionConfig
}

type AppConfig struct {
	Port            string
	Env             string
	CORSAllowOrigin string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// StaticDataConfig controls the reference-data cache.
type StaticDataConfig struct {
	CacheTTL   time.Duration
	ResyncCron string
}

// SessionConfig controls the cached profile payloads.
type SessionConfig struct {
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	staticTTL, err := time.ParseDuration(viper.GetString("STATIC_DATA_CACHE_TTL"))
	if err != nil {
		staticTTL = time.Hour
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_CACHE_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	resyncCron := viper.GetString("STATIC_DATA_RESYNC_CRON")
	if resyncCron == "" {
		resyncCron = "@every 30m"
	}

	corsAllowOrigin := viper.GetString("CORS_ALLOW_ORIGIN")
	if corsAllowOrigin == "" {
		corsAllowOrigin = "*"
	}

	migrationsPath := viper.GetString("DB_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port:            viper.GetString("APP_PORT"),
			Env:             viper.GetString("APP_ENV"),
			CORSAllowOrigin: corsAllowOrigin,
		},
		DB: DBConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: migrationsPath,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		StaticData: StaticDataConfig{
			CacheTTL:   staticTTL,
			ResyncCron: resyncCron,
		},
		Session: SessionConfig{
			CacheTTL: sessionTTL,
		},
	}

	return config, nil
}
