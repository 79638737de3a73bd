package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	API     APIConfig
	Refresh RefreshConfig
	Session SessionConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type CORSConfig struct {
	AllowOrigins string
}

type RedisConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Password  string
	DB        int
	PoolSize  int
	Timeout   time.Duration
	KeyPrefix string
}

// CacheConfig - окна свежести для каждого шлюза
type CacheConfig struct {
	CollectionTTL time.Duration
	BoundaryTTL   time.Duration
	PollutionTTL  time.Duration
	PlantingTTL   time.Duration
	AirQualityTTL time.Duration
}

type LogConfig struct {
	Level string
}

// APIConfig - адреса внешних сервисов данных
type APIConfig struct {
	ParisBaseURL    string
	OpenDataBaseURL string
	PollutionURL    string
	PlantingURL     string
	AirQualityURL   string
	RequestTimeout  time.Duration
}

type RefreshConfig struct {
	Enabled  bool
	Interval time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

const (
	DefaultParisBaseURL    = "https://0ywkwjo2v9.execute-api.eu-west-3.amazonaws.com"
	DefaultOpenDataBaseURL = "https://opendata.paris.fr/api/explore/v2.1/catalog/datasets"
	DefaultPollutionURL    = "https://nx1hao3rlc.execute-api.eu-west-3.amazonaws.com/pollution"
	DefaultPlantingURL     = "https://0ywkwjo2v9.execute-api.eu-west-3.amazonaws.com/planting_simulation"
	DefaultAirQualityURL   = "https://air-quality-api.open-meteo.com/v1/air-quality"
)

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Enabled:   v.GetBool("REDIS_ENABLED"),
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetInt("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			PoolSize:  v.GetInt("REDIS_POOL_SIZE"),
			Timeout:   time.Duration(v.GetInt("REDIS_TIMEOUT")) * time.Second,
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		},
		Cache: CacheConfig{
			CollectionTTL: time.Duration(v.GetInt("COLLECTION_CACHE_TTL")) * time.Second,
			BoundaryTTL:   time.Duration(v.GetInt("BOUNDARY_CACHE_TTL")) * time.Second,
			PollutionTTL:  time.Duration(v.GetInt("POLLUTION_CACHE_TTL")) * time.Second,
			PlantingTTL:   time.Duration(v.GetInt("PLANTING_CACHE_TTL")) * time.Second,
			AirQualityTTL: time.Duration(v.GetInt("AIR_QUALITY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		API: APIConfig{
			ParisBaseURL:    v.GetString("PARIS_API_BASE_URL"),
			OpenDataBaseURL: v.GetString("OPENDATA_BASE_URL"),
			PollutionURL:    v.GetString("POLLUTION_API_URL"),
			PlantingURL:     v.GetString("PLANTING_API_URL"),
			AirQualityURL:   v.GetString("AIR_QUALITY_API_URL"),
			RequestTimeout:  time.Duration(v.GetInt("HTTP_TIMEOUT")) * time.Second,
		},
		Refresh: RefreshConfig{
			Enabled:  v.GetBool("REFRESH_ENABLED"),
			Interval: time.Duration(v.GetInt("REFRESH_INTERVAL")) * time.Second,
		},
		Session: SessionConfig{
			TTL: time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_TIMEOUT", 3)
	v.SetDefault("REDIS_KEY_PREFIX", "explorer:")

	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	// staleTime из исходного клиента: 5 минут для коллекций, сутки для границ
	v.SetDefault("COLLECTION_CACHE_TTL", 5*60)
	v.SetDefault("BOUNDARY_CACHE_TTL", 24*60*60)
	v.SetDefault("POLLUTION_CACHE_TTL", 5*60)
	v.SetDefault("PLANTING_CACHE_TTL", 10*60)
	v.SetDefault("AIR_QUALITY_CACHE_TTL", 5*60)

	v.SetDefault("PARIS_API_BASE_URL", DefaultParisBaseURL)
	v.SetDefault("OPENDATA_BASE_URL", DefaultOpenDataBaseURL)
	v.SetDefault("POLLUTION_API_URL", DefaultPollutionURL)
	v.SetDefault("PLANTING_API_URL", DefaultPlantingURL)
	v.SetDefault("AIR_QUALITY_API_URL", DefaultAirQualityURL)
	v.SetDefault("HTTP_TIMEOUT", 15)

	v.SetDefault("REFRESH_ENABLED", true)
	v.SetDefault("REFRESH_INTERVAL", 30*60)

	v.SetDefault("SESSION_TTL", 2*60*60)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
