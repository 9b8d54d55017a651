package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the fixed upstream base all relay calls target.
const DefaultBaseURL = "https://business-api.tiktok.com/open_api/v1.3"

const defaultSessionTTL = 12 * time.Hour

type appSection struct {
	Port      string `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	StaticDir string `yaml:"static_dir"`
}

type authSection struct {
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	SecretKey  string `yaml:"secret_key"`
	SessionTTL string `yaml:"session_ttl"`
}

type tiktokSection struct {
	AccessToken  string `yaml:"access_token"`
	AdvertiserID string `yaml:"advertiser_id"`
	BaseURL      string `yaml:"base_url"`
}

type redisSection struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ConfigFile mirrors the optional config/config.yml layout. Environment
// variables override anything set here.
type ConfigFile struct {
	App    appSection    `yaml:"app"`
	Auth   authSection   `yaml:"auth"`
	TikTok tiktokSection `yaml:"tiktok"`
	Redis  redisSection  `yaml:"redis"`
}

// Config is the immutable process-wide configuration, built once at startup
// and injected into every component that needs it.
type Config struct {
	Port          string
	GinMode       string
	StaticDir     string
	SecretKey     string
	AuthUsername  string
	AuthPassword  string
	SessionTTL    time.Duration
	AccessToken   string
	AdvertiserID  string
	BaseURL       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load builds the configuration from config/config.yml (when present) and
// the environment. SECRET_KEY and the credential pair are mandatory.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          env("PORT", orDefault(file.App.Port, "8080")),
		GinMode:       env("GIN_MODE", orDefault(file.App.GinMode, "release")),
		StaticDir:     env("STATIC_DIR", orDefault(file.App.StaticDir, "static")),
		SecretKey:     env("SECRET_KEY", file.Auth.SecretKey),
		AuthUsername:  env("AUTH_USERNAME", file.Auth.Username),
		AuthPassword:  env("AUTH_PASSWORD", file.Auth.Password),
		AccessToken:   env("TIKTOK_ACCESS_TOKEN", file.TikTok.AccessToken),
		AdvertiserID:  env("TIKTOK_ADVERTISER_ID", file.TikTok.AdvertiserID),
		BaseURL:       env("TIKTOK_BASE_URL", orDefault(file.TikTok.BaseURL, DefaultBaseURL)),
		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	ttlRaw := env("SESSION_TTL", file.Auth.SessionTTL)
	if ttlRaw == "" {
		cfg.SessionTTL = defaultSessionTTL
	} else {
		ttl, err := time.ParseDuration(ttlRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", ttlRaw, err)
		}
		cfg.SessionTTL = ttl
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.AuthUsername == "" || cfg.AuthPassword == "" {
		return nil, fmt.Errorf("AUTH_USERNAME and AUTH_PASSWORD are required")
	}

	return cfg, nil
}

// loadConfigFile reads the optional YAML file; a missing file is not an
// error, everything can come from the environment.
func loadConfigFile(path string) (*ConfigFile, error) {
	var file ConfigFile
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &file, nil
		}
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
