package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string `mapstructure:"service_host"`
	ServicePort int    `mapstructure:"service_port"`
	Mode        string `mapstructure:"mode"` // debug, release, test

	Log     LogConfig     `mapstructure:"log"`
	Site    SiteConfig    `mapstructure:"site"`
	Session SessionConfig `mapstructure:"session"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Redis   RedisConfig   `mapstructure:"-"`
	MinIO   MinIOConfig   `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text, json
}

type SiteConfig struct {
	Pages           []string `mapstructure:"pages"`
	DefaultLicenses int      `mapstructure:"default_licenses"`
	Locales         []string `mapstructure:"locales"`
	ContentFile     string   `mapstructure:"content_file"`
	LoginURL        string   `mapstructure:"login_url"`
	ContactEmail    string   `mapstructure:"contact_email"`
}

type SessionConfig struct {
	Backend    string        `mapstructure:"backend"` // memory, redis
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Enabled - MinIO используется только при заданном endpoint
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIORegion    = "MINIO_REGION"
	envMinIOUseSSL    = "MINIO_USE_SSL"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_host", "0.0.0.0")
	v.SetDefault("service_port", 8080)
	v.SetDefault("mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("site.pages", []string{"home", "features", "pricing", "security"})
	v.SetDefault("site.default_licenses", 5)
	v.SetDefault("site.locales", []string{"en-US"})
	v.SetDefault("site.login_url", "https://app.legistant.com/login")
	v.SetDefault("site.contact_email", "info@legistant.com")

	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.cookie_name", "legistant_view")
	v.SetDefault("session.ttl", 2*time.Hour)

	v.SetDefault("cors.allow_origins", []string{"*"})
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	} else {
		v.OnConfigChange(func(e fsnotify.Event) {
			// контент и набор страниц читаются один раз, изменения применяются после перезапуска
			log.WithField("file", e.Name).Warn("config file changed, restart to apply")
		})
		v.WatchConfig()
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	// инициализация Redis конфигурации из env
	if cfg.Session.Backend == SessionBackendRedis {
		cfg.Redis.Host = os.Getenv(envRedisHost)
		cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Password = os.Getenv(envRedisPass)
		cfg.Redis.User = os.Getenv(envRedisUser)
		cfg.Redis.DialTimeout = 10 * time.Second
		cfg.Redis.ReadTimeout = 10 * time.Second
	}

	// инициализация MinIO конфигурации из env (необязательно)
	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = os.Getenv(envMinIOBucket)
	cfg.MinIO.Region = os.Getenv(envMinIORegion)
	if cfg.MinIO.Region == "" {
		cfg.MinIO.Region = "us-east-1"
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "storefront-assets"
	}
	if s := os.Getenv(envMinIOUseSSL); s != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("minio use ssl must be bool value: %w", err)
		}
	}

	log.Info("config parsed")

	return cfg, nil
}

// fromViper разбирает и проверяет конфигурацию
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.ServicePort <= 0 || cfg.ServicePort > 65535 {
		return nil, fmt.Errorf("invalid service port %d", cfg.ServicePort)
	}
	if len(cfg.Site.Locales) == 0 {
		cfg.Site.Locales = []string{"en-US"}
	}

	return cfg, nil
}

// ConfigureLogger настраивает глобальный logrus по конфигурации
func (c *Config) ConfigureLogger() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	switch c.Log.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// Address - адрес, на котором слушает сервер
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}
