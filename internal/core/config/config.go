package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported cache backends.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the status API listens.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Promotions holds the backend and timing settings of the banner.
	Promotions PromotionsConfig `mapstructure:",squash"`

	// Cache holds the snapshot cache settings.
	Cache CacheConfig `mapstructure:",squash"`

	// Kiosk holds the browser display settings.
	Kiosk KioskConfig `mapstructure:",squash"`

	// Proxy holds the upstream proxy used by the kiosk browser.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// PromotionsConfig describes where promotions come from and how they cycle.
type PromotionsConfig struct {
	// APIURL is the base URL of the restaurant backend.
	APIURL string `mapstructure:"PROMOS_API_URL" required:"true"`
	// Path is the promotions listing endpoint relative to APIURL.
	Path string `mapstructure:"PROMOS_PATH" default:"/api/promos/promocoes"`
	// ImagesURL is the base path images are resolved against.
	ImagesURL string `mapstructure:"PROMOS_IMAGES_URL" default:"/api/images/images"`
	// HTTPTimeout bounds one backend round trip at the transport level.
	HTTPTimeout time.Duration `mapstructure:"PROMOS_HTTP_TIMEOUT" default:"30s"`
	// RefreshInterval is the background revalidation cadence.
	RefreshInterval time.Duration `mapstructure:"REFRESH_INTERVAL" default:"5m"`
	// RotationInterval is how long each promotion stays on screen.
	RotationInterval time.Duration `mapstructure:"ROTATION_INTERVAL" default:"5s"`
	// TransitionMidpoint is the fade-out duration requested before new content is applied.
	TransitionMidpoint time.Duration `mapstructure:"TRANSITION_MIDPOINT" default:"500ms"`
}

// ListURL is the absolute promotions endpoint.
func (p PromotionsConfig) ListURL() string {
	return strings.TrimRight(p.APIURL, "/") + "/" + strings.TrimLeft(p.Path, "/")
}

// ImageBaseURL resolves ImagesURL against APIURL when it is a bare path.
func (p PromotionsConfig) ImageBaseURL() string {
	if strings.HasPrefix(p.ImagesURL, "http://") || strings.HasPrefix(p.ImagesURL, "https://") {
		return strings.TrimRight(p.ImagesURL, "/")
	}
	return strings.TrimRight(p.APIURL, "/") + "/" + strings.Trim(p.ImagesURL, "/")
}

// CacheConfig selects and configures the snapshot store.
type CacheConfig struct {
	// Backend is one of sqlite, redis or memory.
	Backend string `mapstructure:"CACHE_BACKEND" default:"sqlite"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `mapstructure:"CACHE_SQLITE_PATH" default:"promotions-cache.db"`
	// RedisURL is used by the redis backend.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// Key is the single slot the snapshot lives under.
	Key string `mapstructure:"CACHE_KEY" default:"promotions_snapshot"`
	// Expiration is how long a stored snapshot may be rendered without a network round trip.
	Expiration time.Duration `mapstructure:"CACHE_EXPIRATION" default:"5m"`
}

// KioskConfig configures the optional browser display.
type KioskConfig struct {
	// Enabled turns the kiosk renderer on.
	Enabled bool `mapstructure:"KIOSK_ENABLED" default:"false"`
	// PageURL is the page hosting the banner markup.
	PageURL string `mapstructure:"KIOSK_PAGE_URL"`
	// Headless runs Chromium without a window.
	Headless bool `mapstructure:"KIOSK_HEADLESS" default:"true"`
}

// ProxyConfig describes an upstream HTTP proxy.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Host     string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks cross-field constraints that tags cannot express.
func (c *AppConfig) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendSQLite, CacheBackendRedis, CacheBackendMemory:
	default:
		return fmt.Errorf("invalid configuration: CACHE_BACKEND %q is not one of sqlite, redis, memory", c.Cache.Backend)
	}

	durations := map[string]time.Duration{
		"REFRESH_INTERVAL":  c.Promotions.RefreshInterval,
		"ROTATION_INTERVAL": c.Promotions.RotationInterval,
		"CACHE_EXPIRATION":  c.Cache.Expiration,
	}
	for key, d := range durations {
		if d <= 0 {
			return fmt.Errorf("invalid configuration: %s must be positive, got %s", key, d)
		}
	}

	if c.Promotions.TransitionMidpoint < 0 {
		return fmt.Errorf("invalid configuration: TRANSITION_MIDPOINT must not be negative")
	}

	if c.Kiosk.Enabled && c.Kiosk.PageURL == "" {
		return fmt.Errorf("missing required configuration: KIOSK_PAGE_URL")
	}

	return nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
