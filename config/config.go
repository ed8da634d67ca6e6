package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			// WriteTimeout must stay zero (or large) when the SSE message stream is served.
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store configuration for the local favorites database
	Store *StoreConfig `json:"store" yaml:"store"`

	// Generation configuration for the generative text engine
	Generation *GenerationConfig `json:"generation" yaml:"generation"`

	// Geocoder configuration for address resolution
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Search configuration for the session coordinator
	Search *SearchConfig `json:"search" yaml:"search"`

	// PubSub configuration for favorite event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the sqlite database holding favorited activities
type StoreConfig struct {
	// DSN passed to the sqlite driver, e.g. "file:wander.db?_foreign_keys=on" or ":memory:"
	DSN string `json:"dsn" yaml:"dsn"`

	// SlowQueryThreshold logs statements slower than this at warn level; zero uses the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GenerationConfig defines the OpenAI-compatible streaming generator
type GenerationConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`

	// BaseURL overrides the API endpoint (useful for local OpenAI-compatible servers)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Model   string `json:"model" yaml:"model"`

	// Maximum number of activities requested per search
	MaxActivities int     `json:"maxActivities" yaml:"maxActivities"`
	Temperature   float32 `json:"temperature" yaml:"temperature"`
}

// GeocoderConfig defines the Mapbox geocoding client
type GeocoderConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Token   string `json:"token" yaml:"token"`
	Country string `json:"country" yaml:"country"`

	// The upstream resolver throttles at roughly 50 requests per minute
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

// SearchConfig defines buffers and fan-out limits for the session coordinator
type SearchConfig struct {
	MessageBuffer            int `json:"messageBuffer" yaml:"messageBuffer"`
	EnrichmentWorkers        int `json:"enrichmentWorkers" yaml:"enrichmentWorkers"`
	LocationMaxUpdates       int `json:"locationMaxUpdates" yaml:"locationMaxUpdates"`
	LocationSubscriberBuffer int `json:"locationSubscriberBuffer" yaml:"locationSubscriberBuffer"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEOCODER_REQUESTSPERMINUTE -> geocoder.requestsPerMinute
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil || strings.TrimSpace(cfg.Store.DSN) == "" {
		cfg.Store = &StoreConfig{DSN: "file:wander.db"}
	}

	if cfg.Generation == nil {
		cfg.Generation = &GenerationConfig{}
	}
	if cfg.Generation.MaxActivities <= 0 {
		cfg.Generation.MaxActivities = 10
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.RequestsPerMinute <= 0 {
		cfg.Geocoder.RequestsPerMinute = 50
	}
	if cfg.Geocoder.Burst <= 0 {
		cfg.Geocoder.Burst = 5
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.MessageBuffer <= 0 {
		cfg.Search.MessageBuffer = 64
	}
	if cfg.Search.EnrichmentWorkers <= 0 {
		cfg.Search.EnrichmentWorkers = 4
	}
	if cfg.Search.LocationMaxUpdates <= 0 {
		cfg.Search.LocationMaxUpdates = 1
	}
	if cfg.Search.LocationSubscriberBuffer <= 0 {
		cfg.Search.LocationSubscriberBuffer = 16
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
