package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/zone"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the API and importer. Scalar keys can be
// overridden with upper-cased environment variables (SERVER_ADDRESS, ...).
type Config struct {
	ServerAddress   string        `mapstructure:"server_address"`
	DBSource        string        `mapstructure:"db_source"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisDB         int           `mapstructure:"redis_db"`
	AddressCacheTTL time.Duration `mapstructure:"address_cache_ttl"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	IPLookupURL     string        `mapstructure:"ip_lookup_url"`
	IPLookupTimeout time.Duration `mapstructure:"ip_lookup_timeout"`

	ZoneConfig zone.Config       `mapstructure:"zone"`
	Districts  []models.District `mapstructure:"districts"`
}

// DefaultRestaurant and DefaultPolygon describe the central Ulaanbaatar branch.
var (
	DefaultRestaurant = zone.GeoPoint{Lat: 47.9184, Lng: 106.9177}
	DefaultPolygon    = []zone.GeoPoint{
		{Lat: 47.9284, Lng: 106.9277},
		{Lat: 47.9284, Lng: 106.9077},
		{Lat: 47.9084, Lng: 106.9077},
		{Lat: 47.9084, Lng: 106.9277},
	}
	DefaultDistricts = []models.District{
		{ID: 1, Name: "сүхбаатар", Latitude: 47.9184, Longitude: 106.9177},
		{ID: 2, Name: "баянзүрх", Latitude: 47.9084, Longitude: 106.9377},
		{ID: 3, Name: "чингэлтэй", Latitude: 47.9284, Longitude: 106.9077},
		{ID: 4, Name: "хан-уул", Latitude: 47.8984, Longitude: 106.9277},
		{ID: 5, Name: "баянгол", Latitude: 47.9384, Longitude: 106.9177},
		{ID: 6, Name: "сонгинохайрхан", Latitude: 47.9184, Longitude: 106.8877},
	}
)

// LoadConfig reads app.yaml from path, a .env file from the working directory
// and the environment, in increasing order of precedence.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_address", "0.0.0.0:8080")
	v.SetDefault("db_source", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("address_cache_ttl", 24*time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("ip_lookup_url", "")
	v.SetDefault("ip_lookup_timeout", 15*time.Second)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.ZoneConfig.Restaurant == (zone.GeoPoint{}) {
		c.ZoneConfig.Restaurant = DefaultRestaurant
	}
	if len(c.ZoneConfig.Polygon) == 0 {
		c.ZoneConfig.Polygon = append([]zone.GeoPoint(nil), DefaultPolygon...)
	}
	if len(c.ZoneConfig.ETABuckets) == 0 && c.ZoneConfig.ETAFallback == (zone.Fallback{}) {
		c.ZoneConfig.ETABuckets = append([]zone.Bucket(nil), zone.DefaultBuckets...)
		c.ZoneConfig.ETAFallback = zone.DefaultFallback
	}
	if len(c.Districts) == 0 {
		c.Districts = append([]models.District(nil), DefaultDistricts...)
	}
}

// Evaluator validates the zone block and builds the evaluator shared by the API.
func (c Config) Evaluator() (*zone.Evaluator, error) {
	e, err := zone.NewEvaluator(c.ZoneConfig)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return e, nil
}
