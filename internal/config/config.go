package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jengzang/route-terrain-go/internal/analysis/terrain"
	"github.com/jengzang/route-terrain-go/internal/elevation"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig       `mapstructure:"server"`
	Log       LogConfig          `mapstructure:"log"`
	Auth      AuthConfig         `mapstructure:"auth"`
	RateLimit RateLimitConfig    `mapstructure:"ratelimit"`
	Elevation ElevationConfig    `mapstructure:"elevation"`
	Geocoding GeocodingConfig    `mapstructure:"geocoding"`
	Reasoning ReasoningConfig    `mapstructure:"reasoning"`
	Analysis  AnalysisConfig     `mapstructure:"analysis"`
	Terrain   terrain.Thresholds `mapstructure:"terrain"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout  int      `mapstructure:"read_timeout"`
	WriteTimeout int      `mapstructure:"write_timeout"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type ElevationConfig struct {
	Providers        []string      `mapstructure:"providers"`
	OpenTopoDataURL  string        `mapstructure:"opentopodata_url"`
	OpenElevationURL string        `mapstructure:"open_elevation_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BatchSize        int           `mapstructure:"batch_size"`
}

type GeocodingConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Language  string        `mapstructure:"language"`
	Zoom      int           `mapstructure:"zoom"`
	Delay     time.Duration `mapstructure:"delay"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type ReasoningConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float32       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Referer     string        `mapstructure:"referer"`
	Title       string        `mapstructure:"title"`
	JSONMode    bool          `mapstructure:"json_mode"`
}

// AnalysisConfig bounds a whole analyze-route request
type AnalysisConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ROUTEAPP_GEOCODING_DELAY → geocoding.delay
	v.SetEnvPrefix("ROUTEAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("reasoning.api_key", "ROUTEAPP_REASONING_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("reasoning.model", "ROUTEAPP_REASONING_MODEL", "OPENROUTER_MODEL")
	_ = v.BindEnv("server.port", "ROUTEAPP_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("ratelimit.requests_per_minute", 30)
	v.SetDefault("ratelimit.burst", 5)

	v.SetDefault("elevation.providers", []string{
		elevation.KindOpenTopoDataSRTM,
		elevation.KindOpenTopoDataASTER,
		elevation.KindOpenElevation,
	})
	v.SetDefault("elevation.opentopodata_url", "https://api.opentopodata.org")
	v.SetDefault("elevation.open_elevation_url", "https://api.open-elevation.com")
	v.SetDefault("elevation.timeout", 10*time.Second)
	v.SetDefault("elevation.batch_size", elevation.MaxLocationsPerRequest)

	v.SetDefault("geocoding.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoding.user_agent", "RouteTerrain/1.0")
	v.SetDefault("geocoding.language", "en")
	v.SetDefault("geocoding.zoom", 8)
	v.SetDefault("geocoding.delay", 200*time.Millisecond)
	v.SetDefault("geocoding.timeout", 10*time.Second)

	v.SetDefault("reasoning.api_key", "")
	v.SetDefault("reasoning.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("reasoning.model", "openai/gpt-4o-mini")
	v.SetDefault("reasoning.max_tokens", 4000)
	v.SetDefault("reasoning.temperature", 0.4)
	v.SetDefault("reasoning.timeout", 90*time.Second)
	v.SetDefault("reasoning.referer", "http://localhost:5173")
	v.SetDefault("reasoning.title", "Route Terrain")
	v.SetDefault("reasoning.json_mode", true)

	v.SetDefault("analysis.timeout", 110*time.Second)

	t := terrain.DefaultThresholds()
	v.SetDefault("terrain.mountainous_range", t.MountainousRange)
	v.SetDefault("terrain.hilly_range", t.HillyRange)
	v.SetDefault("terrain.rugged_range", t.RuggedRange)
	v.SetDefault("terrain.undulating_slope", t.UndulatingSlope)
	v.SetDefault("terrain.lowland_elevation", t.LowlandElevation)
	v.SetDefault("terrain.upland_elevation", t.UplandElevation)
	v.SetDefault("terrain.steep_slope_percent", t.SteepSlopePercent)
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Sprintf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Auth.Enabled && len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, "auth.jwt_secret must be at least 16 characters when auth is enabled")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, "ratelimit.requests_per_minute must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, "ratelimit.burst must be positive")
	}

	if len(c.Elevation.Providers) == 0 {
		errs = append(errs, "elevation.providers must list at least one provider")
	}
	for _, p := range c.Elevation.Providers {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case elevation.KindOpenTopoDataSRTM, elevation.KindOpenTopoDataASTER, elevation.KindOpenElevation:
		default:
			errs = append(errs, fmt.Sprintf("elevation.providers: unknown provider %q", p))
		}
	}
	if c.Elevation.Timeout <= 0 {
		errs = append(errs, "elevation.timeout must be positive")
	}
	if c.Elevation.BatchSize <= 0 || c.Elevation.BatchSize > elevation.MaxLocationsPerRequest {
		errs = append(errs, fmt.Sprintf("elevation.batch_size must be 1-%d, got %d", elevation.MaxLocationsPerRequest, c.Elevation.BatchSize))
	}

	if c.Geocoding.BaseURL == "" {
		errs = append(errs, "geocoding.base_url is required")
	}
	if c.Geocoding.UserAgent == "" {
		errs = append(errs, "geocoding.user_agent is required by the Nominatim usage policy")
	}
	if c.Geocoding.Zoom < 0 || c.Geocoding.Zoom > 18 {
		errs = append(errs, fmt.Sprintf("geocoding.zoom must be 0-18, got %d", c.Geocoding.Zoom))
	}
	if c.Geocoding.Delay < 0 {
		errs = append(errs, "geocoding.delay must not be negative")
	}
	if c.Geocoding.Timeout <= 0 {
		errs = append(errs, "geocoding.timeout must be positive")
	}

	if c.Reasoning.BaseURL == "" {
		errs = append(errs, "reasoning.base_url is required")
	}
	if c.Reasoning.Model == "" {
		errs = append(errs, "reasoning.model is required")
	}
	if c.Reasoning.MaxTokens <= 0 {
		errs = append(errs, "reasoning.max_tokens must be positive")
	}
	if c.Reasoning.Temperature < 0 || c.Reasoning.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("reasoning.temperature must be 0-2, got %g", c.Reasoning.Temperature))
	}
	if c.Reasoning.Timeout <= 0 {
		errs = append(errs, "reasoning.timeout must be positive")
	}
	if c.Analysis.Timeout <= 0 {
		errs = append(errs, "analysis.timeout must be positive")
	}

	if c.Terrain.SteepSlopePercent <= 0 {
		errs = append(errs, "terrain.steep_slope_percent must be positive")
	}
	if !(c.Terrain.MountainousRange > c.Terrain.HillyRange && c.Terrain.HillyRange > c.Terrain.RuggedRange) {
		errs = append(errs, "terrain ranges must satisfy mountainous_range > hilly_range > rugged_range")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
