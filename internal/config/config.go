package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/timeline-visualizer/internal/timeline"
)

type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	Log         LogConfig
	Timeline    TimelineConfig
	Preferences PreferencesConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

// TimelineConfig - параметры разбора и отображения истории местоположений
type TimelineConfig struct {
	PathStride         int
	LargePathStride    int
	LargePathThreshold int
	MaxTrackPoints     int
	MaxUploadBytes     int64
	Timezone           string
	Location           *time.Location
	HeatmapLevel       int
	EventsLimit        int
}

type PreferencesConfig struct {
	Key string
	TTL time.Duration
}

// Load читает конфигурацию из .env и переменных окружения.
// Отсутствие .env не является ошибкой.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из указанного файла и переменных окружения
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			ReadTimeout:  time.Duration(v.GetInt("API_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("API_WRITE_TIMEOUT")) * time.Second,
			AllowOrigins: v.GetString("API_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Timeline: TimelineConfig{
			PathStride:         v.GetInt("TIMELINE_PATH_STRIDE"),
			LargePathStride:    v.GetInt("TIMELINE_LARGE_PATH_STRIDE"),
			LargePathThreshold: v.GetInt("TIMELINE_LARGE_PATH_THRESHOLD"),
			MaxTrackPoints:     v.GetInt("TIMELINE_MAX_TRACK_POINTS"),
			MaxUploadBytes:     v.GetInt64("TIMELINE_MAX_UPLOAD_MB") << 20,
			Timezone:           strings.TrimSpace(v.GetString("TIMELINE_TIMEZONE")),
			HeatmapLevel:       v.GetInt("TIMELINE_HEATMAP_LEVEL"),
			EventsLimit:        v.GetInt("TIMELINE_EVENTS_LIMIT"),
		},
		Preferences: PreferencesConfig{
			Key: v.GetString("PREFERENCES_KEY"),
			TTL: time.Duration(v.GetInt("PREFERENCES_TTL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 60 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.AllowOrigins == "" {
		cfg.Server.AllowOrigins = "*"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	sampling := timeline.DefaultSamplingConfig()
	if cfg.Timeline.PathStride <= 0 {
		cfg.Timeline.PathStride = sampling.PathStride
	}
	if cfg.Timeline.LargePathStride <= 0 {
		cfg.Timeline.LargePathStride = sampling.LargePathStride
	}
	if cfg.Timeline.LargePathThreshold <= 0 {
		cfg.Timeline.LargePathThreshold = sampling.LargePathThreshold
	}
	if cfg.Timeline.MaxTrackPoints <= 0 {
		cfg.Timeline.MaxTrackPoints = sampling.MaxTrackPoints
	}
	if cfg.Timeline.MaxUploadBytes <= 0 {
		cfg.Timeline.MaxUploadBytes = 256 << 20
	}
	if cfg.Timeline.Timezone == "" {
		cfg.Timeline.Timezone = "UTC"
	}
	if cfg.Timeline.HeatmapLevel <= 0 {
		cfg.Timeline.HeatmapLevel = 13
	}
	if cfg.Timeline.EventsLimit <= 0 {
		cfg.Timeline.EventsLimit = timeline.DefaultEventsLimit
	}
	if cfg.Preferences.Key == "" {
		cfg.Preferences.Key = "timeline:preferences"
	}

	loc, err := time.LoadLocation(cfg.Timeline.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMELINE_TIMEZONE %q: %w", cfg.Timeline.Timezone, err)
	}
	cfg.Timeline.Location = loc

	return cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Sampling возвращает параметры прореживания трека
func (t TimelineConfig) Sampling() timeline.SamplingConfig {
	return timeline.SamplingConfig{
		PathStride:         t.PathStride,
		LargePathStride:    t.LargePathStride,
		LargePathThreshold: t.LargePathThreshold,
		MaxTrackPoints:     t.MaxTrackPoints,
	}
}

// BodyLimit - предел тела HTTP-запроса: файл плюс запас на multipart-обвязку
func (c *Config) BodyLimit() int {
	return int(c.Timeline.MaxUploadBytes + 1<<20)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
