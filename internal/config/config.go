package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	Cache    CacheConfig
	Overpass OverpassConfig
	Import   ImportConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SnapshotConfig selects the local-persistence backend for the spot
// collection blob.
type SnapshotConfig struct {
	Backend string // file | redis | postgres
	Path    string // file backend
	Name    string // fixed blob name/key
}

type CacheConfig struct {
	ScoreCacheTTL time.Duration
	StatsCacheTTL time.Duration
}

type OverpassConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
}

type ImportConfig struct {
	DedupRadiusM float64
}

type LogConfig struct {
	Level string
}

// ImportArea is one neighborhood the import worker keeps in sync.
type ImportArea struct {
	Lat     float64
	Lon     float64
	RadiusM float64
}

type WorkerConfig struct {
	Enabled        bool
	ConsumerGroup  string
	ImportInterval time.Duration
	Areas          []ImportArea
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Snapshot: SnapshotConfig{
			Backend: viper.GetString("SNAPSHOT_BACKEND"),
			Path:    viper.GetString("SNAPSHOT_PATH"),
			Name:    viper.GetString("SNAPSHOT_NAME"),
		},
		Cache: CacheConfig{
			ScoreCacheTTL: time.Duration(viper.GetInt("SCORE_CACHE_TTL")) * time.Second,
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			RequestTimeout: viper.GetInt("OVERPASS_REQUEST_TIMEOUT"),
		},
		Import: ImportConfig{
			DedupRadiusM: viper.GetFloat64("IMPORT_DEDUP_RADIUS_M"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:        viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:  viper.GetString("WORKER_CONSUMER_GROUP"),
			ImportInterval: time.Duration(viper.GetInt("WORKER_IMPORT_INTERVAL")) * time.Second,
			Areas:          parseImportAreas(viper.GetString("WORKER_IMPORT_AREAS")),
		},
	}

	// Set default values if not provided
	if cfg.Snapshot.Backend == "" {
		cfg.Snapshot.Backend = "file"
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "data/spots.json"
	}
	if cfg.Snapshot.Name == "" {
		cfg.Snapshot.Name = "spots"
	}
	if cfg.Cache.ScoreCacheTTL == 0 {
		cfg.Cache.ScoreCacheTTL = 60 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 300 * time.Second
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30
	}
	if cfg.Import.DedupRadiusM == 0 {
		cfg.Import.DedupRadiusM = 10
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "locability-score-invalidation"
	}
	if cfg.Worker.ImportInterval == 0 {
		cfg.Worker.ImportInterval = 15 * time.Minute
	}

	return cfg, nil
}

// parseImportAreas parses "lat,lon,radius;lat,lon,radius" into areas.
// Malformed entries are dropped.
func parseImportAreas(s string) []ImportArea {
	if s == "" {
		return nil
	}
	entries := strings.Split(s, ";")
	areas := make([]ImportArea, 0, len(entries))
	for _, e := range entries {
		parts := strings.Split(strings.TrimSpace(e), ",")
		if len(parts) != 3 {
			continue
		}
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		radius, err3 := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		areas = append(areas, ImportArea{Lat: lat, Lon: lon, RadiusM: radius})
	}
	return areas
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
