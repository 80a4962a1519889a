// internal/config/config.go
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"birthday-blog/pkg/db" // Import db package for its Config struct
)

// Supported storage drivers.
const (
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerAddr    string
	Driver        string    // which storage backend to use
	ReleasePolicy string    // pooled or per-request connection handling
	Store         db.Config // backend connection settings
}

// Load reads configuration from environment variables (BLOGAPI_*) and an
// optional config file. A missing store URI is deliberately not a load
// error: the connection manager reports it per request instead, matching
// the serverless execution model.
func Load() (*AppConfig, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("BLOGAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.uri", "")
	v.SetDefault("store.database", "birthday_blog")
	v.SetDefault("store.pool_size", 10)
	v.SetDefault("store.min_pool_size", 1)
	v.SetDefault("store.max_idle_time", "30s")
	v.SetDefault("store.connect_timeout", "10s")
	v.SetDefault("store.select_timeout", "5s")
	v.SetDefault("store.release_policy", "pooled")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	cfg := &AppConfig{
		ServerAddr:    v.GetString("server.addr"),
		Driver:        v.GetString("store.driver"),
		ReleasePolicy: v.GetString("store.release_policy"),
		Store: db.Config{
			URI:            v.GetString("store.uri"),
			Database:       v.GetString("store.database"),
			PoolSize:       v.GetInt("store.pool_size"),
			MinPoolSize:    v.GetInt("store.min_pool_size"),
			MaxIdleTime:    v.GetDuration("store.max_idle_time"),
			ConnectTimeout: v.GetDuration("store.connect_timeout"),
			SelectTimeout:  v.GetDuration("store.select_timeout"),
		},
	}

	if cfg.Driver != DriverMongo && cfg.Driver != DriverPostgres {
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if cfg.Store.PoolSize < 1 {
		return nil, fmt.Errorf("store pool size must be at least 1, got %d", cfg.Store.PoolSize)
	}

	// Fall back to the conventional backend-specific variables so existing
	// deployments keep working without renaming anything.
	if cfg.Store.URI == "" {
		switch cfg.Driver {
		case DriverMongo:
			cfg.Store.URI = os.Getenv("MONGODB_URI")
		case DriverPostgres:
			cfg.Store.URI = os.Getenv("DATABASE_URL")
		}
	}

	return cfg, nil
}

// loadDotEnv populates the environment from an optional .env file without
// overriding variables that are already set.
func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.Index(line, "=")
		if sep <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:sep])
		value := strings.Trim(strings.TrimSpace(line[sep+1:]), `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
