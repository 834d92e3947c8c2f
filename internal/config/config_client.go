package config

import (
	"fmt"
	"time"
)

// Defaults applied when neither env, flags, nor the JSON file supply a
// value.
const (
	DefaultServerAddress  = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultHealthInterval = 15 * time.Second
	DefaultDatabasePath   = "swarm-console.db"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogPath is the file the client logger writes to.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the base URL of the Swarm account service.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HealthInterval defines how often the health prober runs.
	HealthInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view
// from the merged structured configuration. Missing values fall back to
// the Default* constants, so a bare `swarm-console` invocation works
// against a local server out of the box.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogPath: cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultServerAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.HealthInterval <= 0 {
		cfg.Workers.HealthInterval = DefaultHealthInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabasePath
	}
}
