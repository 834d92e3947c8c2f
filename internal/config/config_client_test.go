package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultServerAddress, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultHealthInterval, cfg.Workers.HealthInterval)
	assert.Equal(t, DefaultDatabasePath, cfg.Storage.DB.DSN)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "https://swarm.dev"},
		Storage: ClientStorage{DB: ClientDB{DSN: "/tmp/console.db"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "https://swarm.dev", cfg.Adapter.BaseURL)
	assert.Equal(t, "/tmp/console.db", cfg.Storage.DB.DSN)
}

func TestClientConfig_Validate_RejectsInMemoryDSN(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: DefaultServerAddress, RequestTimeout: DefaultRequestTimeout},
		Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
		Workers: ClientWorkers{HealthInterval: DefaultHealthInterval},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
