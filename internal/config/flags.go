package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://swarm.dev or localhost:8080)
//	-d local database path
//	-request-timeout outbound request timeout (e.g. "15s")
//	-health-interval health probe interval (e.g. "15s")
//	-log-path log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var requestTimeout time.Duration
	var healthInterval time.Duration
	var logPath string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&healthInterval, "health-interval", 0, "Health probe interval (e.g., 15s)")
	flag.StringVar(&logPath, "log-path", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Adapter: Adapter{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
