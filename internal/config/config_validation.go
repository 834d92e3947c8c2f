// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package config

import "strings"

// validate checks that the final [ClientConfig] satisfies all
// application invariants before it is used at startup. Defaults have
// already been applied, so a failure here means an explicitly supplied
// value is unusable.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
