// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package config loads the Swarm console configuration from environment
// variables, command-line flags, and an optional JSON file, merged in
// that order (later non-zero values win) and validated before use.
package config
