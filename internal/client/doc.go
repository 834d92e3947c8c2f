// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and the background health
// prober into a single process lifecycle.
package client
