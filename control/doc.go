// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, socket profiles, logging setup and result metrics for
// programs built on the socket package.
//
// Provides:
//   - TOML configuration with defaults and validation
//   - A concurrent-safe store with reload listeners
//   - Socket profiles applied through the portable option setters
//   - Per-operation result counters exported to Prometheus
package control
