// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST endpoint
//	-f string   path to the local database file
//	-m          demo mode (run against the built-in mock backend)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8000",
//	  "database_path": "storefront.db",
//	  "demo_mode": false
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
