// Package config loads runtime configuration for the QuickServe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then the process environment.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the QuickServe REST API
//	-d string   path of the local session database
//	-t int      request timeout in seconds, 0 disables it
//	-l string   log level (debug, info, warn, error)
//	-m string   listen address for the /metrics endpoint, empty disables it
//
// Environment
//
//	QUICKSERVE_API_URL, QUICKSERVE_SESSION_DB, QUICKSERVE_SESSION_KEY,
//	QUICKSERVE_REQUEST_TIMEOUT, QUICKSERVE_LOG_LEVEL, QUICKSERVE_LOG_FORMAT,
//	QUICKSERVE_METRICS_ADDR, OTEL_EXPORTER_OTLP_ENDPOINT,
//	OTEL_EXPORTER_OTLP_INSECURE
//
// # JSON schema
//
// Durations may be strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://quickserve.example/api",
//	  "session_db": "/home/me/.quickserve/session.db",
//	  "request_timeout": "30s",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "metrics_addr": "127.0.0.1:9102",
//	  "otlp_endpoint": "localhost:4317"
//	}
//
// The session passphrase is read from the environment only.
package config
