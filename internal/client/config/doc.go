// Package config loads runtime configuration for the schoolplatform CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with SCHOOLPLATFORM_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     address:port of an account daemon; empty means local mode
//	-s string     storage driver: sqlite, postgres or s3
//	-d string     storage DSN (sqlite file path or postgres connection string)
//	-b string     S3 bucket
//	-t duration   per-request timeout
//	-k string     session signing secret; empty stores plain JSON snapshots
//	-l string     log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "",
//	  "request_timeout": "5s",
//	  "session_secret": "change-me",
//	  "log_level": "warn",
//	  "storage": {
//	    "driver": "sqlite",
//	    "dsn": "data/schoolplatform.db"
//	  }
//	}
package config
