// Package config loads runtime configuration for the chat CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config.
//     Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Environment: CHAT_API_URL overrides the API base address.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://chat.example.com/api",
//	  "request_timeout": "10s",
//	  "requests_per_second": 5,
//	  "session_db_path": "data/session.db",
//	  "log_level": "debug",
//	  "log_backend": "zap"
//	}
//
// Fields missing from the file keep their previous value.
package config
