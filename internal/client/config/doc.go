// Package config loads runtime configuration for the gophauth client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. The format follows
//     the extension: .json and .jsonc (comments and trailing commas
//     allowed), .yaml and .yml.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth API, e.g. http://127.0.0.1:8000
//	-d string   directory for the local session database
//	-l string   log level: debug, info, warn (default), error
//	-m          keep the session in memory only
//
// # File schema
//
//	{
//	  // JSONC allows comments
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "data_dir": "~/.gophauth",
//	  "log_level": "warn",
//	  "in_memory": false,
//	}
//
// The YAML form uses the same keys. Unknown keys are ignored; keys that are
// absent leave the earlier value in place.
package config
