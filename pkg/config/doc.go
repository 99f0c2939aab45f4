// Package config handles configuration management for valk.
// Values are layered with koanf: embedded TOML defaults, then the user's
// config file, then VALK_* environment variables, then command-line
// overrides.
package config
