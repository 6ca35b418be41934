// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, a .env file and environment
// variables. The loaded Config is built once at process start and passed
// explicitly to the components that need it; nothing reads it globally.
package config
