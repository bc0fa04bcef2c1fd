// Package config loads the client configuration from, in order of
// increasing precedence: built-in defaults, a JSON file (-c/-config),
// LIBRACLI_* environment variables (optionally via .env), and command-line
// flags.
package config
