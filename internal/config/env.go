// Package config resolves defaults that may be overridden from the environment.
package config

import (
	"os"
	"strings"
)

const (
	// TUIEnv selects the interactive view when set to a truthy value.
	TUIEnv = "WAIT_UNTIL_TUI"
)

// Config holds the flag defaults derived from the environment.
type Config struct {
	TUI bool
}

// FromEnv reads every supported variable. Unset or blank variables keep the
// built-in defaults.
func FromEnv() Config {
	return Config{
		TUI: lookupBool(TUIEnv, false),
	}
}

func lookupBool(name string, fallback bool) bool {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}

	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
