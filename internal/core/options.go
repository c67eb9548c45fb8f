package core

import "strconv"

// The helpers below read flag-style key/value pairs handed to a Factory.
// Missing or malformed values leave the default in place.

// PositiveInt overwrites *dst with cfg[key] when it parses to a value > 0.
func PositiveInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

// Int64 overwrites *dst with cfg[key] when it parses.
func Int64(cfg map[string]string, key string, dst *int64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

// NonNegativeFloat overwrites *dst with cfg[key] when it parses to a value >= 0.
func NonNegativeFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

// Bool overwrites *dst with cfg[key] when it parses.
func Bool(cfg map[string]string, key string, dst *bool) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// String overwrites *dst with cfg[key] when it is non-empty.
func String(cfg map[string]string, key string, dst *string) {
	if v, ok := cfg[key]; ok && v != "" {
		*dst = v
	}
}
