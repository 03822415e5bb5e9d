// Package env reads typed values from environment variables, falling back to
// the given default when a variable is unset or cannot be parsed.
package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func Bool(env string, defaultValue bool) bool {
	v, ok := lookup(env)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func Int(env string, defaultValue int) int {
	v, ok := lookup(env)
	if !ok {
		return defaultValue
	}
	num, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return num
}

func Float64(env string, defaultValue float64) float64 {
	v, ok := lookup(env)
	if !ok {
		return defaultValue
	}
	num, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return num
}

func String(env string, defaultValue string) string {
	v, ok := lookup(env)
	if !ok {
		return defaultValue
	}
	return v
}

// Seconds reads an integer number of seconds as a duration.
func Seconds(env string, defaultValue time.Duration) time.Duration {
	v, ok := lookup(env)
	if !ok {
		return defaultValue
	}
	num, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return time.Duration(num) * time.Second
}

func lookup(env string) (string, bool) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
