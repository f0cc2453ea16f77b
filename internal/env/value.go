package env

import (
	"os"
	"strconv"
	"strings"
)

// lookup finds a variable with a case-insensitive key, so CMDR_X and cmdr_x are the same setting.
func lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		k, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		if strings.EqualFold(k, key) {
			return val, true
		}
	}
	return "", false
}

// IsSet reports whether a variable is set to something other than whitespace.
func IsSet(key string) bool {
	val, ok := lookup(key)
	return ok && len(strings.TrimSpace(val)) > 0
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	trueVals  = []string{"1", "yes", "true", "on"}
	falseVals = []string{"0", "no", "false", "off"}
)

// Bool interprets an environment variable as a boolean.
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range trueVals {
		if sval == v {
			return true
		}
	}
	for _, v := range falseVals {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

// Int will attempt to interpret an environment variable as an integer, returning the defaultVal if the environment variable isn't found or can't be a valid integer.
func Int(key string, defaultVal int64) int64 {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}
