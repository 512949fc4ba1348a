package utils

import (
	"strconv"
	"strings"
)

// ParseValue turns a CSV cell into an int, a float64 or the trimmed string
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// IsNumeric reports whether v is one of the numeric kinds ParseValue produces.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int64, float32, float64:
		return true
	}
	return false
}
