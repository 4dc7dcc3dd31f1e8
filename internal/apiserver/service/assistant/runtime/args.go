package runtime

import (
	"fmt"
	"time"
)

// Tool arguments arrive as decoded JSON, so every access needs a type
// check. These helpers centralize the coercion rules: JSON numbers are
// float64, but vendors occasionally send numeric strings or integers.

func argString(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func argFloat(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func requireString(args map[string]interface{}, key string) (string, error) {
	s, ok := argString(args, key)
	if !ok {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return s, nil
}

func requireFloat(args map[string]interface{}, key string) (float64, error) {
	f, ok := argFloat(args, key)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number", key)
	}
	return f, nil
}

// timestamp layouts accepted from the model, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// argTime parses an optional ISO timestamp argument, defaulting to now.
func argTime(args map[string]interface{}, key string, now time.Time) (time.Time, error) {
	s, ok := argString(args, key)
	if !ok {
		return now, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("argument %q is not a valid timestamp: %q", key, s)
}

// argDate parses an optional YYYY-MM-DD argument, defaulting to today.
func argDate(args map[string]interface{}, key string, now time.Time) (time.Time, error) {
	s, ok := argString(args, key)
	if !ok {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("argument %q is not a valid date: %q", key, s)
	}
	return t, nil
}
