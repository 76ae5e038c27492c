package utils

import (
	"fmt"
	"sort"
	"strings"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStrings converts a loosely typed list, as decoded from JSON, into strings.
// Objects are rendered as sorted key=value pairs so equal objects compare equal.
func ToStrings(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, val := range vals {
		if obj, ok := val.(map[string]any); ok {
			out = append(out, objectString(obj))
			continue
		}
		out = append(out, ToString(val))
	}
	return out
}

func objectString(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + ToString(obj[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}
