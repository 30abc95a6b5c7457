package check

import (
	"fmt"
	"strings"
)

// Settings is a check's resolved option block. Keys are normalized to
// snake_case internally; lookups accept either hyphen-case or snake_case
// spellings of the same logical key.
type Settings map[string]any

// NormalizeKey maps both option key spellings onto the canonical snake_case
// form: "spaces-per-tab" and "spaces_per_tab" address the same value.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// NewSettings builds Settings from a raw decoded option map. When both the
// hyphen-case and snake_case spellings of a key are present, the hyphen form
// takes precedence.
func NewSettings(raw map[string]any) Settings {
	if len(raw) == 0 {
		return Settings{}
	}

	s := make(Settings, len(raw))
	// Snake spellings first, hyphen spellings overlaid second so they win.
	for k, v := range raw {
		if !strings.Contains(k, "-") {
			s[NormalizeKey(k)] = v
		}
	}
	for k, v := range raw {
		if strings.Contains(k, "-") {
			s[NormalizeKey(k)] = v
		}
	}
	return s
}

// Get returns the raw value for a key under either spelling.
func (s Settings) Get(key string) (any, bool) {
	v, ok := s[NormalizeKey(key)]
	return v, ok
}

// Has reports whether the key is present under either spelling.
func (s Settings) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Int returns an integer option, or the default. Float values from JSON or
// YAML decoding are accepted when they are whole numbers.
func (s Settings) Int(key string, def int) int {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	n, ok := asInt(v)
	if !ok {
		return def
	}
	return n
}

// String returns a string option, or the default.
func (s Settings) String(key string, def string) string {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	str, ok := v.(string)
	if !ok {
		return def
	}
	return str
}

// Bool returns a boolean option, or the default.
func (s Settings) Bool(key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// Strings returns a string-slice option, or the default. Decoders commonly
// produce []any, which is converted element-wise.
func (s Settings) Strings(key string, def []string) []string {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			str, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, str)
		}
		return out
	default:
		return def
	}
}

// OptionError reports a malformed value for a known option key. It is a
// configuration error: the engine surfaces it before any document is linted.
type OptionError struct {
	CheckID string
	Key     string
	Value   any
	Want    string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("check %s: option %q: expected %s, got %T (%v)",
		e.CheckID, e.Key, e.Want, e.Value, e.Value)
}

// ExpectInt validates that key, if present, holds an integer.
func (s Settings) ExpectInt(checkID, key string) error {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	if _, ok := asInt(v); !ok {
		return &OptionError{CheckID: checkID, Key: key, Value: v, Want: "integer"}
	}
	return nil
}

// ExpectBool validates that key, if present, holds a boolean.
func (s Settings) ExpectBool(checkID, key string) error {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	if _, ok := v.(bool); !ok {
		return &OptionError{CheckID: checkID, Key: key, Value: v, Want: "boolean"}
	}
	return nil
}

// ExpectString validates that key, if present, holds a string.
func (s Settings) ExpectString(checkID, key string) error {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	if _, ok := v.(string); !ok {
		return &OptionError{CheckID: checkID, Key: key, Value: v, Want: "string"}
	}
	return nil
}

// asInt converts decoder-produced numeric types to int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
