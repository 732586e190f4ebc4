package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WizardFacts is the raw bag of answers a user has given across the wizard.
// There is no fixed schema: the frontend has written both flat and nested
// variants of the same logical field over time, so every read goes through an
// ordered fallback chain. Keys containing "." are resolved as nested paths.
type WizardFacts map[string]interface{}

// Value implements driver.Valuer for JSONB
func (f WizardFacts) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(WizardFacts{})
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB
func (f *WizardFacts) Scan(value interface{}) error {
	if value == nil {
		*f = make(WizardFacts)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*f = make(WizardFacts)
		return nil
	}

	if len(bytes) == 0 {
		*f = make(WizardFacts)
		return nil
	}

	return json.Unmarshal(bytes, f)
}

// Merge overlays answers onto the bag, replacing existing keys
func (f WizardFacts) Merge(answers WizardFacts) {
	for k, v := range answers {
		f[k] = v
	}
}

// Lookup resolves a single key. A key containing "." is walked as a nested
// path through intermediate maps (e.g. "property.address_line1"); a literal
// key always wins over a path interpretation.
func (f WizardFacts) Lookup(key string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	if v, ok := f[key]; ok && v != nil {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	parts := strings.Split(key, ".")
	var current interface{} = map[string]interface{}(f)
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

// String returns the first non-empty string value among the fallback keys.
// Absent fields are empty strings, never an error; the validator decides
// whether absence matters.
func (f WizardFacts) String(keys ...string) string {
	for _, key := range keys {
		v, ok := f.Lookup(key)
		if !ok {
			continue
		}
		if s := scalarToString(v); s != "" {
			return s
		}
	}
	return ""
}

// StringSlice returns the first non-empty list value among the fallback keys.
// A bare scalar is treated as a single-element list.
func (f WizardFacts) StringSlice(keys ...string) []string {
	for _, key := range keys {
		v, ok := f.Lookup(key)
		if !ok {
			continue
		}
		switch list := v.(type) {
		case []interface{}:
			out := make([]string, 0, len(list))
			for _, item := range list {
				if s := scalarToString(item); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case []string:
			if len(list) > 0 {
				return list
			}
		default:
			if s := scalarToString(v); s != "" {
				return []string{s}
			}
		}
	}
	return nil
}

// Bool returns a tri-state answer: nil when the question was never answered,
// otherwise the parsed value. "yes"/"no" string answers are accepted because
// older wizard steps saved them that way.
func (f WizardFacts) Bool(keys ...string) *bool {
	for _, key := range keys {
		v, ok := f.Lookup(key)
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			result := b
			return &result
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true", "yes", "y":
				result := true
				return &result
			case "false", "no", "n":
				result := false
				return &result
			}
		}
	}
	return nil
}

// Decimal parses the first present money value among the fallback keys.
// Currency symbols and thousands separators are stripped before parsing.
func (f WizardFacts) Decimal(keys ...string) *decimal.Decimal {
	for _, key := range keys {
		v, ok := f.Lookup(key)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			d := decimal.NewFromFloat(n)
			return &d
		case int:
			d := decimal.NewFromInt(int64(n))
			return &d
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return &d
			}
		case string:
			cleaned := strings.TrimSpace(n)
			cleaned = strings.TrimPrefix(cleaned, "£")
			cleaned = strings.ReplaceAll(cleaned, ",", "")
			if cleaned == "" {
				continue
			}
			if d, err := decimal.NewFromString(cleaned); err == nil {
				return &d
			}
		}
	}
	return nil
}

// addressPartSuffixes is the order address fragments are joined in when no
// single flat address value exists.
var addressPartSuffixes = []string{"_line1", "_line2", "_town", "_city", "_county", "_postcode"}

// Address resolves an address through the fallback chain: each base key is
// first tried as a whole value (flat or dotted-nested), then as a prefix for
// part keys (base_line1, base_line2, base_town, base_city, base_county,
// base_postcode). Parts are newline-joined, skipping empty ones.
func (f WizardFacts) Address(bases ...string) string {
	for _, base := range bases {
		if v := f.String(base); v != "" {
			return v
		}
	}
	for _, base := range bases {
		var lines []string
		for _, suffix := range addressPartSuffixes {
			if part := f.String(base + suffix); part != "" {
				lines = append(lines, part)
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}
	return ""
}

func scalarToString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	}
	return ""
}
