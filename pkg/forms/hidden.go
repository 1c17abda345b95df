package forms

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a bookkeeping input rendered alongside the visible fields.
// Edit forms use hidden fields to carry the target back to the receiving
// endpoint (app, model, id, field list); callers can add their own for tokens
// or version stamps.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden builds a hidden field, stringifying the value.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// MergeHiddenFields overlays fields onto a copy of base. Later entries win on
// a name collision and blank names are dropped; nil comes back when nothing
// survives so callers can store the result directly.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	merged := make(map[string]string, len(base)+len(fields))
	for name, value := range base {
		if name = strings.TrimSpace(name); name != "" {
			merged[name] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			merged[name] = field.Value
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// SortedHiddenFields flattens the hidden-field map into a name-sorted slice
// so rendered output stays stable. Blank names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	out := make([]HiddenField, 0, len(fields))
	for name, value := range fields {
		if strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, HiddenField{Name: name, Value: value})
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
