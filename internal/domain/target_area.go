package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// TargetArea is the body area an exercise works on. Stored documents use two
// shapes for it, a single string or a list of strings, and both are kept as is.
type TargetArea struct {
	areas    []string
	multiple bool
}

// SingleArea returns a TargetArea holding one area.
func SingleArea(area string) TargetArea {
	return TargetArea{areas: []string{area}}
}

// MultipleAreas returns a list-shaped TargetArea.
func MultipleAreas(areas ...string) TargetArea {
	return TargetArea{areas: slices.Clone(areas), multiple: true}
}

// ParseTargetArea reads a path or query value. A comma separated value
// becomes a list, anything else a single area.
func ParseTargetArea(raw string) TargetArea {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TargetArea{}
	}
	if !strings.Contains(raw, ",") {
		return SingleArea(raw)
	}
	var areas []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			areas = append(areas, part)
		}
	}
	return MultipleAreas(areas...)
}

// IsMultiple reports whether the value has the list shape.
func (t TargetArea) IsMultiple() bool { return t.multiple }

// IsZero reports whether no area is set.
func (t TargetArea) IsZero() bool { return len(t.areas) == 0 }

// Areas returns the areas in stored order.
func (t TargetArea) Areas() []string { return slices.Clone(t.areas) }

// Matches reports whether t shares at least one area with query.
// For two single values this is plain equality.
func (t TargetArea) Matches(query TargetArea) bool {
	for _, area := range t.areas {
		if slices.Contains(query.areas, area) {
			return true
		}
	}
	return false
}

func (t TargetArea) String() string {
	if t.multiple {
		return "[" + strings.Join(t.areas, ",") + "]"
	}
	if len(t.areas) == 0 {
		return ""
	}
	return t.areas[0]
}

// MarshalJSON writes the shape the value was created with.
func (t TargetArea) MarshalJSON() ([]byte, error) {
	switch {
	case t.multiple:
		areas := t.areas
		if areas == nil {
			areas = []string{}
		}
		return json.Marshal(areas)
	case len(t.areas) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(t.areas[0])
	}
}

// UnmarshalJSON accepts a string, a list of strings or null.
func (t *TargetArea) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = TargetArea{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var area string
		if err := json.Unmarshal(data, &area); err != nil {
			return err
		}
		*t = SingleArea(area)
		return nil
	case len(data) > 0 && data[0] == '[':
		var areas []string
		if err := json.Unmarshal(data, &areas); err != nil {
			return fmt.Errorf("targetArea: %w", err)
		}
		*t = MultipleAreas(areas...)
		return nil
	default:
		return fmt.Errorf("targetArea: expected string or array, got %s", data)
	}
}
