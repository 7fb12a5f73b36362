package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-signupform/pkg/model"
)

// ErrMalformedEntry is matched by every *MalformedEntryError.
var ErrMalformedEntry = errors.New("options: malformed entry")

// MalformedEntryError describes the first entry Normalize could not map.
type MalformedEntryError struct {
	Index int
	Value any
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("options: malformed entry at index %d: %T %v", e.Index, e.Value, e.Value)
}

func (e *MalformedEntryError) Unwrap() error { return ErrMalformedEntry }

// Named is the typed form of an object entry.
type Named struct {
	Name string `json:"name"`
}

// Normalize maps each entry onto an OptionPair, preserving order. The result
// always has the same length as entries.
func Normalize(entries []any) ([]model.OptionPair, error) {
	out := make([]model.OptionPair, 0, len(entries))
	for idx, entry := range entries {
		name, ok := entryName(entry)
		if !ok {
			return nil, &MalformedEntryError{Index: idx, Value: entry}
		}
		out = append(out, model.OptionPair{Value: name, Label: name})
	}
	return out, nil
}

// Strings is Normalize for an already typed list of strings.
func Strings(values []string) []model.OptionPair {
	out := make([]model.OptionPair, 0, len(values))
	for _, v := range values {
		out = append(out, model.OptionPair{Value: v, Label: v})
	}
	return out
}

// FromJSON decodes a JSON array and normalizes its entries.
func FromJSON(raw json.RawMessage) ([]model.OptionPair, error) {
	var entries []any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("options: decode entries: %w", err)
	}
	return Normalize(entries)
}

func entryName(entry any) (string, bool) {
	switch typed := entry.(type) {
	case string:
		return typed, true
	case Named:
		return typed.Name, true
	case *Named:
		if typed == nil {
			return "", false
		}
		return typed.Name, true
	case map[string]string:
		name, ok := typed["name"]
		return name, ok
	case map[string]any:
		name, ok := typed["name"].(string)
		return name, ok
	default:
		return "", false
	}
}
