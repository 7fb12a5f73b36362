package options

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
)

func TestNormalize_Strings(t *testing.T) {
	got, err := Normalize([]any{"A", "B"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []model.OptionPair{{Value: "A", Label: "A"}, {Value: "B", Label: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Records(t *testing.T) {
	got, err := Normalize([]any{
		map[string]any{"name": "X", "abbreviation": "XX"},
		map[string]string{"name": "Y"},
		Named{Name: "Z"},
		&Named{Name: "W"},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []model.OptionPair{
		{Value: "X", Label: "X"},
		{Value: "Y", Label: "Y"},
		{Value: "Z", Label: "Z"},
		{Value: "W", Label: "W"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MixedListKeepsOrder(t *testing.T) {
	got, err := Normalize([]any{"Engineer", map[string]any{"name": "Alabama"}, "Teacher"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if diff := cmp.Diff([]string{"Engineer", "Alabama", "Teacher"}, Values(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	got, err := Normalize(nil)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestNormalize_MalformedEntries(t *testing.T) {
	cases := map[string][]any{
		"number":           {42},
		"bool after valid": {"A", true},
		"object no name":   {map[string]any{"abbreviation": "AL"}},
		"non-string name":  {map[string]any{"name": 7}},
		"nil":              {nil},
		"nested list":      {[]any{"A"}},
		"nil named":        {(*Named)(nil)},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Normalize(entries)
			if err == nil {
				t.Fatalf("expected error, got %#v", got)
			}
			if !errors.Is(err, ErrMalformedEntry) {
				t.Fatalf("expected ErrMalformedEntry, got %v", err)
			}
			var malformed *MalformedEntryError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedEntryError, got %T", err)
			}
			if malformed.Index != len(entries)-1 {
				t.Fatalf("expected index %d, got %d", len(entries)-1, malformed.Index)
			}
		})
	}
}

func TestFromJSON(t *testing.T) {
	got, err := FromJSON(json.RawMessage(`[{"name":"Alabama","abbreviation":"AL"},"Guam"]`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if diff := cmp.Diff([]string{"Alabama", "Guam"}, Labels(got)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromJSON(json.RawMessage(`[1,2]`)); !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("expected malformed entry error, got %v", err)
	}
	if _, err := FromJSON(json.RawMessage(`{"name":"x"}`)); err == nil || errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
