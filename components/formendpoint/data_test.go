package formendpoint

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-signupform/pkg/formapi"
)

func TestDefaultData(t *testing.T) {
	data, err := DefaultData()
	if err != nil {
		t.Fatalf("default data: %v", err)
	}
	if len(data.Occupations) == 0 || len(data.States) == 0 {
		t.Fatalf("expected non-empty default lists")
	}
	for _, state := range data.States {
		if state.Name == "" {
			t.Fatalf("state without name: %#v", state)
		}
	}

	data.Occupations[0] = "mutated"
	again, _ := DefaultData()
	if again.Occupations[0] == "mutated" {
		t.Fatalf("DefaultData must return a copy")
	}
}

func TestLoadData_RejectsMalformed(t *testing.T) {
	cases := []string{
		`{"occupations": ["a"]}`,
		`{"occupations": [1], "states": []}`,
		`{"occupations": [], "states": ["Alabama"]}`,
	}
	for _, raw := range cases {
		_, err := LoadData(strings.NewReader(raw))
		if err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}

	_, err := LoadData(strings.NewReader(`{"occupations": [1], "states": []}`))
	if !errors.Is(err, formapi.ErrMalformedUpstream) {
		t.Fatalf("expected malformed upstream error, got %v", err)
	}
}
