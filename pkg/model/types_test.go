package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFieldKind(t *testing.T) {
	cases := map[string]FieldKind{
		"name":         KindName,
		"  Email ":     KindEmail,
		"PASSWORD":     KindPassword,
		"occupation":   KindOccupation,
		"state":        KindState,
		"phone-number": FieldKind("phone-number"),
	}
	for raw, want := range cases {
		if got := ParseFieldKind(raw); got != want {
			t.Fatalf("ParseFieldKind(%q) = %q, want %q", raw, got, want)
		}
	}
	if ParseFieldKind("phone").Known() {
		t.Fatalf("expected phone to be an unknown kind")
	}
}

func TestFieldKindsOrderIsStable(t *testing.T) {
	want := []FieldKind{KindName, KindEmail, KindPassword, KindOccupation, KindState}
	got := FieldKinds()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}

	got[0] = "mutated"
	if FieldKinds()[0] != KindName {
		t.Fatalf("FieldKinds must return a copy")
	}
}

func TestRecordRoundTripThroughValues(t *testing.T) {
	values := Values{
		KindName:       "Ada Lovelace",
		KindEmail:      "ada@example.com",
		KindPassword:   "Passw0rd!",
		KindOccupation: "Engineer",
		KindState:      "Alabama",
	}
	record := NewRecord(values)
	if diff := cmp.Diff(values, record.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if record.Redacted().Password != "" {
		t.Fatalf("redacted record still carries a password")
	}
	if record.Password == "" {
		t.Fatalf("Redacted must not mutate the original record")
	}
}

func TestChoicesFor(t *testing.T) {
	choices := Choices{
		Occupations: []OptionPair{{Value: "Engineer", Label: "Engineer"}},
		States:      []OptionPair{{Value: "Alaska", Label: "Alaska"}},
	}
	if got := choices.For(KindState); len(got) != 1 || got[0].Value != "Alaska" {
		t.Fatalf("unexpected states: %#v", got)
	}
	if got := choices.For(KindEmail); got != nil {
		t.Fatalf("expected no options for email, got %#v", got)
	}
}
