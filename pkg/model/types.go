package model

import "strings"

// FieldKind identifies one of the inputs of the registration form.
type FieldKind string

const (
	KindName       FieldKind = "name"
	KindEmail      FieldKind = "email"
	KindPassword   FieldKind = "password"
	KindOccupation FieldKind = "occupation"
	KindState      FieldKind = "state"
)

var fieldKinds = []FieldKind{KindName, KindEmail, KindPassword, KindOccupation, KindState}

// FieldKinds returns the recognised kinds in form order.
func FieldKinds() []FieldKind {
	return append([]FieldKind(nil), fieldKinds...)
}

// ParseFieldKind maps a raw field identifier onto a FieldKind. Identifiers are
// trimmed and lower-cased; anything outside the known set is returned as an
// unknown kind rather than rejected.
func ParseFieldKind(raw string) FieldKind {
	return FieldKind(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether k is one of the five form fields.
func (k FieldKind) Known() bool {
	switch k {
	case KindName, KindEmail, KindPassword, KindOccupation, KindState:
		return true
	default:
		return false
	}
}

// IsChoice reports whether the field is backed by a choice control.
func (k FieldKind) IsChoice() bool {
	return k == KindOccupation || k == KindState
}

func (k FieldKind) String() string {
	return string(k)
}

// Values holds raw, unvalidated field values keyed by kind.
type Values map[FieldKind]string

// Get returns the raw value for kind, or "" when the UI did not supply one.
func (v Values) Get(kind FieldKind) string {
	if v == nil {
		return ""
	}
	return v[kind]
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// OptionPair is a single entry of a choice control. Value and Label are always
// identical for the form endpoint's data.
type OptionPair struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Choices groups the normalized option lists for both choice controls.
type Choices struct {
	Occupations []OptionPair `json:"occupations"`
	States      []OptionPair `json:"states"`
}

// For returns the option list backing the given choice field.
func (c Choices) For(kind FieldKind) []OptionPair {
	switch kind {
	case KindOccupation:
		return c.Occupations
	case KindState:
		return c.States
	default:
		return nil
	}
}

// Verdict is the validation outcome for one field. Reason is a human readable
// message and Code a stable identifier; both are empty when Valid is true.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Code   string `json:"code,omitempty"`
}

// Pass is the verdict for a valid field.
func Pass() Verdict {
	return Verdict{Valid: true}
}

// Fail builds an invalid verdict.
func Fail(code, reason string) Verdict {
	return Verdict{Code: code, Reason: reason}
}
