package formapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
)

const (
	keyOccupations = "occupations"
	keyStates      = "states"
)

// Payload is the raw GET body split by key. Entries keep their decoded JSON
// shape until they go through the option normalizer.
type Payload struct {
	Occupations []any `json:"occupations"`
	States      []any `json:"states"`
}

// DecodePayload reads a GET body by its named keys.
func DecodePayload(raw []byte) (Payload, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Payload{}, fmt.Errorf("%w: decode body: %w", ErrMalformedUpstream, err)
	}
	if doc == nil {
		return Payload{}, fmt.Errorf("%w: body is not an object", ErrMalformedUpstream)
	}

	occupations, err := decodeList(doc, keyOccupations)
	if err != nil {
		return Payload{}, err
	}
	states, err := decodeList(doc, keyStates)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Occupations: occupations, States: states}, nil
}

func decodeList(doc map[string]json.RawMessage, key string) ([]any, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedUpstream, key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%w: %q is null", ErrMalformedUpstream, key)
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %q is not a list: %w", ErrMalformedUpstream, key, err)
	}
	return list, nil
}

// Choices normalizes both lists. Normalizer failures are reported as
// malformed upstream data naming the offending key.
func (p Payload) Choices() (model.Choices, error) {
	occupations, err := options.Normalize(p.Occupations)
	if err != nil {
		return model.Choices{}, fmt.Errorf("%w: %s: %w", ErrMalformedUpstream, keyOccupations, err)
	}
	states, err := options.Normalize(p.States)
	if err != nil {
		return model.Choices{}, fmt.Errorf("%w: %s: %w", ErrMalformedUpstream, keyStates, err)
	}
	return model.Choices{Occupations: occupations, States: states}, nil
}

// generic returns the payload as decoded JSON values for schema checks.
func (p Payload) generic() map[string]any {
	return map[string]any{
		keyOccupations: nonNil(p.Occupations),
		keyStates:      nonNil(p.States),
	}
}

func nonNil(list []any) []any {
	if list == nil {
		return []any{}
	}
	return list
}
