package options

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Values returns the option values in order.
func Values(pairs []model.OptionPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return out
}

// Labels returns the option labels in order, falling back to the value when a
// label is empty.
func Labels(pairs []model.OptionPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		if p.Label != "" {
			out[i] = p.Label
		} else {
			out[i] = p.Value
		}
	}
	return out
}

// IndexOf returns the position of value in pairs, or -1.
func IndexOf(pairs []model.OptionPair, value string) int {
	if value == "" {
		return -1
	}
	for i, p := range pairs {
		if p.Value == value {
			return i
		}
	}
	return -1
}

// Contains reports whether value is one of the option values.
func Contains(pairs []model.OptionPair, value string) bool {
	return IndexOf(pairs, value) >= 0
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// PlainLabel strips any markup from a remote label so it can be printed on a
// terminal. Plain text passes through unchanged.
func PlainLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "<>&") {
		return trimmed
	}
	cleaned := labelSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
