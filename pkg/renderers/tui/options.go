package tui

import "github.com/goliatone/go-signupform/pkg/model"

// Theme captures optional prefixes the view applies when printing messages.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// Option configures the terminal view.
type Option func(*View)

// WithPromptDriver overrides the prompt driver used by the view.
func WithPromptDriver(driver PromptDriver) Option {
	return func(v *View) {
		if driver != nil {
			v.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(v *View) {
		v.theme = theme
	}
}

// WithPrompts overrides the prompt message for individual fields.
func WithPrompts(prompts map[model.FieldKind]string) Option {
	return func(v *View) {
		for kind, msg := range prompts {
			if msg != "" {
				v.prompts[kind] = msg
			}
		}
	}
}

// WithInlineValidation runs the field rules while the user types, so survey
// re-prompts until each text field passes.
func WithInlineValidation(enabled bool) Option {
	return func(v *View) {
		v.inline = enabled
	}
}

// WithPageSize sets how many options a select prompt shows at once.
func WithPageSize(size int) Option {
	return func(v *View) {
		if size > 0 {
			v.pageSize = size
		}
	}
}
