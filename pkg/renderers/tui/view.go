package tui

import (
	"context"
	"errors"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/validation"
)

const passwordKeepHelp = "Leave empty to keep the password entered previously."

// View renders the registration form as a sequence of terminal prompts. Values
// entered in one attempt become the defaults of the next until Reset.
type View struct {
	driver   PromptDriver
	theme    Theme
	prompts  map[model.FieldKind]string
	inline   bool
	pageSize int

	choices model.Choices
	values  model.Values
}

var _ orchestrator.View = (*View)(nil)

// NewView builds a terminal view. Without WithPromptDriver the survey driver
// writing to stdout is used.
func NewView(opts ...Option) *View {
	v := &View{
		prompts: map[model.FieldKind]string{
			model.KindName:       "Full name",
			model.KindEmail:      "Email",
			model.KindPassword:   "Password",
			model.KindOccupation: "Occupation",
			model.KindState:      "State",
		},
		pageSize: 10,
		values:   model.Values{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	if v.driver == nil {
		v.driver = NewSurveyDriver(nil)
	}
	return v
}

// PopulateChoices stores the option lists for the select prompts.
func (v *View) PopulateChoices(_ context.Context, choices model.Choices) error {
	v.choices = choices
	return nil
}

// Values prompts for every field in form order.
func (v *View) Values(ctx context.Context) (model.Values, error) {
	for _, kind := range model.FieldKinds() {
		var (
			value string
			err   error
		)
		switch {
		case kind == model.KindPassword:
			value, err = v.askPassword(ctx)
		case kind.IsChoice():
			value, err = v.askChoice(ctx, kind)
		default:
			value, err = v.driver.Input(ctx, InputConfig{
				Message:   v.prompts[kind],
				Default:   v.values.Get(kind),
				Validator: v.validator(kind),
			})
		}
		if err != nil {
			return nil, err
		}
		v.values[kind] = value
	}
	return v.values.Clone(), nil
}

func (v *View) askPassword(ctx context.Context) (string, error) {
	previous := v.values.Get(model.KindPassword)
	cfg := InputConfig{Message: v.prompts[model.KindPassword]}
	if previous != "" {
		cfg.Help = passwordKeepHelp
	} else {
		cfg.Validator = v.validator(model.KindPassword)
	}
	value, err := v.driver.Password(ctx, cfg)
	if err != nil {
		return "", err
	}
	if value == "" {
		return previous, nil
	}
	return value, nil
}

func (v *View) askChoice(ctx context.Context, kind model.FieldKind) (string, error) {
	pairs := v.choices.For(kind)
	if len(pairs) == 0 {
		return "", v.driver.Info(ctx, v.theme.ErrorPrefix+v.prompts[kind]+": no options available")
	}
	labels := options.Labels(pairs)
	for i, label := range labels {
		labels[i] = options.PlainLabel(label)
	}
	idx, err := v.driver.Select(ctx, SelectConfig{
		Message:      v.prompts[kind],
		Options:      labels,
		DefaultIndex: options.IndexOf(pairs, v.values.Get(kind)),
		PageSize:     v.pageSize,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(pairs) {
		return "", nil
	}
	return pairs[idx].Value, nil
}

func (v *View) validator(kind model.FieldKind) func(string) error {
	if !v.inline {
		return nil
	}
	return func(raw string) error {
		if verdict := validation.Validate(kind, raw); !verdict.Valid {
			return errors.New(verdict.Reason)
		}
		return nil
	}
}

// ShowReport prints one line per invalid field.
func (v *View) ShowReport(ctx context.Context, report validation.Report) error {
	for _, fv := range report.Invalid() {
		if err := v.driver.Info(ctx, v.theme.ErrorPrefix+v.prompts[fv.Kind]+": "+fv.Verdict.Reason); err != nil {
			return err
		}
	}
	return nil
}

// ShowOutcome prints the attempt outcome.
func (v *View) ShowOutcome(ctx context.Context, outcome orchestrator.Outcome) error {
	prefix := v.theme.ErrorPrefix
	switch outcome.Kind {
	case orchestrator.OutcomeSuccess:
		prefix = v.theme.SuccessPrefix
	case orchestrator.OutcomeInvalid:
		prefix = v.theme.InfoPrefix
	}
	return v.driver.Info(ctx, prefix+outcome.Message)
}

// Reset forgets every entered value.
func (v *View) Reset(context.Context) error {
	v.values = model.Values{}
	return nil
}

// Again asks whether to start another attempt.
func (v *View) Again(ctx context.Context, message string) (bool, error) {
	return v.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: true})
}
