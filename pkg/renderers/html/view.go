package html

import (
	"context"
	"net/url"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/validation"
)

var fieldLabels = map[model.FieldKind]string{
	model.KindName:       "Full Name",
	model.KindEmail:      "Email",
	model.KindPassword:   "Password",
	model.KindOccupation: "Occupation",
	model.KindState:      "State",
}

var inputTypes = map[model.FieldKind]string{
	model.KindName:     "text",
	model.KindEmail:    "email",
	model.KindPassword: "password",
}

// FormView adapts one HTTP request to the orchestrator View port. Posted
// values are read from the form; the page is built from whatever the
// orchestrator showed.
type FormView struct {
	values  model.Values
	choices model.Choices
	report  *validation.Report
	outcome *orchestrator.Outcome
	loadErr string
}

var _ orchestrator.View = (*FormView)(nil)

// NewFormView reads the posted field values from form. A nil form yields an
// empty view for GET requests.
func NewFormView(form url.Values) *FormView {
	values := model.Values{}
	for _, kind := range model.FieldKinds() {
		if form.Has(kind.String()) {
			values[kind] = form.Get(kind.String())
		}
	}
	return &FormView{values: values}
}

func (v *FormView) PopulateChoices(_ context.Context, choices model.Choices) error {
	v.choices = choices
	return nil
}

func (v *FormView) Values(context.Context) (model.Values, error) {
	return v.values.Clone(), nil
}

func (v *FormView) ShowReport(_ context.Context, report validation.Report) error {
	v.report = &report
	return nil
}

func (v *FormView) ShowOutcome(_ context.Context, outcome orchestrator.Outcome) error {
	if outcome.Stage == orchestrator.StageLoad {
		v.loadErr = outcome.Message
		return nil
	}
	v.outcome = &outcome
	return nil
}

func (v *FormView) Reset(context.Context) error {
	v.values = model.Values{}
	v.report = nil
	return nil
}

// Page builds the template data. The password is never echoed back.
func (v *FormView) Page(action string) Page {
	page := Page{Action: action, LoadError: v.loadErr}
	if v.outcome != nil {
		page.Outcome = &Banner{Kind: string(v.outcome.Kind), Message: v.outcome.Message}
	}

	for _, kind := range model.FieldKinds() {
		field := Field{
			Name:  kind.String(),
			Label: fieldLabels[kind],
			Type:  inputTypes[kind],
		}
		if kind != model.KindPassword {
			field.Value = v.values.Get(kind)
		}
		if v.report != nil {
			if verdict, ok := v.report.Verdict(kind); ok && !verdict.Valid {
				field.Error = verdict.Reason
			}
		}
		if kind.IsChoice() {
			field.Choice = true
			selected := v.values.Get(kind)
			for _, pair := range v.choices.For(kind) {
				field.Options = append(field.Options, Choice{
					Value:    pair.Value,
					Label:    options.PlainLabel(pair.Label),
					Selected: pair.Value == selected,
				})
			}
		}
		page.Fields = append(page.Fields, field)
	}
	return page
}
