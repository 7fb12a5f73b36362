package html

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/validation"
)

func sampleChoices() model.Choices {
	return model.Choices{
		Occupations: options.Strings([]string{"Engineer", "Teacher"}),
		States:      options.Strings([]string{"Alabama", "Alaska"}),
	}
}

func render(t *testing.T, view *FormView, opts ...Option) string {
	t.Helper()
	renderer, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf bytes.Buffer
	out, err := renderer.Render(view.Page("/"), &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != buf.String() {
		t.Fatalf("writer and result differ")
	}
	return out
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRender_EmptyForm(t *testing.T) {
	view := NewFormView(nil)
	_ = view.PopulateChoices(context.Background(), sampleChoices())

	out := render(t, view, WithTitle("Join us"))
	assertContains(t, out,
		"<title>Join us</title>",
		`<form method="post" action="/" novalidate>`,
		`<input id="name" name="name" type="text" value="">`,
		`<input id="email" name="email" type="email" value="">`,
		`<input id="password" name="password" type="password" value="">`,
		`<select id="occupation" name="occupation">`,
		`<option value="Engineer">Engineer</option>`,
		`<option value="Alaska">Alaska</option>`,
		`<button type="submit">Submit</button>`,
	)
	if strings.Contains(out, "error-message") || strings.Contains(out, "outcome") {
		t.Fatalf("fresh form must not show messages:\n%s", out)
	}
}

func TestRender_InvalidSubmission(t *testing.T) {
	form := url.Values{
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"password":   {"secret-Pa55"},
		"occupation": {"Teacher"},
		"state":      {""},
	}
	view := NewFormView(form)
	ctx := context.Background()
	_ = view.PopulateChoices(ctx, sampleChoices())

	values, _ := view.Values(ctx)
	_ = view.ShowReport(ctx, validation.ValidateAll(values))
	_ = view.ShowOutcome(ctx, orchestrator.Outcome{
		Kind:    orchestrator.OutcomeInvalid,
		Stage:   orchestrator.StageSubmit,
		Message: orchestrator.DefaultMessages().Invalid,
	})

	out := render(t, view)
	assertContains(t, out,
		`<div class="outcome outcome-invalid" role="status">Please, make sure all of the fields are valid.</div>`,
		`<div class="field field-invalid">`,
		`<p class="error-message">Please, enter a valid name</p>`,
		`<p class="error-message">Please, select your state</p>`,
		`value="Ada"`,
		`<option value="Teacher" selected>Teacher</option>`,
	)
	if strings.Contains(out, "secret-Pa55") {
		t.Fatalf("password must not be echoed:\n%s", out)
	}
}

func TestRender_EscapesValues(t *testing.T) {
	view := NewFormView(url.Values{"name": {`"><script>alert(1)</script>`}})
	out := render(t, view)
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected escaped value:\n%s", out)
	}
}

func TestRender_LoadFailure(t *testing.T) {
	view := NewFormView(nil)
	_ = view.ShowOutcome(context.Background(), orchestrator.Outcome{
		Kind:    orchestrator.OutcomeFailure,
		Stage:   orchestrator.StageLoad,
		Message: "The form options could not be loaded.",
	})

	out := render(t, view)
	assertContains(t, out,
		`<div class="outcome outcome-failure" role="alert">The form options could not be loaded.</div>`,
		`<select id="state" name="state">`,
	)
}

func TestFormView_ResetClearsValues(t *testing.T) {
	view := NewFormView(url.Values{"name": {"Ada Lovelace"}})
	ctx := context.Background()
	if err := view.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	values, _ := view.Values(ctx)
	if len(values) != 0 {
		t.Fatalf("expected no values after reset, got %#v", values)
	}
}

func TestNew_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"registration.tpl": {Data: []byte(`{{ title }}|{% for field in fields %}{{ field.name }};{% endfor %}`)},
	}
	out := render(t, NewFormView(nil), WithFS(files), WithTitle("T"))
	if out != "T|name;email;password;occupation;state;" {
		t.Fatalf("unexpected custom render %q", out)
	}
}
