package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
)

func validValues() model.Values {
	return model.Values{
		model.KindName:       "Ada Lovelace",
		model.KindEmail:      "ada@example.com",
		model.KindPassword:   "Passw0rd!",
		model.KindOccupation: "Engineer",
		model.KindState:      "Alabama",
	}
}

func TestValidateAll_Valid(t *testing.T) {
	report := ValidateAll(validValues())
	if !report.Valid() {
		t.Fatalf("expected valid report, got %#v", report.Invalid())
	}
	if len(report.Verdicts) != len(model.FieldKinds()) {
		t.Fatalf("expected one verdict per field, got %d", len(report.Verdicts))
	}
	if report.Messages() != nil {
		t.Fatalf("expected no messages for a valid report")
	}
	if got := report.Result(); !got.Valid || len(got.Issues) != 0 {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestValidateAll_CollectsEveryFailure(t *testing.T) {
	values := validValues()
	values[model.KindName] = "Ada"
	values[model.KindPassword] = "short"
	delete(values, model.KindState)

	report := ValidateAll(values)
	if report.Valid() {
		t.Fatalf("expected invalid report")
	}

	want := map[string]string{
		"name":     ReasonName,
		"password": ReasonPasswordTooShort,
		"state":    ReasonState,
	}
	if diff := cmp.Diff(want, report.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	wantIssues := []Issue{
		{Field: "name", Code: CodeNameTooShort, Message: ReasonName},
		{Field: "password", Code: CodePasswordTooShort, Message: ReasonPasswordTooShort},
		{Field: "state", Code: CodeStateRequired, Message: ReasonState},
	}
	if diff := cmp.Diff(wantIssues, report.Result().Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	if v, ok := report.Verdict(model.KindEmail); !ok || !v.Valid {
		t.Fatalf("email verdict should be present and valid, got %#v", v)
	}
}

func TestCheckRecord_ReportsMissingFields(t *testing.T) {
	record := model.NewRecord(validValues())
	if issues := CheckRecord(record); issues != nil {
		t.Fatalf("expected complete record to pass, got %#v", issues)
	}

	record.Email = ""
	record.State = ""
	want := []Issue{
		{Field: "email", Code: "required", Message: "email is required"},
		{Field: "state", Code: "required", Message: "state is required"},
	}
	if diff := cmp.Diff(want, CheckRecord(record)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckSubmission_AppliesFieldRules(t *testing.T) {
	record := model.NewRecord(validValues())
	record.Password = "password"

	issues := CheckSubmission(record)
	if len(issues) != 1 || issues[0].Code != CodePasswordComposition {
		t.Fatalf("unexpected issues %#v", issues)
	}
}

func TestCheckSubmission_ReportsBadEmailThroughTag(t *testing.T) {
	if err := recordValidator().Var("x@y.co", EmailTag); err != nil {
		t.Fatalf("expected %s tag to accept a valid address, got %v", EmailTag, err)
	}
	if err := recordValidator().Var("x@y", EmailTag); err == nil {
		t.Fatalf("expected %s tag to reject an address without a TLD", EmailTag)
	}

	record := model.NewRecord(validValues())
	record.Email = "ada@"

	want := []Issue{{Field: "email", Code: CodeEmailInvalid, Message: ReasonEmail}}
	if diff := cmp.Diff(want, CheckSubmission(record)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if issues := CheckRecord(record); issues != nil {
		t.Fatalf("presence check must not apply the email rule, got %#v", issues)
	}
}
