package validation

import (
	"github.com/goliatone/go-signupform/pkg/model"
)

// FieldVerdict pairs a verdict with the field it was produced for.
type FieldVerdict struct {
	Kind    model.FieldKind `json:"field"`
	Verdict model.Verdict   `json:"verdict"`
}

// Report collects one verdict per recognised field in form order.
type Report struct {
	Verdicts []FieldVerdict `json:"verdicts"`
}

// ValidateAll validates every field of the form. Missing values are checked as
// empty strings; no field short-circuits the others.
func ValidateAll(values model.Values) Report {
	kinds := model.FieldKinds()
	report := Report{Verdicts: make([]FieldVerdict, 0, len(kinds))}
	for _, kind := range kinds {
		report.Verdicts = append(report.Verdicts, FieldVerdict{
			Kind:    kind,
			Verdict: Validate(kind, values.Get(kind)),
		})
	}
	return report
}

// Valid reports whether every verdict passed.
func (r Report) Valid() bool {
	for _, v := range r.Verdicts {
		if !v.Verdict.Valid {
			return false
		}
	}
	return true
}

// Verdict returns the verdict recorded for kind.
func (r Report) Verdict(kind model.FieldKind) (model.Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.Kind == kind {
			return v.Verdict, true
		}
	}
	return model.Verdict{}, false
}

// Invalid returns the failing verdicts in form order.
func (r Report) Invalid() []FieldVerdict {
	var out []FieldVerdict
	for _, v := range r.Verdicts {
		if !v.Verdict.Valid {
			out = append(out, v)
		}
	}
	return out
}

// Messages maps field names to their failure reason. Valid fields are
// omitted; nil when the report is valid.
func (r Report) Messages() map[string]string {
	invalid := r.Invalid()
	if len(invalid) == 0 {
		return nil
	}
	out := make(map[string]string, len(invalid))
	for _, v := range invalid {
		out[v.Kind.String()] = v.Verdict.Reason
	}
	return out
}

// Issue is a field-level problem in the shape returned over HTTP.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Result is the JSON envelope for a validation pass.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Result converts the report into its HTTP representation.
func (r Report) Result() Result {
	result := Result{Valid: true}
	for _, v := range r.Invalid() {
		result.Valid = false
		result.Issues = append(result.Issues, Issue{
			Field:   v.Kind.String(),
			Code:    v.Verdict.Code,
			Message: v.Verdict.Reason,
		})
	}
	return result
}
