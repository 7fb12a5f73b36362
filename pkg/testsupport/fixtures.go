package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// OptionsPayload mirrors the shape of the public form endpoint's GET body.
const OptionsPayload = `{
  "occupations": ["Head of Shrubbery", "Interim Substitute Teacher", "Weapons Engineer"],
  "states": [
    {"name": "Alabama", "abbreviation": "AL"},
    {"name": "Alaska", "abbreviation": "AK"},
    {"name": "Wyoming", "abbreviation": "WY"}
  ]
}`

// Choices returns the normalized form of OptionsPayload.
func Choices() model.Choices {
	return model.Choices{
		Occupations: options.Strings([]string{"Head of Shrubbery", "Interim Substitute Teacher", "Weapons Engineer"}),
		States:      options.Strings([]string{"Alabama", "Alaska", "Wyoming"}),
	}
}

// ValidValues returns a value set that passes every field rule.
func ValidValues() model.Values {
	return model.Values{
		model.KindName:       "Ada Lovelace",
		model.KindEmail:      "ada@example.com",
		model.KindPassword:   "Analyt1cal!",
		model.KindOccupation: "Weapons Engineer",
		model.KindState:      "Alabama",
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// StubFetcher returns a fixed choice set or error and counts calls.
type StubFetcher struct {
	Choices model.Choices
	Err     error

	mu    sync.Mutex
	calls int
}

// FetchChoices implements the orchestrator fetcher port.
func (s *StubFetcher) FetchChoices(context.Context) (model.Choices, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.Choices, s.Err
}

// Calls reports how many fetches were made.
func (s *StubFetcher) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// StubSubmitter records submitted records and answers with a fixed status or
// error. A zero Status answers 201.
type StubSubmitter struct {
	Status int
	Err    error
	// Block, when set, is waited on before answering.
	Block chan struct{}

	mu      sync.Mutex
	records []model.FormRecord
}

// Submit implements the orchestrator submitter port.
func (s *StubSubmitter) Submit(ctx context.Context, record model.FormRecord) (formapi.SubmitResult, error) {
	s.mu.Lock()
	s.records = append(s.records, record)
	block := s.Block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return formapi.SubmitResult{}, ctx.Err()
		}
	}
	if s.Err != nil {
		return formapi.SubmitResult{}, s.Err
	}
	status := s.Status
	if status == 0 {
		status = 201
	}
	return formapi.SubmitResult{StatusCode: status}, nil
}

// Records returns the submitted records in order.
func (s *StubSubmitter) Records() []model.FormRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FormRecord(nil), s.records...)
}

// RecordingView keeps values in memory and records what the orchestrator
// showed it. Import it from external test packages only.
type RecordingView struct {
	Current  model.Values
	Choices  model.Choices
	Reports  []validation.Report
	Outcomes []orchestrator.Outcome
	Resets   int
}

var _ orchestrator.View = (*RecordingView)(nil)

// NewRecordingView returns a view holding values.
func NewRecordingView(values model.Values) *RecordingView {
	return &RecordingView{Current: values.Clone()}
}

func (v *RecordingView) PopulateChoices(_ context.Context, choices model.Choices) error {
	v.Choices = choices
	return nil
}

func (v *RecordingView) Values(context.Context) (model.Values, error) {
	return v.Current.Clone(), nil
}

func (v *RecordingView) ShowReport(_ context.Context, report validation.Report) error {
	v.Reports = append(v.Reports, report)
	return nil
}

func (v *RecordingView) ShowOutcome(_ context.Context, outcome orchestrator.Outcome) error {
	v.Outcomes = append(v.Outcomes, outcome)
	return nil
}

func (v *RecordingView) Reset(context.Context) error {
	v.Resets++
	v.Current = model.Values{}
	return nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
