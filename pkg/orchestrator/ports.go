package orchestrator

import (
	"context"

	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// View is the UI collaborator. Implementations own the field values and how
// verdicts and outcomes are displayed.
type View interface {
	PopulateChoices(ctx context.Context, choices model.Choices) error
	Values(ctx context.Context) (model.Values, error)
	ShowReport(ctx context.Context, report validation.Report) error
	ShowOutcome(ctx context.Context, outcome Outcome) error
	// Reset clears every field after a successful submission.
	Reset(ctx context.Context) error
}

// Fetcher retrieves the normalized choice lists.
type Fetcher interface {
	FetchChoices(ctx context.Context) (model.Choices, error)
}

// Submitter posts a validated record and reports the response status.
type Submitter interface {
	Submit(ctx context.Context, record model.FormRecord) (formapi.SubmitResult, error)
}

var (
	_ Fetcher   = (*formapi.Client)(nil)
	_ Submitter = (*formapi.Client)(nil)
)
