package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/goliatone/go-signupform/internal/logger"
	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// ErrBusy is returned when Load or Submit is called while another call is in
// flight on the same Orchestrator.
var ErrBusy = errors.New("orchestrator: a request is already in flight")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithFetcher injects the source of the choice lists.
func WithFetcher(fetcher Fetcher) Option {
	return func(o *Orchestrator) {
		o.fetcher = fetcher
	}
}

// WithSubmitter injects the record submitter.
func WithSubmitter(submitter Submitter) Option {
	return func(o *Orchestrator) {
		o.submitter = submitter
	}
}

// WithClient uses a single formapi client as both fetcher and submitter.
func WithClient(client *formapi.Client) Option {
	return func(o *Orchestrator) {
		if client == nil {
			return
		}
		o.fetcher = client
		o.submitter = client
	}
}

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = log
	}
}

// WithMessages overrides outcome text. Empty fields keep their defaults.
func WithMessages(messages Messages) Option {
	return func(o *Orchestrator) {
		o.messages = messages
	}
}

// Orchestrator coordinates loading, validation and submission for one form.
// When no fetcher or submitter is injected a formapi client pointing at the
// public endpoint is created.
type Orchestrator struct {
	fetcher         Fetcher
	submitter       Submitter
	logger          *slog.Logger
	messages        Messages
	initialiseErr   error
	defaultsApplied bool
	inFlight        atomic.Bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsApplied = true
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	o.messages = o.messages.withDefaults()
	if o.fetcher != nil && o.submitter != nil {
		return
	}
	client, err := formapi.New(formapi.WithLogger(o.logger))
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default client: %w", err)
		return
	}
	if o.fetcher == nil {
		o.fetcher = client
	}
	if o.submitter == nil {
		o.submitter = client
	}
}

// Messages returns the outcome text in use.
func (o *Orchestrator) Messages() Messages {
	return o.messages
}

// Load fetches the choice lists once and hands them to the view. Malformed
// upstream data and network failures are shown as a load failure outcome and
// returned wrapped; the choice lists are left untouched in that case.
func (o *Orchestrator) Load(ctx context.Context, view View) error {
	if err := o.begin(ctx, view); err != nil {
		return err
	}
	defer o.inFlight.Store(false)

	choices, err := o.fetcher.FetchChoices(ctx)
	if err != nil {
		o.logger.Error("load choices failed", "error", err)
		failure := Outcome{Kind: OutcomeFailure, Stage: StageLoad, Message: o.messages.LoadFailure, Err: err}
		if showErr := view.ShowOutcome(ctx, failure); showErr != nil {
			return fmt.Errorf("orchestrator: load choices: %w", errors.Join(err, showErr))
		}
		return fmt.Errorf("orchestrator: load choices: %w", err)
	}
	o.logger.Debug("choices loaded", "occupations", len(choices.Occupations), "states", len(choices.States))

	if err := view.PopulateChoices(ctx, choices); err != nil {
		return fmt.Errorf("orchestrator: populate choices: %w", err)
	}
	return nil
}

// Submit runs one attempt: every field is validated and the report shown; a
// POST is made only when all fields are valid. A 201 response resets the view.
// Any other status or a transport error yields OutcomeFailure and leaves the
// values in place. The returned error is reserved for view failures, ErrBusy
// and a cancelled context.
func (o *Orchestrator) Submit(ctx context.Context, view View) (Outcome, error) {
	if err := o.begin(ctx, view); err != nil {
		return Outcome{}, err
	}
	defer o.inFlight.Store(false)

	values, err := view.Values(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("orchestrator: read values: %w", err)
	}

	report := validation.ValidateAll(values)
	if err := view.ShowReport(ctx, report); err != nil {
		return Outcome{}, fmt.Errorf("orchestrator: show report: %w", err)
	}

	outcome := o.attempt(ctx, values, report)
	if outcome.Success() {
		if err := view.Reset(ctx); err != nil {
			return outcome, fmt.Errorf("orchestrator: reset view: %w", err)
		}
	}
	if err := view.ShowOutcome(ctx, outcome); err != nil {
		return outcome, fmt.Errorf("orchestrator: show outcome: %w", err)
	}
	return outcome, nil
}

func (o *Orchestrator) attempt(ctx context.Context, values model.Values, report validation.Report) Outcome {
	if !report.Valid() {
		o.logger.Debug("submission blocked", "invalid", len(report.Invalid()))
		return Outcome{Kind: OutcomeInvalid, Stage: StageSubmit, Message: o.messages.Invalid}
	}

	record := model.NewRecord(values)
	result, err := o.submitter.Submit(ctx, record)
	if err != nil {
		o.logger.Warn("submission failed", "error", err)
		return Outcome{Kind: OutcomeFailure, Stage: StageSubmit, Message: o.messages.Failure, Err: err}
	}
	if !result.Created() {
		o.logger.Warn("submission rejected", "status", result.StatusCode)
		return Outcome{Kind: OutcomeFailure, Stage: StageSubmit, Message: o.messages.Failure, StatusCode: result.StatusCode}
	}
	o.logger.Info("profile created", "status", result.StatusCode)
	return Outcome{Kind: OutcomeSuccess, Stage: StageSubmit, Message: o.messages.Success, StatusCode: result.StatusCode}
}

func (o *Orchestrator) begin(ctx context.Context, view View) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if view == nil {
		return errors.New("orchestrator: view is required")
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}
