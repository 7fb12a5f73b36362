package commands

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
)

const againPrompt = "Would you like to try again?"

func newRegisterCmd(a *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fills in and submits the registration form interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			view := tui.NewView(
				tui.WithPromptDriver(tui.NewSurveyDriver(a.stdout)),
				tui.WithTheme(terminalTheme()),
				tui.WithInlineValidation(inline),
			)
			orch := orchestrator.New(
				orchestrator.WithClient(client),
				orchestrator.WithLogger(a.logger),
			)
			return runRegistration(cmd.Context(), orch, view)
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "validate each field as it is entered")
	return cmd
}

// registrationView is a View that can also ask whether to retry.
type registrationView interface {
	orchestrator.View
	Again(ctx context.Context, message string) (bool, error)
}

// runRegistration loads the choices once, then submits until an attempt
// succeeds or the user declines another one.
func runRegistration(ctx context.Context, orch *orchestrator.Orchestrator, view registrationView) error {
	if err := orch.Load(ctx, view); err != nil {
		return ExitError{Code: 1}
	}

	for {
		outcome, err := orch.Submit(ctx, view)
		if errors.Is(err, tui.ErrAborted) {
			return ExitError{Code: 130}
		}
		if err != nil {
			return err
		}
		if outcome.Success() {
			return nil
		}

		again, err := view.Again(ctx, againPrompt)
		if errors.Is(err, tui.ErrAborted) {
			return ExitError{Code: 130}
		}
		if err != nil {
			return err
		}
		if !again {
			return ExitError{Code: 1}
		}
	}
}

func terminalTheme() tui.Theme {
	return tui.Theme{
		InfoPrefix:    color.YellowString("! "),
		ErrorPrefix:   color.RedString("✗ "),
		SuccessPrefix: color.GreenString("✓ "),
	}
}
