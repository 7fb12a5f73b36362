package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <field> <value>",
		Short: "Checks a single field value and exits with status 1 when it is invalid.",
		Long: "Checks a single field value against the registration rules.\n" +
			"Fields: name, email, password, occupation, state. Unknown fields always pass.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			kind := model.ParseFieldKind(args[0])
			verdict := validation.Validate(kind, args[1])

			if !kind.Known() {
				a.logger.Debug("unknown field kind passes validation", "field", args[0])
			}
			if verdict.Valid {
				fmt.Fprintln(a.stdout, color.GreenString("valid"))
				return nil
			}
			fmt.Fprintf(a.stdout, "%s %s (%s)\n", color.RedString("invalid:"), verdict.Reason, verdict.Code)
			return ExitError{Code: 1}
		},
	}
}
