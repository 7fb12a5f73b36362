package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/options"
)

func newOptionsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Fetches and prints the occupation and state lists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			choices, err := client.FetchChoices(cmd.Context())
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(choices)
			case "table":
				renderChoices(a.stdout, choices)
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	return cmd
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func renderChoices(out io.Writer, choices model.Choices) {
	t := newTable(out)
	t.AppendHeader(table.Row{"#", "Occupation", "State"})

	rowCount := max(len(choices.Occupations), len(choices.States))
	for i := 0; i < rowCount; i++ {
		row := table.Row{i + 1, "", ""}
		if i < len(choices.Occupations) {
			row[1] = options.PlainLabel(choices.Occupations[i].Label)
		}
		if i < len(choices.States) {
			row[2] = options.PlainLabel(choices.States[i].Label)
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", len(choices.Occupations), len(choices.States)})
	t.Render()
}
