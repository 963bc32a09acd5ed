package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lyrlint/internal/diag"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every rule the linter knows about",
	RunE: func(cmd *cobra.Command, args []string) error {
		colored, err := useColor(cmd)
		if err != nil {
			return err
		}
		codeColor := color.New(color.FgCyan)
		errColor := color.New(color.FgRed, color.Bold)
		warnColor := color.New(color.FgYellow, color.Bold)
		catColor := color.New(color.Faint)
		if !colored {
			for _, c := range []*color.Color{codeColor, errColor, warnColor, catColor} {
				c.DisableColor()
			}
		}

		out := cmd.OutOrStdout()
		var lastCategory diag.Category
		for _, r := range diag.All() {
			if cat := r.Code.Category(); cat != lastCategory {
				fmt.Fprintln(out, catColor.Sprintf("# %s", cat))
				lastCategory = cat
			}
			sev := warnColor.Sprint(r.Severity.String())
			if r.Severity == diag.SevError {
				sev = errColor.Sprint(r.Severity.String())
			}
			fmt.Fprintf(out, "%s %-8s %s\n", codeColor.Sprintf("%-6s", string(r.Code)), sev, r.Message)
		}
		return nil
	},
}
