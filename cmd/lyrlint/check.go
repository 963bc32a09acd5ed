package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyrlint/internal/driver"
	"lyrlint/internal/lint"
	"lyrlint/internal/lintfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [<file.ass|directory>...]",
	Short: "Lint lyric subtitle files",
	Long:  `Lint .ass lyric files (or all *.ass files within directories) against the style guideline. Without arguments, the paths from lyrlint.toml are used.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().StringSlice("disable", nil, "rule codes to disable for the whole run (repeatable)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().Bool("ui", false, "show interactive progress for multi-file runs")
	checkCmd.Flags().String("toml", "", "explicit path to lyrlint.toml")
	checkCmd.Flags().Bool("fullpath", false, "report absolute file paths")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	disable, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return fmt.Errorf("failed to get disable flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	enableCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	tomlFlag, err := cmd.Flags().GetString("toml")
	if err != nil {
		return fmt.Errorf("failed to get toml flag: %w", err)
	}
	fullpath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, err := loadProjectConfig(tomlFlag)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Lint.Paths
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths given and no [lint].paths in lyrlint.toml")
	}

	files, err := driver.CollectFiles(paths)
	if err != nil {
		return err
	}
	if fullpath {
		for i, f := range files {
			abs, err := filepath.Abs(f)
			if err != nil {
				return fmt.Errorf("failed to resolve path %q: %w", f, err)
			}
			files[i] = abs
		}
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no .ass files found")
		}
		return nil
	}

	opts := driver.Options{
		DisabledRules:    append(append([]string{}, cfg.Lint.Disable...), disable...),
		ExtraAcronyms:    cfg.Lint.Acronyms,
		MaxDiagnostics:   maxDiagnostics,
		IgnoreWarnings:   noWarnings,
		WarningsAsErrors: warningsAsErrors,
		Jobs:             jobs,
		EnableCache:      enableCache,
	}
	linter := lint.New(lint.Options{
		DisabledRules: opts.DisabledRules,
		ExtraAcronyms: opts.ExtraAcronyms,
	})

	var results []driver.FileResult
	if withUI && format == "pretty" && len(files) > 1 && isTerminal(os.Stdout) {
		results, err = runLintWithUI(cmd.Context(), "linting lyrics", files, linter, opts)
	} else {
		results, err = driver.LintAll(cmd.Context(), files, linter, opts)
	}
	if err != nil {
		return err
	}

	rep := driver.BuildReport(results)
	switch format {
	case "pretty":
		colored, err := useColor(cmd)
		if err != nil {
			return err
		}
		lintfmt.Pretty(os.Stdout, rep, lintfmt.PrettyOpts{Color: colored, Quiet: quiet})
	case "json":
		if err := lintfmt.JSON(os.Stdout, rep); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	case "short":
		if out := lintfmt.Short(rep); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if code := rep.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}
