package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lyrlint/internal/driver"
	"lyrlint/internal/lint"
	"lyrlint/internal/ui"
)

type lintOutcome struct {
	results []driver.FileResult
	err     error
}

// runLintWithUI runs the lint in a goroutine and renders its progress via
// the Bubble Tea model until the event channel closes.
func runLintWithUI(ctx context.Context, title string, files []string, linter *lint.Linter, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.LintAll(ctx, files, linter, optsCopy)
		outcomeCh <- lintOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
