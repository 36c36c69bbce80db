package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
)

// Step is either a submission (Operation set) or a balance probe (Probe set).
type Step struct {
	Name      string
	Operation *ledger.Operation
	Probe     []balance.Pair
}

// Scenario is a named, ordered list of steps.
type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

// Prober reads a batch of balances. *balance.Reader satisfies it.
type Prober interface {
	Snapshot(ctx context.Context, pairs []balance.Pair) []balance.Reading
}

type StepResult struct {
	Name     string
	Probe    bool
	Receipt  ledger.Receipt
	Balances []balance.Reading
	Err      error
	Duration time.Duration
}

// Failed reports whether the step returned an error.
func (r StepResult) Failed() bool {
	return r.Err != nil
}

// Report lists step results in execution order.
type Report struct {
	Name  string
	Steps []StepResult
}

// Failed returns the results of the failed steps.
func (r Report) Failed() []StepResult {
	failed := make([]StepResult, 0)
	for _, step := range r.Steps {
		if step.Failed() {
			failed = append(failed, step)
		}
	}
	return failed
}

// Err joins the errors of every failed step, or returns nil.
func (r Report) Err() error {
	errs := make([]error, 0)
	for _, step := range r.Steps {
		if step.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, step.Err))
		}
	}
	return errors.Join(errs...)
}

func (r Report) Summary() string {
	failed := len(r.Failed())
	name := r.Name
	if name == "" {
		name = "scenario"
	}
	if failed == 0 {
		return fmt.Sprintf("%s: %d steps succeeded", name, len(r.Steps))
	}
	return fmt.Sprintf("%s: %d of %d steps failed", name, failed, len(r.Steps))
}

// Write prints one line per step and one indented line per balance reading.
func (r Report) Write(w io.Writer) error {
	for index, step := range r.Steps {
		status := step.Receipt.Status
		switch {
		case step.Err != nil:
			status = "FAILED: " + step.Err.Error()
		case step.Probe:
			status = "balances"
		case status == "":
			status = "OK"
		}
		line := fmt.Sprintf("%2d. %-40s %s", index+1, step.Name, status)
		if step.Receipt.TransactionID != "" {
			line += " (" + step.Receipt.TransactionID + ")"
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
		for _, reading := range step.Balances {
			value := balance.Format(reading.Value)
			if reading.Err != nil {
				value = "error: " + reading.Err.Error()
			}
			if _, err := fmt.Fprintf(w, "      %-30s %s\n", reading.Label, value); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, r.Summary())
	return err
}

