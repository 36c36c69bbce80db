package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
)

// ErrNoProber is recorded for probe steps when the runner has no balance reader.
var ErrNoProber = errors.New("no balance reader configured")

// Runner executes steps one at a time against a ledger client.
type Runner struct {
	ledger ledger.Client
	prober Prober
	log    *zap.Logger
	now    func() time.Time
}

// NewRunner creates a Runner. prober may be nil when no step probes balances.
func NewRunner(ledgerClient ledger.Client, prober Prober, logger *zap.Logger) (*Runner, error) {
	if ledgerClient == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		ledger: ledgerClient,
		prober: prober,
		log:    logger,
		now:    time.Now,
	}, nil
}

// Run executes steps in order. A failing step is logged and recorded, and the
// next step still runs. Once ctx is done the remaining steps are recorded with
// the context error without being attempted.
func (r *Runner) Run(ctx context.Context, steps []Step) Report {
	return r.RunScenario(ctx, Scenario{Steps: steps})
}

// RunScenario is Run with the scenario name attached to the report and logs.
func (r *Runner) RunScenario(ctx context.Context, scenario Scenario) Report {
	name, steps := scenario.Name, scenario.Steps
	report := Report{Name: name, Steps: make([]StepResult, 0, len(steps))}
	for index, step := range steps {
		stepName := step.Name
		if stepName == "" {
			stepName = fmt.Sprintf("step %d", index+1)
		}
		result := StepResult{Name: stepName, Probe: step.Operation == nil}

		if err := ctx.Err(); err != nil {
			result.Err = err
			report.Steps = append(report.Steps, result)
			continue
		}

		started := r.now()
		if step.Operation != nil {
			result.Receipt, result.Err = r.ledger.Submit(ctx, *step.Operation)
		} else {
			result.Balances, result.Err = r.probe(ctx, step.Probe)
		}
		result.Duration = r.now().Sub(started)

		r.logResult(index, step, result)
		report.Steps = append(report.Steps, result)
	}

	if err := report.Err(); err != nil {
		r.log.Warn("scenario finished with failures", zap.String("scenario", name), zap.Int("failed", len(report.Failed())))
	} else {
		r.log.Info("scenario finished", zap.String("scenario", name), zap.Int("steps", len(report.Steps)))
	}
	return report
}

func (r *Runner) probe(ctx context.Context, pairs []balance.Pair) ([]balance.Reading, error) {
	if r.prober == nil {
		return nil, ErrNoProber
	}
	readings := r.prober.Snapshot(ctx, pairs)
	errs := make([]error, 0)
	for _, reading := range readings {
		if reading.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", reading.Label, reading.Err))
		}
	}
	return readings, errors.Join(errs...)
}

func (r *Runner) logResult(index int, step Step, result StepResult) {
	fields := []zap.Field{
		zap.Int("step", index+1),
		zap.String("name", result.Name),
		zap.Duration("duration", result.Duration),
	}
	if step.Operation != nil {
		fields = append(fields, zap.String("signer", step.Operation.Signer))
		fields = append(fields, step.Operation.Fields...)
		if result.Receipt.Status != "" {
			fields = append(fields, result.Receipt.LogFields()...)
		}
	}

	if result.Err != nil {
		r.log.Error("step failed", append(fields, zap.Error(result.Err))...)
	} else {
		r.log.Info("step succeeded", fields...)
	}

	for _, reading := range result.Balances {
		r.log.Info("balance",
			zap.String("label", reading.Label),
			zap.String("account", reading.AccountID),
			zap.String("token", reading.TokenID),
			zap.String("value", balance.Format(reading.Value)),
		)
	}
}
