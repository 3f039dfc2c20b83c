package components

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one scenario.
type Result struct {
	Name     string
	Kind     Kind
	Steps    int
	Failures []string
	// Err is set when the container could not be built.
	Err error
}

func (r *Result) OK() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Run replays every scenario, at most parallel at a time (unbounded when
// parallel <= 0). Each scenario owns its container, so nothing is shared
// between goroutines.
func Run(ctx context.Context, cfg *Config, parallel int, logger *Logger) (*Report, error) {
	results := make([]*Result, len(cfg.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, sc := range cfg.Scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = RunScenario(sc, logger.WithScenario(sc))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newReport(results), nil
}

// RunScenario builds the scenario's container and checks every step.
func RunScenario(sc Scenario, logger *Logger) *Result {
	res := &Result{Name: sc.Name, Kind: sc.Kind}

	m, err := newMachine(sc)
	if err != nil {
		res.Err = err
		logger.Warn("scenario setup failed", slog.Any("error", err))
		return res
	}

	for i, step := range sc.Steps {
		res.Steps++
		got, err := m.apply(step)
		if msg := check(step, got, err); msg != "" {
			failure := fmt.Sprintf("step %d (%s): %s", i, step.Op, msg)
			res.Failures = append(res.Failures, failure)
			logger.Debug("step failed", slog.Int("step", i), slog.String("op", step.Op), slog.String("reason", msg))
		}
	}

	logger.Info("scenario done",
		slog.Int("steps", res.Steps),
		slog.Int("failures", len(res.Failures)),
	)
	return res
}

// check compares a step outcome against its expectations and describes the
// first mismatch.
func check(step Step, got []int, err error) string {
	kind := errKind(err)
	if kind == "other" {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if kind != step.ExpectError {
		if step.ExpectError == "" {
			return fmt.Sprintf("unexpected error %s: %v", kind, err)
		}
		return fmt.Sprintf("expected error %s, got %q", step.ExpectError, kind)
	}
	if err != nil {
		return ""
	}

	if step.Expect != nil && (len(got) != 1 || got[0] != *step.Expect) {
		return fmt.Sprintf("expected %d, got %v", *step.Expect, got)
	}
	if step.ExpectValues != nil && !slices.Equal(step.ExpectValues, got) {
		return fmt.Sprintf("expected %v, got %v", step.ExpectValues, got)
	}
	return ""
}
