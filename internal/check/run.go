package check

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one check in a batch. Exactly one of Evaluation
// and Err is set; checks skipped after cancellation carry the context error.
type Outcome struct {
	Check      Check
	Evaluation *Evaluation
	Err        error
}

// Passed reports whether the check ran and its verdict is adequate.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Evaluation != nil && o.Evaluation.Record.Verdict().Passed()
}

// Batch is the ordered result of Run.
type Batch struct {
	ID       string
	Started  time.Time
	Duration time.Duration
	Outcomes []Outcome
}

// Summary counts passed, failed and errored outcomes.
func (b *Batch) Summary() (passed, failed, errored int) {
	for _, o := range b.Outcomes {
		switch {
		case o.Err != nil:
			errored++
		case o.Passed():
			passed++
		default:
			failed++
		}
	}
	return passed, failed, errored
}

// Run evaluates checks with at most workers in flight. Outcomes keep the
// order of checks. A failing check is recorded in its Outcome and does not
// stop the batch; cancelling ctx stops scheduling and Run returns ctx.Err()
// with the outcomes gathered so far.
func (e *Evaluator) Run(ctx context.Context, checks []Check, workers int, logger *zap.Logger) (*Batch, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}

	batch := &Batch{
		ID:       uuid.NewString(),
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(checks)),
	}
	logger = logger.With(zap.String("batch", batch.ID))
	logger.Info("batch started", zap.Int("checks", len(checks)), zap.Int("workers", workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range checks {
		batch.Outcomes[i].Check = c
		if err := gctx.Err(); err != nil {
			batch.Outcomes[i].Err = err
			continue
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				batch.Outcomes[i].Err = err
				return nil
			}
			ev, err := e.Evaluate(c)
			if err != nil {
				logger.Warn("check failed", zap.Int("index", i), zap.String("check", c.Label()), zap.Error(err))
				batch.Outcomes[i].Err = err
				return nil
			}
			logger.Debug("check evaluated",
				zap.Int("index", i),
				zap.String("check", c.Label()),
				zap.String("status", ev.Record.Verdict().String()))
			batch.Outcomes[i].Evaluation = ev
			return nil
		})
	}

	_ = g.Wait()
	batch.Duration = time.Since(batch.Started)

	passed, failed, errored := batch.Summary()
	logger.Info("batch finished",
		zap.Int("passed", passed),
		zap.Int("failed", failed),
		zap.Int("errored", errored),
		zap.Duration("took", batch.Duration))

	return batch, ctx.Err()
}
