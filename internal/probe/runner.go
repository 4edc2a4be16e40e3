package probe

import (
	"context"
	"time"

	"github.com/tungetti/checkup/internal/logging"
)

// Runner executes probes sequentially, in order, and isolates each probe's
// failure from the rest of the run. One probe's outcome never affects the
// next probe, and a run itself cannot fail: every probe yields a Result.
type Runner struct {
	logger  logging.Logger
	timeout time.Duration
}

// NewRunner creates a runner. A zero timeout means no per-probe deadline.
// A nil logger disables logging.
func NewRunner(logger logging.Logger, timeout time.Duration) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{logger: logger, timeout: timeout}
}

// Run checks every probe in input order and returns one Result per probe,
// in the same order. A probe that panics is reported as Missing and the
// run continues with the next probe.
func (r *Runner) Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		results = append(results, r.runOne(ctx, p))
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, p Probe) (res Result) {
	start := time.Now()

	res = Result{
		Name: p.Name(),
		Kind: p.Kind(),
	}

	// A panicking probe must not abort the remaining checks.
	defer func() {
		if rec := recover(); rec != nil {
			res.Outcome = Missing
			res.Status = Missing.String()
			res.Detail = "probe panicked"
			res.Duration = time.Since(start)
			r.logger.Error("probe panicked", "name", res.Name, "kind", res.Kind, "panic", rec)
		}
	}()

	checkCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	outcome, detail := p.Check(checkCtx)

	res.Outcome = outcome
	res.Status = outcome.String()
	res.Detail = detail
	res.Duration = time.Since(start)

	r.logger.Debug("probe finished",
		"name", res.Name,
		"kind", res.Kind,
		"outcome", res.Status,
		"duration", res.Duration,
	)

	return res
}
