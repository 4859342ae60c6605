package cloud

import (
	"context"
	"runtime"
	"time"
)

// Drive starts r if it is idle and steps it until it leaves Running,
// yielding between words: Config.Wait when positive, otherwise a bare
// scheduler yield. A vetoed start returns StatusIdle. If ctx is canceled
// the run is left Running and ctx.Err() is returned.
func Drive(ctx context.Context, r *Run) (Status, error) {
	if r.State() == StateIdle && !r.Start() {
		return StatusIdle, nil
	}
	for {
		if err := yield(ctx, r.cfg.Wait); err != nil {
			return StatusContinue, err
		}
		if st := r.Step(); st != StatusContinue {
			return st, nil
		}
	}
}

func yield(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		runtime.Gosched()
		return ctx.Err()
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
