// Package pipeline feeds newline-delimited records to a command, one
// invocation per record, saving progress so an interrupted run can resume.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gurre/awscmd/checkpoint"
	"github.com/gurre/awscmd/metrics"
)

// Invoker runs the command for one record.
type Invoker func(ctx context.Context, record string) error

// errAbort stops the stream from inside the record callback.
var errAbort = errors.New("pipeline aborted")

// Runner drives invocations over a Source sequentially.
type Runner struct {
	Command string
	Source  Source
	Store   checkpoint.Store
	// Every is the number of records between checkpoint saves.
	Every   int
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	// Abort reports errors that would fail every remaining record, such as a
	// bad flag. The run stops on the first one.
	Abort func(error) bool
	// ProgressInterval enables periodic progress logging when positive.
	ProgressInterval time.Duration

	processed atomic.Int64
	failed    atomic.Int64
}

// Run invokes once per non-blank record. A failed invocation is logged and
// counted, and the run continues. When ctx is cancelled the record in flight
// is not marked consumed, so a resumed run retries it.
func (r *Runner) Run(ctx context.Context, invoke Invoker) (checkpoint.State, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("command", r.Command), zap.String("source", r.Source.Name()))
	every := max(r.Every, 1)

	state, err := r.Store.Load(ctx)
	if err != nil {
		return state, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	resuming := state.Matches(r.Command, r.Source.Name()) && state.Processed > 0
	if resuming {
		log.Info("resuming from checkpoint",
			zap.Int64("offset", state.Offset), zap.Int64("processed", state.Processed))
	} else {
		state = checkpoint.State{Command: r.Command, Source: r.Source.Name()}
	}
	r.processed.Store(state.Processed)
	r.failed.Store(state.Failed)

	if r.ProgressInterval > 0 {
		progressCtx, stop := context.WithCancel(ctx)
		defer stop()
		go r.reportProgress(progressCtx, log)
	}

	sinceSave := 0
	var abortErr error
	streamErr := r.Source.Stream(ctx, state.Offset, func(line []byte, offset int64) error {
		if resuming && offset <= state.Offset {
			return nil
		}

		record := strings.TrimSpace(string(line))
		if record != "" {
			r.Metrics.RecordRecord()
			if err := invoke(ctx, record); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if r.Abort != nil && r.Abort(err) {
					abortErr = err
					return errAbort
				}
				state.Failed = r.failed.Add(1)
				log.Error("record failed", zap.String("record", record), zap.Error(err))
			}
			state.Processed = r.processed.Add(1)
		}

		state.Offset = offset
		resuming = true
		sinceSave++
		if sinceSave >= every {
			sinceSave = 0
			if err := r.Store.Save(ctx, state); err != nil {
				return fmt.Errorf("failed to save checkpoint: %w", err)
			}
		}
		return nil
	})

	// Progress is saved even when the run was interrupted.
	if err := r.Store.Save(context.WithoutCancel(ctx), state); err != nil {
		log.Warn("failed to save checkpoint", zap.Error(err))
	}

	switch {
	case abortErr != nil:
		return state, abortErr
	case streamErr != nil:
		return state, streamErr
	}
	log.Info("pipeline complete",
		zap.Int64("processed", state.Processed), zap.Int64("failed", state.Failed))
	return state, nil
}

func (r *Runner) reportProgress(ctx context.Context, log *zap.Logger) {
	ticker := time.NewTicker(r.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Info("progress",
				zap.Int64("processed", r.processed.Load()), zap.Int64("failed", r.failed.Load()))
		case <-ctx.Done():
			return
		}
	}
}
