// Package worker speaks the subordinate-process protocol: newline-delimited
// JSON task messages in, exactly one terminal message out per execute task.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// PipelineFunc runs one task through the audit pipeline. A fresh pipeline is
// built per task because each task carries its own auth token.
type PipelineFunc func(ctx context.Context, task domain.Task) ([]domain.ValidationRecord, error)

// Worker decodes inbound messages and dispatches execute tasks.
type Worker struct {
	run PipelineFunc
	log *zap.Logger
}

// New creates a worker around the given pipeline.
func New(run PipelineFunc, log *zap.Logger) *Worker {
	return &Worker{run: run, log: log}
}

// Run consumes messages from r until EOF. Every execute message produces
// exactly one terminal message on out; messages with any other action are
// ignored without a response. A task, once accepted, always runs to
// completion: there is no cancellation below the message boundary.
func (w *Worker) Run(ctx context.Context, r io.Reader, out io.Writer) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(out)

	for {
		var msg Inbound
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding inbound message: %w", err)
		}

		if msg.Action != ActionExecute {
			w.log.Debug("ignoring message", zap.String("action", msg.Action))
			continue
		}

		records, err := w.run(ctx, msg.Inputs.Task())
		if err != nil {
			w.log.Warn("task failed", zap.Error(err))
			if err := enc.Encode(NewErrorMessage(err)); err != nil {
				return fmt.Errorf("writing terminal message: %w", err)
			}
			continue
		}

		if err := enc.Encode(NewResultMessage(records)); err != nil {
			return fmt.Errorf("writing terminal message: %w", err)
		}
	}
}
