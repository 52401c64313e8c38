package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"shelf/internal/fileutil"
	"shelf/internal/logging"
	"shelf/internal/plan"
)

// execute attempts every planned operation exactly once. Individual failures
// are tallied and logged but never stop the remaining moves.
func (o *Organizer) execute(ctx context.Context, logger *slog.Logger, operations []plan.Operation, progress func(done, total int), summary *Summary) {
	total := len(operations)
	for i, op := range operations {
		if err := o.applyOperation(op); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Operation: op, Reason: err.Error()})
			logger.Warn("operation failed",
				logging.String("source", op.Source),
				logging.String("destination", op.Destination),
				logging.Error(err))
		} else {
			summary.Moved++
			summary.BytesMoved += sizeOf(op.Destination)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
}

func (o *Organizer) applyOperation(op plan.Operation) error {
	// Refuse collisions instead of clobbering whatever is already there.
	if _, err := os.Lstat(op.Destination); err == nil {
		return &os.PathError{Op: "move", Path: op.Destination, Err: os.ErrExist}
	}
	if err := os.MkdirAll(filepath.Dir(op.Destination), 0o755); err != nil {
		return err
	}
	switch op.Kind {
	case plan.KindCopy:
		return fileutil.CopyFile(op.Source, op.Destination)
	default:
		return fileutil.MoveFile(op.Source, op.Destination)
	}
}

func sizeOf(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
