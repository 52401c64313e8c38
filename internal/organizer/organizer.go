package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"shelf/internal/classify"
	"shelf/internal/config"
	"shelf/internal/logging"
	"shelf/internal/pipeline"
	"shelf/internal/plan"
	"shelf/internal/preflight"
	"shelf/internal/scan"
)

// lockName is the advisory lock file created in the target directory during
// live runs. It starts with a dot, so the scanner never picks it up.
const lockName = ".shelf.lock"

// Request describes a single organize run.
type Request struct {
	TargetDir string
	Mode      plan.Mode
	Recursive bool
	Filters   []string
	DryRun    bool
	// Progress, when set, is invoked after every attempted operation of a
	// live run.
	Progress func(done, total int)
}

// Failure records one operation the executor could not complete.
type Failure struct {
	Operation plan.Operation
	Reason    string
}

// Summary is the read-only report of a completed or dry run.
type Summary struct {
	RunID      string
	Mode       plan.Mode
	DryRun     bool
	Scanned    int
	Planned    int
	Moved      int
	Failed     int
	BytesMoved int64
	Operations []plan.Operation
	Groups     []plan.Group
	Failures   []Failure
}

// Organizer classifies and relocates files within a directory tree.
type Organizer struct {
	classifier *classify.Classifier
	planner    *plan.Planner
	logger     *slog.Logger
}

// New constructs an organizer from configuration. The classifier is built
// once, with any configured overrides and extra ignore names applied.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	classifier := classify.NewClassifier()
	if cfg != nil {
		classifier.ApplyOverrides(cfg.CategoryOverrides())
		classifier.AddIgnoredNames(cfg.Organize.IgnoreNames...)
	}
	return &Organizer{
		classifier: classifier,
		planner:    plan.NewPlanner(classifier),
		logger:     logging.WithComponent(logger, "organizer"),
	}
}

// Organize runs the pipeline for one request. Fatal errors (bad target,
// unreadable directory, missing metadata) abort before any moves; failures
// of individual moves are collected in the summary instead.
func (o *Organizer) Organize(ctx context.Context, req Request) (*Summary, error) {
	runID := uuid.NewString()
	logger := o.logger.With(
		logging.String(logging.FieldRunID, runID),
		logging.String(logging.FieldMode, req.Mode.String()),
		logging.String(logging.FieldTargetDir, req.TargetDir),
	)

	if err := preflight.CheckDirectory(req.TargetDir); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPrecondition, "organize", "validate target", err.Error(), nil)
	}

	logger.Info("scanning directory", logging.Bool("recursive", req.Recursive))
	files, err := scan.Collect(req.TargetDir, req.Recursive, o.classifier.ShouldIgnore)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrScan, "scanning", "read directory", req.TargetDir, err)
	}
	logger.Info("scan finished", logging.Int("files", len(files)))

	kept := scan.FilterByExtension(files, req.Filters)
	if len(req.Filters) > 0 {
		logger.Info("filter applied",
			logging.Int("kept", len(kept)),
			logging.Int("dropped", len(files)-len(kept)))
	}

	summary := &Summary{
		RunID:   runID,
		Mode:    req.Mode,
		DryRun:  req.DryRun,
		Scanned: len(files),
	}
	if len(kept) == 0 {
		logger.Info("nothing to organize")
		return summary, nil
	}

	operations, err := o.planner.Build(kept, req.TargetDir, req.Mode)
	if err != nil {
		return nil, err
	}
	summary.Planned = len(operations)
	summary.Operations = operations
	summary.Groups = plan.GroupByFolder(operations)
	logger.Info("plan ready",
		logging.Int("operations", len(operations)),
		logging.Int("folders", len(summary.Groups)))

	if req.DryRun {
		logger.Info("dry run, skipping execution")
		return summary, nil
	}

	lock := flock.New(filepath.Join(req.TargetDir, lockName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrTransient, "organize", "acquire lock", req.TargetDir, err)
	}
	if !locked {
		return nil, pipeline.Wrap(pipeline.ErrPrecondition, "organize", "acquire lock",
			"another organize run is active in this directory", nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	o.execute(ctx, logger, operations, req.Progress, summary)
	logger.Info("run completed",
		logging.Int("moved", summary.Moved),
		logging.Int("failed", summary.Failed),
		logging.Int64("bytes_moved", summary.BytesMoved))
	return summary, nil
}
