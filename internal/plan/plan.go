package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"shelf/internal/classify"
	"shelf/internal/pipeline"
)

// Kind distinguishes how an operation relocates its file.
type Kind string

const (
	KindMove Kind = "move"
	KindCopy Kind = "copy"
)

// Operation is a single planned source-to-destination relocation. Operations
// are value types and never modified after planning; the executor consumes
// each one exactly once.
type Operation struct {
	Source      string
	Destination string
	Kind        Kind
}

// Folder returns the destination folder name the operation routes into.
func (op Operation) Folder() string {
	return filepath.Base(filepath.Dir(op.Destination))
}

// Planner computes destination folders for candidate files.
type Planner struct {
	classifier *classify.Classifier
}

// NewPlanner constructs a planner over the given classifier.
func NewPlanner(classifier *classify.Classifier) *Planner {
	return &Planner{classifier: classifier}
}

// Build plans one move operation per file. Destination is always
// targetDir/<folder>/<basename>. Files already at their destination, as
// happens on a recursive re-run over an organized tree, are skipped so that
// source and destination always differ. A metadata read failure under the
// size/date/modified modes aborts the whole plan.
func (p *Planner) Build(files []string, targetDir string, mode Mode) ([]Operation, error) {
	operations := make([]Operation, 0, len(files))
	for _, file := range files {
		folder, err := p.destinationFolder(file, mode)
		if err != nil {
			return nil, err
		}
		destination := filepath.Join(targetDir, folder, filepath.Base(file))
		if filepath.Clean(file) == destination {
			continue
		}
		operations = append(operations, Operation{
			Source:      file,
			Destination: destination,
			Kind:        KindMove,
		})
	}
	return operations, nil
}

func (p *Planner) destinationFolder(file string, mode Mode) (string, error) {
	switch mode {
	case ModeExtension:
		category := p.classifier.Classify(file)
		return fmt.Sprintf("%s %s", category.Glyph(), category.FolderName()), nil
	case ModeSize:
		info, err := os.Stat(file)
		if err != nil {
			return "", pipeline.Wrap(pipeline.ErrMetadata, "planning", "stat file", file, err)
		}
		bucket := classify.SizeCategoryForBytes(info.Size())
		return fmt.Sprintf("%s %s", bucket.Glyph(), bucket.FolderName()), nil
	case ModeDate:
		info, err := os.Stat(file)
		if err != nil {
			return "", pipeline.Wrap(pipeline.ErrMetadata, "planning", "stat file", file, err)
		}
		when, ok := creationTime(info)
		if !ok {
			when = info.ModTime()
		}
		return "📅 " + when.UTC().Format("2006-01"), nil
	case ModeModified:
		info, err := os.Stat(file)
		if err != nil {
			return "", pipeline.Wrap(pipeline.ErrMetadata, "planning", "stat file", file, err)
		}
		return "🕒 " + info.ModTime().UTC().Format("2006-01"), nil
	case ModeCustom:
		// Rule evaluation is reserved for future work.
		return "📂 Custom", nil
	default:
		return "", pipeline.Wrap(pipeline.ErrConfiguration, "planning", "resolve mode", fmt.Sprintf("unsupported mode %q", mode), nil)
	}
}
