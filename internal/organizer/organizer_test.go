package organizer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shelf/internal/config"
	"shelf/internal/logging"
	"shelf/internal/organizer"
	"shelf/internal/pipeline"
	"shelf/internal/plan"
)

func newOrganizer() *organizer.Organizer {
	cfg := config.Default()
	return organizer.New(&cfg, logging.NewNop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOrganizeDryRunPlansWithoutMoving(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo.jpg"), "a")
	writeFile(t, filepath.Join(dir, "doc.pdf"), "b")
	writeFile(t, filepath.Join(dir, "video.mp4"), "c")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		DryRun:    true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Planned != 3 || summary.Moved != 0 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	wantDest := map[string]string{
		"photo.jpg": filepath.Join(dir, "🖼️ Images", "photo.jpg"),
		"doc.pdf":   filepath.Join(dir, "📄 Documents", "doc.pdf"),
		"video.mp4": filepath.Join(dir, "🎬 Videos", "video.mp4"),
	}
	for _, op := range summary.Operations {
		if want := wantDest[filepath.Base(op.Source)]; op.Destination != want {
			t.Errorf("destination for %s = %q, want %q", op.Source, op.Destination, want)
		}
	}

	// Dry run never mutates the filesystem.
	for name := range wantDest {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("file %s moved during dry run: %v", name, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("dry run created entries: %d", len(entries))
	}
}

func TestOrganizeMovesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo.jpg"), "a")
	writeFile(t, filepath.Join(dir, "song.mp3"), "bb")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
	})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Moved != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.BytesMoved != 3 {
		t.Fatalf("bytes moved = %d", summary.BytesMoved)
	}
	for _, dest := range []string{
		filepath.Join(dir, "🖼️ Images", "photo.jpg"),
		filepath.Join(dir, "🎵 Audio", "song.mp3"),
	} {
		if _, err := os.Stat(dest); err != nil {
			t.Errorf("expected %s to exist: %v", dest, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "photo.jpg")); !os.IsNotExist(err) {
		t.Error("source photo.jpg still present")
	}
}

func TestOrganizeCountsPerOperationFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"), "1")
	writeFile(t, filepath.Join(dir, "b.jpg"), "2")
	writeFile(t, filepath.Join(dir, "c.jpg"), "3")
	// Pre-existing destination collides with b.jpg.
	writeFile(t, filepath.Join(dir, "🖼️ Images", "b.jpg"), "old")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
	})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Moved != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.Failures) != 1 {
		t.Fatalf("failures = %v", summary.Failures)
	}
	if got := filepath.Base(summary.Failures[0].Operation.Source); got != "b.jpg" {
		t.Fatalf("failed operation = %s", got)
	}
	// The collision loser stays put, and the existing file is not clobbered.
	if _, err := os.Stat(filepath.Join(dir, "b.jpg")); err != nil {
		t.Fatalf("b.jpg should remain at source: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "🖼️ Images", "b.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "old" {
		t.Fatalf("existing destination overwritten: %q", got)
	}
	// The other two are actually relocated.
	for _, name := range []string{"a.jpg", "c.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, "🖼️ Images", name)); err != nil {
			t.Errorf("%s not moved: %v", name, err)
		}
	}
}

func TestOrganizeEmptyFilteredListSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.pdf"), "x")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		Filters:   []string{"jpg"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Planned != 0 || summary.Moved != 0 {
		t.Fatalf("summary = %+v", summary)
	}

	// No directories were created.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			t.Fatalf("unexpected directory %s", entry.Name())
		}
	}
}

func TestOrganizeSkipsHiddenAndArtifactFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "x")
	writeFile(t, filepath.Join(dir, ".DS_Store"), "x")
	writeFile(t, filepath.Join(dir, "Thumbs.db"), "x")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		DryRun:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Scanned != 1 || summary.Planned != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestOrganizeMissingTargetIsPrecondition(t *testing.T) {
	_, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: filepath.Join(t.TempDir(), "absent"),
		Mode:      plan.ModeExtension,
	})
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestOrganizeFileTargetIsPrecondition(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "x")

	_, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: file,
		Mode:      plan.ModeExtension,
	})
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestOrganizeSizeMode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tiny.bin"), make([]byte, 500_000), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "small.bin"), make([]byte, 5_000_000), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeSize,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 2 {
		t.Fatalf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "🔍 Tiny (< 1MB)", "tiny.bin")); err != nil {
		t.Errorf("tiny.bin: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "📄 Small (1-10MB)", "small.bin")); err != nil {
		t.Errorf("small.bin: %v", err)
	}
}

func TestOrganizeRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.jpg"), "a")
	writeFile(t, filepath.Join(dir, "nested", "deep.jpg"), "b")

	summary, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		Recursive: true,
		DryRun:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Planned != 2 {
		t.Fatalf("planned = %d", summary.Planned)
	}
	for _, op := range summary.Operations {
		if op.Folder() != "🖼️ Images" {
			t.Errorf("folder for %s = %q", op.Source, op.Folder())
		}
	}
}

func TestOrganizeRecursiveRerunIsNoOp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo.jpg"), "a")
	writeFile(t, filepath.Join(dir, "doc.pdf"), "b")

	org := newOrganizer()
	first, err := org.Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.Moved != 2 {
		t.Fatalf("first run summary = %+v", first)
	}

	// A recursive re-run sees the already-organized files inside their
	// category folders and must not plan them onto themselves.
	second, err := org.Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		Recursive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.Scanned != 2 {
		t.Fatalf("second run scanned = %d", second.Scanned)
	}
	if second.Planned != 0 || second.Moved != 0 || second.Failed != 0 {
		t.Fatalf("second run summary = %+v", second)
	}
	if _, err := os.Stat(filepath.Join(dir, "🖼️ Images", "photo.jpg")); err != nil {
		t.Fatalf("photo.jpg disturbed by re-run: %v", err)
	}
}

func TestOrganizeRemovesLockFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"), "1")

	if _, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".shelf.lock")); !os.IsNotExist(err) {
		t.Fatalf("lock file left behind: %v", err)
	}
}

func TestOrganizeProgressCallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"), "1")
	writeFile(t, filepath.Join(dir, "b.jpg"), "2")

	var calls []int
	_, err := newOrganizer().Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
		Progress: func(done, total int) {
			if total != 2 {
				t.Errorf("total = %d", total)
			}
			calls = append(calls, done)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("progress calls = %v", calls)
	}
}

func TestOrganizeConfigOverridesAndIgnores(t *testing.T) {
	cfg := config.Default()
	cfg.Categories.Overrides = map[string]string{"epub": "books"}
	cfg.Organize.IgnoreNames = []string{"skipme.txt"}
	org := organizer.New(&cfg, logging.NewNop())

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "novel.epub"), "x")
	writeFile(t, filepath.Join(dir, "skipme.txt"), "x")

	summary, err := org.Organize(context.Background(), organizer.Request{
		TargetDir: dir,
		Mode:      plan.ModeExtension,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Scanned != 1 || summary.Moved != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "📂 Books", "novel.epub")); err != nil {
		t.Fatalf("override folder missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "skipme.txt")); err != nil {
		t.Fatalf("ignored file moved: %v", err)
	}
}
