package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"shelf/internal/organizer"
)

// isInteractive reports whether w is a terminal, which gates the progress
// bar and other decoration.
func isInteractive(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderRun prints the preview grouping, per-operation failures, and the
// final tally for one organize run.
func renderRun(out io.Writer, summary *organizer.Summary) {
	fmt.Fprintf(out, "Found %d files to process\n", summary.Scanned)
	if summary.Planned == 0 {
		fmt.Fprintln(out, "No files to organize")
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, color.New(color.Bold).Sprint("Organization preview"))

	rows := make([][]string, 0, len(summary.Groups))
	for _, group := range summary.Groups {
		examples := strings.Join(group.Examples, ", ")
		if group.More > 0 {
			examples += fmt.Sprintf(" … and %d more", group.More)
		}
		rows = append(rows, []string{group.Folder, strconv.Itoa(group.Count), examples})
	}
	fmt.Fprintln(out, renderTable([]string{"Folder", "Files", "Examples"}, rows, 1))

	if summary.DryRun {
		fmt.Fprintf(out, "%s %d files would be organized; no files were moved\n",
			color.YellowString("DRY RUN:"), summary.Planned)
		return
	}

	for _, failure := range summary.Failures {
		fmt.Fprintf(out, "%s %s: %s\n",
			color.RedString("failed:"), failure.Operation.Source, failure.Reason)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"Planned", "Moved", "Failed", "Data moved"},
		[][]string{{
			strconv.Itoa(summary.Planned),
			strconv.Itoa(summary.Moved),
			strconv.Itoa(summary.Failed),
			humanize.IBytes(uint64(summary.BytesMoved)),
		}},
		0, 1, 2, 3,
	))
	if summary.Failed > 0 {
		fmt.Fprintln(out, color.YellowString("Completed with warnings; some files were not moved"))
	} else {
		fmt.Fprintln(out, color.GreenString("Organization complete"))
	}
}
