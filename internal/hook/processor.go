// Package hook drives the per-file normalization pass: read, rewrite,
// report, and (unless running check-only) write back.
package hook

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/readmepin/internal/logfields"
	"git.home.luguber.info/inful/readmepin/internal/normalize"
	"git.home.luguber.info/inful/readmepin/internal/util/sets"
)

// Processor applies image URL normalization to a list of files against
// one base URL. File-level failures are recovered locally; they never
// abort the run and never count as a change.
type Processor struct {
	BaseURL   string
	CheckOnly bool
	Allowed   sets.Set[string]

	// Out receives per-file change reports. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a Processor writing reports to stdout.
func New(baseURL string, checkOnly bool, allowed sets.Set[string]) *Processor {
	return &Processor{
		BaseURL:   baseURL,
		CheckOnly: checkOnly,
		Allowed:   allowed,
		Out:       os.Stdout,
	}
}

// Run processes all paths in order and reports whether any file changed
// or would change.
func (p *Processor) Run(paths []string) bool {
	anyChanges := false
	for _, path := range paths {
		if p.ProcessFile(path) {
			anyChanges = true
		}
	}
	return anyChanges
}

// ProcessFile normalizes a single file. It returns true when the file
// changed (write mode) or would change (check-only mode).
func (p *Processor) ProcessFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		slog.Warn("File not found, skipping", logfields.Path(path))
		return false
	}

	original, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read file", logfields.Path(path), logfields.Error(err))
		return false
	}

	normalized := normalize.ImageURLs(string(original), p.BaseURL, p.Allowed)
	if normalized == string(original) {
		return false
	}

	if p.CheckOnly {
		fmt.Fprintf(p.Out, "%s: image URLs need normalization (run without --check-only to fix)\n", path)
		return true
	}

	if err := writeFileAtomic(path, []byte(normalized), info.Mode()); err != nil {
		slog.Error("Failed to write file", logfields.Path(path), logfields.Error(err))
		return false
	}

	fmt.Fprintf(p.Out, "%s: normalized image URLs\n", path)
	return true
}

// writeFileAtomic replaces the content of path via a temporary file and
// rename, so a failure mid-write leaves the original content intact.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, mode.Perm()); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}
