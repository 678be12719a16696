package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/readmepin/internal/logfields"
	"git.home.luguber.info/inful/readmepin/internal/markdown"
)

// VerifyCmd implements the 'verify' command: it parses markdown files
// and reports relative image references whose targets are missing on
// disk. Useful before pinning, since a broken relative link becomes a
// broken absolute link.
type VerifyCmd struct {
	Files []string `arg:"" name:"file" help:"Markdown files to verify"`
}

// Run executes the verify command. Exits 1 when broken references exist.
func (cmd *VerifyCmd) Run(_ *Global, _ *CLI) error {
	broken, err := cmd.execute(os.Stdout)
	if err != nil {
		return err
	}
	if broken > 0 {
		os.Exit(1)
	}
	return nil
}

func (cmd *VerifyCmd) execute(out io.Writer) (int, error) {
	broken := 0
	for _, path := range cmd.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read file", logfields.Path(path), logfields.Error(err))
			continue
		}

		images, err := markdown.ExtractImages(data)
		if err != nil {
			return broken, fmt.Errorf("parse %s: %w", path, err)
		}

		dir := filepath.Dir(path)
		for _, img := range images {
			dest := img.Destination
			if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
				continue
			}
			target := filepath.Join(dir, filepath.FromSlash(strings.TrimLeft(dest, "./")))
			if _, err := os.Stat(target); err != nil {
				fmt.Fprintf(out, "%s: image target not found: %s\n", path, dest)
				broken++
			}
		}
	}
	return broken, nil
}
