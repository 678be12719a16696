package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/readmepin/internal/config"
	gitinfo "git.home.luguber.info/inful/readmepin/internal/git"
	"git.home.luguber.info/inful/readmepin/internal/hook"
	"git.home.luguber.info/inful/readmepin/internal/logfields"
)

// CheckCmd implements the 'check' command, the pre-commit hook proper.
type CheckCmd struct {
	CheckOnly bool   `help:"Only report whether normalization is needed, don't modify files"`
	Ref       string `help:"Git ref to pin URLs to (default: current commit SHA)"`
	Strict    bool   `help:"Fail the run when repository info cannot be resolved instead of skipping"`

	Files []string `arg:"" name:"file" help:"Files to process (typically README.md)"`
}

// Run executes the check command. Following pre-commit convention the
// process exits 1 when any file changed or would change.
func (cmd *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	changed, err := cmd.execute(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if changed {
		os.Exit(1)
	}
	return nil
}

// execute resolves repository info, builds the base URL, and drives the
// per-file processor. Split from Run so tests can capture output and
// observe the aggregate result without the process exiting.
func (cmd *CheckCmd) execute(cfg *config.Config, out io.Writer) (bool, error) {
	info, err := gitinfo.Locate(".", cfg.Remote, cfg.Host)
	if err != nil {
		if cmd.Strict {
			return false, fmt.Errorf("cannot resolve repository info (is %s configured as a %s remote?): %w",
				cfg.Remote, cfg.Host, err)
		}
		// Graceful contract: without repository identity there is no base
		// URL to pin against, so the run is a no-op rather than a failure.
		slog.Warn("Skipping image URL normalization", logfields.Error(err))
		return false, nil
	}

	ref := cmd.Ref
	if ref == "" {
		ref = info.Ref
	}
	baseURL := cfg.BaseURL(info.Repo, ref)

	slog.Debug("Processing files",
		logfields.Repository(info.Repo),
		logfields.Ref(ref),
		logfields.URL(baseURL),
		slog.Int("files", len(cmd.Files)),
		slog.Bool("check_only", cmd.CheckOnly))

	proc := hook.New(baseURL, cmd.CheckOnly, cfg.AllowedExtensions())
	proc.Out = out
	return proc.Run(cmd.Files), nil
}
