package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// InstallHookCmd implements the 'install-hook' command.
type InstallHookCmd struct {
	Force bool `help:"Overwrite existing hook without backup"`
}

// Run executes the install-hook command.
//
//nolint:forbidigo // fmt is used for user-facing messages
func (cmd *InstallHookCmd) Run(_ *Global, _ *CLI) error {
	gitDir, err := findGitDir()
	if err != nil {
		return fmt.Errorf("not in a Git repository: %w", err)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	// Backup existing hook unless --force
	if _, err := os.Stat(hookPath); err == nil && !cmd.Force {
		backupPath := fmt.Sprintf("%s.backup-%s", hookPath, time.Now().Format("20060102-150405"))
		fmt.Printf("📦 Backing up existing hook to: %s\n", backupPath)

		content, err := os.ReadFile(hookPath)
		if err != nil {
			return fmt.Errorf("failed to read existing hook: %w", err)
		}

		if err := os.WriteFile(backupPath, content, 0o755); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	hookContent := `#!/usr/bin/env bash
# readmepin pre-commit hook - Pin staged README image links to the current commit
set -e

# Determine how to run readmepin
READMEPIN_CMD=""
if command -v readmepin &> /dev/null; then
    READMEPIN_CMD="readmepin"
elif [ -f "go.mod" ] && grep -q "readmepin" go.mod; then
    # In development mode - use go run
    READMEPIN_CMD="go run ./cmd/readmepin"
else
    echo "⚠️  readmepin not found in PATH"
    echo "   Install: go install git.home.luguber.info/inful/readmepin/cmd/readmepin@latest"
    echo "   Skipping README image check..."
    exit 0
fi

# Get list of staged README files
STAGED_READMES=$(git diff --cached --name-only --diff-filter=ACM | grep -E '(^|/)README\.(md|markdown)$' || true)

if [ -z "$STAGED_READMES" ]; then
    # No README files staged, nothing to do
    exit 0
fi

echo "🔍 Checking staged README image links..."

if $READMEPIN_CMD check $STAGED_READMES; then
    echo "✅ README image links are pinned"
    exit 0
else
    echo ""
    echo "❌ README image links were rewritten"
    echo ""
    echo "Review the changes, then re-stage and commit:"
    echo "  git add $STAGED_READMES"
    echo ""
    echo "To bypass this check (not recommended):"
    echo "  git commit --no-verify"
    echo ""
    exit 1
fi
`

	if err := os.WriteFile(hookPath, []byte(hookContent), 0o755); err != nil {
		return fmt.Errorf("failed to write hook file: %w", err)
	}

	fmt.Println("✅ Pre-commit hook installed successfully")
	fmt.Println()
	fmt.Println("The hook will:")
	fmt.Println("  • Run automatically on 'git commit'")
	fmt.Println("  • Rewrite relative image links in staged README files")
	fmt.Println("  • Stop the commit so rewritten files can be re-staged")
	fmt.Println()
	fmt.Println("To uninstall:")
	fmt.Printf("  rm %s\n", hookPath)

	return nil
}

// findGitDir locates the .git directory.
func findGitDir() (string, error) {
	// Check if .git directory exists
	if info, err := os.Stat(".git"); err == nil && info.IsDir() {
		return ".git", nil
	}

	// Check if .git is a file (worktree/submodule)
	if info, err := os.Stat(".git"); err == nil && !info.IsDir() {
		content, err := os.ReadFile(".git")
		if err != nil {
			return "", err
		}

		// Parse gitdir from .git file
		line := string(content)
		if len(line) > 8 && line[:8] == "gitdir: " {
			return line[8:], nil
		}
	}

	// Try git command as fallback
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.New("not in a git repository")
	}

	return string(output), nil
}
