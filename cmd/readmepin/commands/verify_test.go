package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_ReportsMissingTargets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "ok.png"), []byte("png"), 0o644))

	readme := filepath.Join(dir, "README.md")
	content := "![ok](img/ok.png)\n" +
		"![missing](./img/gone.png)\n" +
		"![remote](https://example.com/x.png)\n" +
		"<img src=\"img/also-gone.svg\">\n"
	require.NoError(t, os.WriteFile(readme, []byte(content), 0o644))

	cmd := &VerifyCmd{Files: []string{readme}}
	out := &bytes.Buffer{}
	broken, err := cmd.execute(out)
	require.NoError(t, err)
	assert.Equal(t, 2, broken)
	assert.Contains(t, out.String(), "image target not found: ./img/gone.png")
	assert.Contains(t, out.String(), "image target not found: img/also-gone.svg")
}

func TestVerify_AllPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png"), 0o644))
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("![logo](logo.png)\n"), 0o644))

	cmd := &VerifyCmd{Files: []string{readme}}
	broken, err := cmd.execute(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, broken)
}

func TestVerify_UnreadableFileSkipped(t *testing.T) {
	cmd := &VerifyCmd{Files: []string{filepath.Join(t.TempDir(), "missing.md")}}
	broken, err := cmd.execute(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, broken)
}
