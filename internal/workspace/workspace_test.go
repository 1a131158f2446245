package workspace

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", ResolveEditor(""))

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", ResolveEditor(" "))

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", ResolveEditor(""))
	assert.Equal(t, "hx", ResolveEditor(" hx "))
}

func TestPrintLeaf(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLeaf{Out: &buf}.OpenFile(context.Background(), "/vault/2026-10-17.md"))
	assert.Equal(t, "/vault/2026-10-17.md\n", buf.String())
}

func TestEditorLeafRunsCommand(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	var out bytes.Buffer
	leaf := &EditorLeaf{Command: "echo opened", Stdout: &out}
	require.NoError(t, leaf.OpenFile(context.Background(), "note.md"))
	assert.Equal(t, "opened note.md\n", out.String())
}

func TestEditorLeafMissingBinary(t *testing.T) {
	leaf := &EditorLeaf{Command: "definitely-not-an-editor-binary"}
	err := leaf.OpenFile(context.Background(), "note.md")
	assert.Error(t, err)
}
