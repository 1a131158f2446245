// Package workspace shows a note to the user once it has been found or created.
package workspace

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Leaf displays a document.
type Leaf interface {
	OpenFile(ctx context.Context, path string) error
}

// EditorLeaf opens documents in a terminal editor.
type EditorLeaf struct {
	// Command is the editor invocation, e.g. "nvim" or "code --wait".
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Log     *zap.Logger
}

// ResolveEditor picks the configured editor, then $VISUAL, then $EDITOR, then vi.
func ResolveEditor(configured string) string {
	for _, c := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return "vi"
}

func (l *EditorLeaf) OpenFile(ctx context.Context, path string) error {
	fields := strings.Fields(ResolveEditor(l.Command))
	args := append(fields[1:], path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = orDefault(l.Stdin, os.Stdin)
	cmd.Stdout = orDefaultW(l.Stdout, os.Stdout)
	cmd.Stderr = orDefaultW(l.Stderr, os.Stderr)

	if l.Log != nil {
		l.Log.Debug("launching editor", zap.String("editor", fields[0]), zap.String("path", path))
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, fields[0], err)
	}
	return nil
}

// PrintLeaf writes the document path, for scripts and pipes.
type PrintLeaf struct {
	Out io.Writer
}

func (l PrintLeaf) OpenFile(_ context.Context, path string) error {
	_, err := fmt.Fprintln(orDefaultW(l.Out, os.Stdout), path)
	return err
}

func orDefault(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orDefaultW(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
