// Package editor launches the user's text editor on the config file.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Find returns the editor command to use.
// $VISUAL wins over $EDITOR; otherwise the first fallback found on PATH.
func Find() (string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if ed := strings.TrimSpace(os.Getenv(env)); ed != "" {
			return ed, nil
		}
	}
	for _, ed := range fallbackEditors {
		if path, err := exec.LookPath(ed); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR environment variable")
}

// Command builds the editor invocation for filePath. The editor string is
// split on whitespace so values like "code --wait" work.
func Command(ctx context.Context, editor, filePath string) (*exec.Cmd, error) {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], filePath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Open runs the editor on filePath in the foreground.
func Open(ctx context.Context, editor, filePath string) error {
	cmd, err := Command(ctx, editor, filePath)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
