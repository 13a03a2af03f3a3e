// Package launcher hands control to the image generation skill script, which
// may live inside the repository or under the user's home directory.
package launcher

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/1siamBot/herofx-assets/engine/locate"
)

// DefaultInterpreter runs the delegate script.
const DefaultInterpreter = "python3"

var scriptPath = []string{"skills", "imagegen", "scripts", "image_gen.py"}

// Candidates returns the delegate locations in lookup order: the repository's
// own .agents directory first, then ~/.codex.
func Candidates(repoRoot, home string) []string {
	return []string{
		filepath.Join(append([]string{repoRoot, ".agents"}, scriptPath...)...),
		filepath.Join(append([]string{home, ".codex"}, scriptPath...)...),
	}
}

// Delegate describes how to run the skill script.
type Delegate struct {
	Interpreter string
	Candidates  []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve returns the first candidate that exists.
func (d *Delegate) Resolve() (string, error) {
	return locate.First("image_gen skill script", d.Candidates...)
}

// Run resolves the script and executes it with args passed through untouched.
// The script path is the child's program name. The returned code is the
// child's exit status; err is set only when the child could not be run.
func (d *Delegate) Run(ctx context.Context, args []string) (int, error) {
	target, err := d.Resolve()
	if err != nil {
		return 1, err
	}
	interp := d.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}

	cmd := exec.CommandContext(ctx, interp, append([]string{target}, args...)...)
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr
	err = cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return 1, err
	}
}
