package launcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/1siamBot/herofx-assets/engine/locate"
)

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("/repo", "/home/me")
	want := []string{
		filepath.Join("/repo", ".agents", "skills", "imagegen", "scripts", "image_gen.py"),
		filepath.Join("/home/me", ".codex", "skills", "imagegen", "scripts", "image_gen.py"),
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
}

func TestRunMissingScript(t *testing.T) {
	cands := Candidates(t.TempDir(), t.TempDir())
	d := &Delegate{Candidates: cands}
	code, err := d.Run(context.Background(), nil)
	if code == 0 {
		t.Fatal("exit code must be non-zero")
	}
	var nf *locate.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "could not find image_gen skill script\nExpected one of:") {
		t.Fatalf("message = %q", msg)
	}
	for _, c := range cands {
		if !strings.Contains(msg, c) {
			t.Errorf("message does not contain %s", c)
		}
	}
}

func TestRunPassesArgsAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	home := t.TempDir()
	cands := Candidates(t.TempDir(), home)
	script := cands[1]
	if err := os.MkdirAll(filepath.Dir(script), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "echo \"$0|$*\"\nexit 3\n"
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	d := &Delegate{Interpreter: "sh", Candidates: cands, Stdout: &out}
	code, err := d.Run(context.Background(), []string{"generate", "--prompt", "a b"})
	if err != nil {
		t.Fatal(err)
	}
	if code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	want := script + "|generate --prompt a b\n"
	if out.String() != want {
		t.Fatalf("stdout = %q, want %q", out.String(), want)
	}
}
