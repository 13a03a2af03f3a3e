package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateThenVerify(t *testing.T) {
	root := t.TempDir()
	out, err := execute(t, "generate", "--root", root, "--synthetic", "16", "--downscale", "32")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "34 files") {
		t.Fatalf("generate output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "assets", "manifest.json")); err != nil {
		t.Fatal(err)
	}

	out, err = execute(t, "verify", "--root", root)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.HasPrefix(out, "34 assets verified") {
		t.Fatalf("verify output = %q", out)
	}

	if err := os.Remove(filepath.Join(root, "src", "assets", "overlays", "vignette.webp")); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "verify", "--root", root); err == nil || !strings.Contains(err.Error(), "vignette") {
		t.Fatalf("verify after removal: %v", err)
	}
}

func TestGenerateOfflineNeedsSources(t *testing.T) {
	_, err := execute(t, "generate", "--root", t.TempDir(), "--offline")
	if err == nil || !strings.Contains(err.Error(), "Concrete013_2K-JPG.zip") {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateRejectsBadDownscale(t *testing.T) {
	_, err := execute(t, "generate", "--root", t.TempDir(), "--synthetic", "8", "--downscale", "0")
	if err == nil || !strings.Contains(err.Error(), "downscale") {
		t.Fatalf("err = %v", err)
	}
}

func TestImagegenMissingScript(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ASSETGEN_ROOT", t.TempDir())
	_, err := execute(t, "imagegen", "--prompt", "tunnel")
	if err == nil {
		t.Fatal("expected error")
	}
	var code exitCode
	if errors.As(err, &code) {
		t.Fatalf("missing script should not look like a child exit: %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(".agents", "skills", "imagegen", "scripts", "image_gen.py")) ||
		!strings.Contains(err.Error(), filepath.Join(".codex", "skills", "imagegen", "scripts", "image_gen.py")) {
		t.Fatalf("err = %v", err)
	}
}
