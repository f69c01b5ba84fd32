package outline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	outline "github.com/esimov/treeoutline/core"
)

// fakeTool writes an executable shell script standing in for ImageMagick.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}
	path := filepath.Join(t.TempDir(), "fake-convert")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("unable to write the fake tool: %v", err)
	}
	return path
}

func TestMagick_ShouldPassArgumentsVerbatim(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args.txt")
	cfg := newConfig(512, 16)
	cfg.Tool = fakeTool(t, `for a in "$@"; do printf '%s\n' "$a"; done > "`+out+`"`)

	if err := (&outline.Magick{}).Render(cfg); err != nil {
		t.Fatalf("render should succeed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("the fake tool did not run: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	want := outline.Arguments(cfg)[1:]
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("the tool received unexpected arguments:\ngot  %q\nwant %q", got, want)
	}
}

func TestMagick_ShouldIgnoreToolExitStatus(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := newConfig(512, 4)
	cfg.Tool = fakeTool(t, `echo "drawing"; echo "convert: unable to open image" >&2; exit 3`)

	m := &outline.Magick{Stdout: &stdout, Stderr: &stderr}
	if err := m.Render(cfg); err != nil {
		t.Fatalf("a failing tool should not be reported as an error, got: %v", err)
	}
	if !strings.Contains(stdout.String(), "drawing") {
		t.Fatalf("the tool's stdout should be forwarded, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unable to open image") {
		t.Fatalf("the tool's stderr should be forwarded, got %q", stderr.String())
	}
}

func TestMagick_ShouldReportMissingTool(t *testing.T) {
	cfg := newConfig(512, 4)
	cfg.Tool = filepath.Join(t.TempDir(), "no-such-tool")

	err := (&outline.Magick{}).Render(cfg)
	if err == nil {
		t.Fatal("expected an error when the tool cannot be launched")
	}
	if !strings.Contains(err.Error(), "unable to launch") {
		t.Fatalf("error should mention the launch failure, got: %v", err)
	}
}

func TestNewRenderer(t *testing.T) {
	cfg := outline.DefaultConfig()
	if _, ok := outline.NewRenderer(cfg).(*outline.Magick); !ok {
		t.Fatalf("expected the external tool renderer for %q", cfg.Tool)
	}

	cfg.Tool = outline.BuiltinTool
	if _, ok := outline.NewRenderer(cfg).(*outline.Canvas); !ok {
		t.Fatalf("expected the builtin renderer for %q", cfg.Tool)
	}
}
