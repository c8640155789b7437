package main

import (
	"bytes"
	"encoding/json"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a w x h gray PNG with a single bright pixel at (w/2, h/2).
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := stdimage.NewGray(stdimage.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 10
	}
	img.SetGray(w/2, h/2, color.Gray{Y: 250})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHistJSON(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 100, 90)
	b := writePNG(t, dir, "b.png", 120, 100)

	out, err := execute(t, "hist", "--format", "json", "--indent", "2", a, b)
	if err != nil {
		t.Fatalf("hist: %v", err)
	}

	var reports []histReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	want := []uint64{96 * 86, 116 * 96}
	for i, r := range reports {
		if r.Format != "png" {
			t.Errorf("report %d: format = %q, want png", i, r.Format)
		}
		if r.Samples != want[i] {
			t.Errorf("report %d: samples = %d, want %d", i, r.Samples, want[i])
		}
		if len(r.Histogram) != 256 {
			t.Fatalf("report %d: %d bins, want 256", i, len(r.Histogram))
		}
		var sum uint64
		for _, c := range r.Histogram {
			sum += uint64(c)
		}
		if sum != want[i] {
			t.Errorf("report %d: histogram sum = %d, want %d", i, sum, want[i])
		}
		// The spike scores |10-250| and its four neighbors |130-10|.
		if r.Histogram[240] != 1 || r.Histogram[120] != 4 {
			t.Errorf("report %d: bins 240/120 = %d/%d, want 1/4", i, r.Histogram[240], r.Histogram[120])
		}
	}
}

func TestHistText(t *testing.T) {
	path := writePNG(t, t.TempDir(), "frame.png", 100, 100)

	out, err := execute(t, "hist", path)
	if err != nil {
		t.Fatalf("hist: %v", err)
	}
	if !strings.HasPrefix(out, "# "+path+" 100x100 step=1 indent=1 samples=9604\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "\n120 4\n240 1\n") {
		t.Errorf("Expected spike bin in output:\n%s", out)
	}
	if strings.Contains(out, "\n255 0\n") {
		t.Errorf("empty bins printed without --all:\n%s", out)
	}

	out, err = execute(t, "hist", "--all", path)
	if err != nil {
		t.Fatalf("hist --all: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 257 {
		t.Errorf("Expected 257 lines with --all, got %d", lines)
	}
}

func TestHistErrors(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "frame.png", 100, 100)
	small := writePNG(t, dir, "small.png", 8, 8)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{"hist"}, "requires at least 1 arg"},
		{"missing file", []string{"hist", filepath.Join(dir, "nope.png")}, "open "},
		{"indent below step", []string{"hist", "--step", "2", "--indent", "1", path}, "indent must be at least step"},
		{"too small", []string{"hist", small}, "small.png"},
		{"bad format", []string{"hist", "--format", "xml", path}, "unknown format"},
		{"bad log level", []string{"--log-level", "loud", "version"}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestVersionAndInfo(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "edgehist version "+version+"\n" {
		t.Errorf("version output = %q", out)
	}

	out, err = execute(t, "info")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"target: ", "vector width: ", "min interior width: "} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "INFO")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug record logged at info level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Errorf("Expected JSON info record, got %s", buf.String())
	}
}
