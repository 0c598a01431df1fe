// Tests for [run]: the full generation pass, the mascot-less pass, layout
// overrides, and the degraded fallback-copy path.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mykebates/horsestrap/internal/layout"
)

// writeMascotPNG writes a small valid PNG with an alpha channel to path.
func writeMascotPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			a := uint8(255)
			if x >= 20 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 120, B: 40, A: a})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create mascot: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode mascot: %v", err)
	}
}

// decodeOutput decodes the output PNG written to dir.
func decodeOutput(t *testing.T, dir string) image.Image {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, layout.Default().Output))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return img
}

func TestRunCreatesImage(t *testing.T) {
	dir := t.TempDir()
	writeMascotPNG(t, filepath.Join(dir, "horsestrap-mascot.png"))

	var out bytes.Buffer
	if err := run(dir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	img := decodeOutput(t, dir)
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 630 {
		t.Errorf("output = %dx%d, want 1200x630", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if !strings.Contains(out.String(), "OG image created successfully") {
		t.Errorf("missing success line, got %q", out.String())
	}
}

func TestRunWithoutMascot(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	if err := run(dir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	// Composition succeeds with the mascot step skipped.
	img := decodeOutput(t, dir)
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 630 {
		t.Errorf("output = %dx%d, want 1200x630", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRunLayoutOverride(t *testing.T) {
	dir := t.TempDir()
	override := `
[canvas]
width = 600
height = 315
`
	if err := os.WriteFile(filepath.Join(dir, layout.LayoutFile), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	var out bytes.Buffer
	if err := run(dir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	img := decodeOutput(t, dir)
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 315 {
		t.Errorf("output = %dx%d, want overridden 600x315", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRunFallbackCopy(t *testing.T) {
	dir := t.TempDir()

	// A broken layout file makes the pass fail before any drawing; the
	// mascot content is arbitrary bytes because the fallback never decodes it.
	if err := os.WriteFile(filepath.Join(dir, layout.LayoutFile), []byte("[canvas\n???"), 0o644); err != nil {
		t.Fatalf("write broken layout: %v", err)
	}
	mascot := []byte("mascot-stand-in-bytes")
	if err := os.WriteFile(filepath.Join(dir, "horsestrap-mascot.png"), mascot, 0o644); err != nil {
		t.Fatalf("write mascot: %v", err)
	}

	var out bytes.Buffer
	if err := run(dir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "horsestrap-og-image.png"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, mascot) {
		t.Error("fallback output is not a byte-for-byte copy of the mascot")
	}
	if !strings.Contains(out.String(), "Error creating OG image") {
		t.Errorf("missing error line, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Falling back") {
		t.Errorf("missing fallback notice, got %q", out.String())
	}
}

func TestRunFallbackMissingMascot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, layout.LayoutFile), []byte("[canvas\n???"), 0o644); err != nil {
		t.Fatalf("write broken layout: %v", err)
	}

	var out bytes.Buffer
	err := run(dir, &out)
	if err == nil {
		t.Fatal("run with failed fallback: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "fallback copy") {
		t.Errorf("error = %v, want fallback copy failure", err)
	}
}

func TestRunCorruptMascot(t *testing.T) {
	dir := t.TempDir()

	// Mascot exists but is not a decodable image: composition fails and the
	// fallback copies the corrupt file verbatim, matching the unguarded
	// copy-what-exists behavior.
	mascot := []byte("present but unreadable")
	if err := os.WriteFile(filepath.Join(dir, "horsestrap-mascot.png"), mascot, 0o644); err != nil {
		t.Fatalf("write mascot: %v", err)
	}

	var out bytes.Buffer
	if err := run(dir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "horsestrap-og-image.png"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, mascot) {
		t.Error("fallback output is not a byte-for-byte copy of the mascot")
	}
}
