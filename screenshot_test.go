package fab

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"a/b\\c", "a_b_c"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"test-1.0", "test-1.0"},
		{"pressed:ripple", "pressed_ripple"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.input)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	h, _ := newTestHost(100, 100)
	h.Screenshot("first")
	h.Screenshot("second")
	if len(h.screenshotQueue) != 2 {
		t.Fatalf("queue length = %d, want 2", len(h.screenshotQueue))
	}
	if h.screenshotQueue[0] != "first" || h.screenshotQueue[1] != "second" {
		t.Errorf("queue = %v, want [first second]", h.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	h, _ := newTestHost(100, 100)
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Pix[3] = 255
	path := filepath.Join(t.TempDir(), sanitizeLabel("frame one")+".png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4", b)
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	path := filepath.Join(t.TempDir(), "missing", "x.png")
	if err := writePNG(path, img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
