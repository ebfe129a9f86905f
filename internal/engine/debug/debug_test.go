package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/pkg/math"
)

func TestGenerateBBoxWireframeVertices(t *testing.T) {
	v := GenerateBBoxWireframeVertices(0, 0, 0, 1, 2, 3)
	if len(v) != BBoxWireframeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(v), BBoxWireframeVertexCount*3)
	}

	// every edge is axis aligned and spans the full box extent
	for e := 0; e < 12; e++ {
		a := v[e*6 : e*6+3]
		b := v[e*6+3 : e*6+6]
		changed := 0
		for axis := 0; axis < 3; axis++ {
			if a[axis] != b[axis] {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge %d from %v to %v is not axis aligned", e, a, b)
		}
	}
}

func TestWireframeFromBoundsTranslated(t *testing.T) {
	b := mesh.Cube("c", 2).Bounds
	v := WireframeFromBounds(b, math.Translate(10, 0, 0))

	for i := 0; i < len(v); i += 3 {
		if v[i] != 9 && v[i] != 11 {
			t.Fatalf("x = %v, want 9 or 11", v[i])
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"", FormatPNG, false},
		{"BMP", FormatBMP, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "cubedrop", FormatBMP)
	sc.now = fixedClock

	want := filepath.Join("shots", "cubedrop_2026-01-02_03-04-05.000.bmp")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

// 2x2 image, bottom row red, top row blue (OpenGL order: bottom row first).
func testPixels() []byte {
	return []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
}

func TestCaptureFromPixelsPNG(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "out"), "shot", FormatPNG)
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(testPixels(), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path = %q, want .png suffix", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// flipped: top row of the image is the last row of the buffer
	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Errorf("top-left pixel should be blue, got r=%d b=%d", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Errorf("bottom-left pixel should be red, got r=%d b=%d", r, b)
	}
}

func TestCaptureFromPixelsBMP(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot", FormatBMP)
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(testPixels(), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 2x2", img.Bounds())
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot", FormatPNG)
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}
