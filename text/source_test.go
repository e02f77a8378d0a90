package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source := loadTestFont(t, goregular.TTF)

	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
	if source.Parsed() == nil {
		t.Error("Parsed() = nil")
	}
	if len(source.Data()) != len(goregular.TTF) {
		t.Errorf("Data() len = %d, want %d", len(source.Data()), len(goregular.TTF))
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(gobold.TTF))
	copy(data, gobold.TTF)

	source := loadTestFont(t, data)
	data[0] ^= 0xff

	if source.Data()[0] != gobold.TTF[0] {
		t.Error("FontSource shares the caller's buffer")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) should fail")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() == "" {
		t.Error("expected non-empty font name")
	}

	_, err = NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if source.Parsed() != nil || source.Data() != nil {
		t.Error("Close() did not release font data")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source := loadTestFont(t, goregular.TTF)

	defer func() {
		if recover() == nil {
			t.Error("using a copied FontSource should panic")
		}
	}()
	copied := &FontSource{addr: source.addr, name: source.name}
	_ = copied.Name()
}

type fakeParser struct{ parsed ParsedFont }

func (p fakeParser) Parse([]byte) (ParsedFont, error) { return p.parsed, nil }

// stubFont is a ParsedFont that cannot produce outlines.
type stubFont struct{}

func (stubFont) Name() string { return "Stub" }
func (stubFont) FullName() string { return "" }
func (stubFont) NumGlyphs() int { return 1 }
func (stubFont) UnitsPerEm() int { return 1000 }
func (stubFont) GlyphIndex(rune) uint16 { return 1 }
func (stubFont) GlyphAdvance(uint16, float64) float64 { return 10 }
func (stubFont) GlyphBounds(uint16, float64) Rect { return Rect{} }
func (stubFont) Metrics(float64) FontMetrics { return FontMetrics{Ascent: 8, Descent: -2} }

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", fakeParser{parsed: stubFont{}})

	source, err := NewFontSource([]byte{1}, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource with stub parser: %v", err)
	}
	if source.Name() != "Stub" {
		t.Errorf("Name() = %q, want Stub", source.Name())
	}
	if got := source.Face(10).Metrics().LineHeight(); got != 10 {
		t.Errorf("LineHeight() = %v, want 10", got)
	}

	// Unknown parser names fall back to the default backend.
	if _, err := NewFontSource(goregular.TTF, WithParser("missing")); err != nil {
		t.Errorf("fallback parser failed: %v", err)
	}
}
