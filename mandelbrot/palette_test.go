package mandelbrot

import (
	"testing"
)

func TestGeneratePalette(t *testing.T) {
	gps := GeneratePaletteSettings{StartColor: "#000000", EndColor: "#ffffff", NumberColors: 16}

	palette, err := gps.GeneratePalette()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(palette) != 16 {
		t.Fatalf("expected 16 colors, got %d", len(palette))
	}
	if palette[0].R != 0 || palette[0].G != 0 || palette[0].B != 0 {
		t.Errorf("the first color should be the segment start, got %+v", palette[0])
	}
	for _, c := range palette {
		if c.A != 255 {
			t.Fatalf("palette colors should be opaque, got %+v", c)
		}
	}
}

func TestGeneratePaletteDeterministic(t *testing.T) {
	gps := GeneratePaletteSettings{StartColor: "#721f81", EndColor: "#f1605d", NumberColors: 64}

	first, err := gps.GeneratePalette()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, err := gps.GeneratePalette()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("palette differs at index %d: %+v then %+v", i, first[i], second[i])
		}
	}
}

func TestGeneratePaletteRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		gps  GeneratePaletteSettings
	}{
		{"bad start color", GeneratePaletteSettings{StartColor: "magma", EndColor: "#ffffff", NumberColors: 8}},
		{"bad end color", GeneratePaletteSettings{StartColor: "#000000", EndColor: "", NumberColors: 8}},
		{"no colors", GeneratePaletteSettings{StartColor: "#000000", EndColor: "#ffffff", NumberColors: 0}},
	}

	for _, tt := range tests {
		if _, err := tt.gps.GeneratePalette(); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
