package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

func TestTcellColor(t *testing.T) {
	tests := []struct {
		name string
		in   core.RGB
		want tcell.Color
	}{
		{"green", core.RGBGreen, tcell.NewRGBColor(0, 128, 0)},
		{"red", core.RGBRed, tcell.NewRGBColor(255, 0, 0)},
		{"black", core.RGBBlack, tcell.NewRGBColor(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TcellColor(tt.in); got != tt.want {
				t.Errorf("TcellColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteDistinct(t *testing.T) {
	if RgbSnake == RgbFood {
		t.Error("snake and food must not share a color")
	}
	if RgbSnake == RgbBackground || RgbFood == RgbBackground {
		t.Error("entities must be distinguishable from background")
	}
}

func TestOverlayDimTint(t *testing.T) {
	want := core.RGB{R: 223, G: 191, B: 191}
	if RgbOverlayDim != want {
		t.Errorf("Expected hint colour %v, got %v", want, RgbOverlayDim)
	}
}
