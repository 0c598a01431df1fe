// color_test.go tests [ParseHexColor] with valid inputs (with and without
// "#" prefix) and rejects malformed hex strings.

package layout

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#4a4554", color.NRGBA{R: 0x4A, G: 0x45, B: 0x54, A: 255}},
		{"#f5f5f0", color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF0, A: 255}},
		{"#999999", color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 255}},
		{"#000000", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"b8b8c0", color.NRGBA{R: 0xB8, G: 0xB8, B: 0xC0, A: 255}}, // no # prefix
	}

	for _, tt := range tests {
		c, err := ParseHexColor(tt.input)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.input, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, c, tt.want)
		}
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	invalid := []string{"#FFF", "#GGGGGG", "", "12345"}
	for _, s := range invalid {
		_, err := ParseHexColor(s)
		if err == nil {
			t.Errorf("ParseHexColor(%q) expected error, got nil", s)
		}
	}
}
