// Package layout defines the declarative description of the OG image:
// canvas dimensions, gradient parameters, mascot placement, text entries,
// and font roles. [Default] reproduces the shipped Horsestrap image exactly;
// an optional og-layout.toml in the working directory can override any field.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mykebates/horsestrap/internal/artifact"
)

// LayoutFile is the optional override file name, looked up in the working
// directory. When absent, [Default] is used as-is.
const LayoutFile = "og-layout.toml"

// Text alignment values for [TextEntry.Align].
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Font roles for [TextEntry.Role]. Each role maps to one face size.
const (
	RoleTitle    = "title"
	RoleSubtitle = "subtitle"
	RoleTagline  = "tagline"
	RoleFeature  = "feature"
)

// ///////////////////////////////////////////////
// Layout Types
// ///////////////////////////////////////////////

// Layout is the top-level image description.
type Layout struct {
	// Canvas holds the output dimensions and base fill color.
	Canvas CanvasConfig `toml:"canvas"`
	// Gradient holds the vertical background gradient parameters.
	Gradient GradientConfig `toml:"gradient"`
	// Mascot holds the mascot bitmap placement settings.
	Mascot MascotConfig `toml:"mascot"`
	// Text lists the strings drawn onto the canvas.
	Text []TextEntry `toml:"text"`
	// Font holds the font file path and per-role point sizes.
	Font FontConfig `toml:"font"`
	// Output is the PNG file name written to the working directory.
	Output string `toml:"output"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// CanvasConfig holds the canvas dimensions and base color.
type CanvasConfig struct {
	// Width is the canvas width in pixels.
	Width int `toml:"width"`
	// Height is the canvas height in pixels.
	Height int `toml:"height"`
	// Background is the base fill hex color (e.g. "#4a4554").
	Background string `toml:"background"`
}

// GradientConfig describes the vertical gradient painted over the base fill.
// The red channel is interpolated from Top at y=0 to Bottom at y=height;
// green and blue are derived from the interpolated value by fixed offsets.
// Derived channels are clamped to the 0-255 range.
type GradientConfig struct {
	// Top is the red channel value at the top scanline.
	Top int `toml:"top"`
	// Bottom is the red channel value at the bottom scanline.
	Bottom int `toml:"bottom"`
	// GreenOffset is added to the interpolated value for the green channel.
	GreenOffset int `toml:"green_offset"`
	// BlueOffset is added to the interpolated value for the blue channel.
	BlueOffset int `toml:"blue_offset"`
}

// MascotConfig holds the mascot bitmap placement settings.
type MascotConfig struct {
	// File is the mascot image path, relative to the working directory.
	// The mascot step is skipped when the file does not exist.
	File string `toml:"file"`
	// Size is the square edge length the mascot is resized to.
	Size int `toml:"size"`
	// X, Y is the canvas offset the resized mascot is pasted at.
	X int `toml:"x"`
	Y int `toml:"y"`
}

// TextEntry is one string drawn onto the canvas.
type TextEntry struct {
	// Text is the literal string to draw.
	Text string `toml:"text"`
	// Role selects the font face: "title", "subtitle", "tagline", or "feature".
	Role string `toml:"role"`
	// Color is the fill hex color.
	Color string `toml:"color"`
	// X, Y anchor the string. Y is the top edge of the ascender. For left
	// alignment X is the left edge; for right alignment X is the right edge.
	X int `toml:"x"`
	Y int `toml:"y"`
	// Align is "left" or "right". Empty means left.
	Align string `toml:"align,omitempty"`
}

// FontConfig holds the font file path and per-role point sizes at 72 DPI.
type FontConfig struct {
	// Path is the preferred font file. When unreadable, platform font
	// directories are searched, then the built-in bitmap face is used.
	Path string `toml:"path"`
	// Per-role point sizes.
	TitleSize    int `toml:"title_size"`
	SubtitleSize int `toml:"subtitle_size"`
	TaglineSize  int `toml:"tagline_size"`
	FeatureSize  int `toml:"feature_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File is an optional log file path; empty logs to stderr.
	File string `toml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Layout
// ///////////////////////////////////////////////

// Default returns the layout of the shipped Horsestrap OG image.
func Default() *Layout {
	return &Layout{
		Canvas: CanvasConfig{
			Width:      1200,
			Height:     630,
			Background: "#4a4554",
		},
		Gradient: GradientConfig{
			Top:         0x4a,
			Bottom:      0x3a,
			GreenOffset: -10,
			BlueOffset:  20,
		},
		Mascot: MascotConfig{
			File: "horsestrap-mascot.png",
			Size: 280,
			X:    100,
			Y:    175,
		},
		Text: []TextEntry{
			{Text: "HORSESTRAP", Role: RoleTitle, Color: "#f5f5f0", X: 450, Y: 180},
			{Text: "The Anti-Framework Framework", Role: RoleSubtitle, Color: "#b8b8c0", X: 450, Y: 280},
			{Text: "Zero-config deployment for .NET Umbraco CMS", Role: RoleTagline, Color: "#999999", X: 450, Y: 330},
			{Text: "Fresh Ubuntu to live site in 2 minutes", Role: RoleTagline, Color: "#999999", X: 450, Y: 360},
			{Text: "🚀 2-Min Deploy    🖥️ CMS Ready    ⚡ Auto SSL", Role: RoleFeature, Color: "#f5f5f0", X: 450, Y: 410},
			{Text: "No horse shit, just results. 🐴", Role: RoleFeature, Color: "#999999", X: 1160, Y: 600, Align: AlignRight},
		},
		Font: FontConfig{
			Path:         "/System/Library/Fonts/Arial.ttf",
			TitleSize:    72,
			SubtitleSize: 28,
			TaglineSize:  24,
			FeatureSize:  18,
		},
		Output: "horsestrap-og-image.png",
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// SizeFor returns the point size configured for a font role.
// Unknown roles get the feature size.
func (f FontConfig) SizeFor(role string) int {
	switch role {
	case RoleTitle:
		return f.TitleSize
	case RoleSubtitle:
		return f.SubtitleSize
	case RoleTagline:
		return f.TaglineSize
	default:
		return f.FeatureSize
	}
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads the layout override file from dir/og-layout.toml.
// If the file doesn't exist, returns Default.
func Load(dir string) (*Layout, error) {
	path := filepath.Join(dir, LayoutFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read layout file: %w", err)
	}

	l := Default()
	// Table arrays replace the defaults wholesale, so an override that
	// declares any [[text]] entry must declare all of them.
	l.Text = nil
	if err := toml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(l.Text) == 0 {
		l.Text = Default().Text
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validate layout: %w", err)
	}
	return l, nil
}

// Save writes the layout to disk as TOML using atomic file write.
func (l *Layout) Save(path string) error {
	var buf strings.Builder
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return artifact.Write(path, []byte(buf.String()), 0o644)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// validLogLevels is the set of accepted log level strings.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that all layout values are within acceptable ranges.
func (l *Layout) Validate() error {
	if l.Canvas.Width <= 0 || l.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", l.Canvas.Width, l.Canvas.Height)
	}
	if _, err := ParseHexColor(l.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}

	if l.Mascot.Size <= 0 {
		return fmt.Errorf("mascot size must be positive, got %d", l.Mascot.Size)
	}
	if l.Mascot.File == "" {
		return fmt.Errorf("mascot file must not be empty")
	}

	for i, e := range l.Text {
		switch e.Role {
		case RoleTitle, RoleSubtitle, RoleTagline, RoleFeature:
		default:
			return fmt.Errorf("text[%d]: invalid role %q: must be title, subtitle, tagline, or feature", i, e.Role)
		}
		switch e.Align {
		case "", AlignLeft, AlignRight:
		default:
			return fmt.Errorf("text[%d]: invalid align %q: must be left or right", i, e.Align)
		}
		if _, err := ParseHexColor(e.Color); err != nil {
			return fmt.Errorf("text[%d]: %w", i, err)
		}
	}

	for _, size := range []int{l.Font.TitleSize, l.Font.SubtitleSize, l.Font.TaglineSize, l.Font.FeatureSize} {
		if size <= 0 {
			return fmt.Errorf("font sizes must be positive")
		}
	}

	if l.Output == "" {
		return fmt.Errorf("output file must not be empty")
	}

	if !validLogLevels[strings.ToLower(l.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", l.Log.Level)
	}
	if l.Log.File != "" && l.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0 when log.file is set, got %d", l.Log.MaxSizeMB)
	}

	return nil
}
