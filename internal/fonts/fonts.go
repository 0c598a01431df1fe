// Package fonts resolves the scalable font used for the OG image text.
//
// Resolution chain:
//  1. The configured font file path (WOFF2 is converted to SFNT first)
//  2. The first matching family found in the platform font directories
//  3. The built-in bitmap face, losing per-role size differentiation
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	tdfont "github.com/tdewolff/font"
	"github.com/mykebates/horsestrap/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FaceSet holds one face per text role. When Fallback is true all four
// fields alias the built-in bitmap face.
type FaceSet struct {
	Title    font.Face
	Subtitle font.Face
	Tagline  font.Face
	Feature  font.Face
	// Fallback reports that the built-in bitmap face was substituted.
	Fallback bool
	// Source is the font file the set was built from, empty for the fallback.
	Source string
}

// FaceFor returns the face for a font role. Unknown roles get the feature face.
func (s *FaceSet) FaceFor(role string) font.Face {
	switch role {
	case layout.RoleTitle:
		return s.Title
	case layout.RoleSubtitle:
		return s.Subtitle
	case layout.RoleTagline:
		return s.Tagline
	default:
		return s.Feature
	}
}

// Close releases the underlying faces.
func (s *FaceSet) Close() error {
	var firstErr error
	for _, f := range []font.Face{s.Title, s.Subtitle, s.Tagline, s.Feature} {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Resolve builds a FaceSet for the configured font. It never fails: any
// problem along the chain ends at the built-in bitmap face, accepting that
// the fallback renders every role at one fixed size.
func Resolve(cfg layout.FontConfig) *FaceSet {
	source := cfg.Path
	data, err := loadFontFile(cfg.Path)
	if err != nil {
		if alt, ok := findSystemFont(); ok {
			source = alt
			data, err = loadFontFile(alt)
		}
	}
	if err != nil {
		return fallbackSet()
	}

	set, err := FromBytes(data, cfg)
	if err != nil {
		return fallbackSet()
	}
	set.Source = source
	return set
}

// FromBytes builds a FaceSet from raw SFNT font data at the configured sizes.
func FromBytes(data []byte, cfg layout.FontConfig) (*FaceSet, error) {
	otFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	set := &FaceSet{}
	for _, role := range []struct {
		size int
		dst  *font.Face
	}{
		{cfg.TitleSize, &set.Title},
		{cfg.SubtitleSize, &set.Subtitle},
		{cfg.TaglineSize, &set.Tagline},
		{cfg.FeatureSize, &set.Feature},
	} {
		face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
			Size:    float64(role.size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			set.closePartial()
			return nil, fmt.Errorf("create %dpt face: %w", role.size, err)
		}
		*role.dst = face
	}
	return set, nil
}

// closePartial closes whatever faces were created before a constructor error.
func (s *FaceSet) closePartial() {
	for _, f := range []font.Face{s.Title, s.Subtitle, s.Tagline, s.Feature} {
		if f != nil {
			f.Close()
		}
	}
}

// fallbackSet returns the built-in bitmap face for every role.
func fallbackSet() *FaceSet {
	return &FaceSet{
		Title:    basicfont.Face7x13,
		Subtitle: basicfont.Face7x13,
		Tagline:  basicfont.Face7x13,
		Feature:  basicfont.Face7x13,
		Fallback: true,
	}
}

// loadFontFile reads a font file, converting WOFF2 to SFNT when needed.
func loadFontFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isWOFF2(path, data) {
		sfnt, err := tdfont.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("convert woff2 to sfnt: %w", err)
		}
		return sfnt, nil
	}
	return data, nil
}

// isWOFF2 checks whether a font file is WOFF2 by extension or magic bytes.
// WOFF2 magic: 0x774F4632 ("wOF2")
func isWOFF2(path string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(path), ".woff2") {
		return true
	}
	if len(data) >= 4 && data[0] == 'w' && data[1] == 'O' && data[2] == 'F' && data[3] == '2' {
		return true
	}
	return false
}

// fontFamilies are probed in order when the configured path is unreadable.
var fontFamilies = []string{
	"Arial",
	"Helvetica",
	"DejaVuSans",
	"LiberationSans-Regular",
}

// fontSearchDirs are the platform font directories probed when the
// configured path is unreadable. A package variable so tests can point the
// search at a controlled directory.
var fontSearchDirs = defaultFontDirs()

func defaultFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts"}
	case "windows":
		return []string{`C:\Windows\Fonts`}
	default:
		return []string{"/usr/share/fonts", "/usr/local/share/fonts"}
	}
}

// findSystemFont globs the platform font directories for a known family.
// Returns the first match in family preference order.
func findSystemFont() (string, bool) {
	for _, family := range fontFamilies {
		for _, dir := range fontSearchDirs {
			pattern := filepath.ToSlash(filepath.Join(dir, "**", family+".ttf"))
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil || len(matches) == 0 {
				continue
			}
			return matches[0], true
		}
	}
	return "", false
}
