// ogimage renders the Horsestrap Open Graph image.
//
// It composites a gradient background, the mascot bitmap (when present in
// the working directory), and the fixed text block, then writes
// horsestrap-og-image.png. If composition fails for any reason the mascot
// file is copied verbatim to the output path as a degraded fallback; only a
// failure of that copy exits non-zero.
//
// Usage:
//
//	ogimage
//
// An optional og-layout.toml in the working directory overrides the built-in
// layout; without it every run uses the shipped constants.
package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mykebates/horsestrap/internal/artifact"
	"github.com/mykebates/horsestrap/internal/fonts"
	"github.com/mykebates/horsestrap/internal/layout"
	"github.com/mykebates/horsestrap/internal/logger"
	"github.com/mykebates/horsestrap/internal/render"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: resolve working directory: %v\n", err)
		os.Exit(1)
	}
	if err := run(dir, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run drives one generation pass rooted at dir. Status lines go to out.
// Any composition error degrades to the fallback copy; run only returns an
// error when the fallback itself fails.
func run(dir string, out io.Writer) error {
	l, layoutErr := layout.Load(dir)
	if layoutErr != nil {
		l = layout.Default()
	}

	log, logCloser := logger.New(os.Stderr, l.Log)
	defer logCloser.Close()
	slog.SetDefault(log)

	composeErr := layoutErr
	if composeErr == nil {
		composeErr = compose(dir, l, log)
	}

	if composeErr == nil {
		fmt.Fprintf(out, "OG image created successfully: %s\n", l.Output)
		return nil
	}

	fmt.Fprintf(out, "Error creating OG image: %v\n", composeErr)
	fmt.Fprintln(out, "Falling back to copying mascot as OG image...")
	log.Warn("composition failed, using fallback copy", "error", composeErr)

	// The fallback is deliberately unguarded: with the mascot also missing
	// there is nothing left to produce, and the run fails loudly.
	if err := artifact.Copy(filepath.Join(dir, l.Mascot.File), filepath.Join(dir, l.Output)); err != nil {
		return fmt.Errorf("fallback copy: %w", err)
	}
	return nil
}

// compose renders and saves the OG image. The mascot step is skipped when
// the file does not exist; every other failure aborts the pass.
func compose(dir string, l *layout.Layout, log *slog.Logger) error {
	faces := fonts.Resolve(l.Font)
	defer faces.Close()
	if faces.Fallback {
		log.Debug("scalable font unavailable, using built-in bitmap face")
	} else {
		log.Debug("resolved font", "source", faces.Source)
	}

	var mascot image.Image
	mascotPath := filepath.Join(dir, l.Mascot.File)
	if _, err := os.Stat(mascotPath); err == nil {
		m, err := render.OpenMascot(mascotPath)
		if err != nil {
			return err
		}
		mascot = m
	} else {
		log.Debug("mascot not found, skipping", "path", mascotPath)
	}

	img, err := render.Compose(l, mascot, faces)
	if err != nil {
		return err
	}

	data, err := render.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := artifact.Write(filepath.Join(dir, l.Output), data, 0o644); err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	log.Info("image written", "file", l.Output,
		"width", l.Canvas.Width, "height", l.Canvas.Height, "bytes", len(data))
	return nil
}
