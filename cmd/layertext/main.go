// Command layertext renders a string as layered, shadowed text to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/layertext"
	"github.com/gogpu/layertext/text"
)

func main() {
	var (
		str     = flag.String("text", "SUPER", "text to render")
		font    = flag.String("font", "", "TTF/OTF font file (default: embedded Go Bold)")
		size    = flag.Float64("size", 80, "font size in points")
		fg      = flag.String("color", "#70E4E9", "text color (hex)")
		back    = flag.String("back", "#E356A2", "back layer color (hex)")
		middle  = flag.String("middle", "#000154", "middle layer color (hex)")
		scale   = flag.Float64("scale", 1, "device pixels per point")
		shaper  = flag.String("shaper", "gotext", "text shaper: gotext or builtin")
		output  = flag.String("o", "layertext.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	layertext.SetLogger(logger)

	cfg := config{
		text:   *str,
		font:   *font,
		size:   *size,
		fg:     *fg,
		back:   *back,
		middle: *middle,
		scale:  *scale,
		shaper: *shaper,
		output: *output,
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	text   string
	font   string
	size   float64
	fg     string
	back   string
	middle string
	scale  float64
	shaper string
	output string
}

func run(cfg config, logger *slog.Logger) error {
	source, err := loadFont(cfg.font, logger)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	shaper, err := newShaper(cfg.shaper)
	if err != nil {
		return err
	}

	colors := make([]layertext.RGBA, 3)
	for i, hex := range []string{cfg.fg, cfg.back, cfg.middle} {
		if colors[i], err = layertext.ParseHex(hex); err != nil {
			return err
		}
	}

	img, err := layertext.Render(cfg.text, source.Face(cfg.size), colors[0],
		layertext.WithBackColor(colors[1]),
		layertext.WithMiddleColor(colors[2]),
		layertext.WithRenderScale(cfg.scale),
		layertext.WithShaper(shaper),
	)
	if err != nil {
		return err
	}

	if err := savePNG(cfg.output, img); err != nil {
		return err
	}
	logger.Info("saved", "file", cfg.output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// loadFont loads the font at path, falling back to Go Bold when path is
// empty or cannot be loaded.
func loadFont(path string, logger *slog.Logger) (*text.FontSource, error) {
	if path != "" {
		source, err := text.NewFontSourceFromFile(path)
		if err == nil {
			return source, nil
		}
		logger.Warn("font not loaded, using Go Bold", "font", path, "err", err)
	}
	return text.NewFontSource(gobold.TTF)
}

func newShaper(name string) (text.Shaper, error) {
	switch name {
	case "gotext":
		return text.NewGoTextShaper(), nil
	case "builtin":
		return &text.BuiltinShaper{}, nil
	default:
		return nil, fmt.Errorf("unknown shaper %q", name)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
