package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/histplot"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/huffman"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/log"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/ppm"
	"github.com/benbjohnson/clock"
)

const _successMessage = "Compression completed successfully."

type app struct {
	Log    *log.Logger // optional
	Stdout io.Writer
	Clock  clock.Clock // optional
}

func (app *app) init() {
	if app.Log == nil {
		app.Log = log.Discard
	}
	if app.Clock == nil {
		app.Clock = clock.New()
	}
}

func (app *app) Run(cfg *config) error {
	app.init()
	start := app.Clock.Now()

	img, err := ppm.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	app.Log.Debug("loaded image",
		"path", cfg.Input, "width", img.Width, "height", img.Height)

	var res *huffman.Result
	err = writeFileAtomic(cfg.Output, func(w io.Writer) (err error) {
		res, err = huffman.Compress(w, img, huffman.CompressOptions{
			Format: cfg.Format(),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("compress %q: %w", cfg.Input, err)
	}

	if len(cfg.Histogram) > 0 {
		chart := histplot.Render(&res.Histogram, histplot.DefaultHeight)
		if err := ppm.WriteFile(cfg.Histogram, chart); err != nil {
			return fmt.Errorf("write histogram: %w", err)
		}
	}

	app.Log.Debug("compressed image",
		"output", cfg.Output,
		"format", cfg.Format().String(),
		"codes", res.Table.Len(),
		"symbols", res.Stats.Symbols,
		"bytes", res.Stats.Bytes,
		log.OmitEmpty(slog.String, "histogram", cfg.Histogram),
		"elapsed", app.Clock.Since(start))

	if cfg.Stats {
		if err := writeReport(app.Stdout, img, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	_, err = fmt.Fprintln(app.Stdout, _successMessage)
	return err
}
