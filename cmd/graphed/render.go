package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/psidex/graphed/internal/config"
	"github.com/psidex/graphed/internal/editor"
	"github.com/psidex/graphed/internal/graph"
	"github.com/psidex/graphed/internal/graphs"
	"github.com/psidex/graphed/internal/host"
	"github.com/psidex/graphed/internal/surface"
	"github.com/psidex/graphed/internal/ui"
)

const screenshotTimeout = 30 * time.Second

type renderOptions struct {
	events     string
	format     string
	output     string
	screenshot bool
}

func renderCmd(ro *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay pointer events headlessly and render the result",
		Long: "Seeds the graph from config, replays the pointer events in --events (a TOML\n" +
			"file of [[event]] tables) and writes the final frame as a PNG, or the graph\n" +
			"as an echarts HTML page.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ro.load()
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cfg, log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.events, "events", "e", "", "TOML script of pointer events to replay")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "png", "output format: png or html")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "graphed", "output file name without extension")
	cmd.Flags().BoolVar(&opts.screenshot, "screenshot", false, "with --format html, also capture a PNG using headless Chrome")
	return cmd
}

func runRender(ctx context.Context, out io.Writer, cfg *config.Config, log *slog.Logger, opts *renderOptions) error {
	if opts.format != "png" && opts.format != "html" {
		return fmt.Errorf("unknown format %q, want png or html", opts.format)
	}

	g, err := graph.Seed(cfg.Seed.Points, cfg.Seed.Segments)
	if err != nil {
		return err
	}
	ed := editor.New(g,
		editor.WithHoverThreshold(cfg.Editor.HoverThreshold),
		editor.WithCheckedPlacement(cfg.Editor.CheckedPlacement),
		editor.WithLogger(log),
	)

	var events []editor.Event
	if opts.events != "" {
		events, err = editor.LoadScript(opts.events)
		if err != nil {
			return err
		}
	}

	raster := surface.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height)
	drv := host.NewDriver(ed, raster, host.WithLogger(log))
	for _, ev := range events {
		drv.Dispatch(ev)
	}
	if err := drv.Tick(); err != nil {
		return err
	}

	ui.Banner(out, "render")
	ui.Status(out, true, "replayed %d events", len(events))
	ui.Status(out, true, "%d points, %d segments", g.Len(), g.SegmentCount())

	switch opts.format {
	case "png":
		path := opts.output + ".png"
		if err := raster.SavePNG(path); err != nil {
			ui.Status(out, false, "write %s", path)
			return err
		}
		ui.Status(out, true, "wrote %s", path)
		return nil
	}

	path, err := graphs.NewECharts(cfg.Canvas.Width, cfg.Canvas.Height).RenderToFile(opts.output, g)
	if err != nil {
		ui.Status(out, false, "write %s.html", opts.output)
		return err
	}
	ui.Status(out, true, "wrote %s", path)

	if !opts.screenshot {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, screenshotTimeout)
	defer cancel()
	pngPath := opts.output + ".png"
	if err := graphs.Screenshot(ctx, path, pngPath, cfg.Canvas.Width, cfg.Canvas.Height); err != nil {
		ui.Status(out, false, "screenshot %s", pngPath)
		return err
	}
	ui.Status(out, true, "wrote %s", pngPath)
	return nil
}
