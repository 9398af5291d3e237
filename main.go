package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-faster/errors"

	"vitrine/app"
	"vitrine/hal"
	"vitrine/internal/config"
	"vitrine/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var headless hal.HeadlessConfig
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.ProductsURL, "url", cfg.ProductsURL, "Product API URL.")
	flag.Func("spacing", "Distance between items along X.", func(s string) error {
		var v float32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		cfg.ItemSpacing = v
		return nil
	})
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		log := obs.NewLogger(h.Logger(), obs.ParseLevel(cfg.LogLevel))
		return app.NewWithContext(ctx, h, cfg, log)
	}

	if headless.Enabled {
		headless.Width, headless.Height = cfg.Width, cfg.Height
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
