package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"mousefx/internal/firework"
	"mousefx/internal/overlay"
	"mousefx/internal/termview"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML effect config")
		style      = flag.String("style", "", "style name (overrides config)")
		term       = flag.Bool("term", false, "preview in the terminal instead of a desktop overlay")
		windowed   = flag.Bool("windowed", false, "decorated opaque window instead of a transparent overlay")
		width      = flag.Int("width", 0, "overlay width (0 = primary monitor)")
		height     = flag.Int("height", 0, "overlay height (0 = primary monitor)")
		volume     = flag.Float64("volume", 1, "sound volume, 0 mutes")
		list       = flag.Bool("list", false, "list styles and exit")
	)
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *list {
		for _, name := range firework.AvailableStyles() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(*configPath, *style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mousefx: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[mousefx] style %q seed %d", cfg.Style, cfg.Seed)

	if *term {
		err = termview.Run(cfg, termview.Options{Volume: *volume})
	} else {
		err = overlay.Run(cfg, overlay.Options{
			Width:    *width,
			Height:   *height,
			Windowed: *windowed,
			Volume:   *volume,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mousefx: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path (or the defaults), applies the style flag and picks a
// seed: MOUSEFX_SEED wins, then the config, then the clock.
func loadConfig(path, style string) (*firework.Config, error) {
	var cfg *firework.Config
	if path != "" {
		c, err := firework.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		d := firework.DefaultConfig()
		cfg = &d
	}

	if style != "" {
		if !firework.IsStyleName(style) {
			return nil, fmt.Errorf("%w: %q", firework.ErrUnknownStyle, style)
		}
		cfg.Style = style
	}

	if s := os.Getenv("MOUSEFX_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MOUSEFX_SEED: %w", err)
		}
		cfg.Seed = v
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
