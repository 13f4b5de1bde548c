// pitchtrace renders player-tracking data as a live terminal visualization:
// heat zones, motion trails, and position markers over a scaled pitch
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lixenwraith/pitchtrace/match"
	"github.com/lixenwraith/pitchtrace/render"
)

// CLI defines the command-line interface
type CLI struct {
	Data   string  `short:"d" help:"Match data JSON path"`
	Config string  `short:"c" help:"View config TOML path"`
	Demo   bool    `help:"Run with a synthetic demo match"`
	Speed  float64 `default:"1.0" help:"Playback speed multiplier"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pitchtrace"),
		kong.Description("Terminal player-tracking visualizer"))

	if err := run(cli); err != nil {
		ctx.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	cfg := render.DefaultConfig()
	if cli.Config != "" {
		loaded, err := render.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var m *match.Match
	switch {
	case cli.Demo:
		m = match.Demo(90)
	case cli.Data != "":
		loaded, err := match.Load(cli.Data)
		if err != nil {
			return err
		}
		m = loaded
	default:
		return fmt.Errorf("no input: pass --data or --demo")
	}

	if len(m.Entities) == 0 {
		log.Println("match has no entities; showing an empty field")
	}

	viewer, err := NewViewer(m, cfg, cli.Speed)
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	return viewer.Run()
}
