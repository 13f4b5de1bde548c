// pitchreport renders static heat-map exports from match tracking data:
// an interactive HTML chart and a PNG snapshot, plus a stats summary
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lixenwraith/pitchtrace/heat"
	"github.com/lixenwraith/pitchtrace/match"
	"github.com/lixenwraith/pitchtrace/render"
	"github.com/lixenwraith/pitchtrace/track"
)

// CLI defines the command-line interface
type CLI struct {
	Data   string `short:"d" help:"Match data JSON path" xor:"input"`
	Demo   bool   `help:"Use a synthetic demo match" xor:"input"`
	Out    string `short:"o" default:"." help:"Output directory"`
	GridW  int    `default:"40" help:"Heat grid columns"`
	GridH  int    `default:"26" help:"Heat grid rows"`
	Entity string `help:"Restrict the report to one entity id"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pitchreport"),
		kong.Description("Static heat-map reports from tracking data"))

	if err := run(cli); err != nil {
		ctx.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
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

	samples := gatherSamples(m, cli.Entity)

	var agg heat.Aggregator
	g := agg.Aggregate(samples, cli.GridW, cli.GridH)

	htmlPath := filepath.Join(cli.Out, "heat.html")
	if err := writeHTML(g, m.Title, htmlPath); err != nil {
		return fmt.Errorf("html report: %w", err)
	}
	pngPath := filepath.Join(cli.Out, "heat.png")
	if err := writePNG(g, m.Title, pngPath); err != nil {
		return fmt.Errorf("png report: %w", err)
	}

	printSummary(samples, g)
	fmt.Printf("wrote %s and %s\n", htmlPath, pngPath)
	return nil
}

// gatherSamples flattens the roster's samples, optionally filtered to one entity
func gatherSamples(m *match.Match, entityID string) []track.Sample {
	var out []track.Sample
	for _, e := range m.Entities {
		if entityID != "" && e.ID != entityID {
			continue
		}
		out = append(out, e.Samples...)
	}
	return out
}

// rampHex samples the engine's heat ramp as hex stops for the chart's
// visual map, so both front ends share one color scale
func rampHex() []string {
	out := make([]string, 0, 6)
	for i := 0; i <= 5; i++ {
		c := render.Ramp(float64(i) / 5)
		out = append(out, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return out
}

func writeHTML(g *heat.Grid, title, path string) error {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Pitch Heat Map",
			Theme:     "dark",
			Width:     "900px",
			Height:    "620px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pitch Heat Map",
			Subtitle: fmt.Sprintf("%s, %dx%d cells", title, g.Width, g.Height),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(g.Max),
			InRange:    &opts.VisualMapInRange{Color: rampHex()},
		}),
	)

	data := make([]opts.HeatMapData, 0, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			v := g.At(row, col)
			if v == 0 {
				continue
			}
			// Chart Y grows upward; grid rows grow downward
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{col, g.Height - 1 - row, v},
			})
		}
	}
	hm.AddSeries("occupancy", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return hm.Render(f)
}

// plotGrid adapts heat.Grid to gonum/plot's GridXYZ
type plotGrid struct {
	g *heat.Grid
}

func (p plotGrid) Dims() (int, int)     { return p.g.Width, p.g.Height }
func (p plotGrid) X(c int) float64      { return float64(c) }
func (p plotGrid) Y(r int) float64      { return float64(r) }
func (p plotGrid) Z(c, r int) float64   { return p.g.At(p.g.Height-1-r, c) }

func writePNG(g *heat.Grid, title, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pitch Heat Map: %s", title)
	p.X.Label.Text = "Field X"
	p.Y.Label.Text = "Field Y"

	hm := plotter.NewHeatMap(plotGrid{g: g}, palette.Heat(12, 1))
	p.Add(hm)

	return p.Save(9*vg.Inch, 6*vg.Inch, path)
}

func printSummary(samples []track.Sample, g *heat.Grid) {
	if len(samples) == 0 {
		fmt.Println("no samples; empty report")
		return
	}

	weights := make([]float64, len(samples))
	maxW := 0.0
	for i, s := range samples {
		weights[i] = s.Weight()
		if weights[i] > maxW {
			maxW = weights[i]
		}
	}

	fmt.Printf("samples: %d\n", len(samples))
	fmt.Printf("avg intensity: %.3f  max: %.3f\n", stat.Mean(weights, nil), maxW)
	fmt.Printf("coverage: %.1f%% of reference grid\n", heat.Coverage(samples))
	fmt.Printf("hottest cell: %.3f accumulated\n", g.Max)
}
