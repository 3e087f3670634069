package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

// PlotAttitude writes a roll/pitch time-series plot to path. The image
// format follows the file extension (.png, .svg, .pdf).
func PlotAttitude(samples []rxp.InclinationSample, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Sensor attitude"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "degrees"

	roll := make(plotter.XYs, len(samples))
	pitch := make(plotter.XYs, len(samples))
	for i, s := range samples {
		roll[i].X = s.Time
		roll[i].Y = float64(s.Roll)
		pitch[i].X = s.Time
		pitch[i].Y = float64(s.Pitch)
	}

	rollLine, err := plotter.NewLine(roll)
	if err != nil {
		return fmt.Errorf("building roll series: %w", err)
	}
	rollLine.Color = color.RGBA{R: 214, G: 69, B: 65, A: 255}

	pitchLine, err := plotter.NewLine(pitch)
	if err != nil {
		return fmt.Errorf("building pitch series: %w", err)
	}
	pitchLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(rollLine, pitchLine)
	p.Legend.Add("roll", rollLine)
	p.Legend.Add("pitch", pitchLine)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving attitude plot: %w", err)
	}
	return nil
}
