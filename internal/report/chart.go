package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

// WriteAttitudeChart writes an interactive roll/pitch line chart to path as
// a standalone HTML page.
func WriteAttitudeChart(samples []rxp.InclinationSample, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sensor attitude",
			Subtitle: fmt.Sprintf("%d inclination samples", len(samples)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "degrees"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	xs := make([]string, len(samples))
	rollData := make([]opts.LineData, len(samples))
	pitchData := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = fmt.Sprintf("%.3f", s.Time)
		rollData[i] = opts.LineData{Value: s.Roll}
		pitchData[i] = opts.LineData{Value: s.Pitch}
	}

	line.SetXAxis(xs).
		AddSeries("roll", rollData).
		AddSeries("pitch", pitchData)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("rendering attitude chart: %w", err)
	}
	return nil
}
