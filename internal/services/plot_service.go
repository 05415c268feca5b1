package services

import (
	"bytes"
	"fmt"
	"image/color"

	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
)

// PNG chart names served by the charts endpoint.
const (
	ChartDailyRevenuePNG = "daily-revenue.png"
	ChartCityRevenuePNG  = "city-revenue.png"
	ChartCabTypesPNG     = "cab-types.png"
)

var brandColor = color.RGBA{R: 10, G: 61, B: 98, A: 255}

// PlotService renders dashboard charts as PNG images.
type PlotService struct {
	RequestID string
}

// Render draws the named chart for d.
func (s PlotService) Render(name string, d models.Dashboard) ([]byte, error) {
	var (
		p   *plot.Plot
		err error
	)
	switch name {
	case ChartDailyRevenuePNG:
		p, err = dailyRevenuePlot(d.DailyRevenue)
	case ChartCityRevenuePNG:
		spec := CityRevenueChart(d.CityRevenue)
		p, err = barPlot(spec.Title, "Revenue", spec.Labels, spec.Values)
	case ChartCabTypesPNG:
		spec := CabTypeChart(d.CabTypeCount)
		p, err = barPlot(spec.Title, "Bookings", spec.Labels, spec.Values)
	default:
		return nil, UnknownPlot(name)
	}
	if err != nil {
		return nil, err
	}

	w, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "plot", "render", fmt.Sprintf("chart=%s bytes=%d", name, buf.Len()))
	return buf.Bytes(), nil
}

// IsPlotName reports whether name is one of the PNG charts Render knows.
func IsPlotName(name string) bool {
	switch name {
	case ChartDailyRevenuePNG, ChartCityRevenuePNG, ChartCabTypesPNG:
		return true
	}
	return false
}

func UnknownPlot(name string) error {
	return domain.NotFoundError{Resource: fmt.Sprintf("chart %q", name)}
}

func dailyRevenuePlot(rows []models.DailyRevenue) (*plot.Plot, error) {
	spec := DailyRevenueChart(rows)

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = models.ColTripDate
	p.Y.Label.Text = models.ColFareAmount

	points := make(plotter.XYs, len(spec.Y))
	for i, y := range spec.Y {
		points[i].X = float64(i)
		points[i].Y = y
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return nil, err
	}
	line.Color = brandColor
	line.Width = vg.Points(2)
	scatter.Shape = draw.CircleGlyph{}
	scatter.Color = brandColor

	p.Add(plotter.NewGrid(), line, scatter)
	p.NominalX(spec.X...)
	return p, nil
}

func barPlot(title, yLabel string, labels []string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.Color = brandColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(plotter.NewGrid(), bars)
	p.NominalX(labels...)
	return p, nil
}
