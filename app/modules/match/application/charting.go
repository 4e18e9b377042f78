package matchservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

var (
	chartLineColor = drawing.Color{R: 0x1b, G: 0x4d, B: 0x3e, A: 0xff}
	chartDotColor  = drawing.Color{R: 0xc9, G: 0xa2, B: 0x27, A: 0xff}
	chartZeroColor = drawing.Color{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// RenderMomentumChart draws the match's margin history as a PNG line chart:
// x is the hole number, y the signed margin (positive toward team A), with a
// zero reference line for all square.
func (s *MatchService) RenderMomentumChart(ctx context.Context, matchID uuid.UUID) ([]byte, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status == nil {
		return renderNoDataPlaceholder()
	}
	return renderMomentumChart(match.Status.MarginHistory)
}

func renderMomentumChart(history [matchplay.Holes]matchplay.HoleMargin) ([]byte, error) {
	var xValues, yValues []float64
	for i, entry := range history {
		if !entry.Complete {
			continue
		}
		xValues = append(xValues, float64(i+1))
		yValues = append(yValues, float64(entry.Margin))
	}
	if len(xValues) == 0 {
		return renderNoDataPlaceholder()
	}

	mainSeries := chart.ContinuousSeries{
		Name:    "Margin",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: chartLineColor,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    chartDotColor,
		},
	}

	zeroSeries := chart.ContinuousSeries{
		Name:    "All Square",
		XValues: []float64{1, matchplay.Holes},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     chartZeroColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 4},
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Hole",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Margin",
		},
		Series: []chart.Series{zeroSeries, mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a raster renderer.
// chart.Chart refuses to render without at least one series, which a match
// with no completed holes does not have.
func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No holes completed yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	chart.Draw.Box(r, chart.Box{Right: width, Bottom: height}, chart.Style{
		FillColor:   chart.DefaultBackgroundColor,
		StrokeColor: chart.DefaultBackgroundColor,
		StrokeWidth: 1,
	})

	r.SetFont(font)
	r.SetFontSize(12.0)
	r.SetFontColor(chart.DefaultTextColor)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
