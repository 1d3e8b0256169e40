package stickerservice

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	rankingdomain "github.com/ksicht/standings/app/modules/ranking/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ProgressPoint is an Application's cumulative standing after one Series.
type ProgressPoint struct {
	Series   int
	Score    competitiondomain.Points
	MaxScore competitiondomain.Points
}

// ScoreProgressChart charts the Application over the Series of its Grade up
// to and including seriesID.
func (s *StickerService) ScoreProgressChart(ctx context.Context, seriesID competitiondomain.SeriesID, applicationID competitiondomain.ApplicationID) ([]byte, error) {
	series, grade, err := s.loadSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	snap, err := s.repo.LoadGradeSnapshot(ctx, nil, *grade)
	if err != nil {
		return nil, fmt.Errorf("failed to load grade: %w", err)
	}
	if !slices.ContainsFunc(snap.Applications, func(a competitiondomain.Application) bool { return a.ID == applicationID }) {
		return nil, fmt.Errorf("%w: %s", ErrApplicationNotFound, applicationID)
	}

	ordered := slices.Clone(snap.Series)
	slices.SortFunc(ordered, func(a, b competitiondomain.Series) int { return cmp.Compare(a.Number, b.Number) })

	var points []ProgressPoint
	for _, gs := range ordered {
		if gs.Number > series.Number {
			break
		}
		res := rankingdomain.Calculate(rankingdomain.Input{
			Series:       gs,
			GradeSeries:  snap.Series,
			Tasks:        snap.Tasks,
			Applications: snap.Applications,
			Submissions:  snap.Submissions,
		})
		entry, ok := res.ByApplication()[applicationID]
		if !ok {
			continue
		}
		points = append(points, ProgressPoint{Series: gs.Number, Score: entry.Total, MaxScore: res.MaxScore})
	}

	return GenerateScoreProgressChart(points)
}

// GenerateScoreProgressChart produces a PNG line chart of cumulative score
// against the attainable maximum.
func GenerateScoreProgressChart(points []ProgressPoint) ([]byte, error) {
	if len(points) == 0 {
		return renderNoDataPlaceholder()
	}

	xValues := make([]float64, len(points))
	scores := make([]float64, len(points))
	maxima := make([]float64, len(points))
	top := 1.0
	for i, p := range points {
		xValues[i] = float64(p.Series)
		scores[i] = p.Score.Float64()
		maxima[i] = p.MaxScore.Float64()
		top = max(top, scores[i], maxima[i])
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Série",
			Range: &chart.ContinuousRange{
				Min: xValues[0],
				Max: max(xValues[len(xValues)-1], xValues[0]+1),
			},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  "Body",
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Maximum",
				XValues: xValues,
				YValues: maxima,
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("9e9e9e"),
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.ContinuousSeries{
				Name:    "Body",
				XValues: xValues,
				YValues: scores,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2e7d32"),
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    drawing.ColorFromHex("f9a825"),
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message on a bare canvas. Chart.Render
// rejects charts without series.
func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Žádné odevzdané úlohy"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
