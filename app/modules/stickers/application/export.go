package stickerservice

import (
	"bytes"
	"context"
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Výsledky"

// ExportSeriesResults renders the ranking of a Series, published or not.
func (s *StickerService) ExportSeriesResults(ctx context.Context, seriesID competitiondomain.SeriesID) ([]byte, error) {
	series, grade, err := s.loadSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	ranking, err := s.rankSeries(ctx, *series, *grade)
	if err != nil {
		return nil, err
	}
	return ExportResultsXLSX(ranking)
}

// ExportResultsXLSX writes one row per ranked Application: rank, name,
// school, one column per counted task and the total.
func ExportResultsXLSX(r SeriesRanking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	labels := taskLabels(r)
	header := make([]any, 0, len(labels)+4)
	header = append(header, "Pořadí", "Jméno", "Škola")
	for _, l := range labels {
		header = append(header, l)
	}
	header = append(header, "Celkem")
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range r.Results.Entries {
		p := r.Participants[e.Application.ParticipantID]
		row := make([]any, 0, len(header))
		row = append(row, e.Rank, p.FullName(), p.School)
		for _, sc := range e.Scores {
			if sc.Submitted && sc.Graded {
				row = append(row, sc.Score.Float64())
				continue
			}
			row = append(row, scoreCell(sc))
		}
		row = append(row, e.Total.Float64())

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(resultsSheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
