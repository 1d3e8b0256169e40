package stickerservice

import (
	"context"
	"errors"
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/ksicht/standings/app/observability/attr"
	"golang.org/x/sync/errgroup"
)

// BuildContext loads the target Series, its Grade and up to lookback
// preceding Grades and assembles the rule context. Grades are loaded
// concurrently on the repository's own connection.
func (s *StickerService) BuildContext(ctx context.Context, seriesID competitiondomain.SeriesID) (*stickerdomain.Context, error) {
	series, grade, err := s.loadSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}

	previous, err := s.repo.ListPrecedingGrades(ctx, nil, grade.StartDate, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("failed to list preceding grades: %w", err)
	}

	grades := append([]competitiondomain.Grade{*grade}, previous...)
	snapshots := make([]stickerdomain.GradeSnapshot, len(grades))

	g, gctx := errgroup.WithContext(ctx)
	for i, gr := range grades {
		g.Go(func() error {
			snap, err := s.repo.LoadGradeSnapshot(gctx, nil, gr)
			if err != nil {
				return fmt.Errorf("failed to load grade %s: %w", gr.ID, err)
			}
			snapshots[i] = *snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c, err := stickerdomain.AssembleContext(*series, snapshots[0], snapshots[1:]...)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Sticker context assembled",
		attr.SeriesID("series_id", seriesID),
		attr.Int("grades", len(snapshots)),
		attr.Int("applications", len(c.Current.Grade.Applications)),
		attr.Bool("last_series", c.Current.IsLastSeries),
	)
	return c, nil
}

// loadSeries resolves a Series and its Grade, mapping missing rows to the
// service's not-found errors.
func (s *StickerService) loadSeries(ctx context.Context, seriesID competitiondomain.SeriesID) (*competitiondomain.Series, *competitiondomain.Grade, error) {
	series, err := s.repo.GetSeries(ctx, nil, seriesID)
	if err != nil {
		if errors.Is(err, stickerdb.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSeriesNotFound, seriesID)
		}
		return nil, nil, fmt.Errorf("failed to load series: %w", err)
	}

	grade, err := s.repo.GetGrade(ctx, nil, series.GradeID)
	if err != nil {
		if errors.Is(err, stickerdb.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrGradeNotFound, series.GradeID)
		}
		return nil, nil, fmt.Errorf("failed to load grade: %w", err)
	}

	return series, grade, nil
}

// isNotFound reports whether err is a handled missing-dependency error.
func isNotFound(err error) bool {
	return errors.Is(err, ErrSeriesNotFound) || errors.Is(err, ErrGradeNotFound)
}
