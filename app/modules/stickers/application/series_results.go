package stickerservice

import (
	"context"
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	rankingdomain "github.com/ksicht/standings/app/modules/ranking/domain"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/results"
)

type (
	resultsPayload = *stickerevents.SeriesResultsRetrievedPayloadV1
	resultsFailed  = *stickerevents.SeriesResultsFailedPayloadV1
)

// SeriesRanking is a ranked Series together with the people behind it.
type SeriesRanking struct {
	Results rankingdomain.Results
	// GradeSeries are all Series of the Grade.
	GradeSeries  []competitiondomain.Series
	Participants map[competitiondomain.ParticipantID]competitiondomain.Participant
}

// GetSeriesResults ranks the Series cumulatively over its Grade.
func (s *StickerService) GetSeriesResults(ctx context.Context, seriesID competitiondomain.SeriesID, requirePublished bool) (SeriesResultsResult, error) {
	return withTelemetry(s, ctx, "GetSeriesResults", seriesID, func(ctx context.Context) (SeriesResultsResult, error) {
		fail := func(err error) SeriesResultsResult {
			return results.FailureResult[resultsPayload](&stickerevents.SeriesResultsFailedPayloadV1{
				SeriesID: seriesID,
				Reason:   err.Error(),
			})
		}

		series, grade, err := s.loadSeries(ctx, seriesID)
		if err != nil {
			if isNotFound(err) {
				return fail(err), nil
			}
			return SeriesResultsResult{}, err
		}
		if requirePublished && !series.ResultsPublished {
			return fail(fmt.Errorf("%w: %s", ErrResultsNotPublished, seriesID)), nil
		}

		ranking, err := s.rankSeries(ctx, *series, *grade)
		if err != nil {
			return SeriesResultsResult{}, err
		}

		return results.SuccessResult[resultsPayload, resultsFailed](toResultsPayload(ranking)), nil
	})
}

// rankSeries loads the Grade and ranks the Series, skipping inactive Applications.
func (s *StickerService) rankSeries(ctx context.Context, series competitiondomain.Series, grade competitiondomain.Grade) (SeriesRanking, error) {
	snap, err := s.repo.LoadGradeSnapshot(ctx, nil, grade)
	if err != nil {
		return SeriesRanking{}, fmt.Errorf("failed to load grade: %w", err)
	}

	res := rankingdomain.Calculate(rankingdomain.Input{
		Series:          series,
		GradeSeries:     snap.Series,
		Tasks:           snap.Tasks,
		Applications:    snap.Applications,
		Submissions:     snap.Submissions,
		ExcludeInactive: true,
	})

	ids := make([]competitiondomain.ParticipantID, len(res.Entries))
	for i, e := range res.Entries {
		ids[i] = e.Application.ParticipantID
	}
	participants, err := s.repo.ListParticipants(ctx, nil, ids)
	if err != nil {
		return SeriesRanking{}, fmt.Errorf("failed to list participants: %w", err)
	}

	byID := make(map[competitiondomain.ParticipantID]competitiondomain.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}
	return SeriesRanking{Results: res, GradeSeries: snap.Series, Participants: byID}, nil
}

func toResultsPayload(r SeriesRanking) *stickerevents.SeriesResultsRetrievedPayloadV1 {
	out := &stickerevents.SeriesResultsRetrievedPayloadV1{
		SeriesID: r.Results.Series.ID,
		Number:   r.Results.Series.Number,
		MaxScore: r.Results.MaxScore.String(),
		Tasks:    taskLabels(r),
		Rows:     make([]stickerevents.ResultRow, len(r.Results.Entries)),
	}
	for i, e := range r.Results.Entries {
		p := r.Participants[e.Application.ParticipantID]
		scores := make([]string, len(e.Scores))
		for j, sc := range e.Scores {
			scores[j] = scoreCell(sc)
		}
		out.Rows[i] = stickerevents.ResultRow{
			Rank:          e.Rank,
			ApplicationID: e.Application.ID,
			Participant:   p.FullName(),
			School:        p.School,
			Scores:        scores,
			Total:         e.Total.String(),
		}
	}
	return out
}

// taskLabels names the counted tasks "<series>.<task>".
func taskLabels(r SeriesRanking) []string {
	ordinals := make(map[competitiondomain.SeriesID]int, len(r.GradeSeries))
	for _, s := range r.GradeSeries {
		ordinals[s.ID] = s.Number
	}
	labels := make([]string, len(r.Results.Tasks))
	for i, t := range r.Results.Tasks {
		if n, ok := ordinals[t.SeriesID]; ok {
			labels[i] = fmt.Sprintf("%d.%d", n, t.Number)
			continue
		}
		labels[i] = fmt.Sprintf("%d", t.Number)
	}
	return labels
}

// scoreCell renders one task score; "-" marks a missing submission.
func scoreCell(sc rankingdomain.TaskScore) string {
	switch {
	case !sc.Submitted:
		return "-"
	case !sc.Graded:
		return "?"
	}
	return sc.Score.String()
}
