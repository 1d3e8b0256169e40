package stickerservice

import (
	"context"
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/observability/attr"
	"github.com/ksicht/standings/app/shared/results"
	"github.com/uptrace/bun"
)

type (
	resolvedPayload = *stickerevents.StickersResolvedPayloadV1
	resolveFailed   = *stickerevents.StickersResolveFailedPayloadV1
)

// ResolveStickers evaluates every rule for the Series, merges event and
// manual stickers and persists the union. Re-running an unchanged Series
// writes nothing.
func (s *StickerService) ResolveStickers(ctx context.Context, seriesID competitiondomain.SeriesID) (ResolveResult, error) {
	return withTelemetry(s, ctx, "ResolveStickers", seriesID, func(ctx context.Context) (ResolveResult, error) {
		c, err := s.BuildContext(ctx, seriesID)
		if err != nil {
			if isNotFound(err) {
				return results.FailureResult[resolvedPayload](&stickerevents.StickersResolveFailedPayloadV1{
					SeriesID: seriesID,
					Reason:   err.Error(),
				}), nil
			}
			return ResolveResult{}, err
		}

		eval := s.evaluator.Evaluate(ctx, c)

		window := stickerdomain.WindowFor(c)
		events, err := s.repo.ListEvents(ctx, nil, window.From, window.To)
		if err != nil {
			return ResolveResult{}, fmt.Errorf("failed to list events: %w", err)
		}

		merged := stickerdomain.MergeForSeries(c, eval, events)
		hash := stickerdomain.ComputeAssignmentHash(seriesID, merged)

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ResolveResult, error) {
			return s.persistAssignments(ctx, db, seriesID, merged, hash, len(eval.Faults))
		})
	})
}

func (s *StickerService) persistAssignments(
	ctx context.Context,
	db bun.IDB,
	seriesID competitiondomain.SeriesID,
	merged stickerdomain.Assignments,
	hash string,
	faults int,
) (ResolveResult, error) {
	payload := &stickerevents.StickersResolvedPayloadV1{
		SeriesID: seriesID,
		Assigned: merged.Count(),
		Faults:   faults,
		Hash:     hash,
		Stickers: merged,
	}

	stored, err := s.repo.GetAssignmentHash(ctx, db, seriesID)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("failed to read assignment hash: %w", err)
	}
	if stored == hash {
		s.logger.InfoContext(ctx, "Sticker assignment unchanged, skipping write",
			attr.SeriesID("series_id", seriesID),
			attr.String("hash", hash),
		)
		payload.Unchanged = true
		return results.SuccessResult[resolvedPayload, resolveFailed](payload), nil
	}

	inserted, err := s.repo.AssignStickers(ctx, db, seriesID, merged)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("failed to assign stickers: %w", err)
	}
	if err := s.repo.SaveAssignmentHash(ctx, db, seriesID, hash, merged.Count()); err != nil {
		return ResolveResult{}, fmt.Errorf("failed to save assignment hash: %w", err)
	}

	payload.Inserted = inserted
	s.metrics.RecordStickersAssigned(ctx, inserted)

	s.logger.InfoContext(ctx, "Stickers assigned",
		attr.SeriesID("series_id", seriesID),
		attr.Int("assigned", payload.Assigned),
		attr.Int("inserted", inserted),
		attr.Int("faults", faults),
	)
	return results.SuccessResult[resolvedPayload, resolveFailed](payload), nil
}
