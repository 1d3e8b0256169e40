package stickerhandlers

import (
	"context"

	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/observability/attr"
	"github.com/ksicht/standings/app/shared/handlerwrapper"
)

// HandleResolveStickersRequest resolves the stickers of a Series. Handled
// failures become a failure event; infrastructure errors are returned so the
// message is retried.
func (h *StickerHandlers) HandleResolveStickersRequest(
	ctx context.Context,
	payload *stickerevents.StickersResolveRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	result, err := h.service.ResolveStickers(ctx, payload.SeriesID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic:   stickerevents.StickersResolveFailedV1,
			Payload: *result.Failure,
		}}, nil
	}

	resolved := *result.Success
	h.logger.InfoContext(ctx, "Stickers resolved",
		attr.ExtractCorrelationID(ctx),
		attr.SeriesID("series_id", payload.SeriesID),
		attr.Int("assigned", resolved.Assigned),
		attr.Bool("unchanged", resolved.Unchanged),
	)
	return []handlerwrapper.Result{{Topic: stickerevents.StickersResolvedV1, Payload: resolved}}, nil
}
