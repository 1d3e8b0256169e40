package stickerhandlers

import (
	"context"

	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/handlerwrapper"
)

// HandleSeriesResultsRequest returns the ranking of a Series.
func (h *StickerHandlers) HandleSeriesResultsRequest(
	ctx context.Context,
	payload *stickerevents.SeriesResultsRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	result, err := h.service.GetSeriesResults(ctx, payload.SeriesID, payload.RequirePublished)
	if err != nil {
		return []handlerwrapper.Result{{
			Topic: stickerevents.SeriesResultsFailedV1,
			Payload: &stickerevents.SeriesResultsFailedPayloadV1{
				SeriesID: payload.SeriesID,
				Reason:   err.Error(),
			},
		}}, nil
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: stickerevents.SeriesResultsFailedV1, Payload: *result.Failure}}, nil
	}
	return []handlerwrapper.Result{{Topic: stickerevents.SeriesResultsRetrievedV1, Payload: *result.Success}}, nil
}
