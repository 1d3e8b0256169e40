package stickerhandlers

import (
	"context"

	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/handlerwrapper"
)

// Handlers handles sticker module events.
type Handlers interface {
	HandleResolveStickersRequest(ctx context.Context, payload *stickerevents.StickersResolveRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSeriesResultsRequest(ctx context.Context, payload *stickerevents.SeriesResultsRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
