package stickerservice

import (
	"context"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/results"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks

// ResolveResult is the outcome of ResolveStickers.
type ResolveResult = results.OperationResult[*stickerevents.StickersResolvedPayloadV1, *stickerevents.StickersResolveFailedPayloadV1]

// SeriesResultsResult is the outcome of GetSeriesResults.
type SeriesResultsResult = results.OperationResult[*stickerevents.SeriesResultsRetrievedPayloadV1, *stickerevents.SeriesResultsFailedPayloadV1]

// Service defines the sticker and standings operations.
type Service interface {
	// ResolveStickers evaluates, merges and persists the stickers of a Series.
	ResolveStickers(ctx context.Context, seriesID competitiondomain.SeriesID) (ResolveResult, error)

	// GetSeriesResults ranks a Series. With requirePublished, unpublished
	// results are reported as a failure.
	GetSeriesResults(ctx context.Context, seriesID competitiondomain.SeriesID, requirePublished bool) (SeriesResultsResult, error)

	// ExportSeriesResults renders the ranking of a Series as an XLSX workbook.
	ExportSeriesResults(ctx context.Context, seriesID competitiondomain.SeriesID) ([]byte, error)

	// ScoreProgressChart renders an Application's cumulative score across the
	// Series of its Grade as a PNG.
	ScoreProgressChart(ctx context.Context, seriesID competitiondomain.SeriesID, applicationID competitiondomain.ApplicationID) ([]byte, error)

	// SeriesEnvelopes returns envelope data for participants active in a Series.
	SeriesEnvelopes(ctx context.Context, seriesID competitiondomain.SeriesID) ([]Envelope, error)

	// ListStickers returns the sticker catalogue.
	ListStickers(ctx context.Context) ([]competitiondomain.Sticker, error)
}
