// Package stickerevents defines the topics and payloads of the sticker module.
package stickerevents

import (
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

const (
	// StickersResolveRequestedV1 asks for stickers of a Series to be resolved.
	StickersResolveRequestedV1 = "stickers.resolve.requested.v1"
	// StickersResolvedV1 is published after a successful resolution.
	StickersResolvedV1 = "stickers.resolved.v1"
	// StickersResolveFailedV1 is published when the Series cannot be resolved.
	StickersResolveFailedV1 = "stickers.resolve.failed.v1"

	SeriesResultsRequestedV1 = "stickers.series.results.requested.v1"
	SeriesResultsRetrievedV1 = "stickers.series.results.retrieved.v1"
	SeriesResultsFailedV1    = "stickers.series.results.failed.v1"
)

// StickersResolveRequestedPayloadV1 requests resolution of one Series.
type StickersResolveRequestedPayloadV1 struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
}

// StickersResolvedPayloadV1 reports the outcome of a resolution.
type StickersResolvedPayloadV1 struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
	// Assigned counts (application, sticker) pairs in the merged result.
	Assigned int `json:"assigned"`
	// Inserted counts rows that did not exist before.
	Inserted int `json:"inserted"`
	// Unchanged is set when the merged result matched the stored hash.
	Unchanged bool                                                              `json:"unchanged"`
	Faults    int                                                               `json:"faults"`
	Hash      string                                                            `json:"hash"`
	Stickers  map[competitiondomain.ApplicationID][]competitiondomain.StickerID `json:"stickers,omitempty"`
}

// StickersResolveFailedPayloadV1 carries a handled resolution failure.
type StickersResolveFailedPayloadV1 struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
	Reason   string                     `json:"reason"`
}

// SeriesResultsRequestedPayloadV1 requests the ranking of a Series.
type SeriesResultsRequestedPayloadV1 struct {
	SeriesID         competitiondomain.SeriesID `json:"series_id"`
	RequirePublished bool                       `json:"require_published"`
}

// ResultRow is one ranked Application.
type ResultRow struct {
	Rank          int                             `json:"rank"`
	ApplicationID competitiondomain.ApplicationID `json:"application_id"`
	Participant   string                          `json:"participant"`
	School        string                          `json:"school,omitempty"`
	Scores        []string                        `json:"scores"`
	Total         string                          `json:"total"`
}

// SeriesResultsRetrievedPayloadV1 carries the ranking of a Series.
type SeriesResultsRetrievedPayloadV1 struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
	Number   int                        `json:"number"`
	MaxScore string                     `json:"max_score"`
	Tasks    []string                   `json:"tasks"`
	Rows     []ResultRow                `json:"rows"`
}

// SeriesResultsFailedPayloadV1 carries a handled results failure.
type SeriesResultsFailedPayloadV1 struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
	Reason   string                     `json:"reason"`
}
