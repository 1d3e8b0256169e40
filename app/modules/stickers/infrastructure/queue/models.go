package stickerqueue

import (
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// QueueName is the dedicated River queue for sticker jobs.
const QueueName = "stickers"

// ResolveStickersJob resolves the stickers of one Series.
type ResolveStickersJob struct {
	SeriesID competitiondomain.SeriesID `json:"series_id"`
}

// Kind returns the job type identifier for River
func (ResolveStickersJob) Kind() string { return "resolve_stickers" }

// Job outcomes recorded by the worker.
const (
	OutcomeResolved  = "resolved"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"
)
