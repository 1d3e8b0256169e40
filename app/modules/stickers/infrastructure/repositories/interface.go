package stickerdb

import (
	"context"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	"github.com/uptrace/bun"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the contract for competition reads and sticker writes.
// A nil db uses the repository's own connection.
//
// Error semantics:
//   - ErrNotFound: Record does not exist
//   - Other errors: Infrastructure failures (DB connection, query errors)
type Repository interface {
	// GetSeries returns ErrNotFound for unknown ids.
	GetSeries(ctx context.Context, db bun.IDB, id competitiondomain.SeriesID) (*competitiondomain.Series, error)

	// GetGrade returns ErrNotFound for unknown ids.
	GetGrade(ctx context.Context, db bun.IDB, id competitiondomain.GradeID) (*competitiondomain.Grade, error)

	// ListPrecedingGrades returns up to limit grades starting before the given
	// date, newest first.
	ListPrecedingGrades(ctx context.Context, db bun.IDB, before time.Time, limit int) ([]competitiondomain.Grade, error)

	// LoadGradeSnapshot bulk-loads a grade with one query per table.
	LoadGradeSnapshot(ctx context.Context, db bun.IDB, grade competitiondomain.Grade) (*stickerdomain.GradeSnapshot, error)

	// ListEvents returns events starting within [from, to] with rewards and attendees.
	ListEvents(ctx context.Context, db bun.IDB, from, to time.Time) ([]competitiondomain.Event, error)

	// ListStickers returns all sticker definitions ordered by number.
	ListStickers(ctx context.Context, db bun.IDB) ([]competitiondomain.Sticker, error)

	// ListParticipants returns the participants with the given ids.
	ListParticipants(ctx context.Context, db bun.IDB, ids []competitiondomain.ParticipantID) ([]competitiondomain.Participant, error)

	// GetAssignmentHash returns the hash of the last persisted assignment or
	// "" when the series was never processed.
	GetAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID) (string, error)

	// AssignStickers inserts missing assignments and never removes existing
	// ones. It returns the number of new rows.
	AssignStickers(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, assignments stickerdomain.Assignments) (int, error)

	// SaveAssignmentHash upserts the processing hash of a series.
	SaveAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, hash string, count int) error
}
