package stickerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	"github.com/uptrace/bun"
)

// GetAssignmentHash returns the stored processing hash of a series, or "".
func (r *Impl) GetAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID) (string, error) {
	db = r.resolveDB(db)
	run := new(AssignmentRun)
	err := db.NewSelect().
		Model(run).
		Where("sar.series_id = ?", uuid.UUID(seriesID)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("stickerdb.GetAssignmentHash: %w", err)
	}
	return run.ProcessingHash, nil
}

// AssignStickers inserts the assignments of a series. Existing rows,
// including manual ones, are left untouched.
func (r *Impl) AssignStickers(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, assignments stickerdomain.Assignments) (int, error) {
	rows := assignmentRows(seriesID, assignments)
	if len(rows) == 0 {
		return 0, nil
	}
	db = r.resolveDB(db)

	res, err := db.NewInsert().
		Model(&rows).
		On("CONFLICT (application_id, series_id, sticker_nr) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("stickerdb.AssignStickers: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("stickerdb.AssignStickers: rows affected: %w", err)
	}
	return int(inserted), nil
}

// SaveAssignmentHash upserts the processing hash of a series.
func (r *Impl) SaveAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, hash string, count int) error {
	db = r.resolveDB(db)
	run := &AssignmentRun{
		SeriesID:       uuid.UUID(seriesID),
		ProcessingHash: hash,
		AssignedCount:  count,
		UpdatedAt:      time.Now().UTC(),
	}
	_, err := db.NewInsert().
		Model(run).
		On("CONFLICT (series_id) DO UPDATE").
		Set("processing_hash = EXCLUDED.processing_hash").
		Set("assigned_count = EXCLUDED.assigned_count").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stickerdb.SaveAssignmentHash: %w", err)
	}
	return nil
}

// assignmentRows flattens assignments in a stable order.
func assignmentRows(seriesID competitiondomain.SeriesID, assignments stickerdomain.Assignments) []StickerAssignment {
	ids := make([]competitiondomain.ApplicationID, 0, len(assignments))
	for id := range assignments {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, competitiondomain.ApplicationID.Compare)

	var rows []StickerAssignment
	for _, id := range ids {
		for _, sticker := range assignments[id] {
			rows = append(rows, StickerAssignment{
				ApplicationID: uuid.UUID(id),
				SeriesID:      uuid.UUID(seriesID),
				StickerNumber: int(sticker),
				Source:        SourceAutomatic,
			})
		}
	}
	return rows
}
