package stickerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new sticker repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetSeries retrieves a series by id.
func (r *Impl) GetSeries(ctx context.Context, db bun.IDB, id competitiondomain.SeriesID) (*competitiondomain.Series, error) {
	db = r.resolveDB(db)
	series := new(Series)
	err := db.NewSelect().
		Model(series).
		Where("gs.id = ?", uuid.UUID(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stickerdb.GetSeries: %w", err)
	}
	out := series.toDomain()
	return &out, nil
}

// GetGrade retrieves a grade by id.
func (r *Impl) GetGrade(ctx context.Context, db bun.IDB, id competitiondomain.GradeID) (*competitiondomain.Grade, error) {
	db = r.resolveDB(db)
	grade := new(Grade)
	err := db.NewSelect().
		Model(grade).
		Where("g.id = ?", uuid.UUID(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stickerdb.GetGrade: %w", err)
	}
	out := grade.toDomain()
	return &out, nil
}

// ListPrecedingGrades returns the grades that started before the given date, newest first.
func (r *Impl) ListPrecedingGrades(ctx context.Context, db bun.IDB, before time.Time, limit int) ([]competitiondomain.Grade, error) {
	if limit <= 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var grades []Grade
	err := db.NewSelect().
		Model(&grades).
		Where("g.start_date < ?", before).
		Order("g.start_date DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stickerdb.ListPrecedingGrades: %w", err)
	}
	out := make([]competitiondomain.Grade, len(grades))
	for i, g := range grades {
		out[i] = g.toDomain()
	}
	return out, nil
}

// LoadGradeSnapshot loads series, tasks, applications and submissions of a
// grade, plus the manual sticker edges, each with a single query.
func (r *Impl) LoadGradeSnapshot(ctx context.Context, db bun.IDB, grade competitiondomain.Grade) (*stickerdomain.GradeSnapshot, error) {
	db = r.resolveDB(db)
	gradeID := uuid.UUID(grade.ID)

	var series []Series
	if err := db.NewSelect().
		Model(&series).
		Where("gs.grade_id = ?", gradeID).
		Order("gs.number ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: series: %w", err)
	}

	var tasks []Task
	if err := db.NewSelect().
		Model(&tasks).
		Join("JOIN grade_series AS gs ON gs.id = t.series_id").
		Where("gs.grade_id = ?", gradeID).
		Order("gs.number ASC", "t.number ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: tasks: %w", err)
	}

	var apps []Application
	if err := db.NewSelect().
		Model(&apps).
		Where("ga.grade_id = ?", gradeID).
		Order("ga.created_at ASC", "ga.id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: applications: %w", err)
	}

	var subs []Submission
	if err := db.NewSelect().
		Model(&subs).
		Join("JOIN grade_applications AS ga ON ga.id = ts.application_id").
		Where("ga.grade_id = ?", gradeID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: submissions: %w", err)
	}

	var appStickers []StickerAssignment
	if err := db.NewSelect().
		Model(&appStickers).
		Join("JOIN grade_applications AS ga ON ga.id = sa.application_id").
		Where("ga.grade_id = ?", gradeID).
		Where("sa.source = ?", SourceManual).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: application stickers: %w", err)
	}

	var subStickers []SubmissionSticker
	if err := db.NewSelect().
		Model(&subStickers).
		Join("JOIN grade_applications AS ga ON ga.id = tss.application_id").
		Where("ga.grade_id = ?", gradeID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.LoadGradeSnapshot: submission stickers: %w", err)
	}

	snap := &stickerdomain.GradeSnapshot{
		Grade:        grade,
		Series:       make([]competitiondomain.Series, len(series)),
		Tasks:        make([]competitiondomain.Task, len(tasks)),
		Applications: make([]competitiondomain.Application, len(apps)),
		Submissions:  make([]competitiondomain.Submission, len(subs)),
	}
	for i, s := range series {
		snap.Series[i] = s.toDomain()
	}
	for i, t := range tasks {
		snap.Tasks[i] = t.toDomain()
	}

	manualByApp := make(map[uuid.UUID]map[competitiondomain.SeriesID][]competitiondomain.StickerID)
	for _, sa := range appStickers {
		bySeries := manualByApp[sa.ApplicationID]
		if bySeries == nil {
			bySeries = make(map[competitiondomain.SeriesID][]competitiondomain.StickerID)
			manualByApp[sa.ApplicationID] = bySeries
		}
		series := competitiondomain.SeriesID(sa.SeriesID)
		bySeries[series] = append(bySeries[series], competitiondomain.StickerID(sa.StickerNumber))
	}
	for i, a := range apps {
		snap.Applications[i] = a.toDomain()
		snap.Applications[i].ManualStickers = manualByApp[a.ID]
	}

	type solutionKey struct{ app, task uuid.UUID }
	manualBySolution := make(map[solutionKey][]competitiondomain.StickerID)
	for _, ss := range subStickers {
		k := solutionKey{ss.ApplicationID, ss.TaskID}
		manualBySolution[k] = append(manualBySolution[k], competitiondomain.StickerID(ss.StickerNumber))
	}
	for i, s := range subs {
		snap.Submissions[i] = s.toDomain()
		snap.Submissions[i].ManualStickers = manualBySolution[solutionKey{s.ApplicationID, s.TaskID}]
	}

	return snap, nil
}

// ListStickers returns all sticker definitions.
func (r *Impl) ListStickers(ctx context.Context, db bun.IDB) ([]competitiondomain.Sticker, error) {
	db = r.resolveDB(db)
	var stickers []Sticker
	if err := db.NewSelect().Model(&stickers).Order("st.nr ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.ListStickers: %w", err)
	}
	out := make([]competitiondomain.Sticker, len(stickers))
	for i, s := range stickers {
		out[i] = s.toDomain()
	}
	return out, nil
}

// ListParticipants returns participants ordered by last and first name.
func (r *Impl) ListParticipants(ctx context.Context, db bun.IDB, ids []competitiondomain.ParticipantID) ([]competitiondomain.Participant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var participants []Participant
	err := db.NewSelect().
		Model(&participants).
		Where("p.id IN (?)", bun.In(participantUUIDs(ids))).
		Order("p.last_name ASC", "p.first_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stickerdb.ListParticipants: %w", err)
	}
	out := make([]competitiondomain.Participant, len(participants))
	for i, p := range participants {
		out[i] = p.toDomain()
	}
	return out, nil
}
