package stickerservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Sticker Repo
// ------------------------

// FakeStickerRepository provides a programmable stub for the stickerdb.Repository interface.
type FakeStickerRepository struct {
	mu    sync.Mutex
	trace []string

	GetSeriesFunc           func(ctx context.Context, db bun.IDB, id competitiondomain.SeriesID) (*competitiondomain.Series, error)
	GetGradeFunc            func(ctx context.Context, db bun.IDB, id competitiondomain.GradeID) (*competitiondomain.Grade, error)
	ListPrecedingGradesFunc func(ctx context.Context, db bun.IDB, before time.Time, limit int) ([]competitiondomain.Grade, error)
	LoadGradeSnapshotFunc   func(ctx context.Context, db bun.IDB, grade competitiondomain.Grade) (*stickerdomain.GradeSnapshot, error)
	ListEventsFunc          func(ctx context.Context, db bun.IDB, from, to time.Time) ([]competitiondomain.Event, error)
	ListStickersFunc        func(ctx context.Context, db bun.IDB) ([]competitiondomain.Sticker, error)
	ListParticipantsFunc    func(ctx context.Context, db bun.IDB, ids []competitiondomain.ParticipantID) ([]competitiondomain.Participant, error)
	GetAssignmentHashFunc   func(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID) (string, error)
	AssignStickersFunc      func(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, assignments stickerdomain.Assignments) (int, error)
	SaveAssignmentHashFunc  func(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, hash string, count int) error

	LastAssigned stickerdomain.Assignments
}

// NewFakeStickerRepository initializes a new FakeStickerRepository with an empty trace.
func NewFakeStickerRepository() *FakeStickerRepository {
	return &FakeStickerRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeStickerRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeStickerRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeStickerRepository) GetSeries(ctx context.Context, db bun.IDB, id competitiondomain.SeriesID) (*competitiondomain.Series, error) {
	f.record("GetSeries")
	if f.GetSeriesFunc != nil {
		return f.GetSeriesFunc(ctx, db, id)
	}
	return nil, stickerdb.ErrNotFound
}

func (f *FakeStickerRepository) GetGrade(ctx context.Context, db bun.IDB, id competitiondomain.GradeID) (*competitiondomain.Grade, error) {
	f.record("GetGrade")
	if f.GetGradeFunc != nil {
		return f.GetGradeFunc(ctx, db, id)
	}
	return nil, stickerdb.ErrNotFound
}

func (f *FakeStickerRepository) ListPrecedingGrades(ctx context.Context, db bun.IDB, before time.Time, limit int) ([]competitiondomain.Grade, error) {
	f.record("ListPrecedingGrades")
	if f.ListPrecedingGradesFunc != nil {
		return f.ListPrecedingGradesFunc(ctx, db, before, limit)
	}
	return nil, nil
}

func (f *FakeStickerRepository) LoadGradeSnapshot(ctx context.Context, db bun.IDB, grade competitiondomain.Grade) (*stickerdomain.GradeSnapshot, error) {
	f.record("LoadGradeSnapshot")
	if f.LoadGradeSnapshotFunc != nil {
		return f.LoadGradeSnapshotFunc(ctx, db, grade)
	}
	return &stickerdomain.GradeSnapshot{Grade: grade}, nil
}

func (f *FakeStickerRepository) ListEvents(ctx context.Context, db bun.IDB, from, to time.Time) ([]competitiondomain.Event, error) {
	f.record("ListEvents")
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, db, from, to)
	}
	return nil, nil
}

func (f *FakeStickerRepository) ListStickers(ctx context.Context, db bun.IDB) ([]competitiondomain.Sticker, error) {
	f.record("ListStickers")
	if f.ListStickersFunc != nil {
		return f.ListStickersFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeStickerRepository) ListParticipants(ctx context.Context, db bun.IDB, ids []competitiondomain.ParticipantID) ([]competitiondomain.Participant, error) {
	f.record("ListParticipants")
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, db, ids)
	}
	return nil, nil
}

func (f *FakeStickerRepository) GetAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID) (string, error) {
	f.record("GetAssignmentHash")
	if f.GetAssignmentHashFunc != nil {
		return f.GetAssignmentHashFunc(ctx, db, seriesID)
	}
	return "", nil
}

func (f *FakeStickerRepository) AssignStickers(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, assignments stickerdomain.Assignments) (int, error) {
	f.record("AssignStickers")
	f.LastAssigned = assignments
	if f.AssignStickersFunc != nil {
		return f.AssignStickersFunc(ctx, db, seriesID, assignments)
	}
	return assignments.Count(), nil
}

func (f *FakeStickerRepository) SaveAssignmentHash(ctx context.Context, db bun.IDB, seriesID competitiondomain.SeriesID, hash string, count int) error {
	f.record("SaveAssignmentHash")
	if f.SaveAssignmentHashFunc != nil {
		return f.SaveAssignmentHashFunc(ctx, db, seriesID, hash, count)
	}
	return nil
}

// Ensure the fake actually satisfies the interface
var _ stickerdb.Repository = (*FakeStickerRepository)(nil)

// ------------------------
// Fixture
// ------------------------

// fixture is a Grade with two Series of one Task each. Alice solved the first
// Series in full, Bob enrolled but never submitted.
type fixture struct {
	grade       competitiondomain.Grade
	series      []competitiondomain.Series
	tasks       []competitiondomain.Task
	alice, bob  competitiondomain.Participant
	aliceApp    competitiondomain.Application
	bobApp      competitiondomain.Application
	submissions []competitiondomain.Submission
	excursion   competitiondomain.Event
}

func newFixture() *fixture {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		grade: competitiondomain.Grade{
			ID:         competitiondomain.GradeID(uuid.New()),
			SchoolYear: "2025/2026",
			StartDate:  start,
			EndDate:    start.AddDate(1, 0, -1),
		},
	}
	for n := 1; n <= 2; n++ {
		s := competitiondomain.Series{
			ID:                 competitiondomain.SeriesID(uuid.New()),
			GradeID:            f.grade.ID,
			Number:             n,
			SubmissionDeadline: start.AddDate(0, 2*n, 0),
			ResultsPublished:   n == 1,
		}
		f.series = append(f.series, s)
		f.tasks = append(f.tasks, competitiondomain.Task{
			ID:        competitiondomain.TaskID(uuid.New()),
			SeriesID:  s.ID,
			Number:    1,
			Title:     "Úloha",
			MaxPoints: competitiondomain.WholePoints(10),
		})
	}

	f.alice = competitiondomain.Participant{
		ID: competitiondomain.ParticipantID(uuid.New()), FirstName: "Alice", LastName: "Nováková",
		Street: "Dlouhá 1", City: "Praha", ZipCode: "110 00", Country: "cz", School: "Gymnázium", BrochureByMail: true,
	}
	f.bob = competitiondomain.Participant{
		ID: competitiondomain.ParticipantID(uuid.New()), FirstName: "Bob", LastName: "Dvořák", Country: "sk",
	}
	f.aliceApp = competitiondomain.Application{
		ID:            competitiondomain.ApplicationID(uuid.New()),
		GradeID:       f.grade.ID,
		ParticipantID: f.alice.ID,
		CreatedAt:     start.Add(time.Hour),
		ManualStickers: map[competitiondomain.SeriesID][]competitiondomain.StickerID{
			f.series[0].ID: {77},
		},
	}
	f.bobApp = competitiondomain.Application{
		ID:            competitiondomain.ApplicationID(uuid.New()),
		GradeID:       f.grade.ID,
		ParticipantID: f.bob.ID,
		CreatedAt:     start.Add(2 * time.Hour),
	}

	full := competitiondomain.WholePoints(10)
	f.submissions = []competitiondomain.Submission{{
		ApplicationID: f.aliceApp.ID,
		TaskID:        f.tasks[0].ID,
		Score:         &full,
		SubmittedAt:   f.series[0].SubmissionDeadline.AddDate(0, 0, -10),
	}}

	f.excursion = competitiondomain.Event{
		ID:             competitiondomain.EventID(uuid.New()),
		Title:          "Exkurze",
		StartDate:      start.AddDate(0, 1, 0),
		EndDate:        start.AddDate(0, 1, 1),
		RewardStickers: []competitiondomain.StickerID{50},
		Attendees:      []competitiondomain.ParticipantID{f.alice.ID},
	}
	return f
}

func (f *fixture) snapshot() *stickerdomain.GradeSnapshot {
	return &stickerdomain.GradeSnapshot{
		Grade:        f.grade,
		Series:       f.series,
		Tasks:        f.tasks,
		Applications: []competitiondomain.Application{f.aliceApp, f.bobApp},
		Submissions:  f.submissions,
	}
}

// repo wires a fake repository serving the fixture.
func (f *fixture) repo() *FakeStickerRepository {
	r := NewFakeStickerRepository()
	r.GetSeriesFunc = func(_ context.Context, _ bun.IDB, id competitiondomain.SeriesID) (*competitiondomain.Series, error) {
		for _, s := range f.series {
			if s.ID == id {
				return &s, nil
			}
		}
		return nil, stickerdb.ErrNotFound
	}
	r.GetGradeFunc = func(_ context.Context, _ bun.IDB, id competitiondomain.GradeID) (*competitiondomain.Grade, error) {
		if id == f.grade.ID {
			g := f.grade
			return &g, nil
		}
		return nil, stickerdb.ErrNotFound
	}
	r.LoadGradeSnapshotFunc = func(_ context.Context, _ bun.IDB, g competitiondomain.Grade) (*stickerdomain.GradeSnapshot, error) {
		if g.ID == f.grade.ID {
			return f.snapshot(), nil
		}
		return &stickerdomain.GradeSnapshot{Grade: g}, nil
	}
	r.ListEventsFunc = func(_ context.Context, _ bun.IDB, from, to time.Time) ([]competitiondomain.Event, error) {
		return []competitiondomain.Event{f.excursion}, nil
	}
	r.ListParticipantsFunc = func(_ context.Context, _ bun.IDB, ids []competitiondomain.ParticipantID) ([]competitiondomain.Participant, error) {
		var out []competitiondomain.Participant
		for _, id := range ids {
			switch id {
			case f.alice.ID:
				out = append(out, f.alice)
			case f.bob.ID:
				out = append(out, f.bob)
			}
		}
		return out, nil
	}
	return r
}
