package stickerdomain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// gradeBuilder assembles GradeSnapshots for tests.
type gradeBuilder struct {
	snap GradeSnapshot
}

func newGrade(startYear int) *gradeBuilder {
	return &gradeBuilder{snap: GradeSnapshot{
		Grade: competitiondomain.Grade{
			ID:         competitiondomain.GradeID(uuid.New()),
			SchoolYear: "grade",
			StartDate:  time.Date(startYear, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(startYear+1, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
}

// series adds a Series with the given ordinal and task maxima.
func (b *gradeBuilder) series(number int, maxima ...int) competitiondomain.Series {
	s := competitiondomain.Series{
		ID:                 competitiondomain.SeriesID(uuid.New()),
		GradeID:            b.snap.Grade.ID,
		Number:             number,
		SubmissionDeadline: b.snap.Grade.StartDate.AddDate(0, 2*number, 0),
	}
	b.snap.Series = append(b.snap.Series, s)
	for i, m := range maxima {
		b.snap.Tasks = append(b.snap.Tasks, competitiondomain.Task{
			ID:        competitiondomain.TaskID(uuid.New()),
			SeriesID:  s.ID,
			Number:    i + 1,
			MaxPoints: competitiondomain.WholePoints(m),
		})
	}
	return s
}

func (b *gradeBuilder) tasks(s competitiondomain.Series) []competitiondomain.Task {
	var out []competitiondomain.Task
	for _, t := range b.snap.Tasks {
		if t.SeriesID == s.ID {
			out = append(out, t)
		}
	}
	return out
}

func (b *gradeBuilder) application(participant competitiondomain.ParticipantID) competitiondomain.Application {
	a := competitiondomain.Application{
		ID:            competitiondomain.ApplicationID(uuid.New()),
		GradeID:       b.snap.Grade.ID,
		ParticipantID: participant,
		CreatedAt:     b.snap.Grade.StartDate.Add(time.Duration(len(b.snap.Applications)+1) * time.Minute),
	}
	b.snap.Applications = append(b.snap.Applications, a)
	return a
}

// submit records a graded submission one week before the Series deadline.
func (b *gradeBuilder) submit(app competitiondomain.Application, task competitiondomain.Task, score int) *competitiondomain.Submission {
	p := competitiondomain.WholePoints(score)
	deadline := b.deadlineOf(task.SeriesID)
	b.snap.Submissions = append(b.snap.Submissions, competitiondomain.Submission{
		ApplicationID: app.ID,
		TaskID:        task.ID,
		Score:         &p,
		SubmittedAt:   deadline.AddDate(0, 0, -7),
	})
	return &b.snap.Submissions[len(b.snap.Submissions)-1]
}

func (b *gradeBuilder) submitAll(app competitiondomain.Application, score int) {
	for _, t := range b.snap.Tasks {
		b.submit(app, t, score)
	}
}

func (b *gradeBuilder) deadlineOf(id competitiondomain.SeriesID) time.Time {
	for _, s := range b.snap.Series {
		if s.ID == id {
			return s.SubmissionDeadline
		}
	}
	return time.Time{}
}

func mustContext(t *testing.T, target competitiondomain.Series, current *gradeBuilder, history ...*gradeBuilder) *Context {
	t.Helper()
	var snaps []GradeSnapshot
	for _, h := range history {
		snaps = append(snaps, h.snap)
	}
	c, err := AssembleContext(target, current.snap, snaps...)
	if err != nil {
		t.Fatalf("AssembleContext: %v", err)
	}
	return c
}

func newParticipant() competitiondomain.ParticipantID {
	return competitiondomain.ParticipantID(uuid.New())
}
