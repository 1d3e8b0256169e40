//go:build integration

package testutils

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// GradeFixture is a seeded Grade with one Series and one task.
type GradeFixture struct {
	Grade  stickerdb.Grade
	Series stickerdb.Series
	Task   stickerdb.Task
}

// SeedGrade inserts a Grade starting at start with a single published
// Series whose deadline is deadline and one task worth maxPoints hundredths.
func SeedGrade(ctx context.Context, db bun.IDB, start, deadline time.Time, maxPoints int64) (GradeFixture, error) {
	f := GradeFixture{
		Grade: stickerdb.Grade{
			ID:         uuid.New(),
			SchoolYear: start.Format("2006") + "/" + start.AddDate(1, 0, 0).Format("2006"),
			StartDate:  start,
			EndDate:    start.AddDate(1, 0, 0),
		},
	}
	f.Series = stickerdb.Series{
		ID:                 uuid.New(),
		GradeID:            f.Grade.ID,
		Number:             1,
		SubmissionDeadline: deadline,
	}
	f.Task = stickerdb.Task{
		ID:        uuid.New(),
		SeriesID:  f.Series.ID,
		Number:    1,
		Title:     "Úloha 1",
		MaxPoints: maxPoints,
	}

	if _, err := db.NewInsert().Model(&f.Grade).Exec(ctx); err != nil {
		return f, err
	}
	if _, err := db.NewInsert().Model(&f.Series).Exec(ctx); err != nil {
		return f, err
	}
	if _, err := db.NewInsert().Model(&f.Task).Exec(ctx); err != nil {
		return f, err
	}
	return f, nil
}

// SeedApplication inserts a generated participant enrolled in the Grade.
func SeedApplication(ctx context.Context, db bun.IDB, faker *gofakeit.Faker, gradeID uuid.UUID, lastName string) (stickerdb.Application, error) {
	p := stickerdb.Participant{
		ID:         uuid.New(),
		FirstName:  faker.FirstName(),
		LastName:   lastName,
		Street:     faker.Street(),
		City:       faker.City(),
		ZipCode:    faker.Zip(),
		Country:    "cz",
		School:     faker.Company(),
		SchoolYear: "3",
	}
	if _, err := db.NewInsert().Model(&p).Exec(ctx); err != nil {
		return stickerdb.Application{}, err
	}
	app := stickerdb.Application{ID: uuid.New(), GradeID: gradeID, ParticipantID: p.ID}
	if _, err := db.NewInsert().Model(&app).Exec(ctx); err != nil {
		return stickerdb.Application{}, err
	}
	return app, nil
}

// SeedSubmission inserts a graded solution.
func SeedSubmission(ctx context.Context, db bun.IDB, appID, taskID uuid.UUID, score int64, at time.Time) error {
	sub := stickerdb.Submission{ApplicationID: appID, TaskID: taskID, Score: &score, SubmittedAt: at}
	_, err := db.NewInsert().Model(&sub).Exec(ctx)
	return err
}

// SeedSeries inserts a further Series of the Grade with one task.
func SeedSeries(ctx context.Context, db bun.IDB, gradeID uuid.UUID, number int, deadline time.Time, maxPoints int64) (stickerdb.Series, stickerdb.Task, error) {
	series := stickerdb.Series{
		ID:                 uuid.New(),
		GradeID:            gradeID,
		Number:             number,
		SubmissionDeadline: deadline,
	}
	task := stickerdb.Task{
		ID:        uuid.New(),
		SeriesID:  series.ID,
		Number:    1,
		Title:     "Úloha 1",
		MaxPoints: maxPoints,
	}
	if _, err := db.NewInsert().Model(&series).Exec(ctx); err != nil {
		return series, task, err
	}
	if _, err := db.NewInsert().Model(&task).Exec(ctx); err != nil {
		return series, task, err
	}
	return series, task, nil
}
