package stickerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Sticker sources stored on StickerAssignment.
const (
	SourceAutomatic = "automatic"
	SourceManual    = "manual"
)

// Grade is a competition year.
type Grade struct {
	bun.BaseModel `bun:"table:grades,alias:g"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	SchoolYear string    `bun:"school_year,notnull,unique"`
	StartDate  time.Time `bun:"start_date,notnull"`
	EndDate    time.Time `bun:"end_date,notnull"`
}

// Series is one round of a grade.
type Series struct {
	bun.BaseModel `bun:"table:grade_series,alias:gs"`

	ID                 uuid.UUID `bun:"id,pk,type:uuid"`
	GradeID            uuid.UUID `bun:"grade_id,type:uuid,notnull,unique:grade_series_number"`
	Number             int       `bun:"number,notnull,unique:grade_series_number"`
	SubmissionDeadline time.Time `bun:"submission_deadline,notnull"`
	ResultsPublished   bool      `bun:"results_published,notnull,default:false"`
}

// Task is one problem of a series. MaxPoints is stored in hundredths.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	SeriesID  uuid.UUID `bun:"series_id,type:uuid,notnull,unique:task_series_number"`
	Number    int       `bun:"number,notnull,unique:task_series_number"`
	Title     string    `bun:"title,notnull,default:''"`
	MaxPoints int64     `bun:"max_points,notnull"`
}

// Participant is a competitor's personal record.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID             uuid.UUID `bun:"id,pk,type:uuid"`
	FirstName      string    `bun:"first_name,notnull"`
	LastName       string    `bun:"last_name,notnull"`
	Street         string    `bun:"street"`
	City           string    `bun:"city"`
	ZipCode        string    `bun:"zip_code"`
	Country        string    `bun:"country"`
	School         string    `bun:"school"`
	SchoolYear     string    `bun:"school_year"`
	BrochureByMail bool      `bun:"brochure_by_mail,notnull,default:false"`
}

// Application is a participant's enrollment in a grade.
type Application struct {
	bun.BaseModel `bun:"table:grade_applications,alias:ga"`

	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	GradeID       uuid.UUID `bun:"grade_id,type:uuid,notnull,unique:application_grade_participant"`
	ParticipantID uuid.UUID `bun:"participant_id,type:uuid,notnull,unique:application_grade_participant"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Submission is a solution to one task. Score is in hundredths and NULL
// until graded.
type Submission struct {
	bun.BaseModel `bun:"table:task_solutions,alias:ts"`

	ApplicationID uuid.UUID `bun:"application_id,pk,type:uuid"`
	TaskID        uuid.UUID `bun:"task_id,pk,type:uuid"`
	Score         *int64    `bun:"score"`
	HasArtifact   bool      `bun:"has_artifact,notnull,default:false"`
	SubmittedAt   time.Time `bun:"submitted_at,nullzero,notnull,default:current_timestamp"`
}

// Sticker is a badge definition.
type Sticker struct {
	bun.BaseModel `bun:"table:stickers,alias:st"`

	Number     int    `bun:"nr,pk"`
	Title      string `bun:"title,notnull"`
	Handpicked bool   `bun:"handpicked,notnull,default:false"`
}

// StickerAssignment grants a sticker to an application within a series.
type StickerAssignment struct {
	bun.BaseModel `bun:"table:sticker_assignments,alias:sa"`

	ID            int64     `bun:"id,pk,autoincrement"`
	ApplicationID uuid.UUID `bun:"application_id,type:uuid,notnull,unique:sticker_assignment_unique"`
	SeriesID      uuid.UUID `bun:"series_id,type:uuid,notnull,unique:sticker_assignment_unique"`
	StickerNumber int       `bun:"sticker_nr,notnull,unique:sticker_assignment_unique"`
	Source        string    `bun:"source,notnull,default:'automatic'"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// SubmissionSticker is a sticker attached by hand to a solution.
type SubmissionSticker struct {
	bun.BaseModel `bun:"table:task_solution_stickers,alias:tss"`

	ApplicationID uuid.UUID `bun:"application_id,pk,type:uuid"`
	TaskID        uuid.UUID `bun:"task_id,pk,type:uuid"`
	StickerNumber int       `bun:"sticker_nr,pk"`
}

// Event is an activity that rewards its attendees.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Title     string    `bun:"title,notnull"`
	StartDate time.Time `bun:"start_date,notnull"`
	EndDate   time.Time `bun:"end_date,notnull"`
}

// EventReward links an event to a sticker it grants.
type EventReward struct {
	bun.BaseModel `bun:"table:event_reward_stickers,alias:er"`

	EventID       uuid.UUID `bun:"event_id,pk,type:uuid"`
	StickerNumber int       `bun:"sticker_nr,pk"`
}

// EventAttendee records participation in an event.
type EventAttendee struct {
	bun.BaseModel `bun:"table:event_attendees,alias:ea"`

	EventID       uuid.UUID `bun:"event_id,pk,type:uuid"`
	ParticipantID uuid.UUID `bun:"participant_id,pk,type:uuid"`
}

// AssignmentRun remembers the last persisted assignment of a series.
type AssignmentRun struct {
	bun.BaseModel `bun:"table:sticker_assignment_runs,alias:sar"`

	SeriesID       uuid.UUID `bun:"series_id,pk,type:uuid"`
	ProcessingHash string    `bun:"processing_hash,notnull"`
	AssignedCount  int       `bun:"assigned_count,notnull,default:0"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
