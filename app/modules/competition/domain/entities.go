package competitiondomain

import (
	"time"
)

// Grade is one yearly edition of the competition.
type Grade struct {
	ID         GradeID
	SchoolYear string    `validate:"required"`
	StartDate  time.Time `validate:"required"`
	EndDate    time.Time `validate:"required,gtfield=StartDate"`
}

// Contains reports whether t falls inside the grade's date range.
func (g Grade) Contains(t time.Time) bool {
	return !t.Before(g.StartDate) && !t.After(g.EndDate)
}

// Series is one round of a Grade with a single submission deadline.
type Series struct {
	ID                 SeriesID
	GradeID            GradeID
	Number             int       `validate:"min=1,max=4"`
	SubmissionDeadline time.Time `validate:"required"`
	ResultsPublished   bool
}

// Task is a single graded problem belonging to a Series.
type Task struct {
	ID        TaskID
	SeriesID  SeriesID
	Number    int `validate:"min=1"`
	Title     string
	MaxPoints Points `validate:"gt=0"`
}

// Application is one participant's enrollment in a Grade.
type Application struct {
	ID            ApplicationID
	GradeID       GradeID
	ParticipantID ParticipantID
	CreatedAt     time.Time
	// ManualStickers are stickers handed out by organisers directly, keyed by
	// the Series they were granted in.
	ManualStickers map[SeriesID][]StickerID
}

// Submission is an Application's answer to one Task.
type Submission struct {
	ApplicationID ApplicationID
	TaskID        TaskID
	// Score is nil until the submission has been graded.
	Score       *Points
	HasArtifact bool
	SubmittedAt time.Time
	// ManualStickers are stickers awarded for this particular solution.
	ManualStickers []StickerID
}

// Participant is the person behind one or more Applications.
type Participant struct {
	ID             ParticipantID
	FirstName      string
	LastName       string
	Street         string
	City           string
	ZipCode        string
	Country        string
	School         string
	SchoolYear     string
	BrochureByMail bool
}

// FullName returns "first last".
func (p Participant) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Sticker is a badge definition.
type Sticker struct {
	Number     StickerID `validate:"min=1"`
	Title      string    `validate:"required"`
	Handpicked bool
}

// Event is an optional activity taking place between deadlines.
type Event struct {
	ID             EventID
	Title          string    `validate:"required"`
	StartDate      time.Time `validate:"required"`
	EndDate        time.Time `validate:"required,gtefield=StartDate"`
	RewardStickers []StickerID
	Attendees      []ParticipantID
}

// Attended reports whether the participant took part in the event.
func (e Event) Attended(id ParticipantID) bool {
	for _, a := range e.Attendees {
		if a == id {
			return true
		}
	}
	return false
}
