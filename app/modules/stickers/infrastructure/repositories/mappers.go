package stickerdb

import (
	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

func (g Grade) toDomain() competitiondomain.Grade {
	return competitiondomain.Grade{
		ID:         competitiondomain.GradeID(g.ID),
		SchoolYear: g.SchoolYear,
		StartDate:  g.StartDate,
		EndDate:    g.EndDate,
	}
}

func (s Series) toDomain() competitiondomain.Series {
	return competitiondomain.Series{
		ID:                 competitiondomain.SeriesID(s.ID),
		GradeID:            competitiondomain.GradeID(s.GradeID),
		Number:             s.Number,
		SubmissionDeadline: s.SubmissionDeadline,
		ResultsPublished:   s.ResultsPublished,
	}
}

func (t Task) toDomain() competitiondomain.Task {
	return competitiondomain.Task{
		ID:        competitiondomain.TaskID(t.ID),
		SeriesID:  competitiondomain.SeriesID(t.SeriesID),
		Number:    t.Number,
		Title:     t.Title,
		MaxPoints: competitiondomain.Points(t.MaxPoints),
	}
}

func (a Application) toDomain() competitiondomain.Application {
	return competitiondomain.Application{
		ID:            competitiondomain.ApplicationID(a.ID),
		GradeID:       competitiondomain.GradeID(a.GradeID),
		ParticipantID: competitiondomain.ParticipantID(a.ParticipantID),
		CreatedAt:     a.CreatedAt,
	}
}

func (s Submission) toDomain() competitiondomain.Submission {
	out := competitiondomain.Submission{
		ApplicationID: competitiondomain.ApplicationID(s.ApplicationID),
		TaskID:        competitiondomain.TaskID(s.TaskID),
		HasArtifact:   s.HasArtifact,
		SubmittedAt:   s.SubmittedAt,
	}
	if s.Score != nil {
		p := competitiondomain.Points(*s.Score)
		out.Score = &p
	}
	return out
}

func (p Participant) toDomain() competitiondomain.Participant {
	return competitiondomain.Participant{
		ID:             competitiondomain.ParticipantID(p.ID),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Street:         p.Street,
		City:           p.City,
		ZipCode:        p.ZipCode,
		Country:        p.Country,
		School:         p.School,
		SchoolYear:     p.SchoolYear,
		BrochureByMail: p.BrochureByMail,
	}
}

func (s Sticker) toDomain() competitiondomain.Sticker {
	return competitiondomain.Sticker{
		Number:     competitiondomain.StickerID(s.Number),
		Title:      s.Title,
		Handpicked: s.Handpicked,
	}
}

func participantUUIDs(ids []competitiondomain.ParticipantID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}
	return out
}
