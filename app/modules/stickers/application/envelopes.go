package stickerservice

import (
	"context"
	"io"
	"strings"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// BrochureNote marks envelopes of participants receiving the printed brochure.
const BrochureNote = "Brožura"

var countryNames = map[string]string{
	"cz": "Česko",
	"sk": "Slovensko",
}

// Envelope is the address block of one recipient.
type Envelope struct {
	AddressLines []string
	Note         string
}

// EnvelopePrinter renders envelopes, e.g. into a PDF.
type EnvelopePrinter interface {
	Print(ctx context.Context, w io.Writer, envelopes []Envelope) error
}

// SeriesEnvelopes returns envelopes for participants with at least one
// submission in the Series, ordered by surname.
func (s *StickerService) SeriesEnvelopes(ctx context.Context, seriesID competitiondomain.SeriesID) ([]Envelope, error) {
	participants, err := s.ActiveParticipantsInSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return BuildEnvelopes(participants, brochureNote), nil
}

// ActiveParticipantsInSeries lists participants that submitted a solution to
// any task of the Series.
func (s *StickerService) ActiveParticipantsInSeries(ctx context.Context, seriesID competitiondomain.SeriesID) ([]competitiondomain.Participant, error) {
	c, err := s.BuildContext(ctx, seriesID)
	if err != nil {
		return nil, err
	}

	var ids []competitiondomain.ParticipantID
	for _, app := range c.Current.Grade.Applications {
		p, err := c.Participant(app.ID)
		if err != nil {
			return nil, err
		}
		if len(p.Submissions.BySeries[seriesID]) > 0 {
			ids = append(ids, app.ParticipantID)
		}
	}
	return s.repo.ListParticipants(ctx, nil, ids)
}

// BuildEnvelopes formats participant addresses. note may be nil.
func BuildEnvelopes(participants []competitiondomain.Participant, note func(competitiondomain.Participant) string) []Envelope {
	out := make([]Envelope, 0, len(participants))
	for _, p := range participants {
		e := Envelope{AddressLines: addressLines(p)}
		if note != nil {
			e.Note = note(p)
		}
		out = append(out, e)
	}
	return out
}

func brochureNote(p competitiondomain.Participant) string {
	if p.BrochureByMail {
		return BrochureNote
	}
	return ""
}

func addressLines(p competitiondomain.Participant) []string {
	lines := []string{p.FullName()}
	if p.Street != "" {
		lines = append(lines, p.Street)
	}
	if city := strings.TrimSpace(p.ZipCode + " " + p.City); city != "" {
		lines = append(lines, city)
	}
	if country, ok := countryNames[strings.ToLower(p.Country)]; ok {
		lines = append(lines, country)
	} else if p.Country != "" && !strings.EqualFold(p.Country, "other") {
		lines = append(lines, p.Country)
	}
	return lines
}
