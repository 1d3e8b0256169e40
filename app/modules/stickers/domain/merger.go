package stickerdomain

import (
	"slices"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// Assignments maps each Application to its sorted, de-duplicated stickers.
type Assignments map[competitiondomain.ApplicationID][]competitiondomain.StickerID

// Count returns the number of (application, sticker) pairs.
func (a Assignments) Count() int {
	n := 0
	for _, s := range a {
		n += len(s)
	}
	return n
}

// EventWindow bounds the events rewarded in a Series.
type EventWindow struct {
	From time.Time
	To   time.Time
	// FromInclusive is set when From is the Grade start rather than a deadline.
	FromInclusive bool
}

// Contains reports whether an event starting at t belongs to the window.
func (w EventWindow) Contains(t time.Time) bool {
	if t.After(w.To) {
		return false
	}
	if w.FromInclusive {
		return !t.Before(w.From)
	}
	return t.After(w.From)
}

// Covers reports whether the whole date range of ev lies in the window.
func (w EventWindow) Covers(ev competitiondomain.Event) bool {
	return w.Contains(ev.StartDate) && !ev.EndDate.After(w.To)
}

// WindowFor returns the span between the previous Series' deadline, or the
// Grade start for the first Series, and the current deadline.
func WindowFor(c *Context) EventWindow {
	w := EventWindow{
		From:          c.Current.Grade.Grade.StartDate,
		To:            c.Current.Series.SubmissionDeadline,
		FromInclusive: true,
	}
	for _, s := range c.Current.Grade.Series {
		if s.Number < c.Current.Series.Number && (w.FromInclusive || s.SubmissionDeadline.After(w.From)) {
			w.From = s.SubmissionDeadline
			w.FromInclusive = false
		}
	}
	return w
}

// EventStickers grants event rewards to Applications whose participant attended.
func EventStickers(c *Context, events []competitiondomain.Event) Assignments {
	out := Assignments{}
	window := WindowFor(c)
	for _, ev := range events {
		if !window.Covers(ev) || len(ev.RewardStickers) == 0 {
			continue
		}
		for _, app := range c.Current.Grade.Applications {
			if ev.Attended(app.ParticipantID) {
				out[app.ID] = append(out[app.ID], ev.RewardStickers...)
			}
		}
	}
	return out
}

// ManualStickers collects stickers attached by hand to Applications and to
// their submissions, both restricted to the current Series.
func ManualStickers(c *Context) Assignments {
	out := Assignments{}
	for _, app := range c.Current.Grade.Applications {
		out[app.ID] = append(out[app.ID], app.ManualStickers[c.Current.Series.ID]...)
		p, err := c.Participant(app.ID)
		if err != nil {
			continue
		}
		for _, sub := range p.Submissions.BySeries[c.Current.Series.ID] {
			out[app.ID] = append(out[app.ID], sub.ManualStickers...)
		}
	}
	return out
}

// Merge unions the sources per Application.
func Merge(sources ...Assignments) Assignments {
	out := Assignments{}
	for _, src := range sources {
		for id, stickers := range src {
			out[id] = append(out[id], stickers...)
		}
	}
	for id, stickers := range out {
		slices.Sort(stickers)
		out[id] = slices.Compact(stickers)
	}
	return out
}

// MergeForSeries combines evaluated, event and manual stickers of the current Series.
func MergeForSeries(c *Context, eval Evaluation, events []competitiondomain.Event) Assignments {
	return Merge(eval.Stickers, EventStickers(c, events), ManualStickers(c))
}
