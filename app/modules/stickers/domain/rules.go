package stickerdomain

import (
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

const (
	lateWindow  = 4 * time.Hour
	earlyWindow = 14 * 24 * time.Hour
)

func participation(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	_, err := c.Participant(id)
	return err == nil, err
}

func allTasksInSeries(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	tasks := c.CurrentTasks()
	return len(tasks) > 0 && submittedAll(p, tasks), nil
}

func solutionInEverySeries(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	if !c.Current.IsLastSeries {
		return false, nil
	}
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	for _, s := range c.Current.Grade.Series {
		if len(p.Submissions.BySeries[s.ID]) == 0 {
			return false, nil
		}
	}
	return true, nil
}

func allTasksInGrade(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	if !c.Current.IsLastSeries {
		return false, nil
	}
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	tasks := c.Current.Grade.AllTasks()
	return len(tasks) > 0 && submittedAll(p, tasks), nil
}

func zeroPoints(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	for _, sub := range p.Submissions.BySeries[c.Current.Series.ID] {
		if sub.Score != nil && *sub.Score == 0 {
			return true, nil
		}
	}
	return false, nil
}

// reachedPoints compares the cumulative Grade score through the current Series.
func reachedPoints(threshold competitiondomain.Points) Predicate {
	return func(c *Context, id competitiondomain.ApplicationID) (bool, error) {
		p, err := c.Participant(id)
		if err != nil {
			return false, err
		}
		var total competitiondomain.Points
		for _, sub := range p.Submissions.All {
			total += competitiondomain.ValueOrZero(sub.Score)
		}
		return total >= threshold, nil
	}
}

func fullScore(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	for _, t := range c.CurrentTasks() {
		sub := p.Submissions.ByTask[t.ID]
		if sub != nil && sub.Score != nil && *sub.Score == t.MaxPoints {
			return true, nil
		}
	}
	return false, nil
}

func lottery(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	if _, err := c.Participant(id); err != nil {
		return false, err
	}
	_, won := c.LotteryWinners()[id]
	return won, nil
}

func lateSubmission(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	deadline := c.Current.Series.SubmissionDeadline
	for _, sub := range p.Submissions.BySeries[c.Current.Series.ID] {
		if sub.HasArtifact && deadline.Sub(sub.SubmittedAt) <= lateWindow {
			return true, nil
		}
	}
	return false, nil
}

// earlySubmission needs at least one submission; all of them must precede
// the deadline by two weeks.
func earlySubmission(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	subs := p.Submissions.BySeries[c.Current.Series.ID]
	if len(subs) == 0 {
		return false, nil
	}
	deadline := c.Current.Series.SubmissionDeadline
	for _, sub := range subs {
		if deadline.Sub(sub.SubmittedAt) < earlyWindow {
			return false, nil
		}
	}
	return true, nil
}

func topInEverySeries(limit int) Predicate {
	return func(c *Context, id competitiondomain.ApplicationID) (bool, error) {
		if !c.Current.IsLastSeries {
			return false, nil
		}
		p, err := c.Participant(id)
		if err != nil {
			return false, err
		}
		if len(c.Current.Grade.Series) == 0 {
			return false, nil
		}
		for _, s := range c.Current.Grade.Series {
			d := p.Series[s.ID]
			if !d.Ranked() || d.Rank > limit {
				return false, nil
			}
		}
		return true, nil
	}
}

func rankedExactly(rank int) Predicate {
	return func(c *Context, id competitiondomain.ApplicationID) (bool, error) {
		p, err := c.Participant(id)
		if err != nil {
			return false, err
		}
		return p.Series[c.Current.Series.ID].Rank == rank, nil
	}
}

func rankedAtMost(rank int) Predicate {
	return func(c *Context, id competitiondomain.ApplicationID) (bool, error) {
		p, err := c.Participant(id)
		if err != nil {
			return false, err
		}
		d := p.Series[c.Current.Series.ID]
		return d.Ranked() && d.Rank <= rank, nil
	}
}

func successfulSolver(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	if !c.Current.IsLastSeries {
		return false, nil
	}
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	d := p.Series[c.Current.Series.ID]
	if !d.Ranked() {
		return false, nil
	}
	return 2*d.Score >= d.MaxScore || d.Rank <= 30, nil
}

func solutionInLastSeries(c *Context, id competitiondomain.ApplicationID) (bool, error) {
	if !c.Current.IsLastSeries {
		return false, nil
	}
	p, err := c.Participant(id)
	if err != nil {
		return false, err
	}
	return len(p.Submissions.BySeries[c.Current.Series.ID]) > 0, nil
}

// allTasksInLastGrades requires every Task of the current Grade and the
// grades-1 Grades before it to be submitted by the same participant.
func allTasksInLastGrades(grades int) Predicate {
	return func(c *Context, id competitiondomain.ApplicationID) (bool, error) {
		if !c.Current.IsLastSeries {
			return false, nil
		}
		p, err := c.Participant(id)
		if err != nil {
			return false, err
		}
		participant := p.Application.ParticipantID
		for offset := 0; offset < grades; offset++ {
			g := c.GradeHistory(offset)
			if g == nil {
				return false, nil
			}
			hp, ok := g.ByParticipant[participant]
			if !ok {
				return false, nil
			}
			tasks := g.AllTasks()
			if len(tasks) == 0 || !submittedAll(hp, tasks) {
				return false, nil
			}
		}
		return true, nil
	}
}

func submittedAll(p *ParticipantDetail, tasks []competitiondomain.Task) bool {
	for _, t := range tasks {
		if p.Submissions.ByTask[t.ID] == nil {
			return false
		}
	}
	return true
}
