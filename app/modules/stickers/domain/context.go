package stickerdomain

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	rankingdomain "github.com/ksicht/standings/app/modules/ranking/domain"
)

// LotteryFraction is the share of a Grade's applications drawn by the lottery rule.
const LotteryFraction = 0.02

// GradeSnapshot is the raw bulk-loaded content of one Grade.
type GradeSnapshot struct {
	Grade        competitiondomain.Grade
	Series       []competitiondomain.Series
	Tasks        []competitiondomain.Task
	Applications []competitiondomain.Application
	Submissions  []competitiondomain.Submission
}

// SeriesDetail is a participant's cumulative standing after one Series.
type SeriesDetail struct {
	// Rank is zero when the participant was not ranked in the Series.
	Rank     int
	Score    competitiondomain.Points
	MaxScore competitiondomain.Points
}

// Ranked reports whether the participant appears in the Series ranking.
func (d SeriesDetail) Ranked() bool { return d.Rank > 0 }

// Submissions indexes one participant's submissions within a Grade.
type Submissions struct {
	All []competitiondomain.Submission
	// BySeries has an entry, possibly empty, for every Series of the Grade.
	BySeries map[competitiondomain.SeriesID][]competitiondomain.Submission
	// ByTask has an entry, nil when not submitted, for every Task of the Grade.
	ByTask map[competitiondomain.TaskID]*competitiondomain.Submission
}

// ParticipantDetail is everything known about one Application within a Grade.
type ParticipantDetail struct {
	Application competitiondomain.Application
	Series      map[competitiondomain.SeriesID]SeriesDetail
	Submissions Submissions
}

// GradeDetail is the read-only view of one Grade.
type GradeDetail struct {
	Grade competitiondomain.Grade
	// Series are ordered by ordinal.
	Series        []competitiondomain.Series
	Tasks         map[competitiondomain.SeriesID][]competitiondomain.Task
	Applications  []competitiondomain.Application
	ByParticipant map[competitiondomain.ParticipantID]*ParticipantDetail
}

// AllTasks returns the Grade's tasks ordered by series ordinal and task number.
func (g *GradeDetail) AllTasks() []competitiondomain.Task {
	var out []competitiondomain.Task
	for _, s := range g.Series {
		out = append(out, g.Tasks[s.ID]...)
	}
	return out
}

// Current points at the Series being evaluated.
type Current struct {
	Grade        *GradeDetail
	Series       competitiondomain.Series
	IsLastSeries bool
}

// Context is the immutable input of every rule predicate.
type Context struct {
	Current Current
	// ByGrades is keyed by offset from the current Grade (0 = current).
	ByGrades map[int]*GradeDetail

	byApplication map[competitiondomain.ApplicationID]*ParticipantDetail

	lotteryOnce    sync.Once
	lotteryWinners map[competitiondomain.ApplicationID]struct{}
}

// AssembleContext builds the context for target from the current Grade's
// snapshot followed by older Grades, newest first.
func AssembleContext(target competitiondomain.Series, current GradeSnapshot, history ...GradeSnapshot) (*Context, error) {
	if current.Grade.ID != target.GradeID {
		return nil, fmt.Errorf("%w: series %s does not belong to grade %s", ErrInconsistentSnapshot, target.ID, current.Grade.ID)
	}

	isLast := true
	for _, s := range current.Series {
		if s.SubmissionDeadline.After(target.SubmissionDeadline) {
			isLast = false
			break
		}
	}

	currentDetail := newGradeDetail(current, target.Number)

	c := &Context{
		Current: Current{
			Grade:        currentDetail,
			Series:       target,
			IsLastSeries: isLast,
		},
		ByGrades:      map[int]*GradeDetail{0: currentDetail},
		byApplication: make(map[competitiondomain.ApplicationID]*ParticipantDetail, len(currentDetail.Applications)),
	}
	for _, p := range currentDetail.ByParticipant {
		c.byApplication[p.Application.ID] = p
	}

	for i, snap := range history {
		c.ByGrades[i+1] = newGradeDetail(snap, 0)
	}

	return c, nil
}

// Participant returns the current-Grade detail of an Application.
func (c *Context) Participant(id competitiondomain.ApplicationID) (*ParticipantDetail, error) {
	p, ok := c.byApplication[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownApplication, id)
	}
	return p, nil
}

// CurrentTasks are the tasks of the evaluated Series.
func (c *Context) CurrentTasks() []competitiondomain.Task {
	return c.Current.Grade.Tasks[c.Current.Series.ID]
}

// GradeHistory returns the detail of the Grade at offset, and nil when fewer
// Grades are known.
func (c *Context) GradeHistory(offset int) *GradeDetail {
	return c.ByGrades[offset]
}

// LotteryWinners draws the lottery once per context.
func (c *Context) LotteryWinners() map[competitiondomain.ApplicationID]struct{} {
	c.lotteryOnce.Do(func() {
		ids := make([]competitiondomain.ApplicationID, len(c.Current.Grade.Applications))
		for i, a := range c.Current.Grade.Applications {
			ids[i] = a.ID
		}
		c.lotteryWinners = Sample(ids, LotteryFraction, c.Current.Series.ID.String())
	})
	return c.lotteryWinners
}

// newGradeDetail indexes a snapshot. A positive upTo drops Series with a
// higher ordinal.
func newGradeDetail(snap GradeSnapshot, upTo int) *GradeDetail {
	series := make([]competitiondomain.Series, 0, len(snap.Series))
	for _, s := range snap.Series {
		if upTo > 0 && s.Number > upTo {
			continue
		}
		series = append(series, s)
	}
	slices.SortFunc(series, func(a, b competitiondomain.Series) int {
		return cmp.Compare(a.Number, b.Number)
	})

	included := make(map[competitiondomain.SeriesID]bool, len(series))
	for _, s := range series {
		included[s.ID] = true
	}

	tasksBySeries := make(map[competitiondomain.SeriesID][]competitiondomain.Task, len(series))
	taskSeries := make(map[competitiondomain.TaskID]competitiondomain.SeriesID, len(snap.Tasks))
	var tasks []competitiondomain.Task
	for _, s := range series {
		tasksBySeries[s.ID] = []competitiondomain.Task{}
	}
	for _, t := range snap.Tasks {
		if !included[t.SeriesID] {
			continue
		}
		tasksBySeries[t.SeriesID] = append(tasksBySeries[t.SeriesID], t)
		taskSeries[t.ID] = t.SeriesID
		tasks = append(tasks, t)
	}
	for id := range tasksBySeries {
		slices.SortFunc(tasksBySeries[id], func(a, b competitiondomain.Task) int {
			return cmp.Compare(a.Number, b.Number)
		})
	}

	apps := slices.Clone(snap.Applications)
	slices.SortFunc(apps, func(a, b competitiondomain.Application) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return a.ID.Compare(b.ID)
	})

	detail := &GradeDetail{
		Grade:         snap.Grade,
		Series:        series,
		Tasks:         tasksBySeries,
		Applications:  apps,
		ByParticipant: make(map[competitiondomain.ParticipantID]*ParticipantDetail, len(apps)),
	}

	byApp := make(map[competitiondomain.ApplicationID]*ParticipantDetail, len(apps))
	for _, a := range apps {
		p := &ParticipantDetail{
			Application: a,
			Series:      make(map[competitiondomain.SeriesID]SeriesDetail, len(series)),
			Submissions: Submissions{
				All:      []competitiondomain.Submission{},
				BySeries: make(map[competitiondomain.SeriesID][]competitiondomain.Submission, len(series)),
				ByTask:   make(map[competitiondomain.TaskID]*competitiondomain.Submission, len(tasks)),
			},
		}
		for _, s := range series {
			p.Submissions.BySeries[s.ID] = []competitiondomain.Submission{}
		}
		for _, t := range tasks {
			p.Submissions.ByTask[t.ID] = nil
		}
		detail.ByParticipant[a.ParticipantID] = p
		byApp[a.ID] = p
	}

	var subs []competitiondomain.Submission
	for _, sub := range snap.Submissions {
		p, ok := byApp[sub.ApplicationID]
		if !ok {
			continue
		}
		seriesID, ok := taskSeries[sub.TaskID]
		if !ok {
			continue
		}
		subs = append(subs, sub)
		p.Submissions.All = append(p.Submissions.All, sub)
		p.Submissions.BySeries[seriesID] = append(p.Submissions.BySeries[seriesID], sub)
		stored := sub
		p.Submissions.ByTask[sub.TaskID] = &stored
	}

	for _, s := range series {
		results := rankingdomain.Calculate(rankingdomain.Input{
			Series:          s,
			GradeSeries:     series,
			Tasks:           tasks,
			Applications:    apps,
			Submissions:     subs,
			ExcludeInactive: true,
		})
		for _, e := range results.Entries {
			byApp[e.Application.ID].Series[s.ID] = SeriesDetail{
				Rank:     e.Rank,
				Score:    e.Total,
				MaxScore: results.MaxScore,
			}
		}
	}

	return detail
}
