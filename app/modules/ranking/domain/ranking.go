package rankingdomain

import (
	"cmp"
	"slices"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// Input is everything needed to rank one Series.
type Input struct {
	// Series is the target; every Series of the same Grade with a lower or
	// equal ordinal contributes to the cumulative total.
	Series competitiondomain.Series
	// GradeSeries are all Series of the Grade, in any order.
	GradeSeries []competitiondomain.Series
	// Tasks are the Grade's tasks. Tasks of later Series are ignored.
	Tasks        []competitiondomain.Task
	Applications []competitiondomain.Application
	Submissions  []competitiondomain.Submission
	// ExcludeInactive drops Applications without a Submission on any counted Task.
	ExcludeInactive bool
}

// TaskScore is one cell of the results table.
type TaskScore struct {
	TaskID    competitiondomain.TaskID
	Score     competitiondomain.Points
	Submitted bool
	Graded    bool
}

// Entry is one ranked row.
type Entry struct {
	Rank        int
	Application competitiondomain.Application
	// Scores follow the order of Results.Tasks.
	Scores []TaskScore
	Total  competitiondomain.Points
}

// Results is the ranking of a Series.
type Results struct {
	Series   competitiondomain.Series
	Tasks    []competitiondomain.Task
	MaxScore competitiondomain.Points
	Entries  []Entry
}

// Empty reports whether no task counted towards the ranking. Everybody then
// ties at zero.
func (r Results) Empty() bool {
	return len(r.Tasks) == 0
}

// ByApplication indexes the entries.
func (r Results) ByApplication() map[competitiondomain.ApplicationID]Entry {
	out := make(map[competitiondomain.ApplicationID]Entry, len(r.Entries))
	for _, e := range r.Entries {
		out[e.Application.ID] = e
	}
	return out
}

// Calculate computes the cumulative ranking of in.Series.
func Calculate(in Input) Results {
	ordinals := make(map[competitiondomain.SeriesID]int, len(in.GradeSeries)+1)
	for _, s := range in.GradeSeries {
		ordinals[s.ID] = s.Number
	}
	ordinals[in.Series.ID] = in.Series.Number

	tasks := countedTasks(in.Tasks, ordinals, in.Series.Number)

	var maxScore competitiondomain.Points
	taskIndex := make(map[competitiondomain.TaskID]int, len(tasks))
	for i, t := range tasks {
		taskIndex[t.ID] = i
		maxScore += t.MaxPoints
	}

	entries := make([]Entry, 0, len(in.Applications))
	entryIndex := make(map[competitiondomain.ApplicationID]int, len(in.Applications))
	for _, app := range in.Applications {
		scores := make([]TaskScore, len(tasks))
		for i, t := range tasks {
			scores[i] = TaskScore{TaskID: t.ID}
		}
		entryIndex[app.ID] = len(entries)
		entries = append(entries, Entry{Application: app, Scores: scores})
	}

	for _, sub := range in.Submissions {
		ei, ok := entryIndex[sub.ApplicationID]
		if !ok {
			continue
		}
		ti, ok := taskIndex[sub.TaskID]
		if !ok {
			continue
		}
		cell := &entries[ei].Scores[ti]
		cell.Submitted = true
		cell.Graded = sub.Score != nil
		cell.Score = competitiondomain.ValueOrZero(sub.Score)
	}

	kept := entries[:0]
	for _, e := range entries {
		active := false
		for _, s := range e.Scores {
			e.Total += s.Score
			active = active || s.Submitted
		}
		if in.ExcludeInactive && !active {
			continue
		}
		kept = append(kept, e)
	}

	slices.SortFunc(kept, func(a, b Entry) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		if c := a.Application.CreatedAt.Compare(b.Application.CreatedAt); c != 0 {
			return c
		}
		return a.Application.ID.Compare(b.Application.ID)
	})

	for i := range kept {
		kept[i].Rank = i + 1
	}

	return Results{
		Series:   in.Series,
		Tasks:    tasks,
		MaxScore: maxScore,
		Entries:  kept,
	}
}

// CalculateGrade ranks the whole Grade, i.e. the cumulative ranking of its
// last Series. A Grade without Series yields empty results.
func CalculateGrade(in Input) Results {
	if len(in.GradeSeries) == 0 {
		return Results{}
	}
	last := slices.MaxFunc(in.GradeSeries, func(a, b competitiondomain.Series) int {
		return cmp.Compare(a.Number, b.Number)
	})
	in.Series = last
	return Calculate(in)
}

// countedTasks returns the tasks up to the given ordinal ordered by
// (series ordinal, task number).
func countedTasks(all []competitiondomain.Task, ordinals map[competitiondomain.SeriesID]int, upTo int) []competitiondomain.Task {
	out := make([]competitiondomain.Task, 0, len(all))
	for _, t := range all {
		ord, ok := ordinals[t.SeriesID]
		if !ok || ord > upTo {
			continue
		}
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b competitiondomain.Task) int {
		if c := cmp.Compare(ordinals[a.SeriesID], ordinals[b.SeriesID]); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return out
}
