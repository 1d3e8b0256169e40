package stickerdomain

import (
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// Predicate decides whether an Application earns a sticker.
type Predicate func(c *Context, id competitiondomain.ApplicationID) (bool, error)

// Rule binds a predicate to the sticker it grants.
type Rule struct {
	Sticker   competitiondomain.StickerID
	Name      string
	Predicate Predicate
}

// Registry is an ordered, read-only rule table.
type Registry struct {
	rules []Rule
}

// NewRegistry validates and freezes the given rules in order.
func NewRegistry(rules ...Rule) (*Registry, error) {
	seen := make(map[competitiondomain.StickerID]string, len(rules))
	for _, r := range rules {
		if r.Predicate == nil {
			return nil, fmt.Errorf("rule %q for sticker %d has no predicate", r.Name, r.Sticker)
		}
		if prev, ok := seen[r.Sticker]; ok {
			return nil, fmt.Errorf("%w: %d (%s, %s)", ErrDuplicateSticker, r.Sticker, prev, r.Name)
		}
		seen[r.Sticker] = r.Name
	}
	return &Registry{rules: append([]Rule(nil), rules...)}, nil
}

// Rules returns a copy of the table.
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.rules) }

// Stickers lists the sticker numbers in registration order.
func (r *Registry) Stickers() []competitiondomain.StickerID {
	out := make([]competitiondomain.StickerID, len(r.rules))
	for i, rule := range r.rules {
		out[i] = rule.Sticker
	}
	return out
}

// DefaultRegistry returns the competition's automatic sticker rules.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(defaultRules()...)
	if err != nil {
		panic(err)
	}
	return reg
}

func defaultRules() []Rule {
	return []Rule{
		{Sticker: 1, Name: "participation", Predicate: participation},
		{Sticker: 2, Name: "all_tasks_in_series", Predicate: allTasksInSeries},
		{Sticker: 3, Name: "solution_in_every_series", Predicate: solutionInEverySeries},
		{Sticker: 4, Name: "all_tasks_in_grade", Predicate: allTasksInGrade},
		{Sticker: 8, Name: "zero_points", Predicate: zeroPoints},
		{Sticker: 9, Name: "reached_100", Predicate: reachedPoints(competitiondomain.WholePoints(100))},
		{Sticker: 10, Name: "reached_150", Predicate: reachedPoints(competitiondomain.WholePoints(150))},
		{Sticker: 12, Name: "full_score", Predicate: fullScore},
		{Sticker: 13, Name: "lottery", Predicate: lottery},
		{Sticker: 14, Name: "late_submission", Predicate: lateSubmission},
		{Sticker: 15, Name: "early_submission", Predicate: earlySubmission},
		{Sticker: 18, Name: "top_7_every_series", Predicate: topInEverySeries(7)},
		{Sticker: 42, Name: "ranked_42nd", Predicate: rankedExactly(42)},
		{Sticker: 19, Name: "successful_solver", Predicate: successfulSolver},
		{Sticker: 29, Name: "solution_in_last_series", Predicate: solutionInLastSeries},
		{Sticker: 5, Name: "all_tasks_last_2_grades", Predicate: allTasksInLastGrades(2)},
		{Sticker: 6, Name: "all_tasks_last_3_grades", Predicate: allTasksInLastGrades(3)},
		{Sticker: 7, Name: "all_tasks_last_4_grades", Predicate: allTasksInLastGrades(4)},
		{Sticker: 11, Name: "top_6_in_series", Predicate: rankedAtMost(6)},
	}
}
