package stickerdomain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFaults struct {
	trace []competitiondomain.StickerID
}

func (f *fakeFaults) RecordRuleFault(_ context.Context, sticker competitiondomain.StickerID) {
	f.trace = append(f.trace, sticker)
}

var _ FaultRecorder = (*fakeFaults)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEvaluator_FaultsAreIsolated(t *testing.T) {
	g := newGrade(2019)
	s := g.series(1, 10)
	a := g.application(newParticipant())
	b := g.application(newParticipant())
	c := mustContext(t, s, g)

	reg, err := NewRegistry(
		Rule{Sticker: 1, Name: "always", Predicate: participation},
		Rule{Sticker: 2, Name: "boom", Predicate: func(_ *Context, id competitiondomain.ApplicationID) (bool, error) {
			if id == a.ID {
				panic("unexpected input")
			}
			return true, nil
		}},
		Rule{Sticker: 3, Name: "broken", Predicate: func(*Context, competitiondomain.ApplicationID) (bool, error) {
			return false, errors.New("missing data")
		}},
	)
	require.NoError(t, err)

	faults := &fakeFaults{}
	out := NewEvaluator(reg, discardLogger(), faults).Evaluate(context.Background(), c)

	assert.Equal(t, []competitiondomain.StickerID{1}, out.Stickers[a.ID])
	assert.Equal(t, []competitiondomain.StickerID{1, 2}, out.Stickers[b.ID])
	require.Len(t, out.Faults, 3)
	assert.Equal(t, []competitiondomain.StickerID{2, 3, 3}, faults.trace)

	var panicked RuleFault
	for _, f := range out.Faults {
		if f.Sticker == 2 {
			panicked = f
		}
	}
	assert.Equal(t, a.ID, panicked.ApplicationID)
	assert.Contains(t, panicked.Error(), "unexpected input")
}

func TestEvaluator_EveryApplicationHasEntry(t *testing.T) {
	g := newGrade(2019)
	s := g.series(1, 10)
	g.application(newParticipant())
	g.application(newParticipant())
	c := mustContext(t, s, g)

	reg, err := NewRegistry()
	require.NoError(t, err)
	out := NewEvaluator(reg, nil, nil).Evaluate(context.Background(), c)
	assert.Len(t, out.Stickers, 2)
	for _, stickers := range out.Stickers {
		assert.Empty(t, stickers)
	}
}

// Scenario A: two Series with one ten-point Task each; X scores 10 then 0.
func TestScenario_ZeroInSecondSeries(t *testing.T) {
	g := newGrade(2019)
	s1 := g.series(1, 10)
	s2 := g.series(2, 10)
	x := g.application(newParticipant())
	y := g.application(newParticipant())
	g.submit(x, g.tasks(s1)[0], 10)
	g.submit(x, g.tasks(s2)[0], 0)
	g.submit(y, g.tasks(s2)[0], 3)

	c := mustContext(t, s2, g)
	p, err := c.Participant(x.ID)
	require.NoError(t, err)
	assert.Equal(t, competitiondomain.WholePoints(10), p.Series[s2.ID].Score)
	assert.Equal(t, 1, p.Series[s2.ID].Rank)
	assert.Equal(t, competitiondomain.WholePoints(20), p.Series[s2.ID].MaxScore)

	out := NewEvaluator(DefaultRegistry(), discardLogger(), nil).Evaluate(context.Background(), c)
	require.Empty(t, out.Faults)
	assert.Contains(t, out.Stickers[x.ID], competitiondomain.StickerID(8))
	assert.NotContains(t, out.Stickers[x.ID], competitiondomain.StickerID(9))
	assert.NotContains(t, out.Stickers[x.ID], competitiondomain.StickerID(12), "full points are checked per series")
	assert.NotContains(t, out.Stickers[y.ID], competitiondomain.StickerID(8))
}

// Scenario C: the same participant completes every Task in three Grades.
func TestScenario_ThreeGradesOfCompleteWork(t *testing.T) {
	p := newParticipant()
	newest, middle, oldest := newGrade(2021), newGrade(2020), newGrade(2019)

	var first, last competitiondomain.Series
	var app competitiondomain.Application
	for _, g := range []*gradeBuilder{newest, middle, oldest} {
		s1 := g.series(1, 5)
		s2 := g.series(2, 5)
		a := g.application(p)
		g.submitAll(a, 3)
		if g == newest {
			first, last, app = s1, s2, a
		}
	}

	onLast := mustContext(t, last, newest, middle, oldest)
	assert.True(t, onLast.Current.IsLastSeries)
	out := NewEvaluator(DefaultRegistry(), discardLogger(), nil).Evaluate(context.Background(), onLast)
	assert.True(t, slices.Contains(out.Stickers[app.ID], 6))
	assert.False(t, slices.Contains(out.Stickers[app.ID], 7), "only three grades of history")

	onFirst := mustContext(t, first, newest, middle, oldest)
	assert.False(t, onFirst.Current.IsLastSeries)
	out = NewEvaluator(DefaultRegistry(), discardLogger(), nil).Evaluate(context.Background(), onFirst)
	assert.False(t, slices.Contains(out.Stickers[app.ID], 6))
}

// Scenario D: an Application without submissions sees empty collections.
func TestScenario_NoSubmissions(t *testing.T) {
	g := newGrade(2019)
	s := g.series(1, 10, 10)
	idle := g.application(newParticipant())

	c := mustContext(t, s, g)
	p, err := c.Participant(idle.ID)
	require.NoError(t, err)
	subs, ok := p.Submissions.BySeries[s.ID]
	assert.True(t, ok)
	assert.Empty(t, subs)
	assert.Len(t, p.Submissions.ByTask, 2)
	assert.False(t, p.Series[s.ID].Ranked())

	out := NewEvaluator(DefaultRegistry(), discardLogger(), nil).Evaluate(context.Background(), c)
	require.Empty(t, out.Faults)
	// Participation is the only automatic sticker for an idle application
	// unless the lottery picks it.
	for _, st := range out.Stickers[idle.ID] {
		assert.Contains(t, []competitiondomain.StickerID{1, 13}, st)
	}
}
