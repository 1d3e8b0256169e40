package stickerdomain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_SortsAndDeduplicates(t *testing.T) {
	a := competitiondomain.ApplicationID(uuid.New())
	b := competitiondomain.ApplicationID(uuid.New())

	got := Merge(
		Assignments{a: {9, 1, 2}},
		Assignments{a: {2, 30}, b: {5}},
		Assignments{b: {5, 1}},
	)

	want := Assignments{a: {1, 2, 9, 30}, b: {1, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	a := competitiondomain.ApplicationID(uuid.New())
	evaluated := Assignments{a: {1, 2}}
	events := Assignments{a: {20}}
	manual := Assignments{a: {2, 40}}

	once := Merge(evaluated, events, manual)
	twice := Merge(once, evaluated, events, manual)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("re-merging changed the result (-once +twice):\n%s", diff)
	}
	assert.Equal(t, ComputeAssignmentHash(competitiondomain.SeriesID{}, once), ComputeAssignmentHash(competitiondomain.SeriesID{}, twice))
	assert.Equal(t, 4, once.Count())
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	a := competitiondomain.ApplicationID(uuid.New())
	src := Assignments{a: {3, 1}}
	_ = Merge(src)
	assert.Equal(t, []competitiondomain.StickerID{3, 1}, src[a])
}

func TestWindowFor(t *testing.T) {
	g := newGrade(2019)
	s1 := g.series(1, 10)
	s2 := g.series(2, 10)

	first := WindowFor(mustContext(t, s1, g))
	assert.True(t, first.FromInclusive)
	assert.Equal(t, g.snap.Grade.StartDate, first.From)
	assert.Equal(t, s1.SubmissionDeadline, first.To)
	assert.True(t, first.Contains(g.snap.Grade.StartDate))

	second := WindowFor(mustContext(t, s2, g))
	assert.False(t, second.FromInclusive)
	assert.Equal(t, s1.SubmissionDeadline, second.From)
	assert.False(t, second.Contains(s1.SubmissionDeadline))
	assert.True(t, second.Contains(s1.SubmissionDeadline.Add(time.Minute)))
	assert.True(t, second.Contains(s2.SubmissionDeadline))
	assert.False(t, second.Contains(s2.SubmissionDeadline.Add(time.Second)))

	inside := competitiondomain.Event{StartDate: s1.SubmissionDeadline.AddDate(0, 0, 1), EndDate: s2.SubmissionDeadline}
	assert.True(t, second.Covers(inside))
	inside.EndDate = s2.SubmissionDeadline.Add(time.Hour)
	assert.False(t, second.Covers(inside), "an event ending after the deadline belongs to the next series")
}

func TestMergeForSeries(t *testing.T) {
	g := newGrade(2019)
	s1 := g.series(1, 10)
	s2 := g.series(2, 10)

	attendee := newParticipant()
	a := g.application(attendee)
	b := g.application(newParticipant())
	g.snap.Applications[0].ManualStickers = map[competitiondomain.SeriesID][]competitiondomain.StickerID{
		s1.ID: {41},
		s2.ID: {40},
	}
	g.submit(a, g.tasks(s2)[0], 5).ManualStickers = []competitiondomain.StickerID{31}
	g.submit(b, g.tasks(s1)[0], 5).ManualStickers = []competitiondomain.StickerID{32}

	events := []competitiondomain.Event{
		{
			Title:          "camp",
			StartDate:      s1.SubmissionDeadline.AddDate(0, 0, 3),
			EndDate:        s1.SubmissionDeadline.AddDate(0, 0, 5),
			RewardStickers: []competitiondomain.StickerID{20},
			Attendees:      []competitiondomain.ParticipantID{attendee},
		},
		{
			Title:          "overlaps the deadline",
			StartDate:      s2.SubmissionDeadline.AddDate(0, 0, -1),
			EndDate:        s2.SubmissionDeadline.AddDate(0, 0, 1),
			RewardStickers: []competitiondomain.StickerID{22},
			Attendees:      []competitiondomain.ParticipantID{attendee},
		},
		{
			Title:          "before window",
			StartDate:      s1.SubmissionDeadline.AddDate(0, 0, -3),
			EndDate:        s1.SubmissionDeadline.AddDate(0, 0, -1),
			RewardStickers: []competitiondomain.StickerID{21},
			Attendees:      []competitiondomain.ParticipantID{attendee},
		},
	}

	c := mustContext(t, s2, g)
	eval := Evaluation{Stickers: map[competitiondomain.ApplicationID][]competitiondomain.StickerID{
		a.ID: {1, 2},
		b.ID: {1},
	}}

	got := MergeForSeries(c, eval, events)
	require.Contains(t, got, a.ID)
	assert.Equal(t, []competitiondomain.StickerID{1, 2, 20, 31, 40}, got[a.ID], "manual stickers granted in the first series stay there")
	assert.Equal(t, []competitiondomain.StickerID{1}, got[b.ID], "manual stickers of other series are not carried")
}

func TestComputeAssignmentHash(t *testing.T) {
	series := competitiondomain.SeriesID(uuid.New())
	a := competitiondomain.ApplicationID(uuid.New())
	b := competitiondomain.ApplicationID(uuid.New())

	h1 := ComputeAssignmentHash(series, Assignments{a: {1, 2}, b: {3}})
	h2 := ComputeAssignmentHash(series, Assignments{b: {3}, a: {2, 1}})
	h3 := ComputeAssignmentHash(series, Assignments{a: {1, 2}, b: {3, 4}})
	h4 := ComputeAssignmentHash(competitiondomain.SeriesID(uuid.New()), Assignments{a: {1, 2}, b: {3}})

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 64)
}
