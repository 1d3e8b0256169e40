package stickerdb

import (
	"testing"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
)

func TestAssignmentRows(t *testing.T) {
	series := competitiondomain.SeriesID(uuid.New())
	a := competitiondomain.ApplicationID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	b := competitiondomain.ApplicationID(uuid.MustParse("00000000-0000-0000-0000-000000000002"))

	rows := assignmentRows(series, stickerdomain.Assignments{
		b: {1},
		a: {1, 2},
	})

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantApps := []uuid.UUID{uuid.UUID(a), uuid.UUID(a), uuid.UUID(b)}
	wantStickers := []int{1, 2, 1}
	for i, row := range rows {
		if row.ApplicationID != wantApps[i] || row.StickerNumber != wantStickers[i] {
			t.Errorf("row %d = (%s, %d), want (%s, %d)", i, row.ApplicationID, row.StickerNumber, wantApps[i], wantStickers[i])
		}
		if row.SeriesID != uuid.UUID(series) {
			t.Errorf("row %d has series %s", i, row.SeriesID)
		}
		if row.Source != SourceAutomatic {
			t.Errorf("row %d has source %q", i, row.Source)
		}
	}

	if got := assignmentRows(series, stickerdomain.Assignments{a: nil}); len(got) != 0 {
		t.Errorf("expected no rows for empty assignments, got %d", len(got))
	}
}

func TestSubmission_toDomain(t *testing.T) {
	graded := int64(750)
	sub := Submission{ApplicationID: uuid.New(), TaskID: uuid.New(), Score: &graded, HasArtifact: true}

	got := sub.toDomain()
	if got.Score == nil || *got.Score != competitiondomain.Points(750) {
		t.Fatalf("unexpected score %v", got.Score)
	}
	if !got.HasArtifact {
		t.Error("artifact flag lost")
	}

	sub.Score = nil
	if sub.toDomain().Score != nil {
		t.Error("ungraded submission must keep a nil score")
	}
}
