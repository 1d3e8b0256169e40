package competitiondomain

import (
	"errors"
	"testing"
	"time"
)

func TestSeries_Validate(t *testing.T) {
	deadline := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		series  Series
		wantErr bool
	}{
		{name: "first series", series: Series{Number: 1, SubmissionDeadline: deadline}},
		{name: "fourth series", series: Series{Number: 4, SubmissionDeadline: deadline}},
		{name: "ordinal zero", series: Series{Number: 0, SubmissionDeadline: deadline}, wantErr: true},
		{name: "ordinal five", series: Series{Number: 5, SubmissionDeadline: deadline}, wantErr: true},
		{name: "missing deadline", series: Series{Number: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEntity) {
				t.Errorf("expected ErrInvalidEntity, got %v", err)
			}
		})
	}
}

func TestTask_Validate(t *testing.T) {
	if err := (Task{Number: 1, MaxPoints: WholePoints(5)}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Task{Number: 1, MaxPoints: 0}).Validate(); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity for zero maximum, got %v", err)
	}
}

func TestGrade_Validate(t *testing.T) {
	start := time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC)

	if err := (Grade{SchoolYear: "2019/2020", StartDate: start, EndDate: start.AddDate(1, 0, 0)}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Grade{SchoolYear: "2019/2020", StartDate: start, EndDate: start.AddDate(0, 0, -1)}).Validate(); err == nil {
		t.Fatal("expected error when end precedes start")
	}
}

func TestGradesOverlap(t *testing.T) {
	y := func(year int) Grade {
		return Grade{
			SchoolYear: "year",
			StartDate:  time.Date(year, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(year+1, 8, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	if err := GradesOverlap([]Grade{y(2018), y(2019), y(2020)}); err != nil {
		t.Fatalf("consecutive grades must not overlap: %v", err)
	}

	shifted := y(2019)
	shifted.StartDate = time.Date(2019, 8, 31, 0, 0, 0, 0, time.UTC)
	if err := GradesOverlap([]Grade{y(2018), shifted}); !errors.Is(err, ErrGradesOverlap) {
		t.Fatalf("expected ErrGradesOverlap, got %v", err)
	}
}

func TestPoints_String(t *testing.T) {
	tests := map[Points]string{
		0:      "0",
		500:    "5",
		1050:   "10.50",
		-25:    "-0.25",
		-1005:  "-10.05",
		123456: "1234.56",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Points(%d).String() = %q, want %q", int64(p), got, want)
		}
	}
	if got := PointsFromFloat(2.675); got != 268 && got != 267 {
		t.Errorf("PointsFromFloat rounding unexpected: %d", got)
	}
	if got := ValueOrZero(nil); got != 0 {
		t.Errorf("ValueOrZero(nil) = %d", got)
	}
}
