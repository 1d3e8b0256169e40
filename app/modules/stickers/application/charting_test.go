package stickerservice

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestGenerateScoreProgressChart(t *testing.T) {
	tests := []struct {
		name   string
		points []ProgressPoint
	}{
		{name: "no data renders placeholder"},
		{
			name: "several series",
			points: []ProgressPoint{
				{Series: 1, Score: competitiondomain.WholePoints(8), MaxScore: competitiondomain.WholePoints(10)},
				{Series: 2, Score: competitiondomain.WholePoints(15), MaxScore: competitiondomain.WholePoints(20)},
				{Series: 3, Score: competitiondomain.PointsFromFloat(22.5), MaxScore: competitiondomain.WholePoints(30)},
			},
		},
		{
			name:   "single series",
			points: []ProgressPoint{{Series: 1, Score: 0, MaxScore: competitiondomain.WholePoints(10)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateScoreProgressChart(tt.points)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, pngMagic), "output is not a PNG")
		})
	}
}

func TestStickerService_ScoreProgressChart(t *testing.T) {
	f := newFixture()
	s := newTestService(f.repo())

	data, err := s.ScoreProgressChart(context.Background(), f.series[1].ID, f.aliceApp.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	_, err = s.ScoreProgressChart(context.Background(), f.series[1].ID, competitiondomain.ApplicationID(uuid.New()))
	require.ErrorIs(t, err, ErrApplicationNotFound)
}
