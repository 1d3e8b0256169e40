package stickerqueue

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	stickermocks "github.com/ksicht/standings/app/modules/stickers/application/mocks"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	stickermetrics "github.com/ksicht/standings/app/observability/metrics"
	"github.com/ksicht/standings/app/shared/results"
	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"
)

type (
	resolved = *stickerevents.StickersResolvedPayloadV1
	failed   = *stickerevents.StickersResolveFailedPayloadV1
)

type outcomeRecorder struct {
	stickermetrics.NoOpMetrics
	mu       sync.Mutex
	outcomes []string
}

func (r *outcomeRecorder) RecordJobOutcome(_ context.Context, kind, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, kind+":"+outcome)
}

func TestResolveStickersWorker_Work(t *testing.T) {
	seriesID := competitiondomain.SeriesID(uuid.New())

	tests := []struct {
		name        string
		mockSetup   func(m *stickermocks.MockService)
		wantErr     bool
		wantCancel  bool
		wantOutcome string
	}{
		{
			name: "resolved",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
					results.SuccessResult[resolved, failed](&stickerevents.StickersResolvedPayloadV1{SeriesID: seriesID, Assigned: 3, Inserted: 3}),
					nil,
				)
			},
			wantOutcome: "resolve_stickers:resolved",
		},
		{
			name: "unchanged",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
					results.SuccessResult[resolved, failed](&stickerevents.StickersResolvedPayloadV1{SeriesID: seriesID, Unchanged: true}),
					nil,
				)
			},
			wantOutcome: "resolve_stickers:unchanged",
		},
		{
			name: "handled failure cancels the job",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
					results.FailureResult[resolved, failed](&stickerevents.StickersResolveFailedPayloadV1{SeriesID: seriesID, Reason: "series not found"}),
					nil,
				)
			},
			wantErr:     true,
			wantCancel:  true,
			wantOutcome: "resolve_stickers:failed",
		},
		{
			name: "infrastructure error is retried",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(stickerservice.ResolveResult{}, errors.New("db down"))
			},
			wantErr:     true,
			wantOutcome: "resolve_stickers:error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := stickermocks.NewMockService(ctrl)
			tt.mockSetup(svc)

			var buf bytes.Buffer
			rec := &outcomeRecorder{}
			w := NewResolveStickersWorker(svc, slog.New(slog.NewTextHandler(&buf, nil)), rec)

			err := w.Work(context.Background(), &river.Job[ResolveStickersJob]{Args: ResolveStickersJob{SeriesID: seriesID}})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Work() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantCancel && !strings.Contains(err.Error(), "series not found") {
				t.Errorf("cancel error should carry the reason, got %v", err)
			}
			if len(rec.outcomes) != 1 || rec.outcomes[0] != tt.wantOutcome {
				t.Errorf("outcomes = %v, want [%s]", rec.outcomes, tt.wantOutcome)
			}
			if !strings.Contains(buf.String(), seriesID.String()) {
				t.Errorf("log output does not mention the series: %s", buf.String())
			}
		})
	}
}

func TestResolveStickersJob_Kind(t *testing.T) {
	if got := (ResolveStickersJob{}).Kind(); got != "resolve_stickers" {
		t.Errorf("Kind() = %q", got)
	}
}
