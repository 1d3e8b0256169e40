package stickerhandlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	stickermocks "github.com/ksicht/standings/app/modules/stickers/application/mocks"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/results"
	"go.uber.org/mock/gomock"
)

type (
	resolved = *stickerevents.StickersResolvedPayloadV1
	failed   = *stickerevents.StickersResolveFailedPayloadV1
)

func TestStickerHandlers_HandleResolveStickersRequest(t *testing.T) {
	seriesID := competitiondomain.SeriesID(uuid.New())
	payload := &stickerevents.StickersResolveRequestedPayloadV1{SeriesID: seriesID}

	tests := []struct {
		name          string
		mockSetup     func(m *stickermocks.MockService)
		wantErr       bool
		wantResultLen int
		wantTopic     string
	}{
		{
			name: "resolved",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
					results.SuccessResult[resolved, failed](&stickerevents.StickersResolvedPayloadV1{SeriesID: seriesID, Assigned: 4}),
					nil,
				)
			},
			wantResultLen: 1,
			wantTopic:     stickerevents.StickersResolvedV1,
		},
		{
			name: "handled failure",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
					results.FailureResult[resolved, failed](&stickerevents.StickersResolveFailedPayloadV1{SeriesID: seriesID, Reason: "series not found"}),
					nil,
				)
			},
			wantResultLen: 1,
			wantTopic:     stickerevents.StickersResolveFailedV1,
		},
		{
			name: "infrastructure error is retried",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(stickerservice.ResolveResult{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := stickermocks.NewMockService(ctrl)
			tt.mockSetup(svc)

			h := NewStickerHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
			res, err := h.HandleResolveStickersRequest(context.Background(), payload)

			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleResolveStickersRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(res) != tt.wantResultLen {
				t.Fatalf("result length = %d, want %d", len(res), tt.wantResultLen)
			}
			if tt.wantResultLen > 0 && res[0].Topic != tt.wantTopic {
				t.Errorf("topic = %s, want %s", res[0].Topic, tt.wantTopic)
			}
		})
	}
}

func TestStickerHandlers_HandleSeriesResultsRequest(t *testing.T) {
	seriesID := competitiondomain.SeriesID(uuid.New())
	payload := &stickerevents.SeriesResultsRequestedPayloadV1{SeriesID: seriesID, RequirePublished: true}

	type (
		ok  = *stickerevents.SeriesResultsRetrievedPayloadV1
		bad = *stickerevents.SeriesResultsFailedPayloadV1
	)

	tests := []struct {
		name      string
		mockSetup func(m *stickermocks.MockService)
		wantTopic string
	}{
		{
			name: "retrieved",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().GetSeriesResults(gomock.Any(), seriesID, true).Return(
					results.SuccessResult[ok, bad](&stickerevents.SeriesResultsRetrievedPayloadV1{SeriesID: seriesID}), nil)
			},
			wantTopic: stickerevents.SeriesResultsRetrievedV1,
		},
		{
			name: "not published",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().GetSeriesResults(gomock.Any(), seriesID, true).Return(
					results.FailureResult[ok, bad](&stickerevents.SeriesResultsFailedPayloadV1{SeriesID: seriesID, Reason: "series results not published"}), nil)
			},
			wantTopic: stickerevents.SeriesResultsFailedV1,
		},
		{
			name: "service error becomes failure event",
			mockSetup: func(m *stickermocks.MockService) {
				m.EXPECT().GetSeriesResults(gomock.Any(), seriesID, true).Return(stickerservice.SeriesResultsResult{}, errors.New("timeout"))
			},
			wantTopic: stickerevents.SeriesResultsFailedV1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := stickermocks.NewMockService(ctrl)
			tt.mockSetup(svc)

			h := &StickerHandlers{service: svc, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
			res, err := h.HandleSeriesResultsRequest(context.Background(), payload)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != 1 || res[0].Topic != tt.wantTopic {
				t.Fatalf("got %+v, want one result on %s", res, tt.wantTopic)
			}
		})
	}
}
