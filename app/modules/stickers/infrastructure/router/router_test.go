package stickerrouter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/ksicht/standings/app/eventbus"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickermocks "github.com/ksicht/standings/app/modules/stickers/application/mocks"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	"github.com/ksicht/standings/app/shared/results"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

func TestStickerRouter_ResolveRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seriesID := competitiondomain.SeriesID(uuid.New())
	svc := stickermocks.NewMockService(ctrl)
	svc.EXPECT().ResolveStickers(gomock.Any(), seriesID).Return(
		results.SuccessResult[*stickerevents.StickersResolvedPayloadV1, *stickerevents.StickersResolveFailedPayloadV1](
			&stickerevents.StickersResolvedPayloadV1{SeriesID: seriesID, Assigned: 2, Inserted: 2},
		),
		nil,
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 8}, watermill.NopLogger{})
	bus := eventbus.New(ps, ps, logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: time.Second}, watermill.NopLogger{})
	require.NoError(t, err)

	sr := NewStickerRouter(logger, router, bus, bus, noop.NewTracerProvider().Tracer("test"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, sr.Configure(ctx, svc, nil))

	out, err := bus.Subscribe(ctx, stickerevents.StickersResolvedV1)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- router.Run(ctx) }()
	<-router.Running()

	body, err := json.Marshal(stickerevents.StickersResolveRequestedPayloadV1{SeriesID: seriesID})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(stickerevents.StickersResolveRequestedV1, message.NewMessage(watermill.NewUUID(), body)))

	select {
	case msg := <-out:
		msg.Ack()
		var got stickerevents.StickersResolvedPayloadV1
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		require.Equal(t, seriesID, got.SeriesID)
		require.Equal(t, 2, got.Inserted)
	case <-time.After(5 * time.Second):
		t.Fatal("no resolved event published")
	}

	require.NoError(t, sr.Close())
	require.NoError(t, <-done)
	require.NoError(t, bus.Close())
}
