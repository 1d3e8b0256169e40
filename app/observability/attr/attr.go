// Package attr builds slog attributes with consistent keys.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

type correlationKey struct{}

// String returns a string attribute.
func String(key, value string) slog.Attr { return slog.String(key, value) }

// Int returns an int attribute.
func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

// Bool returns a bool attribute.
func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

// Duration returns a duration attribute.
func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

// Any returns an attribute for an arbitrary value.
func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

// Error returns the error under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// SeriesID returns a series id attribute.
func SeriesID(key string, id competitiondomain.SeriesID) slog.Attr {
	return slog.String(key, id.String())
}

// ApplicationID returns an application id attribute.
func ApplicationID(key string, id competitiondomain.ApplicationID) slog.Attr {
	return slog.String(key, id.String())
}

// Sticker returns a sticker number attribute.
func Sticker(id competitiondomain.StickerID) slog.Attr {
	return slog.Int("sticker", int(id))
}

// WithCorrelationID stores a correlation id in the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// ExtractCorrelationID returns the context's correlation id attribute.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	id, _ := ctx.Value(correlationKey{}).(string)
	return slog.String("correlation_id", id)
}

// CorrelationIDFromMsg returns the correlation id set by the router middleware.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}
