package stickerhandlers

import (
	"log/slog"

	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
)

// StickerHandlers handles sticker-related events.
type StickerHandlers struct {
	service stickerservice.Service
	logger  *slog.Logger
}

// NewStickerHandlers creates a new instance of StickerHandlers.
func NewStickerHandlers(service stickerservice.Service, logger *slog.Logger) Handlers {
	return &StickerHandlers{
		service: service,
		logger:  logger,
	}
}
