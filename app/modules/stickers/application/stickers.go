package stickerservice

import (
	"context"
	"fmt"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/ksicht/standings/app/observability/attr"
)

// ListStickers returns the sticker catalogue and warns about registered rules
// whose sticker has no definition.
func (s *StickerService) ListStickers(ctx context.Context) ([]competitiondomain.Sticker, error) {
	stickers, err := s.repo.ListStickers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list stickers: %w", err)
	}

	defined := make(map[competitiondomain.StickerID]bool, len(stickers))
	for _, st := range stickers {
		defined[st.Number] = true
	}
	for _, id := range s.registry.Stickers() {
		if !defined[id] {
			s.logger.WarnContext(ctx, "Sticker rule has no definition", attr.Sticker(id))
		}
	}
	return stickers, nil
}
