package stickerdomain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// ComputeAssignmentHash generates a deterministic hash of a Series' sticker
// assignments. An unchanged hash means a re-run has nothing new to persist.
func ComputeAssignmentHash(seriesID competitiondomain.SeriesID, assignments Assignments) string {
	ids := make([]string, 0, len(assignments))
	byID := make(map[string][]competitiondomain.StickerID, len(assignments))
	for id, stickers := range assignments {
		key := id.String()
		ids = append(ids, key)
		byID[key] = stickers
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString(seriesID.String())
	sb.WriteByte('|')
	for _, id := range ids {
		stickers := append([]competitiondomain.StickerID(nil), byID[id]...)
		sort.Slice(stickers, func(i, j int) bool { return stickers[i] < stickers[j] })
		fmt.Fprintf(&sb, "%s:", id)
		for _, s := range stickers {
			fmt.Fprintf(&sb, "%d,", s)
		}
		sb.WriteByte(';')
	}

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}
