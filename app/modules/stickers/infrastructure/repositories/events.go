package stickerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/uptrace/bun"
)

// ListEvents returns events held within [from, to] together with their
// rewards and attendees.
func (r *Impl) ListEvents(ctx context.Context, db bun.IDB, from, to time.Time) ([]competitiondomain.Event, error) {
	db = r.resolveDB(db)

	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("ev.start_date >= ?", from).
		Where("ev.end_date <= ?", to).
		Order("ev.start_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stickerdb.ListEvents: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	var rewards []EventReward
	if err := db.NewSelect().
		Model(&rewards).
		Where("er.event_id IN (?)", bun.In(ids)).
		Order("er.sticker_nr ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.ListEvents: rewards: %w", err)
	}

	var attendees []EventAttendee
	if err := db.NewSelect().
		Model(&attendees).
		Where("ea.event_id IN (?)", bun.In(ids)).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("stickerdb.ListEvents: attendees: %w", err)
	}

	rewardsByEvent := make(map[uuid.UUID][]competitiondomain.StickerID)
	for _, rw := range rewards {
		rewardsByEvent[rw.EventID] = append(rewardsByEvent[rw.EventID], competitiondomain.StickerID(rw.StickerNumber))
	}
	attendeesByEvent := make(map[uuid.UUID][]competitiondomain.ParticipantID)
	for _, a := range attendees {
		attendeesByEvent[a.EventID] = append(attendeesByEvent[a.EventID], competitiondomain.ParticipantID(a.ParticipantID))
	}

	out := make([]competitiondomain.Event, len(events))
	for i, e := range events {
		out[i] = competitiondomain.Event{
			ID:             competitiondomain.EventID(e.ID),
			Title:          e.Title,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			RewardStickers: rewardsByEvent[e.ID],
			Attendees:      attendeesByEvent[e.ID],
		}
	}
	return out, nil
}
