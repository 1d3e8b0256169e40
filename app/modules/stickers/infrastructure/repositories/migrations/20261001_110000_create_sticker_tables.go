package stickermigrations

import (
	"context"
	"fmt"

	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/uptrace/bun"
)

var stickerModels = []any{
	(*stickerdb.Sticker)(nil),
	(*stickerdb.StickerAssignment)(nil),
	(*stickerdb.SubmissionSticker)(nil),
	(*stickerdb.Event)(nil),
	(*stickerdb.EventReward)(nil),
	(*stickerdb.EventAttendee)(nil),
	(*stickerdb.AssignmentRun)(nil),
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sticker tables...")

		for _, model := range stickerModels {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		_, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_sticker_assignments_series_id ON sticker_assignments (series_id)").Exec(ctx)
		if err != nil {
			return err
		}
		_, err = db.NewRaw("CREATE INDEX IF NOT EXISTS idx_events_start_date ON events (start_date)").Exec(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Sticker tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping sticker tables...")

		for i := len(stickerModels) - 1; i >= 0; i-- {
			if _, err := db.NewDropTable().Model(stickerModels[i]).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Sticker tables dropped successfully!")
		return nil
	})
}
