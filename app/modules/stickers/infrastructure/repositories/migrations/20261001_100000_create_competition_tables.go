package stickermigrations

import (
	"context"
	"fmt"

	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// competitionModels are created in dependency order and dropped in reverse.
var competitionModels = []any{
	(*stickerdb.Grade)(nil),
	(*stickerdb.Series)(nil),
	(*stickerdb.Task)(nil),
	(*stickerdb.Participant)(nil),
	(*stickerdb.Application)(nil),
	(*stickerdb.Submission)(nil),
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating competition tables...")

		for _, model := range competitionModels {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_grade_series_grade_id ON grade_series (grade_id)",
			"CREATE INDEX IF NOT EXISTS idx_tasks_series_id ON tasks (series_id)",
			"CREATE INDEX IF NOT EXISTS idx_grade_applications_grade_created ON grade_applications (grade_id, created_at)",
			"CREATE INDEX IF NOT EXISTS idx_task_solutions_task_id ON task_solutions (task_id)",
		}
		for _, stmt := range indexes {
			if _, err := db.NewRaw(stmt).Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Competition tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping competition tables...")

		for i := len(competitionModels) - 1; i >= 0; i-- {
			if _, err := db.NewDropTable().Model(competitionModels[i]).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Competition tables dropped successfully!")
		return nil
	})
}
