package stickermigrations

import (
	"context"
	"fmt"

	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// automaticStickers are the definitions backing the default rule registry.
var automaticStickers = []stickerdb.Sticker{
	{Number: 1, Title: "Řešitel"},
	{Number: 2, Title: "Všechny úlohy série"},
	{Number: 3, Title: "Řešení v každé sérii"},
	{Number: 4, Title: "Všechny úlohy ročníku"},
	{Number: 5, Title: "Všechny úlohy dvou ročníků"},
	{Number: 6, Title: "Všechny úlohy tří ročníků"},
	{Number: 7, Title: "Všechny úlohy čtyř ročníků"},
	{Number: 8, Title: "Nula bodů"},
	{Number: 9, Title: "100 bodů"},
	{Number: 10, Title: "150 bodů"},
	{Number: 11, Title: "Do šestého místa"},
	{Number: 12, Title: "Plný počet bodů"},
	{Number: 13, Title: "Štěstí"},
	{Number: 14, Title: "Na poslední chvíli"},
	{Number: 15, Title: "S předstihem"},
	{Number: 18, Title: "Do sedmého místa v každé sérii"},
	{Number: 19, Title: "Úspěšný řešitel"},
	{Number: 29, Title: "Řešení v poslední sérii"},
	{Number: 42, Title: "Čtyřicáté druhé místo"},
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Inserting sticker definitions...")

		_, err := db.NewInsert().
			Model(&automaticStickers).
			On("CONFLICT (nr) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Sticker definitions inserted successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		numbers := make([]int, len(automaticStickers))
		for i, s := range automaticStickers {
			numbers[i] = s.Number
		}
		_, err := db.NewDelete().
			Model((*stickerdb.Sticker)(nil)).
			Where("nr IN (?)", bun.In(numbers)).
			Where("handpicked = ?", false).
			Exec(ctx)
		return err
	})
}
