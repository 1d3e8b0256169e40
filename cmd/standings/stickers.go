package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ksicht/standings/app"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/urfave/cli/v2"
)

var seriesFlag = &cli.StringFlag{
	Name:     "series",
	Aliases:  []string{"s"},
	Usage:    "series id",
	Required: true,
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "assign automatic stickers for a series",
		Flags: []cli.Flag{seriesFlag},
		Action: func(c *cli.Context) error {
			seriesID, err := competitiondomain.ParseSeriesID(c.String("series"))
			if err != nil {
				return err
			}
			return withApp(c, func(a *app.App) error {
				result, err := a.Service.ResolveStickers(c.Context, seriesID)
				if err != nil {
					return err
				}
				if result.IsFailure() {
					return errors.New((*result.Failure).Reason)
				}
				resolved := *result.Success
				if resolved.Unchanged {
					fmt.Fprintf(c.App.Writer, "Series %s unchanged (hash %s)\n", seriesID, resolved.Hash)
					return nil
				}
				fmt.Fprintf(c.App.Writer, "Series %s: %d stickers assigned, %d new, %d rule faults\n",
					seriesID, resolved.Assigned, resolved.Inserted, resolved.Faults)
				return nil
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the results of a series as XLSX",
		Flags: []cli.Flag{
			seriesFlag,
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default results-<series>.xlsx)",
			},
		},
		Action: func(c *cli.Context) error {
			seriesID, err := competitiondomain.ParseSeriesID(c.String("series"))
			if err != nil {
				return err
			}
			out := c.String("out")
			if out == "" {
				out = "results-" + seriesID.String() + ".xlsx"
			}
			return withApp(c, func(a *app.App) error {
				body, err := a.Service.ExportSeriesResults(c.Context, seriesID)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, body, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				fmt.Fprintf(c.App.Writer, "Wrote %s\n", out)
				return nil
			})
		},
	}
}
