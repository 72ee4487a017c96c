package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"sprawdzacz/internal/check"
	storedb "sprawdzacz/internal/db"
)

func main() {
	app := &cli.App{
		Name:  "sprawdzacz",
		Usage: "checks tracked web series for new episodes and emails a summary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to an optional YAML config file (env vars override it)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "check every tracked series once and send the summary email",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "detect and report but skip store writes and email",
					},
					&cli.BoolFlag{
						Name:  "always-send",
						Usage: "send the summary even when there is nothing to report",
					},
				},
				Action: check.RunAction,
			},
			{
				Name:  "store",
				Usage: "manage the sqlite tracking-store backend",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "create the store file and schema",
						Action: storedb.InitAction,
					},
					{
						Name:  "add",
						Usage: "track a new series",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true, Usage: "display title"},
							&cli.StringFlag{Name: "link", Usage: "page to check for episodes"},
							&cli.IntFlag{Name: "watched", Usage: "last episode watched"},
							&cli.IntFlag{Name: "site", Usage: "last episode seen on the site"},
							&cli.IntFlag{Name: "total", Usage: "known total episode count"},
						},
						Action: storedb.AddAction,
					},
					{
						Name:   "show",
						Usage:  "list tracked series",
						Action: storedb.ShowAction,
					},
				},
			},
			{
				Name:  "notify",
				Usage: "notification utilities",
				Subcommands: []*cli.Command{
					{
						Name:   "test",
						Usage:  "send a test email to verify SMTP configuration",
						Action: check.NotifyTestAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
