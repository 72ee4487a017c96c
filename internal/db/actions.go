// Package db provides the CLI actions for managing the sqlite
// tracking-store backend.
package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"sprawdzacz/models"
	dbpkg "sprawdzacz/pkg/db"
)

func openConfigured(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	database, err := dbpkg.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// InitAction creates the sqlite store file and its schema.
func InitAction(c *cli.Context) error {
	database, err := openConfigured(c)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Printf("Store initialized at %s\n", database.Path())
	return nil
}

// AddAction inserts one tracked series.
func AddAction(c *cli.Context) error {
	database, err := openConfigured(c)
	if err != nil {
		return err
	}
	defer database.Close()

	series := models.TrackedSeries{
		Name:           c.String("name"),
		Link:           c.String("link"),
		WatchedEpisode: c.Int("watched"),
		SiteEpisode:    c.Int("site"),
		TotalEpisodes:  c.Int("total"),
	}

	pos, err := database.InsertSeries(series)
	if err != nil {
		return err
	}
	fmt.Printf("Added %q at position %d\n", series.Name, pos)
	return nil
}

// ShowAction prints the tracked series as a table.
func ShowAction(c *cli.Context) error {
	database, err := openConfigured(c)
	if err != nil {
		return err
	}
	defer database.Close()

	series, err := database.ReadSeries()
	if err != nil {
		return err
	}
	if len(series) == 0 {
		fmt.Println("No series tracked")
		fmt.Println("\nTip: Use 'sprawdzacz store add --name \"...\" --link \"...\"' to track one")
		return nil
	}

	fmt.Printf("%-4s %-30s %-8s %-8s %-8s %-40s\n",
		"Pos", "Name", "Watched", "On Site", "Total", "Link")
	fmt.Println(strings.Repeat("-", 100))
	for _, s := range series {
		fmt.Printf("%-4d %-30s %-8d %-8d %-8d %-40s\n",
			s.Position, s.Name, s.WatchedEpisode, s.SiteEpisode, s.TotalEpisodes, s.Link)
	}
	fmt.Printf("\nTotal: %d series\n", len(series))

	return nil
}
