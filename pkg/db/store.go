package db

import (
	"fmt"

	"sprawdzacz/models"
)

// fieldColumns is the allowlist of writable columns; field names are
// interpolated into SQL and must never come from user input directly.
var fieldColumns = map[models.Field]string{
	models.FieldWatchedEpisode: "watched_episode",
	models.FieldSiteEpisode:    "site_episode",
	models.FieldTotalEpisodes:  "total_episodes",
}

// ReadSeries reads every tracked series in position order.
func (db *DB) ReadSeries() ([]models.TrackedSeries, error) {
	rows, err := db.Query(`
		SELECT position, name, link, watched_episode, site_episode, total_episodes
		FROM series
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read series: %w", err)
	}
	defer rows.Close()

	var series []models.TrackedSeries
	for rows.Next() {
		var s models.TrackedSeries
		if err := rows.Scan(&s.Position, &s.Name, &s.Link, &s.WatchedEpisode, &s.SiteEpisode, &s.TotalEpisodes); err != nil {
			return nil, fmt.Errorf("failed to scan series row: %w", err)
		}
		series = append(series, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate series rows: %w", err)
	}
	return series, nil
}

// UpdateField writes one numeric field of one series row.
func (db *DB) UpdateField(position int, field models.Field, value int) error {
	column, ok := fieldColumns[field]
	if !ok {
		return fmt.Errorf("unknown store field %q", field)
	}

	res, err := db.Exec(
		fmt.Sprintf("UPDATE series SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE position = ?", column),
		value, position,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s for row %d: %w", column, position, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no series at position %d", position)
	}
	return nil
}

// InsertSeries adds a tracked series and returns its position.
func (db *DB) InsertSeries(s models.TrackedSeries) (int, error) {
	res, err := db.Exec(`
		INSERT INTO series (name, link, watched_episode, site_episode, total_episodes)
		VALUES (?, ?, ?, ?, ?)
	`, s.Name, s.Link, s.WatchedEpisode, s.SiteEpisode, s.TotalEpisodes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert series %s: %w", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted position: %w", err)
	}
	return int(id), nil
}
