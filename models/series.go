// Package models defines data structures shared across the checker.
package models

// TrackedSeries is one row of the tracking store.
type TrackedSeries struct {
	// Position is the 1-based row index in the store, header included.
	// Needed for targeted write-back.
	Position       int
	Name           string
	Link           string
	WatchedEpisode int
	SiteEpisode    int
	TotalEpisodes  int
}

// IsComplete reports whether the series needs no further checking:
// everything published has been watched and the run count matches the
// known total. Complete rows are skipped entirely.
func (s *TrackedSeries) IsComplete() bool {
	return s.WatchedEpisode == s.SiteEpisode && s.SiteEpisode == s.TotalEpisodes
}

// Field names a writable column of the tracking store. Canonical names
// follow the spreadsheet's Polish headers.
type Field string

const (
	FieldName           Field = "nazwa"
	FieldLink           Field = "link"
	FieldWatchedEpisode Field = "obejrzany_odcinek"
	FieldSiteEpisode    Field = "odcinek_na_stronie"
	FieldTotalEpisodes  Field = "liczba_odcinków"
)

// NotificationItem describes one series with a newly available episode.
type NotificationItem struct {
	Title       string
	NewEpisode  int
	LastWatched int
	Total       int
	Link        string
}
