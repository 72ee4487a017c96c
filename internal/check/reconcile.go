package check

import (
	"fmt"
	"log/slog"

	"sprawdzacz/models"
)

// Reconciler runs the per-row detection and write-back loop. Rows are
// processed strictly in store order; every failure is converted to a
// problem string and never stops the remaining rows.
type Reconciler struct {
	store   Store
	checker Checker
	logger  *slog.Logger
	dryRun  bool

	items    []models.NotificationItem
	problems []string
}

func NewReconciler(store Store, checker Checker, logger *slog.Logger, dryRun bool) *Reconciler {
	return &Reconciler{
		store:   store,
		checker: checker,
		logger:  logger,
		dryRun:  dryRun,
	}
}

// Items returns the accumulated new-episode notifications.
func (r *Reconciler) Items() []models.NotificationItem {
	return r.items
}

// Problems returns the accumulated per-row problem strings.
func (r *Reconciler) Problems() []string {
	return r.problems
}

// Run processes all rows once.
func (r *Reconciler) Run(series []models.TrackedSeries) {
	for i := range series {
		r.processRow(&series[i])
	}
}

func (r *Reconciler) processRow(s *models.TrackedSeries) {
	if s.IsComplete() {
		r.logger.Debug("skipping complete series", "name", s.Name)
		return
	}

	if s.Link == "" {
		r.problems = append(r.problems, fmt.Sprintf("%s: brak linku w arkuszu", s.Name))
		return
	}

	res := r.checker.Check(*s)
	if res.Failed() {
		r.problems = append(r.problems, res.Failure)
		return
	}

	latestReady := res.LatestReadyOrZero()
	maxFound := res.MaxFoundOrZero()

	// Strictly-greater comparisons keep the store monotonic: a stale
	// or partially rendered page can never regress recorded progress,
	// and re-detecting the same numbers is a no-op.
	if latestReady > s.SiteEpisode {
		r.logger.Info("site episode advanced", "name", s.Name, "from", s.SiteEpisode, "to", latestReady)
		if r.writeField(s, models.FieldSiteEpisode, latestReady, "błąd aktualizacji arkusza") {
			s.SiteEpisode = latestReady
		}
	}

	// Attempted even when the previous write failed; field writes are
	// isolated.
	if maxFound > s.TotalEpisodes {
		r.logger.Info("total episode count grew", "name", s.Name, "from", s.TotalEpisodes, "to", maxFound)
		if r.writeField(s, models.FieldTotalEpisodes, maxFound, "błąd aktualizacji liczby odcinków") {
			s.TotalEpisodes = maxFound
		}
	}

	if s.WatchedEpisode < s.SiteEpisode {
		r.items = append(r.items, models.NotificationItem{
			Title:       s.Name,
			NewEpisode:  s.SiteEpisode,
			LastWatched: s.WatchedEpisode,
			Total:       s.TotalEpisodes,
			Link:        s.Link,
		})
	}
}

// writeField persists one field and reports whether the in-memory row
// should be updated. Dry runs skip the store but still advance the
// in-memory value so the summary shows what a real run would report.
func (r *Reconciler) writeField(s *models.TrackedSeries, field models.Field, value int, problemLabel string) bool {
	if r.dryRun {
		return true
	}
	if err := r.store.UpdateField(s.Position, field, value); err != nil {
		r.problems = append(r.problems, fmt.Sprintf("%s: %s: %v", s.Name, problemLabel, err))
		return false
	}
	return true
}
