package check

import (
	"errors"
	"fmt"

	"sprawdzacz/models"
	"sprawdzacz/pkg/detector"
	"sprawdzacz/pkg/fetcher"
)

// Store is the tracking-store contract shared by the spreadsheet and
// sqlite backends.
type Store interface {
	ReadSeries() ([]models.TrackedSeries, error)
	UpdateField(position int, field models.Field, value int) error
	Close() error
}

// Checker produces a scan result for one tracked series. Fetch and
// markup problems come back as a failed ScanResult, never as an error.
type Checker interface {
	Check(s models.TrackedSeries) models.ScanResult
}

type pageChecker struct {
	fetcher *fetcher.Fetcher
	scanner *detector.Scanner
}

// NewPageChecker glues the HTTP fetcher to the episode scanner.
func NewPageChecker(f *fetcher.Fetcher, sc *detector.Scanner) Checker {
	return &pageChecker{fetcher: f, scanner: sc}
}

func (c *pageChecker) Check(s models.TrackedSeries) models.ScanResult {
	html, err := c.fetcher.GetPage(s.Link)
	if err != nil {
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			return models.ScanResult{Failure: fmt.Sprintf("%s: HTTP %d", s.Name, statusErr.Code)}
		}
		return models.ScanResult{Failure: fmt.Sprintf("%s: błąd pobierania: %v", s.Name, err)}
	}

	res := c.scanner.Scan(s.Link, html)
	if res.Failed() {
		// Prefix the series name so the problem line in the summary
		// says which row it belongs to.
		res.Failure = fmt.Sprintf("%s: %s", s.Name, res.Failure)
	}
	return res
}
