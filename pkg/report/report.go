// Package report renders the run summary sent by email. One list of
// notification items plus one list of problem strings goes through a
// formatter chosen by configuration; the plain and HTML variants share
// all accumulation logic upstream.
package report

import (
	"fmt"
	"strings"

	"sprawdzacz/models"
)

// Subject lines are fixed per run type.
const (
	Subject             = "Nowe odcinki do obejrzenia – Sprawdzacz"
	StoreFailureSubject = "Sprawdzacz – błąd dostępu do arkusza"
)

// Formatter renders accumulated items and problems into a mail body.
type Formatter interface {
	Format(items []models.NotificationItem, problems []string) (string, error)
	ContentType() string
}

// NewFormatter selects a formatter by configured name. Anything other
// than "html" gets the plain-text formatter.
func NewFormatter(kind string) Formatter {
	if strings.EqualFold(strings.TrimSpace(kind), "html") {
		return &HTMLFormatter{}
	}
	return &PlainFormatter{}
}

// PlainFormatter renders the original numbered plain-text listing.
type PlainFormatter struct{}

func (f *PlainFormatter) ContentType() string {
	return "text/plain"
}

func (f *PlainFormatter) Format(items []models.NotificationItem, problems []string) (string, error) {
	var lines []string

	if len(items) > 0 {
		lines = append(lines, "Nowe odcinki do obejrzenia:", "")
		for i, it := range items {
			lines = append(lines, fmt.Sprintf("%d. Tytuł: %s", i+1, it.Title))
			lines = append(lines, fmt.Sprintf("   Nowy odcinek: %d", it.NewEpisode))
			lines = append(lines, fmt.Sprintf("   Ostatni obejrzany: %d", it.LastWatched))
			lines = append(lines, fmt.Sprintf("   Link: %s", it.Link))
			lines = append(lines, "")
		}
	} else {
		lines = append(lines, "Brak nowych odcinków do obejrzenia.", "")
	}

	if len(problems) > 0 {
		lines = append(lines, "Problemy techniczne:")
		for _, p := range problems {
			lines = append(lines, fmt.Sprintf("- %s", p))
		}
	} else {
		lines = append(lines, "Problemy techniczne: brak")
	}

	return strings.Join(lines, "\n"), nil
}
