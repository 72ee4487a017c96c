package report

import (
	"strings"
	"testing"

	"sprawdzacz/models"
)

func TestPlainFormat_ItemsAndProblems(t *testing.T) {
	f := &PlainFormatter{}

	body, err := f.Format([]models.NotificationItem{
		{Title: "Drama A", NewEpisode: 6, LastWatched: 5, Total: 12, Link: "https://example.pl/a"},
	}, []string{"Drama B: brak linku w arkuszu"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"Nowe odcinki do obejrzenia:",
		"1. Tytuł: Drama A",
		"Nowy odcinek: 6",
		"Ostatni obejrzany: 5",
		"Link: https://example.pl/a",
		"Problemy techniczne:",
		"- Drama B: brak linku w arkuszu",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("plain body missing %q\nbody:\n%s", want, body)
		}
	}
}

func TestPlainFormat_Placeholders(t *testing.T) {
	f := &PlainFormatter{}

	body, err := f.Format(nil, nil)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(body, "Brak nowych odcinków do obejrzenia.") {
		t.Errorf("empty-items placeholder missing, body:\n%s", body)
	}
	if !strings.Contains(body, "Problemy techniczne: brak") {
		t.Errorf("empty-problems placeholder missing, body:\n%s", body)
	}
}

func TestHTMLFormat(t *testing.T) {
	f := &HTMLFormatter{}

	body, err := f.Format([]models.NotificationItem{
		{Title: "Drama <A>", NewEpisode: 6, LastWatched: 5, Total: 12, Link: "https://example.pl/a"},
	}, nil)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(body, "Drama &lt;A&gt;") {
		t.Errorf("HTML body should escape titles, body:\n%s", body)
	}
	if !strings.Contains(body, `href="https://example.pl/a"`) {
		t.Errorf("HTML body missing link button, body:\n%s", body)
	}
	if !strings.Contains(body, "6 z 12") {
		t.Errorf("HTML body missing total count, body:\n%s", body)
	}
}

func TestHTMLFormat_OmitsZeroTotal(t *testing.T) {
	f := &HTMLFormatter{}

	body, err := f.Format([]models.NotificationItem{
		{Title: "Drama A", NewEpisode: 2, LastWatched: 1},
	}, nil)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(body, " z 0") {
		t.Errorf("HTML body should omit unknown totals, body:\n%s", body)
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter("html").(*HTMLFormatter); !ok {
		t.Error(`NewFormatter("html") should return the HTML formatter`)
	}
	if _, ok := NewFormatter("plain").(*PlainFormatter); !ok {
		t.Error(`NewFormatter("plain") should return the plain formatter`)
	}
	if _, ok := NewFormatter("").(*PlainFormatter); !ok {
		t.Error(`NewFormatter("") should default to plain`)
	}
}
