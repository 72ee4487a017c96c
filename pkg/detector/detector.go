// Package detector extracts episode availability from fetched pages.
//
// The tracked site renders each episode release as a collapsible
// disclosure: a <p> element whose class contains "toggler", with text
// like "Odcinek 17". Correction and retranslation posts reuse the same
// heading style but carry a small inline icon, so a heading with an
// <img> descendant counts toward the highest number seen on the page
// but not toward the newest ready episode.
package detector

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"sprawdzacz/models"
)

var episodeRe = regexp.MustCompile(`(?i)Odcinek\s*(\d+)`)

// Scanner scans page markup for episode headings. The embedded language
// detector is used purely for diagnostics: the tracked site is Polish,
// so a page that reads as English is almost certainly a login wall or
// an error interstitial served after the session cookies expired.
type Scanner struct {
	langDetector lingua.LanguageDetector
}

func NewScanner() *Scanner {
	return &Scanner{
		langDetector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Polish, lingua.English).
			Build(),
	}
}

// Scan inspects the raw markup of one series page. It never returns an
// error: parse problems and heading-free pages become a ScanResult
// with Failure set.
func (sc *Scanner) Scan(pageURL, html string) models.ScanResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.ScanResult{Failure: fmt.Sprintf("Błąd parsowania HTML: %v", err)}
	}

	var latestReady, maxFound *int
	doc.Find("p[class*=toggler]").Each(func(_ int, s *goquery.Selection) {
		num, ok := extractEpisodeNumber(normalizeText(s.Text()))
		if !ok {
			return
		}
		if maxFound == nil || num > *maxFound {
			n := num
			maxFound = &n
		}
		if s.Find("img").Length() == 0 && (latestReady == nil || num > *latestReady) {
			n := num
			latestReady = &n
		}
	})

	if latestReady == nil && maxFound == nil {
		return models.ScanResult{Failure: sc.describeEmptyPage(pageURL, html, doc)}
	}
	return models.ScanResult{LatestReady: latestReady, MaxFound: maxFound}
}

// extractEpisodeNumber pulls the first "Odcinek <n>" number out of a
// flattened heading text.
func extractEpisodeNumber(text string) (int, bool) {
	m := episodeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// describeEmptyPage builds the failure message for a page with no
// episode headings, enriched with what the page actually was: its
// readability title and, when the body reads as English instead of
// Polish, a hint that the session likely expired. Messages are Polish
// because they surface verbatim in the summary email.
func (sc *Scanner) describeEmptyPage(pageURL, html string, doc *goquery.Document) string {
	msg := "Nie znaleziono żadnego nagłówka odcinka."

	if title := pageTitle(pageURL, html); title != "" {
		msg = fmt.Sprintf("%s Strona: %q.", msg, title)
	}

	body := normalizeText(doc.Find("body").Text())
	if len(body) > 40 {
		if lang, ok := sc.langDetector.DetectLanguageOf(body); ok && lang == lingua.English {
			msg = msg + " Strona wygląda na anglojęzyczną, sesja mogła wygasnąć."
		}
	}
	return msg
}

// pageTitle extracts the page title via readability. Best effort only.
func pageTitle(pageURL, html string) string {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	p := readability.NewParser()
	article, err := p.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return ""
	}
	return normalizeText(article.Title)
}

// normalizeText strips excess whitespace, joining lines with single
// spaces so the episode regex sees a flat heading string.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
