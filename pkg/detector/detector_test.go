package detector

import "testing"

func page(body string) string {
	return "<html><head><title>Serial</title></head><body>" + body + "</body></html>"
}

func TestScan_NoTogglerHeadings(t *testing.T) {
	sc := NewScanner()

	res := sc.Scan("https://example.pl/serial", page("<p>zwykly akapit</p><h2>Odcinek 3</h2>"))

	if !res.Failed() {
		t.Fatal("Scan() on page without toggler headings should fail")
	}
	if res.LatestReady != nil || res.MaxFound != nil {
		t.Errorf("Scan() failure should carry no numbers, got latest=%v max=%v", res.LatestReady, res.MaxFound)
	}
}

func TestScan_ReadyAndCorrectionHeadings(t *testing.T) {
	sc := NewScanner()

	html := page(`
		<p class="toggler">Odcinek 6</p>
		<p class="toggler"><img src="fix.png"> Odcinek 7</p>
	`)
	res := sc.Scan("https://example.pl/serial", html)

	if res.Failed() {
		t.Fatalf("Scan() unexpected failure: %s", res.Failure)
	}
	if got := res.LatestReadyOrZero(); got != 6 {
		t.Errorf("LatestReady = %d, want 6", got)
	}
	if got := res.MaxFoundOrZero(); got != 7 {
		t.Errorf("MaxFound = %d, want 7", got)
	}
}

func TestScan_AllHeadingsAreCorrections(t *testing.T) {
	sc := NewScanner()

	html := page(`
		<p class="post-toggler"><img src="fix.png">Odcinek 4</p>
		<p class="toggler open"><img src="fix.png">Odcinek 9</p>
	`)
	res := sc.Scan("https://example.pl/serial", html)

	if res.Failed() {
		t.Fatalf("Scan() unexpected failure: %s", res.Failure)
	}
	if res.LatestReady != nil {
		t.Errorf("LatestReady = %d, want absent", *res.LatestReady)
	}
	if got := res.MaxFoundOrZero(); got != 9 {
		t.Errorf("MaxFound = %d, want 9", got)
	}
}

func TestScan_CaseAndSuffixTolerant(t *testing.T) {
	sc := NewScanner()

	html := page(`
		<p class="toggler">ODCINEK 12</p>
		<p class="toggler">Odcinek 20 - Finał</p>
	`)
	res := sc.Scan("https://example.pl/serial", html)

	if got := res.LatestReadyOrZero(); got != 20 {
		t.Errorf("LatestReady = %d, want 20", got)
	}
}

func TestScan_NestedMarkupIsFlattened(t *testing.T) {
	sc := NewScanner()

	html := page(`<p class="toggler"><span>Odcinek</span> <strong>9</strong></p>`)
	res := sc.Scan("https://example.pl/serial", html)

	if got := res.LatestReadyOrZero(); got != 9 {
		t.Errorf("LatestReady = %d, want 9", got)
	}
}

func TestScan_TogglerWithoutNumberIsIgnored(t *testing.T) {
	sc := NewScanner()

	html := page(`
		<p class="toggler">Zapowiedź sezonu</p>
		<p class="toggler">Odcinek 2</p>
	`)
	res := sc.Scan("https://example.pl/serial", html)

	if got := res.LatestReadyOrZero(); got != 2 {
		t.Errorf("LatestReady = %d, want 2", got)
	}
	if got := res.MaxFoundOrZero(); got != 2 {
		t.Errorf("MaxFound = %d, want 2", got)
	}
}

func TestExtractEpisodeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Odcinek 17", 17, true},
		{"odcinek3", 3, true},
		{"Odcinek 20 - Finał", 20, true},
		{"Zapowiedź", 0, false},
		{"Odcinek", 0, false},
	}
	for _, tc := range cases {
		got, ok := extractEpisodeNumber(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("extractEpisodeNumber(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
