package sheet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"sprawdzacz/models"
)

func writeFixture(t *testing.T, worksheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	if worksheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", worksheet); err != nil {
			t.Fatalf("SetSheetName() error = %v", err)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName() error = %v", err)
			}
			if err := f.SetCellValue(worksheet, cell, v); err != nil {
				t.Fatalf("SetCellValue() error = %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "dramy.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	_ = f.Close()
	return path
}

var header = []interface{}{"nazwa", "link", "obejrzany_odcinek", "odcinek_na_stronie", "liczba_odcinków"}

func TestReadSeries(t *testing.T) {
	path := writeFixture(t, "arkusz1", [][]interface{}{
		header,
		{"Drama A", "https://example.pl/a", 5, 5, "12 odc."},
		{"Drama B", "https://example.pl/b", "", 3, ""},
	})

	s, err := Open(path, "arkusz1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	series, err := s.ReadSeries()
	if err != nil {
		t.Fatalf("ReadSeries() error = %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("ReadSeries() returned %d rows, want 2", len(series))
	}

	a := series[0]
	if a.Position != 2 {
		t.Errorf("series[0].Position = %d, want 2", a.Position)
	}
	if a.Name != "Drama A" || a.WatchedEpisode != 5 || a.SiteEpisode != 5 || a.TotalEpisodes != 12 {
		t.Errorf("series[0] = %+v, want watched=5 site=5 total=12", a)
	}

	b := series[1]
	if b.WatchedEpisode != 0 || b.SiteEpisode != 3 || b.TotalEpisodes != 0 {
		t.Errorf("series[1] = %+v, want empty cells parsed as 0", b)
	}
}

func TestOpen_WorksheetFallback(t *testing.T) {
	path := writeFixture(t, "Sheet1", [][]interface{}{header})

	s, err := Open(path, "arkusz1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if !s.FellBack() {
		t.Error("FellBack() = false, want true for missing worksheet")
	}
	if s.Worksheet() != "Sheet1" {
		t.Errorf("Worksheet() = %q, want %q", s.Worksheet(), "Sheet1")
	}
}

func TestOpen_MissingColumn(t *testing.T) {
	path := writeFixture(t, "arkusz1", [][]interface{}{
		{"nazwa", "link", "obejrzany_odcinek", "odcinek_na_stronie"},
	})

	_, err := Open(path, "arkusz1")
	if err == nil {
		t.Fatal("Open() with incomplete header should fail")
	}
	if !strings.Contains(err.Error(), "liczba_odcinków") {
		t.Errorf("Open() error = %q, want mention of the missing column", err)
	}
}

func TestMapHeaders_Aliases(t *testing.T) {
	// Mixed case, alternative spellings and the historical typo.
	mapping, err := MapHeaders([]string{"Tytuł", "URL", "last_watched", " na_stronie ", "liczba_odicnków"})
	if err != nil {
		t.Fatalf("MapHeaders() error = %v", err)
	}

	want := map[models.Field]int{
		models.FieldName:           0,
		models.FieldLink:           1,
		models.FieldWatchedEpisode: 2,
		models.FieldSiteEpisode:    3,
		models.FieldTotalEpisodes:  4,
	}
	for field, idx := range want {
		if mapping[field] != idx {
			t.Errorf("mapping[%s] = %d, want %d", field, mapping[field], idx)
		}
	}
}

func TestUpdateField_Persists(t *testing.T) {
	path := writeFixture(t, "arkusz1", [][]interface{}{
		header,
		{"Drama A", "https://example.pl/a", 5, 5, 12},
	})

	s, err := Open(path, "arkusz1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.UpdateField(2, models.FieldSiteEpisode, 6); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	_ = s.Close()

	// Reopen to prove the write hit the file.
	s2, err := Open(path, "arkusz1")
	if err != nil {
		t.Fatalf("Open() after update error = %v", err)
	}
	defer s2.Close()

	series, err := s2.ReadSeries()
	if err != nil {
		t.Fatalf("ReadSeries() error = %v", err)
	}
	if series[0].SiteEpisode != 6 {
		t.Errorf("SiteEpisode after update = %d, want 6", series[0].SiteEpisode)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in       string
		fallback int
		want     int
	}{
		{"12", 0, 12},
		{"12 odc.", 0, 12},
		{"odc. 7", 0, 7},
		{"  34  ", 0, 34},
		{"", 0, 0},
		{"", 5, 5},
		{"brak", 0, 0},
		{"-", 3, 3},
		{"1a2b3", 0, 123},
	}

	for _, tc := range cases {
		got := ParseNumber(tc.in, tc.fallback)
		if got != tc.want {
			t.Errorf("ParseNumber(%q, %d) = %d, want %d", tc.in, tc.fallback, got, tc.want)
		}
	}
}
