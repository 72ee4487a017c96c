// Package sheet reads and writes the xlsx tracking spreadsheet.
//
// The spreadsheet is user-maintained: one header row, one row per
// tracked series. Header spellings drift (and one historical typo is
// in circulation), so columns are discovered by an alias table instead
// of fixed positions. Row positions are 1-based and include the
// header, matching how spreadsheet UIs number rows.
package sheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"sprawdzacz/models"
)

// columnAliases maps each canonical field to the accepted header
// spellings, in match-preference order. "liczba_odicnków" is a typo
// that shipped in early sheets and still has to resolve.
var columnAliases = map[models.Field][]string{
	models.FieldName:           {"nazwa", "tytuł", "tytul"},
	models.FieldLink:           {"link", "url"},
	models.FieldWatchedEpisode: {"obejrzany_odcinek", "last_watched", "obejrzany"},
	models.FieldSiteEpisode:    {"odcinek_na_stronie", "last_on_site", "na_stronie"},
	models.FieldTotalEpisodes:  {"liczba_odcinków", "liczba_odicnków", "liczba_odc", "max_odcinek"},
}

var requiredFields = []models.Field{
	models.FieldName,
	models.FieldLink,
	models.FieldWatchedEpisode,
	models.FieldSiteEpisode,
	models.FieldTotalEpisodes,
}

// Sheet is an open spreadsheet with resolved column positions.
type Sheet struct {
	file      *excelize.File
	path      string
	worksheet string
	fellBack  bool
	columns   map[models.Field]int // 0-based column index
}

// Open opens the spreadsheet at path and resolves the header of the
// named worksheet. When that worksheet does not exist the first one is
// used instead (FellBack reports this so the caller can log it).
// A header missing any required column is a configuration error.
func Open(path, worksheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}

	tabs := f.GetSheetList()
	if len(tabs) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", path)
	}

	effective := worksheet
	fellBack := false
	if !slices.Contains(tabs, worksheet) {
		effective = tabs[0]
		fellBack = true
	}

	rows, err := f.GetRows(effective)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to read worksheet %s: %w", effective, err)
	}
	if len(rows) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("worksheet %s is empty", effective)
	}

	columns, err := MapHeaders(rows[0])
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Sheet{
		file:      f,
		path:      path,
		worksheet: effective,
		fellBack:  fellBack,
		columns:   columns,
	}, nil
}

// MapHeaders resolves a header row into canonical field -> 0-based
// column index. Matching is case-insensitive on trimmed cell values.
func MapHeaders(header []string) (map[models.Field]int, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = normalizeHeader(h)
	}

	mapping := make(map[models.Field]int)
	for _, field := range requiredFields {
		for _, alias := range columnAliases[field] {
			if idx := slices.Index(norm, alias); idx >= 0 {
				mapping[field] = idx
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in header: %s (got: %s)",
			strings.Join(missing, ", "), strings.Join(header, ", "))
	}
	return mapping, nil
}

// Worksheet returns the worksheet actually in use.
func (s *Sheet) Worksheet() string {
	return s.worksheet
}

// FellBack reports whether the configured worksheet was absent and the
// first one was used instead.
func (s *Sheet) FellBack() bool {
	return s.fellBack
}

// ReadSeries reads every data row into a TrackedSeries. Numeric cells
// are parsed leniently; rows shorter than the header read as empty
// cells.
func (s *Sheet) ReadSeries() ([]models.TrackedSeries, error) {
	rows, err := s.file.GetRows(s.worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", s.worksheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet %s is empty", s.worksheet)
	}

	series := make([]models.TrackedSeries, 0, len(rows)-1)
	for i, row := range rows[1:] {
		get := func(field models.Field) string {
			idx := s.columns[field]
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}

		series = append(series, models.TrackedSeries{
			Position:       i + 2, // row 1 is the header
			Name:           strings.TrimSpace(get(models.FieldName)),
			Link:           strings.TrimSpace(get(models.FieldLink)),
			WatchedEpisode: ParseNumber(get(models.FieldWatchedEpisode), 0),
			SiteEpisode:    ParseNumber(get(models.FieldSiteEpisode), 0),
			TotalEpisodes:  ParseNumber(get(models.FieldTotalEpisodes), 0),
		})
	}
	return series, nil
}

// UpdateField writes one value into one cell, addressed by the row's
// stored position and the field's resolved column, and saves the file
// immediately so each write stands alone.
func (s *Sheet) UpdateField(position int, field models.Field, value int) error {
	col, ok := s.columns[field]
	if !ok {
		return fmt.Errorf("unknown store field %q", field)
	}

	cell, err := excelize.CoordinatesToCellName(col+1, position)
	if err != nil {
		return fmt.Errorf("failed to address row %d column %d: %w", position, col+1, err)
	}
	if err := s.file.SetCellValue(s.worksheet, cell, value); err != nil {
		return fmt.Errorf("failed to update cell %s: %w", cell, err)
	}
	if err := s.file.Save(); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

func (s *Sheet) Close() error {
	return s.file.Close()
}

// normalizeHeader canonicalizes a header cell for alias matching.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
