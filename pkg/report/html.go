package report

import (
	"fmt"
	"html/template"
	"strings"

	"sprawdzacz/models"
)

// HTMLFormatter renders the same summary as a small HTML message with
// a link button per series. Shows the known total episode count when
// the store has one.
type HTMLFormatter struct{}

func (f *HTMLFormatter) ContentType() string {
	return "text/html"
}

var htmlBody = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Nowe odcinki do obejrzenia</h2>
{{- if .Items}}
  {{- range .Items}}
  <div style="margin-bottom: 16px; padding: 12px; border: 1px solid #ddd; border-radius: 6px;">
    <strong>{{.Title}}</strong><br>
    Nowy odcinek: {{.NewEpisode}}{{if .Total}} z {{.Total}}{{end}}<br>
    Ostatni obejrzany: {{.LastWatched}}<br>
    <a href="{{.Link}}" style="display: inline-block; margin-top: 8px; padding: 6px 14px; background: #2a6fd6; color: #fff; text-decoration: none; border-radius: 4px;">Otwórz stronę</a>
  </div>
  {{- end}}
{{- else}}
  <p>Brak nowych odcinków do obejrzenia.</p>
{{- end}}
  <h3>Problemy techniczne</h3>
{{- if .Problems}}
  <ul>
  {{- range .Problems}}
    <li>{{.}}</li>
  {{- end}}
  </ul>
{{- else}}
  <p>brak</p>
{{- end}}
</body>
</html>
`))

func (f *HTMLFormatter) Format(items []models.NotificationItem, problems []string) (string, error) {
	var sb strings.Builder
	data := struct {
		Items    []models.NotificationItem
		Problems []string
	}{items, problems}

	if err := htmlBody.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render HTML summary: %w", err)
	}
	return sb.String(), nil
}
