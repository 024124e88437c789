package document

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

// HTMLTheme renders the original app's styled pt-BR workout sheet: a
// self-contained HTML page with inline CSS, one block per exercise and the
// trainer's profile as a footer.
type HTMLTheme struct {
	tmpl *template.Template
}

// NewHTMLTheme parses the built-in page template. The template is fixed,
// so a parse failure is a programming error and panics at startup.
func NewHTMLTheme() *HTMLTheme {
	return &HTMLTheme{tmpl: template.Must(template.New("workout").Parse(workoutPage))}
}

func (t *HTMLTheme) Render(doc Document) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, newPageData(doc)); err != nil {
		return "", fmt.Errorf("render workout page: %w", err)
	}
	return sb.String(), nil
}

// pageData is the template's view of a resolved Document. Media sources
// are pre-vetted by the resolver, so they are passed through as
// template.URL; everything else goes through contextual escaping.
type pageData struct {
	WorkoutName string
	StudentName string
	DayLabel    string
	Profile     domain.Profile
	Exercises   []pageExercise
}

type pageExercise struct {
	Name        string
	Description string
	SetsReps    string
	IsFile      bool
	HasEmbed    bool
	Src         template.URL
	OriginalURL template.URL
}

func newPageData(doc Document) pageData {
	data := pageData{
		WorkoutName: doc.WorkoutName,
		StudentName: doc.StudentName,
		DayLabel:    doc.DayLabel,
		Profile:     doc.Profile,
		Exercises:   make([]pageExercise, 0, len(doc.Exercises)),
	}
	for _, ex := range doc.Exercises {
		pe := pageExercise{
			Name:        ex.Name,
			Description: ex.Description,
			SetsReps:    fmt.Sprintf("%d sets x %d reps", ex.Sets, ex.Reps),
		}
		if ex.Media.HasMedia() {
			pe.HasEmbed = true
			pe.IsFile = ex.Media.Kind == domain.MediaFile
			pe.Src = template.URL(ex.Media.Embed)
			pe.OriginalURL = template.URL(ex.Media.Raw)
		}
		data.Exercises = append(data.Exercises, pe)
	}
	return data
}

const workoutPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.WorkoutName}} - Treino de {{.StudentName}}</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      margin: 0;
      padding: 20px;
      line-height: 1.6;
    }
    h1 {
      color: #1E90FF;
      border-bottom: 2px solid #1E90FF;
      padding-bottom: 10px;
    }
    h2 {
      color: #333;
    }
    .exercise {
      background: #f9f9f9;
      padding: 15px;
      margin-bottom: 15px;
      border-radius: 8px;
      border-left: 4px solid #1E90FF;
    }
    .exercise h3 {
      margin-top: 0;
      color: #1E90FF;
    }
    .footer {
      margin-top: 30px;
      padding-top: 10px;
      border-top: 1px solid #ddd;
      font-size: 0.9em;
      color: #666;
    }
    .video-container {
      margin: 15px 0;
      max-width: 500px;
      width: 100%;
    }
    .workout-video {
      width: 100%;
      height: 280px;
      border: 0;
      object-fit: contain;
    }
    .video-fallback {
      font-size: 0.85em;
    }
  </style>
</head>
<body>
  <h1>{{.WorkoutName}}</h1>
  <h2>Treino de {{.StudentName}} - {{.DayLabel}}</h2>

  <div class="exercises">
{{- range .Exercises}}
    <div class="exercise">
      <h3>{{.Name}}</h3>
      <p>{{.SetsReps}}</p>
      {{- if .Description}}
      <p>{{.Description}}</p>
      {{- end}}
      {{- if .HasEmbed}}
      {{- if .IsFile}}
      <div class="video-container">
        <video controls class="workout-video">
          <source src="{{.Src}}" type="video/mp4">
          Seu navegador não suporta a reprodução de vídeos.
        </video>
      </div>
      {{- else}}
      <div class="video-container">
        <iframe class="workout-video" src="{{.Src}}" allowfullscreen></iframe>
        <p class="video-fallback"><a href="{{.OriginalURL}}">Assistir vídeo no site original</a></p>
      </div>
      {{- end}}
      {{- end}}
    </div>
{{- end}}
  </div>

  <div class="footer">
    <p><strong>{{.Profile.Name}}</strong></p>
    <p>Contato: {{.Profile.Contact}}</p>
    <p>CREF: {{.Profile.CREF}}</p>
    <p>Idade: {{.Profile.Age}}</p>
  </div>
</body>
</html>
`
