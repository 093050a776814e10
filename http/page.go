package http

import (
	"embed"
	"html/template"
	"strings"

	"github.com/fwojciec/teologia"
)

// ResultsPlaceholder is shown in the results panel while it is empty.
const ResultsPlaceholder = "Sin resultados aún. Realiza una consulta."

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplate renders answer spans by kind; html/template escapes every
// field, so nothing from a source reaches the page as raw markup.
var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"isStrong":   func(s teologia.Span) bool { return s.Kind == teologia.SpanStrong },
	"isEmphasis": func(s teologia.Span) bool { return s.Kind == teologia.SpanEmphasis },
	"isLink":     func(s teologia.Span) bool { return s.Kind == teologia.SpanLink },
	"join":       strings.Join,
}).ParseFS(templateFS, "templates/page.html"))

type modeOption struct {
	Value    teologia.Mode
	Selected bool
}

type categoryChip struct {
	Category teologia.Category
	Active   bool
}

type pageView struct {
	Query       string
	Modes       []modeOption
	Chips       []categoryChip
	Answer      *teologia.Answer
	Results     []teologia.Source
	Placeholder string
}

func newPageView(state *teologia.Session) pageView {
	v := pageView{
		Query:       state.Query,
		Answer:      state.Answer,
		Results:     state.Results,
		Placeholder: ResultsPlaceholder,
	}
	for _, m := range teologia.Modes() {
		v.Modes = append(v.Modes, modeOption{Value: m, Selected: m == state.Mode})
	}
	for _, c := range teologia.Categories() {
		v.Chips = append(v.Chips, categoryChip{Category: c, Active: state.Categories.Has(c)})
	}
	return v
}
