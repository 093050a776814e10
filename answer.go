package teologia

import "strings"

// Mode selects how an answer is composed from search results.
type Mode string

// Mode constants.
const (
	ModePointed     Mode = "puntual"
	ModeComparative Mode = "comparativo"
	ModeSummary     Mode = "resumen"
)

// Modes returns all modes in selector order.
func Modes() []Mode {
	return []Mode{ModePointed, ModeComparative, ModeSummary}
}

// ParseMode converts a mode name into a Mode. Both the Spanish names and
// the English aliases (pointed, comparative, summary) are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "puntual", "pointed":
		return ModePointed, nil
	case "comparativo", "comparative":
		return ModeComparative, nil
	case "resumen", "summary":
		return ModeSummary, nil
	}
	return "", Errorf(EINVALID, "unknown mode %q", s)
}

// Result limits per mode.
const (
	ComparativeLimit = 3
	SummaryLimit     = 4
)

// NoResultsMessage is the answer returned when nothing matched.
const NoResultsMessage = "No encontré resultados con esos filtros."

// SummarySynthesis is the fixed editorial sentence opening a summary answer.
const SummarySynthesis = "En síntesis: la tradición articula fe, razón y vida espiritual en continuidad."

// SpanKind identifies how a span of answer text is presented.
type SpanKind int

// SpanKind constants.
const (
	SpanText SpanKind = iota
	SpanStrong
	SpanEmphasis
	SpanLink
)

// Span is a run of answer text with a single presentation.
// URL is set only for SpanLink.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Line is a single line of an answer.
type Line []Span

// Answer is a composed answer. Renderers style each span by its kind rather
// than interpreting the marker text produced by String.
type Answer struct {
	Lines []Line
}

// String returns the answer in its marker form: **strong**, *emphasis* and
// [text](url), with lines joined by newlines.
func (a *Answer) String() string {
	if a == nil {
		return ""
	}
	lines := make([]string, 0, len(a.Lines))
	for _, line := range a.Lines {
		var sb strings.Builder
		for _, span := range line {
			switch span.Kind {
			case SpanStrong:
				sb.WriteString("**" + span.Text + "**")
			case SpanEmphasis:
				sb.WriteString("*" + span.Text + "*")
			case SpanLink:
				sb.WriteString("[" + span.Text + "](" + span.URL + ")")
			default:
				sb.WriteString(span.Text)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Links returns the link spans of the answer in order.
func (a *Answer) Links() []Span {
	if a == nil {
		return nil
	}
	var links []Span
	for _, line := range a.Lines {
		for _, span := range line {
			if span.Kind == SpanLink {
				links = append(links, span)
			}
		}
	}
	return links
}

// Compose returns the marker form of the answer for results in the given mode.
func Compose(results []Source, mode Mode) string {
	return ComposeAnswer(results, mode).String()
}

// ComposeAnswer builds an answer from results. Pointed mode cites only the
// first result, comparative mode up to ComparativeLimit results, and summary
// mode up to SummaryLimit results after a fixed synthesis sentence.
func ComposeAnswer(results []Source, mode Mode) *Answer {
	if len(results) == 0 {
		return &Answer{Lines: []Line{{text(NoResultsMessage)}}}
	}

	var a Answer
	switch mode {
	case ModeComparative:
		a.Lines = append(a.Lines, Line{strong("Comparativo"), text(" — Coincidencias y matices:")})
		for _, s := range head(results, ComparativeLimit) {
			a.Lines = append(a.Lines,
				citationLine(s),
				Line{text("→ "), link("ver pasaje", s.URL)},
			)
		}
	case ModeSummary:
		a.Lines = append(a.Lines, Line{strong("Resumen"), text(" — " + SummarySynthesis)})
		for _, s := range head(results, SummaryLimit) {
			a.Lines = append(a.Lines, Line{text("• " + s.Author + ": "), link("cita fuente", s.URL)})
		}
	default:
		s := results[0]
		a.Lines = append(a.Lines,
			Line{strong("Respuesta puntual")},
			citationLine(s),
			Line{text("→ Fuente: "), link("texto exacto", s.URL)},
		)
	}
	return &a
}

// citationLine renders "• Author, *Work*: Quote".
func citationLine(s Source) Line {
	return Line{text("• " + s.Author + ", "), emphasis(s.Work), text(": " + s.Quote)}
}

func head(results []Source, n int) []Source {
	if len(results) > n {
		return results[:n]
	}
	return results
}

func text(s string) Span { return Span{Kind: SpanText, Text: s} }

func strong(s string) Span { return Span{Kind: SpanStrong, Text: s} }

func emphasis(s string) Span { return Span{Kind: SpanEmphasis, Text: s} }

func link(s, url string) Span { return Span{Kind: SpanLink, Text: s, URL: url} }
