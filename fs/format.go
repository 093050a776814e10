// Package fs stores sources as markdown files with YAML frontmatter.
package fs

import (
	"bytes"
	"strings"

	"github.com/fwojciec/teologia"
	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---\n"

// frontmatter holds the source fields written above the quote.
type frontmatter struct {
	ID       string            `yaml:"id"`
	Author   string            `yaml:"author"`
	Category teologia.Category `yaml:"category"`
	Work     string            `yaml:"work"`
	Section  string            `yaml:"section,omitempty"`
	Topics   []string          `yaml:"topics"`
	URL      string            `yaml:"url"`
	Position int               `yaml:"position"`
}

// FormatSource formats a source as markdown with YAML frontmatter.
// The quote is the document body. Position records catalog order.
func FormatSource(src *teologia.Source, position int) ([]byte, error) {
	fm, err := yaml.Marshal(frontmatter{
		ID:       src.ID,
		Author:   src.Author,
		Category: src.Category,
		Work:     src.Work,
		Section:  src.Section,
		Topics:   src.Topics,
		URL:      src.URL,
		Position: position,
	})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(frontmatterDelim)
	b.Write(fm)
	b.WriteString(frontmatterDelim)
	b.WriteString("\n")
	b.WriteString(src.Quote)
	b.WriteString("\n")
	return b.Bytes(), nil
}

// ParseSource parses a document written by FormatSource.
// Returns EINVALID if the frontmatter is missing or malformed.
func ParseSource(data []byte) (*teologia.Source, int, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, frontmatterDelim) {
		return nil, 0, teologia.Errorf(teologia.EINVALID, "missing frontmatter")
	}
	rest := text[len(frontmatterDelim):]
	end := strings.Index(rest, "\n"+frontmatterDelim)
	if end < 0 {
		return nil, 0, teologia.Errorf(teologia.EINVALID, "unterminated frontmatter")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &fm); err != nil {
		return nil, 0, teologia.Errorf(teologia.EINVALID, "invalid frontmatter: %v", err)
	}

	src := &teologia.Source{
		ID:       fm.ID,
		Author:   fm.Author,
		Category: fm.Category,
		Work:     fm.Work,
		Section:  fm.Section,
		Topics:   fm.Topics,
		URL:      fm.URL,
		Quote:    quoteBody(rest[end+1+len(frontmatterDelim):]),
	}
	if src.Topics == nil {
		src.Topics = []string{}
	}
	return src, fm.Position, nil
}

// quoteBody strips the blank separator line and the final newline written by
// FormatSource, keeping any other whitespace in the quote.
func quoteBody(body string) string {
	body = strings.TrimPrefix(body, "\n")
	return strings.TrimSuffix(body, "\n")
}
