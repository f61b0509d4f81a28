package docx

import (
	"strings"
)

// ParagraphInfo describes one top-level paragraph for inspection output.
type ParagraphInfo struct {
	Index int    `json:"index"`
	Style string `json:"style,omitempty"`
	Text  string `json:"text"`
}

// TableInfo describes one top-level table for inspection output.
type TableInfo struct {
	Index   int        `json:"index"`
	Style   string     `json:"style,omitempty"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   [][]string `json:"cells"`
}

// DocumentStructure is a plain snapshot of the document's body, suitable
// for JSON output.
type DocumentStructure struct {
	Paragraphs []ParagraphInfo `json:"paragraphs"`
	Tables     []TableInfo     `json:"tables"`
}

// Structure walks the body and returns its paragraphs and tables as plain
// values.
func (d *Document) Structure() (*DocumentStructure, error) {
	if _, err := d.body(); err != nil {
		return nil, err
	}

	s := &DocumentStructure{}
	for i, p := range d.Paragraphs() {
		s.Paragraphs = append(s.Paragraphs, ParagraphInfo{
			Index: i,
			Style: p.Style(),
			Text:  p.Text(),
		})
	}
	for i, t := range d.Tables() {
		info := TableInfo{
			Index:   i,
			Style:   t.Style(),
			Rows:    t.RowCount(),
			Columns: t.ColumnCount(),
		}
		for _, row := range t.Rows() {
			var texts []string
			for _, c := range row.Cells() {
				texts = append(texts, c.Text())
			}
			info.Cells = append(info.Cells, texts)
		}
		s.Tables = append(s.Tables, info)
	}
	return s, nil
}

// Markdown renders the document body as markdown, walking paragraphs and
// tables in body order. Heading styles become #-prefixed headings and
// tables become pipe tables with the first row as header.
func (d *Document) Markdown() (string, error) {
	body, err := d.body()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, child := range body.ChildElements() {
		switch child.Tag {
		case "p":
			p := Paragraph{doc: d, el: child}
			text := p.Text()
			if text == "" {
				continue
			}
			if level := headingLevel(p.Style()); level > 0 {
				b.WriteString(strings.Repeat("#", level))
				b.WriteString(" ")
			}
			b.WriteString(text)
			b.WriteString("\n\n")
		case "tbl":
			writeMarkdownTable(&b, Table{doc: d, el: child})
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// headingLevel maps Heading1..Heading9 style IDs to markdown levels, 0 for
// anything else.
func headingLevel(styleID string) int {
	rest, ok := strings.CutPrefix(styleID, "Heading")
	if !ok || len(rest) != 1 {
		return 0
	}
	if rest[0] < '1' || rest[0] > '9' {
		return 0
	}
	return int(rest[0] - '0')
}

func writeMarkdownTable(b *strings.Builder, t Table) {
	rows := t.Rows()
	if len(rows) == 0 {
		return
	}

	cols := t.ColumnCount()
	for i, row := range rows {
		b.WriteString("|")
		cells := row.Cells()
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(cells) {
				text = strings.ReplaceAll(cells[c].Text(), "\n", " ")
				text = strings.ReplaceAll(text, "|", "\\|")
			}
			b.WriteString(" ")
			b.WriteString(text)
			b.WriteString(" |")
		}
		b.WriteString("\n")

		if i == 0 {
			b.WriteString("|")
			for c := 0; c < cols; c++ {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}
