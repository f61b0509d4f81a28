package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// CellContainer is implemented by every table element that resolves to a
// set of cells: the table itself, a row, a column, and a single cell.
// Polymorphic operations (RunsOf, SetElementAlignment, ...) dispatch
// through it instead of inspecting concrete types.
type CellContainer interface {
	Cells() []Cell
}

// Paragraph is a transient reference to a w:p element.
type Paragraph struct {
	doc *Document
	el  *etree.Element
}

// Run is a transient reference to a w:r element.
type Run struct {
	doc *Document
	el  *etree.Element
}

// Table is a transient reference to a w:tbl element.
type Table struct {
	doc *Document
	el  *etree.Element
}

// Row is a reference to a w:tr element of a table.
type Row struct {
	doc *Document
	el  *etree.Element
}

// Column is a derived view over the cells at a fixed column index across a
// table's rows; it has no element of its own.
type Column struct {
	doc   *Document
	table *etree.Element
	index int
}

// Cell is a transient reference to a w:tc element.
type Cell struct {
	doc *Document
	el  *etree.Element
}

// IsZero reports whether the paragraph reference is empty.
func (p Paragraph) IsZero() bool { return p.el == nil }

// Runs returns the paragraph's runs in text order.
func (p Paragraph) Runs() []Run {
	var runs []Run
	for _, child := range p.el.ChildElements() {
		if child.Tag == "r" {
			runs = append(runs, Run{doc: p.doc, el: child})
		}
	}
	return runs
}

// Text returns the concatenated text of all runs in the paragraph.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// Style returns the paragraph's style ID, or "" when unset.
func (p Paragraph) Style() string {
	if pPr := childByTag(p.el, "pPr"); pPr != nil {
		if pStyle := childByTag(pPr, "pStyle"); pStyle != nil {
			return attrVal(pStyle, "val")
		}
	}
	return ""
}

// Alignment returns the paragraph's w:jc value, or "" when unset.
func (p Paragraph) Alignment() Alignment {
	if pPr := childByTag(p.el, "pPr"); pPr != nil {
		if jc := childByTag(pPr, "jc"); jc != nil {
			return Alignment(attrVal(jc, "val"))
		}
	}
	return ""
}

// AppendRun appends a new run with the given text and returns it.
func (p Paragraph) AppendRun(text string) Run {
	r := p.el.CreateElement("w:r")
	run := Run{doc: p.doc, el: r}
	run.SetText(text)
	p.doc.markDocumentDirty()
	return run
}

// Clear removes all runs, leaving an empty paragraph in place.
func (p Paragraph) Clear() {
	var toRemove []*etree.Element
	for _, child := range p.el.ChildElements() {
		if child.Tag == "r" {
			toRemove = append(toRemove, child)
		}
	}
	for _, child := range toRemove {
		p.el.RemoveChild(child)
	}
	p.doc.markDocumentDirty()
}

// IsZero reports whether the run reference is empty.
func (r Run) IsZero() bool { return r.el == nil }

// Text returns the concatenated content of the run's w:t elements.
func (r Run) Text() string {
	var sb strings.Builder
	for _, child := range r.el.ChildElements() {
		if child.Tag == "t" {
			sb.WriteString(child.Text())
		}
	}
	return sb.String()
}

// SetText replaces the run's text. Multiple w:t elements are consolidated
// into one; xml:space="preserve" is set when the text has edge whitespace.
func (r Run) SetText(text string) {
	var toRemove []*etree.Element
	for _, child := range r.el.ChildElements() {
		if child.Tag == "t" {
			toRemove = append(toRemove, child)
		}
	}
	for _, child := range toRemove {
		r.el.RemoveChild(child)
	}

	t := r.el.CreateElement("w:t")
	t.SetText(text)
	if needsSpacePreserve(text) {
		t.CreateAttr("xml:space", "preserve")
	}
	r.doc.markDocumentDirty()
}

// Style returns the run's character style ID, or "" when unset.
func (r Run) Style() string {
	if rStyle := r.propChild("rStyle"); rStyle != nil {
		return attrVal(rStyle, "val")
	}
	return ""
}

// FontName returns the run's w:rFonts ascii name, or "" when unset.
func (r Run) FontName() string {
	if fonts := r.propChild("rFonts"); fonts != nil {
		return attrVal(fonts, "ascii")
	}
	return ""
}

// EastAsianFontName returns the run's w:rFonts eastAsia name.
func (r Run) EastAsianFontName() string {
	if fonts := r.propChild("rFonts"); fonts != nil {
		return attrVal(fonts, "eastAsia")
	}
	return ""
}

// FontSize returns the run's font size in points and whether it is set.
func (r Run) FontSize() (float64, bool) {
	if sz := r.propChild("sz"); sz != nil {
		if hp, ok := parseInt(attrVal(sz, "val")); ok {
			return halfPointsToPt(hp), true
		}
	}
	return 0, false
}

// Color returns the run's color and whether it is set.
func (r Run) Color() (Color, bool) {
	if col := r.propChild("color"); col != nil {
		if c, err := ParseColor(attrVal(col, "val")); err == nil {
			return c, true
		}
	}
	return Color{}, false
}

// Bold reports whether the run is bold.
func (r Run) Bold() bool { return r.propFlag("b") }

// Italic reports whether the run is italic.
func (r Run) Italic() bool { return r.propFlag("i") }

// Underline reports whether the run is underlined.
func (r Run) Underline() bool {
	if u := r.propChild("u"); u != nil {
		return attrVal(u, "val") != "none"
	}
	return false
}

// Strike reports whether the run is struck through.
func (r Run) Strike() bool { return r.propFlag("strike") }

func (r Run) propChild(tag string) *etree.Element {
	if rPr := childByTag(r.el, "rPr"); rPr != nil {
		return childByTag(rPr, tag)
	}
	return nil
}

// propFlag reads an on/off toggle child of w:rPr. Presence means on unless
// w:val says otherwise.
func (r Run) propFlag(tag string) bool {
	el := r.propChild(tag)
	if el == nil {
		return false
	}
	switch attrVal(el, "val") {
	case "0", "false", "none":
		return false
	}
	return true
}

// IsZero reports whether the table reference is empty.
func (t Table) IsZero() bool { return t.el == nil }

// Rows returns the table's rows in order.
func (t Table) Rows() []Row {
	var rows []Row
	for _, child := range t.el.ChildElements() {
		if child.Tag == "tr" {
			rows = append(rows, Row{doc: t.doc, el: child})
		}
	}
	return rows
}

// Row resolves a row by index.
func (t Table) Row(i int) (Row, error) {
	rows := t.Rows()
	if i < 0 || i >= len(rows) {
		return Row{}, errIndex("row", i, len(rows))
	}
	return rows[i], nil
}

// Columns returns derived column views, one per grid column.
func (t Table) Columns() []Column {
	n := t.ColumnCount()
	cols := make([]Column, 0, n)
	for i := 0; i < n; i++ {
		cols = append(cols, Column{doc: t.doc, table: t.el, index: i})
	}
	return cols
}

// Column resolves a column view by index.
func (t Table) Column(i int) (Column, error) {
	n := t.ColumnCount()
	if i < 0 || i >= n {
		return Column{}, errIndex("column", i, n)
	}
	return Column{doc: t.doc, table: t.el, index: i}, nil
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows())
}

// ColumnCount returns the number of grid columns: the first row's cell
// count, falling back to w:tblGrid when the table has no rows.
func (t Table) ColumnCount() int {
	for _, child := range t.el.ChildElements() {
		if child.Tag == "tr" {
			return len(rowCellElements(child))
		}
	}
	if grid := childByTag(t.el, "tblGrid"); grid != nil {
		count := 0
		for _, child := range grid.ChildElements() {
			if child.Tag == "gridCol" {
				count++
			}
		}
		return count
	}
	return 0
}

// Cells returns all cells in row-major order.
func (t Table) Cells() []Cell {
	var cells []Cell
	for _, row := range t.Rows() {
		cells = append(cells, row.Cells()...)
	}
	return cells
}

// Style returns the table's style ID, or "" when unset.
func (t Table) Style() string {
	if tblPr := childByTag(t.el, "tblPr"); tblPr != nil {
		if style := childByTag(tblPr, "tblStyle"); style != nil {
			return attrVal(style, "val")
		}
	}
	return ""
}

// Cells returns the row's cells in order.
func (r Row) Cells() []Cell {
	elems := rowCellElements(r.el)
	cells := make([]Cell, 0, len(elems))
	for _, el := range elems {
		cells = append(cells, Cell{doc: r.doc, el: el})
	}
	return cells
}

// SetTexts assigns one value per cell. The value count must match the cell
// count exactly.
func (r Row) SetTexts(values []string) error {
	cells := r.Cells()
	if len(values) != len(cells) {
		return errCount(len(values), len(cells))
	}
	for i, cell := range cells {
		cell.SetText(values[i])
	}
	return nil
}

// Cells returns the cell at this column's index in each row, top to bottom.
// Rows too short to reach the index are skipped.
func (c Column) Cells() []Cell {
	var cells []Cell
	for _, child := range c.table.ChildElements() {
		if child.Tag != "tr" {
			continue
		}
		elems := rowCellElements(child)
		if c.index < len(elems) {
			cells = append(cells, Cell{doc: c.doc, el: elems[c.index]})
		}
	}
	return cells
}

// SetTexts assigns one value per cell. The value count must match the cell
// count exactly.
func (c Column) SetTexts(values []string) error {
	cells := c.Cells()
	if len(values) != len(cells) {
		return errCount(len(values), len(cells))
	}
	for i, cell := range cells {
		cell.SetText(values[i])
	}
	return nil
}

// IsZero reports whether the cell reference is empty.
func (c Cell) IsZero() bool { return c.el == nil }

// Cells returns the cell itself, satisfying CellContainer.
func (c Cell) Cells() []Cell { return []Cell{c} }

// Paragraphs returns the cell's paragraphs in order.
func (c Cell) Paragraphs() []Paragraph {
	var paras []Paragraph
	for _, child := range c.el.ChildElements() {
		if child.Tag == "p" {
			paras = append(paras, Paragraph{doc: c.doc, el: child})
		}
	}
	return paras
}

// Text returns the cell's paragraphs' text joined with newlines.
func (c Cell) Text() string {
	paras := c.Paragraphs()
	texts := make([]string, 0, len(paras))
	for _, p := range paras {
		texts = append(texts, p.Text())
	}
	return strings.Join(texts, "\n")
}

// SetText replaces the cell's content: the first paragraph keeps only a
// single run holding text, and any further paragraphs are removed.
func (c Cell) SetText(text string) {
	var first *etree.Element
	var extra []*etree.Element
	for _, child := range c.el.ChildElements() {
		if child.Tag == "p" {
			if first == nil {
				first = child
			} else {
				extra = append(extra, child)
			}
		}
	}
	for _, p := range extra {
		c.el.RemoveChild(p)
	}
	if first == nil {
		first = c.el.CreateElement("w:p")
	}

	para := Paragraph{doc: c.doc, el: first}
	para.Clear()
	para.AppendRun(text)
}

// rowCellElements returns the w:tc children of a w:tr element.
func rowCellElements(tr *etree.Element) []*etree.Element {
	var cells []*etree.Element
	for _, child := range tr.ChildElements() {
		if child.Tag == "tc" {
			cells = append(cells, child)
		}
	}
	return cells
}

// childByTag returns the first child with the given local tag name.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// attrVal reads an attribute by local name, tolerating both prefixed
// (w:val) and bare (val) spellings, as produced by different writers.
func attrVal(el *etree.Element, name string) string {
	if a := el.SelectAttr("w:" + name); a != nil {
		return a.Value
	}
	if a := el.SelectAttr(name); a != nil {
		return a.Value
	}
	return ""
}

func needsSpacePreserve(text string) bool {
	return len(text) > 0 && (text[0] == ' ' || text[len(text)-1] == ' ')
}

func parseInt(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}
