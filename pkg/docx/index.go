package docx

// Index caches the document's element lists so repeated lookups avoid
// re-walking the body. The cache reflects the document as of the last
// Refresh; mutations made directly on the Document require a Refresh
// before the index sees them.
type Index struct {
	doc        *Document
	paragraphs []Paragraph
	tables     []Table
	runs       []Run
	cells      []Cell
}

// NewIndex builds an index over d.
func NewIndex(d *Document) *Index {
	ix := &Index{doc: d}
	ix.Refresh()
	return ix
}

// Refresh rebuilds every cached list from the document body.
func (ix *Index) Refresh() {
	ix.paragraphs = ix.doc.AllParagraphs()
	ix.tables = ix.doc.Tables()
	ix.runs = ix.doc.AllRuns()

	ix.cells = ix.cells[:0]
	for _, t := range ix.tables {
		ix.cells = append(ix.cells, t.Cells()...)
	}
}

// Document returns the indexed document.
func (ix *Index) Document() *Document { return ix.doc }

// Paragraphs returns every paragraph in the document, including those
// inside table cells.
func (ix *Index) Paragraphs() []Paragraph { return ix.paragraphs }

// Paragraph returns the i-th paragraph.
func (ix *Index) Paragraph(i int) (Paragraph, error) {
	if i < 0 || i >= len(ix.paragraphs) {
		return Paragraph{}, errIndex("paragraph", i, len(ix.paragraphs))
	}
	return ix.paragraphs[i], nil
}

// Tables returns the document's top-level tables.
func (ix *Index) Tables() []Table { return ix.tables }

// Table returns the i-th table.
func (ix *Index) Table(i int) (Table, error) {
	if i < 0 || i >= len(ix.tables) {
		return Table{}, errIndex("table", i, len(ix.tables))
	}
	return ix.tables[i], nil
}

// Runs returns every run in the document, including runs inside tables.
func (ix *Index) Runs() []Run { return ix.runs }

// Cells returns every table cell, table by table in row-major order.
func (ix *Index) Cells() []Cell { return ix.cells }

// ParagraphCount reports the number of indexed paragraphs.
func (ix *Index) ParagraphCount() int { return len(ix.paragraphs) }

// TableCount reports the number of indexed tables.
func (ix *Index) TableCount() int { return len(ix.tables) }
