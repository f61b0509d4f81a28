package docx

// Locator methods: read-only traversal that flattens the nested document
// structure into linear sequences and resolves integer indices into
// concrete elements. None of these mutate the tree.

// Paragraphs returns the document's top-level paragraphs in document order.
// Paragraphs inside table cells are not included; see AllParagraphs.
func (d *Document) Paragraphs() []Paragraph {
	body := d.mustBody()
	if body == nil {
		return nil
	}
	var paras []Paragraph
	for _, child := range body.ChildElements() {
		if child.Tag == "p" {
			paras = append(paras, Paragraph{doc: d, el: child})
		}
	}
	return paras
}

// Tables returns the document's top-level tables in document order.
func (d *Document) Tables() []Table {
	body := d.mustBody()
	if body == nil {
		return nil
	}
	var tables []Table
	for _, child := range body.ChildElements() {
		if child.Tag == "tbl" {
			tables = append(tables, Table{doc: d, el: child})
		}
	}
	return tables
}

// AllParagraphs returns the top-level paragraphs followed by, for each
// table in document order, each cell's paragraphs in row-major order.
func (d *Document) AllParagraphs() []Paragraph {
	paras := d.Paragraphs()
	for _, table := range d.Tables() {
		paras = append(paras, ParagraphsOf(table)...)
	}
	return paras
}

// AllRuns returns the runs of AllParagraphs, flattened, order preserved.
func (d *Document) AllRuns() []Run {
	var runs []Run
	for _, p := range d.AllParagraphs() {
		runs = append(runs, p.Runs()...)
	}
	return runs
}

// Paragraph resolves a top-level paragraph by index. It fails with
// ErrOutOfRange when i is not in [0, len).
func (d *Document) Paragraph(i int) (Paragraph, error) {
	paras := d.Paragraphs()
	if i < 0 || i >= len(paras) {
		return Paragraph{}, errIndex("paragraph", i, len(paras))
	}
	return paras[i], nil
}

// Table resolves a top-level table by index. It fails with ErrOutOfRange
// when i is not in [0, len).
func (d *Document) Table(i int) (Table, error) {
	tables := d.Tables()
	if i < 0 || i >= len(tables) {
		return Table{}, errIndex("table", i, len(tables))
	}
	return tables[i], nil
}

// ParagraphsOf flattens a table element — table, row, column, or cell —
// into its paragraphs, preserving (cell order, paragraph order).
func ParagraphsOf(element CellContainer) []Paragraph {
	var paras []Paragraph
	for _, cell := range element.Cells() {
		paras = append(paras, cell.Paragraphs()...)
	}
	return paras
}

// RunsOf flattens a table element into its runs, preserving (cell order,
// paragraph order, run order).
func RunsOf(element CellContainer) []Run {
	var runs []Run
	for _, p := range ParagraphsOf(element) {
		runs = append(runs, p.Runs()...)
	}
	return runs
}
