package docx

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Content mutators: structural edits on the document body. Indices held by
// callers (and Index snapshots) go stale as soon as one of these changes a
// collection's size.

// AddParagraph appends a paragraph at the end of the body and returns it.
// An optional style name is applied; an unknown style fails with
// ErrUnknownStyle after the paragraph has been removed again.
func (d *Document) AddParagraph(text string, style ...string) (Paragraph, error) {
	body, err := d.body()
	if err != nil {
		return Paragraph{}, err
	}

	el := buildParagraphElement(text)
	appendBodyChild(body, el)
	para := Paragraph{doc: d, el: el}

	if len(style) > 0 && style[0] != "" {
		if err := SetParagraphStyle(para, style[0]); err != nil {
			body.RemoveChild(el)
			return Paragraph{}, err
		}
	}

	d.markDocumentDirty()
	return para, nil
}

// InsertParagraphBefore inserts a new paragraph before the top-level
// paragraph at index, which fails with ErrOutOfRange when invalid. The new
// paragraph takes the index; the prior occupant shifts one down.
func (d *Document) InsertParagraphBefore(text string, index int, style ...string) (Paragraph, error) {
	target, err := d.Paragraph(index)
	if err != nil {
		return Paragraph{}, err
	}
	return target.InsertBefore(text, style...)
}

// InsertBefore inserts a new paragraph immediately before p and returns it.
func (p Paragraph) InsertBefore(text string, style ...string) (Paragraph, error) {
	parent := p.el.Parent()
	if parent == nil {
		return Paragraph{}, ErrNoBody
	}

	el := buildParagraphElement(text)
	insertBefore(parent, p.el, el)
	para := Paragraph{doc: p.doc, el: el}

	if len(style) > 0 && style[0] != "" {
		if err := SetParagraphStyle(para, style[0]); err != nil {
			parent.RemoveChild(el)
			return Paragraph{}, err
		}
	}

	p.doc.markDocumentDirty()
	return para, nil
}

// AppendRun resolves the top-level paragraph at index and appends a run
// with the given text to it. An optional character style name is applied;
// an unknown style fails with ErrUnknownStyle after the run has been
// removed again.
func (d *Document) AppendRun(text string, index int, style ...string) (Run, error) {
	target, err := d.Paragraph(index)
	if err != nil {
		return Run{}, err
	}

	run := target.AppendRun(text)
	if len(style) > 0 && style[0] != "" {
		if err := SetRunStyle(run, style[0]); err != nil {
			removeRunElement(run.el)
			return Run{}, err
		}
	}
	return run, nil
}

// BuildTable appends a rows×cols table at the end of the body and fills the
// cells with data in row-major order. It fails with ErrInvalidDimension
// when rows or cols is not positive and with ErrInsufficientData when data
// holds fewer than rows*cols items; extra items are ignored.
func (d *Document) BuildTable(rows, cols int, data []string, style ...string) (Table, error) {
	if rows <= 0 || cols <= 0 {
		return Table{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	if len(data) < rows*cols {
		return Table{}, fmt.Errorf("%w: %d items for %d cells", ErrInsufficientData, len(data), rows*cols)
	}

	body, err := d.body()
	if err != nil {
		return Table{}, err
	}

	el := buildTableElement(rows, cols)
	appendBodyChild(body, el)
	table := Table{doc: d, el: el}

	if len(style) > 0 && style[0] != "" {
		if err := SetTableStyle(table, style[0]); err != nil {
			body.RemoveChild(el)
			return Table{}, err
		}
	}

	for i, cell := range table.Cells() {
		cell.SetText(data[i])
	}

	d.markDocumentDirty()
	d.log.Debug("table built", zap.Int("rows", rows), zap.Int("cols", cols))
	return table, nil
}

// AppendRows appends floor(len(data)/columns) rows to the table, filling
// cell text in row-major order. When len(data) is not an exact multiple of
// the column count the trailing remainder is dropped silently; callers that
// care must size data accordingly. Returns the number of rows appended.
func AppendRows(t Table, data []string) (int, error) {
	cols := t.ColumnCount()
	if cols == 0 {
		return 0, fmt.Errorf("%w: table has no columns", ErrInvalidDimension)
	}
	last := lastRowElement(t.el)
	if last == nil {
		return 0, fmt.Errorf("%w: table has no rows", ErrInvalidDimension)
	}

	rows := len(data) / cols
	for r := 0; r < rows; r++ {
		newRow := cloneRowElement(last, data[r*cols:(r+1)*cols])
		t.el.AddChild(newRow)
	}

	if rows > 0 {
		t.doc.markDocumentDirty()
	}
	return rows, nil
}

// AppendRow appends exactly one row whose cell texts are values. Unlike
// AppendRows it insists on an exact length match.
func AppendRow(t Table, values []string) (Row, error) {
	cols := t.ColumnCount()
	if len(values) != cols {
		return Row{}, errCount(len(values), cols)
	}
	last := lastRowElement(t.el)
	if last == nil {
		return Row{}, fmt.Errorf("%w: table has no rows", ErrInvalidDimension)
	}

	newRow := cloneRowElement(last, values)
	t.el.AddChild(newRow)
	t.doc.markDocumentDirty()
	return Row{doc: t.doc, el: newRow}, nil
}

// buildParagraphElement creates a w:p with a single run holding text. An
// empty text still yields the run so the paragraph stays editable.
func buildParagraphElement(text string) *etree.Element {
	p := etree.NewElement("w:p")
	r := p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	t.SetText(text)
	if needsSpacePreserve(text) {
		t.CreateAttr("xml:space", "preserve")
	}
	return p
}

// buildTableElement creates a w:tbl grid of empty cells.
func buildTableElement(rows, cols int) *etree.Element {
	tbl := etree.NewElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")

	grid := tbl.CreateElement("w:tblGrid")
	for c := 0; c < cols; c++ {
		grid.CreateElement("w:gridCol")
	}

	for r := 0; r < rows; r++ {
		tr := tbl.CreateElement("w:tr")
		for c := 0; c < cols; c++ {
			tc := tr.CreateElement("w:tc")
			tc.CreateElement("w:p")
		}
	}
	return tbl
}

// lastRowElement returns the table's last w:tr, or nil.
func lastRowElement(tbl *etree.Element) *etree.Element {
	var last *etree.Element
	for _, child := range tbl.ChildElements() {
		if child.Tag == "tr" {
			last = child
		}
	}
	return last
}

// cloneRowElement builds a new w:tr modeled on source: row and cell
// properties are copied so the new row inherits the table's look, and each
// cell gets a single paragraph holding the corresponding value.
func cloneRowElement(source *etree.Element, values []string) *etree.Element {
	newRow := etree.NewElement("w:tr")

	if trPr := childByTag(source, "trPr"); trPr != nil {
		newRow.AddChild(trPr.Copy())
	}

	sourceCells := rowCellElements(source)
	for i := range values {
		tc := etree.NewElement("w:tc")
		if i < len(sourceCells) {
			if tcPr := childByTag(sourceCells[i], "tcPr"); tcPr != nil {
				tc.AddChild(tcPr.Copy())
			}
		}

		p := tc.CreateElement("w:p")
		r := p.CreateElement("w:r")
		t := r.CreateElement("w:t")
		t.SetText(values[i])
		if needsSpacePreserve(values[i]) {
			t.CreateAttr("xml:space", "preserve")
		}

		newRow.AddChild(tc)
	}
	return newRow
}
