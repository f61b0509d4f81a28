package docx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxkit/pkg/docx"
)

func TestAddParagraph(t *testing.T) {
	doc := docx.New()

	p, err := doc.AddParagraph("first")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Text())

	p, err = doc.AddParagraph("heading", "Heading 1")
	require.NoError(t, err)
	assert.Equal(t, "Heading1", p.Style())

	assert.Len(t, doc.Paragraphs(), 2)
}

func TestAddParagraphUnknownStyle(t *testing.T) {
	doc := docx.New()

	_, err := doc.AddParagraph("x", "No Such Style")
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrUnknownStyle)

	// A failed add leaves no paragraph behind.
	assert.Empty(t, doc.Paragraphs())
}

func TestInsertParagraphBefore(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "a")
	mustAddParagraph(t, doc, "b")

	_, err := doc.InsertParagraphBefore("front", 0)
	require.NoError(t, err)

	texts := paragraphTexts(doc)
	assert.Equal(t, []string{"front", "a", "b"}, texts)

	_, err = doc.InsertParagraphBefore("late", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)
}

func TestAppendRun(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "hello")

	_, err := doc.AppendRun(" world", 0)
	require.NoError(t, err)

	p, err := doc.Paragraph(0)
	require.NoError(t, err)
	assert.Equal(t, "hello world", p.Text())
	assert.Len(t, p.Runs(), 2)

	_, err = doc.AppendRun("x", 5)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)
}

func TestAppendRunWithStyle(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "plain")

	run, err := doc.AppendRun(" strong", 0, "Strong")
	require.NoError(t, err)
	assert.Equal(t, "Strong", run.Style())

	_, err = doc.AppendRun("x", 0, "No Such Style")
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrUnknownStyle)

	// The failed append leaves the paragraph as it was.
	p, err := doc.Paragraph(0)
	require.NoError(t, err)
	assert.Equal(t, "plain strong", p.Text())
	assert.Len(t, p.Runs(), 2)
}

func TestBuildTableRowMajor(t *testing.T) {
	doc := docx.New()

	tbl, err := doc.BuildTable(2, 3, []string{"a", "b", "c", "d", "e", "f"})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 3, tbl.ColumnCount())

	var texts []string
	for _, c := range tbl.Cells() {
		texts = append(texts, c.Text())
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, texts)
}

func TestBuildTableFailureModes(t *testing.T) {
	doc := docx.New()

	_, err := doc.BuildTable(0, 3, nil)
	assert.ErrorIs(t, err, docx.ErrInvalidDimension)

	_, err = doc.BuildTable(2, 3, []string{"a", "b", "c", "d", "e"})
	assert.ErrorIs(t, err, docx.ErrInsufficientData)

	// Neither failure appends a table.
	assert.Empty(t, doc.Tables())
}

func TestAppendRowsTruncatesPartialRow(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(1, 3, []string{"h1", "h2", "h3"})
	require.NoError(t, err)

	n, err := docx.AppendRows(tbl, []string{"x", "y", "z", "w"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, tbl.RowCount())

	row, err := tbl.Row(1)
	require.NoError(t, err)
	cells := row.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, "x", cells[0].Text())
	assert.Equal(t, "y", cells[1].Text())
	assert.Equal(t, "z", cells[2].Text())
	// "w" does not fill a whole row and is dropped.
}

func TestAppendRowsSubRowRemainder(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(1, 3, []string{"h1", "h2", "h3"})
	require.NoError(t, err)

	// Fewer items than one row is a silent drop, not an error.
	n, err := docx.AppendRows(tbl, []string{"only", "two"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, tbl.RowCount())
}

func TestAppendRowExactLength(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(1, 2, []string{"h1", "h2"})
	require.NoError(t, err)

	row, err := docx.AppendRow(tbl, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", row.Cells()[0].Text())

	_, err = docx.AppendRow(tbl, []string{"too", "many", "values"})
	assert.ErrorIs(t, err, docx.ErrInvalidDimension)
}

func TestRowAndColumnSetTexts(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(2, 2, []string{"", "", "", ""})
	require.NoError(t, err)

	row, err := tbl.Row(0)
	require.NoError(t, err)
	require.NoError(t, row.SetTexts([]string{"r1", "r2"}))
	assert.ErrorIs(t, row.SetTexts([]string{"short"}), docx.ErrInvalidDimension)

	col, err := tbl.Column(1)
	require.NoError(t, err)
	require.NoError(t, col.SetTexts([]string{"c1", "c2"}))

	cells := tbl.Cells()
	assert.Equal(t, "r1", cells[0].Text())
	assert.Equal(t, "c1", cells[1].Text())
	assert.Equal(t, "c2", cells[3].Text())
}

func mustAddParagraph(t *testing.T, doc *docx.Document, text string) docx.Paragraph {
	t.Helper()
	p, err := doc.AddParagraph(text)
	require.NoError(t, err)
	return p
}

func paragraphTexts(doc *docx.Document) []string {
	var texts []string
	for _, p := range doc.Paragraphs() {
		texts = append(texts, p.Text())
	}
	return texts
}
