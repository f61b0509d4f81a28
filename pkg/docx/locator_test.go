package docx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxkit/pkg/docx"
)

func buildMixedDocument(t *testing.T) *docx.Document {
	t.Helper()
	doc := docx.New()
	mustAddParagraph(t, doc, "intro")
	_, err := doc.BuildTable(2, 2, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	mustAddParagraph(t, doc, "outro")
	return doc
}

func TestParagraphsTopLevelOnly(t *testing.T) {
	doc := buildMixedDocument(t)

	texts := paragraphTexts(doc)
	assert.Equal(t, []string{"intro", "outro"}, texts)
}

func TestAllParagraphsIncludesTableCells(t *testing.T) {
	doc := buildMixedDocument(t)

	all := doc.AllParagraphs()
	// Top-level paragraphs plus one per table cell.
	assert.Len(t, all, len(doc.Paragraphs())+4)
}

func TestAllRunsCoverTableText(t *testing.T) {
	doc := buildMixedDocument(t)

	var texts []string
	for _, r := range doc.AllRuns() {
		texts = append(texts, r.Text())
	}
	assert.ElementsMatch(t, []string{"intro", "outro", "a", "b", "c", "d"}, texts)
}

func TestIndexedAccess(t *testing.T) {
	doc := buildMixedDocument(t)

	p, err := doc.Paragraph(1)
	require.NoError(t, err)
	assert.Equal(t, "outro", p.Text())

	_, err = doc.Paragraph(2)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)
	_, err = doc.Paragraph(-1)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)

	tbl, err := doc.Table(0)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.RowCount())

	_, err = doc.Table(1)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)
}

func TestParagraphsOfContainers(t *testing.T) {
	doc := buildMixedDocument(t)
	tbl, err := doc.Table(0)
	require.NoError(t, err)

	assert.Len(t, docx.ParagraphsOf(tbl), 4)

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Len(t, docx.ParagraphsOf(row), 2)

	col, err := tbl.Column(1)
	require.NoError(t, err)
	colParas := docx.ParagraphsOf(col)
	require.Len(t, colParas, 2)
	assert.Equal(t, "b", colParas[0].Text())
	assert.Equal(t, "d", colParas[1].Text())

	cell := tbl.Cells()[0]
	assert.Len(t, docx.ParagraphsOf(cell), 1)
	assert.Len(t, docx.RunsOf(cell), 1)
}
