package docx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxkit/pkg/docx"
)

func TestDecoratorReplace(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "foobar123")
	mustAddParagraph(t, doc, "untouched")

	dec := docx.NewDecorator(doc)
	n := dec.Replace([]docx.Replacement{{Old: "foo", New: "bar"}})

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"barbar123", "untouched"}, paragraphTexts(doc))
}

func TestDecoratorReplaceInsideTables(t *testing.T) {
	doc := docx.New()
	_, err := doc.BuildTable(1, 2, []string{"{{name}}", "plain"})
	require.NoError(t, err)

	dec := docx.NewDecorator(doc)
	n := dec.ReplaceMap(map[string]string{"{{name}}": "Ada"})

	assert.Equal(t, 1, n)
	tbl, err := doc.Table(0)
	require.NoError(t, err)
	assert.Equal(t, "Ada", tbl.Cells()[0].Text())
}

func TestDecoratorReplaceOrdered(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "aaa")

	dec := docx.NewDecorator(doc)
	dec.Replace([]docx.Replacement{
		{Old: "aaa", New: "bbb"},
		{Old: "bbb", New: "ccc"},
	})

	// Replacements chain in caller order.
	assert.Equal(t, []string{"ccc"}, paragraphTexts(doc))
}

func TestDeleteRunIdempotent(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "keep")
	mustAddParagraph(t, doc, "remove me")

	dec := docx.NewDecorator(doc)
	assert.True(t, dec.DeleteRun("remove me"))
	assert.False(t, dec.DeleteRun("remove me"))
	assert.False(t, dec.DeleteRun("never existed"))

	p, err := doc.Paragraph(1)
	require.NoError(t, err)
	assert.Equal(t, "", p.Text())
	assert.Equal(t, "keep", paragraphTexts(doc)[0])
}

func TestDecoratorAppendTableRow(t *testing.T) {
	doc := docx.New()
	_, err := doc.BuildTable(1, 2, []string{"h1", "h2"})
	require.NoError(t, err)

	dec := docx.NewDecorator(doc)
	require.NoError(t, dec.AppendTableRow(0, []string{"a", "b"}))

	assert.ErrorIs(t, dec.AppendTableRow(0, []string{"wrong"}), docx.ErrInvalidDimension)
	assert.ErrorIs(t, dec.AppendTableRow(3, []string{"a", "b"}), docx.ErrOutOfRange)

	n, err := dec.AppendTableRows(0, []string{"c", "d", "e", "f", "g"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tbl, err := dec.Index().Table(0)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.RowCount())
}

func TestAddParagraphBeforeFlag(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "first")
	mustAddParagraph(t, doc, "INSERT HERE")
	mustAddParagraph(t, doc, "last")

	dec := docx.NewDecorator(doc)

	_, matched, err := dec.AddParagraphBeforeFlag("injected", "INSERT HERE")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, []string{"first", "injected", "INSERT HERE", "last"}, paragraphTexts(doc))

	_, matched, err = dec.AddParagraphBeforeFlag("appended", "")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, "appended", paragraphTexts(doc)[4])

	// An unmatched flag falls back to appending.
	_, matched, err = dec.AddParagraphBeforeFlag("tail", "NO SUCH FLAG")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, "tail", paragraphTexts(doc)[5])
}

func TestIndexRefresh(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "one")

	ix := docx.NewIndex(doc)
	assert.Equal(t, 1, ix.ParagraphCount())

	mustAddParagraph(t, doc, "two")
	assert.Equal(t, 1, ix.ParagraphCount(), "stale until Refresh")

	ix.Refresh()
	assert.Equal(t, 2, ix.ParagraphCount())

	_, err := ix.Paragraph(5)
	assert.ErrorIs(t, err, docx.ErrOutOfRange)
}
