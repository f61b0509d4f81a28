package docx_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxkit/pkg/docx"
)

func TestColorRoundTrip(t *testing.T) {
	parsed, err := docx.ParseColor("FF0000")
	require.NoError(t, err)
	assert.Equal(t, docx.RGB(255, 0, 0), parsed)
	assert.Equal(t, "FF0000", parsed.Hex())

	withHash, err := docx.ParseColor("#00Ff7f")
	require.NoError(t, err)
	assert.Equal(t, docx.RGB(0, 255, 127), withHash)

	_, err = docx.ParseColor("red")
	assert.Error(t, err)
	_, err = docx.ParseColor("FFF")
	assert.Error(t, err)
}

func TestSetRunAttributesReadBack(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "styled text")
	run := p.Runs()[0]

	color := docx.RGB(0x33, 0x66, 0x99)
	docx.SetRunAttributes(run, docx.RunAttributes{
		Font:   docx.String("Arial"),
		SizePt: docx.Float(14),
		Color:  &color,
		Bold:   docx.Bool(true),
		Italic: docx.Bool(true),
	})

	assert.Equal(t, "Arial", run.FontName())
	// The east-Asian font follows the latin font unless set explicitly.
	assert.Equal(t, "Arial", run.EastAsianFontName())

	size, ok := run.FontSize()
	require.True(t, ok)
	assert.Equal(t, 14.0, size)

	got, ok := run.Color()
	require.True(t, ok)
	assert.Equal(t, color, got)

	assert.True(t, run.Bold())
	assert.True(t, run.Italic())

	docx.SetRunAttributes(run, docx.RunAttributes{
		EastAsianFont: docx.String("SimSun"),
		Bold:          docx.Bool(false),
	})
	assert.Equal(t, "Arial", run.FontName())
	assert.Equal(t, "SimSun", run.EastAsianFontName())
	assert.False(t, run.Bold())
	assert.True(t, run.Italic(), "untouched attribute must survive")
}

func TestSetRunUnderlineAndStrike(t *testing.T) {
	doc := docx.New()
	run := mustAddParagraph(t, doc, "x").Runs()[0]

	docx.SetRunAttributes(run, docx.RunAttributes{
		Underline: docx.Bool(true),
		Strike:    docx.Bool(true),
	})
	assert.True(t, run.Underline())
	assert.True(t, run.Strike())

	docx.SetRunAttributes(run, docx.RunAttributes{Underline: docx.Bool(false)})
	assert.False(t, run.Underline())
	assert.True(t, run.Strike())
}

func TestSetParagraphStyle(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "title")

	// Display names resolve to the style ID.
	require.NoError(t, docx.SetParagraphStyle(p, "Heading 1"))
	assert.Equal(t, "Heading1", p.Style())

	// Style IDs pass through.
	require.NoError(t, docx.SetParagraphStyle(p, "Heading2"))
	assert.Equal(t, "Heading2", p.Style())

	// Built-in catalog names work even without a styles.xml entry.
	require.NoError(t, docx.SetParagraphStyle(p, "Intense Quote"))
	assert.Equal(t, "IntenseQuote", p.Style())

	err := docx.SetParagraphStyle(p, "No Such Style")
	assert.ErrorIs(t, err, docx.ErrUnknownStyle)
}

func TestSetParagraphAlignment(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "centered")

	docx.SetParagraphAlignment(p, docx.AlignCenter)
	assert.Equal(t, docx.AlignCenter, p.Alignment())
}

func TestSetParagraphIndent(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "indented")

	// Unstyled paragraphs use Normal, whose size comes from the document
	// defaults (24 half-points = 12 pt). Two chars of 12 pt = 480 twips.
	require.NoError(t, docx.SetParagraphIndent(p, 2))
	assert.Equal(t, "480", indAttr(t, doc, "firstLine"))

	// Heading 1 defines its own 16 pt size.
	require.NoError(t, docx.SetParagraphStyle(p, "Heading 1"))
	require.NoError(t, docx.SetParagraphIndent(p, 2))
	assert.Equal(t, "640", indAttr(t, doc, "firstLine"))
}

func TestSetParagraphIndentMissingFontSize(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "no size anywhere")

	styles, err := doc.Part("word/styles.xml")
	require.NoError(t, err)
	root := styles.Root()
	defaults := findByTag(root, "docDefaults")
	require.NotNil(t, defaults)
	root.RemoveChild(defaults)

	err = docx.SetParagraphIndent(p, 2)
	assert.ErrorIs(t, err, docx.ErrMissingFontSize)
}

func TestSetParagraphSpacing(t *testing.T) {
	doc := docx.New()
	p := mustAddParagraph(t, doc, "spaced")

	docx.SetParagraphSpacing(p, docx.Float(6), docx.Float(12))

	spacing := findParagraphChild(t, doc, "spacing")
	assert.Equal(t, "120", spacing.SelectAttrValue("w:before", ""))
	assert.Equal(t, "240", spacing.SelectAttrValue("w:after", ""))
}

func TestSetTableStyleAndLayout(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(1, 1, []string{"x"})
	require.NoError(t, err)

	require.NoError(t, docx.SetTableStyle(tbl, "Table Grid"))
	assert.Equal(t, "TableGrid", tbl.Style())

	err = docx.SetTableStyle(tbl, "No Such Style")
	assert.ErrorIs(t, err, docx.ErrUnknownStyle)

	docx.SetTableAutofit(tbl, true)
	docx.SetTableAlignment(tbl, docx.AlignCenter)

	tblPr := findTableChild(t, doc, "tblPr")
	layout := findByTag(tblPr, "tblLayout")
	require.NotNil(t, layout)
	assert.Equal(t, "autofit", layout.SelectAttrValue("w:type", ""))
	jc := findByTag(tblPr, "jc")
	require.NotNil(t, jc)
	assert.Equal(t, "center", jc.SelectAttrValue("w:val", ""))
}

func TestSetElementAttributesAndAlignment(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(2, 2, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	docx.SetElementAttributes(tbl, docx.RunAttributes{Bold: docx.Bool(true)})
	for _, r := range docx.RunsOf(tbl) {
		assert.True(t, r.Bold())
	}

	row, err := tbl.Row(0)
	require.NoError(t, err)
	docx.SetElementAlignment(row, docx.AlignRight)
	for _, p := range docx.ParagraphsOf(row) {
		assert.Equal(t, docx.AlignRight, p.Alignment())
	}

	// The second row is untouched.
	other, err := tbl.Row(1)
	require.NoError(t, err)
	for _, p := range docx.ParagraphsOf(other) {
		assert.NotEqual(t, docx.AlignRight, p.Alignment())
	}
}

// findByTag returns the first child element with the given local tag.
func findByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

func findDescendant(el *etree.Element, tags ...string) *etree.Element {
	for _, tag := range tags {
		el = findByTag(el, tag)
		if el == nil {
			return nil
		}
	}
	return el
}

func findParagraphChild(t *testing.T, doc *docx.Document, tag string) *etree.Element {
	t.Helper()
	part, err := doc.Part("word/document.xml")
	require.NoError(t, err)
	el := findDescendant(part.Root(), "body", "p", "pPr", tag)
	require.NotNil(t, el, "w:%s not found", tag)
	return el
}

func findTableChild(t *testing.T, doc *docx.Document, tag string) *etree.Element {
	t.Helper()
	part, err := doc.Part("word/document.xml")
	require.NoError(t, err)
	el := findDescendant(part.Root(), "body", "tbl", tag)
	require.NotNil(t, el, "w:%s not found", tag)
	return el
}

func indAttr(t *testing.T, doc *docx.Document, attr string) string {
	t.Helper()
	return findParagraphChild(t, doc, "ind").SelectAttrValue("w:"+attr, "")
}
