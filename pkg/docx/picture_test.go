package docx_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxkit/pkg/docx"
)

// writeTestPNG writes a 4x2 image so derived heights are easy to predict.
func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func mediaParts(doc *docx.Document) []string {
	var media []string
	for _, name := range doc.ListParts() {
		if strings.HasPrefix(name, "word/media/") {
			media = append(media, name)
		}
	}
	return media
}

func TestAddPicture(t *testing.T) {
	doc := docx.New()
	path := writeTestPNG(t)

	p, err := doc.AddPicture(path, docx.PictureOptions{})
	require.NoError(t, err)
	assert.False(t, p.IsZero())

	media := mediaParts(doc)
	require.Len(t, media, 1)
	assert.True(t, strings.HasSuffix(media[0], ".png"))

	part, err := doc.Part("word/document.xml")
	require.NoError(t, err)
	extent := findDescendant(part.Root(), "body", "p", "r", "drawing", "inline", "extent")
	require.NotNil(t, extent)

	// Default width 15 cm; the 4x2 source gives half that as height.
	assert.Equal(t, "5400000", extent.SelectAttrValue("cx", ""))
	assert.Equal(t, "2700000", extent.SelectAttrValue("cy", ""))

	rels, err := doc.Part("word/_rels/document.xml.rels")
	require.NoError(t, err)
	found := false
	for _, rel := range rels.Root().ChildElements() {
		if strings.HasSuffix(rel.SelectAttrValue("Type", ""), "/image") {
			found = true
			assert.Equal(t, strings.TrimPrefix(media[0], "word/"), rel.SelectAttrValue("Target", ""))
		}
	}
	assert.True(t, found, "image relationship not registered")

	types, err := doc.Part("[Content_Types].xml")
	require.NoError(t, err)
	registered := false
	for _, def := range types.Root().ChildElements() {
		if def.Tag == "Default" && def.SelectAttrValue("Extension", "") == "png" {
			registered = true
		}
	}
	assert.True(t, registered, "png content type not registered")
}

func TestAddPictureExplicitSize(t *testing.T) {
	doc := docx.New()
	path := writeTestPNG(t)

	_, err := doc.AddPicture(path, docx.PictureOptions{WidthCm: 4, HeightCm: 3})
	require.NoError(t, err)

	part, err := doc.Part("word/document.xml")
	require.NoError(t, err)
	extent := findDescendant(part.Root(), "body", "p", "r", "drawing", "inline", "extent")
	require.NotNil(t, extent)
	assert.Equal(t, "1440000", extent.SelectAttrValue("cx", ""))
	assert.Equal(t, "1080000", extent.SelectAttrValue("cy", ""))
}

func TestAddPictureUnsupportedFormat(t *testing.T) {
	doc := docx.New()
	path := filepath.Join(t.TempDir(), "pic.xyz")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := doc.AddPicture(path, docx.PictureOptions{})
	assert.Error(t, err)
	assert.Empty(t, mediaParts(doc))
}

func TestAddPictureAtText(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "IMAGE_HERE")
	path := writeTestPNG(t)

	found, err := doc.AddPictureAtText("IMAGE_HERE", path, docx.PictureOptions{WidthCm: 2})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, mediaParts(doc), 1)

	// No matching run is a silent no-op.
	found, err = doc.AddPictureAtText("NOWHERE", path, docx.PictureOptions{})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, mediaParts(doc), 1)
}

func TestAddPictureInCell(t *testing.T) {
	doc := docx.New()
	tbl, err := doc.BuildTable(1, 2, []string{"caption", ""})
	require.NoError(t, err)
	path := writeTestPNG(t)

	cell := tbl.Cells()[1]
	require.NoError(t, doc.AddPictureInCell(cell, path, docx.PictureOptions{WidthCm: 3}))
	assert.Len(t, mediaParts(doc), 1)
}

func TestAddPictureAfterParagraph(t *testing.T) {
	doc := docx.New()
	first := mustAddParagraph(t, doc, "caption")
	path := writeTestPNG(t)

	run, err := doc.AddPictureAfterParagraph(first, path, docx.PictureOptions{WidthCm: 2})
	require.NoError(t, err)
	assert.False(t, run.IsZero())

	// The image goes into a new run of the same paragraph.
	require.Len(t, first.Runs(), 2)
	assert.Equal(t, "caption", first.Text())
	assert.Len(t, mediaParts(doc), 1)
}

func TestDecoratorAddPictures(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "{{logo}}")
	path := writeTestPNG(t)

	dec := docx.NewDecorator(doc)
	require.NoError(t, dec.AddPictures(map[string]string{
		"{{logo}}":  path,
		"{{ghost}}": path, // no matching run, skipped
	}))

	assert.Len(t, mediaParts(doc), 1)
	// The placeholder text is cleared before the image goes in.
	assert.Equal(t, "", paragraphTexts(doc)[0])
}

func TestDecoratorAddPicturesEveryMatchingRun(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "{{logo}} first")
	mustAddParagraph(t, doc, "{{logo}} second")
	path := writeTestPNG(t)

	dec := docx.NewDecorator(doc)
	require.NoError(t, dec.AddPictures(map[string]string{"{{logo}}": path}))

	// Both matching runs are cleared and both get an image.
	assert.Equal(t, []string{"", ""}, paragraphTexts(doc))
	assert.Len(t, mediaParts(doc), 2)
}

func TestDecoratorAddPicturesFailure(t *testing.T) {
	doc := docx.New()
	mustAddParagraph(t, doc, "{{logo}}")

	dec := docx.NewDecorator(doc)
	err := dec.AddPictures(map[string]string{
		"{{logo}}": filepath.Join(t.TempDir(), "missing.png"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrPictureInsert)
}
