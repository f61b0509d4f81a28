package docx

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Decoders registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	relTypeImage = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	defaultPictureWidthCm = 15.0
)

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"webp": "image/webp",
}

// PictureOptions controls the display size of an inserted picture. A zero
// width falls back to 15 cm; a zero height is derived from the image's
// aspect ratio.
type PictureOptions struct {
	WidthCm  float64
	HeightCm float64
}

// AddPicture appends a new paragraph holding the image to the end of the
// document body.
func (d *Document) AddPicture(path string, opts PictureOptions) (Paragraph, error) {
	body, err := d.body()
	if err != nil {
		return Paragraph{}, err
	}

	drawing, err := d.buildDrawing(path, opts)
	if err != nil {
		return Paragraph{}, err
	}

	p := etree.NewElement("w:p")
	p.CreateElement("w:r").AddChild(drawing)
	appendBodyChild(body, p)
	d.markDocumentDirty()
	return Paragraph{doc: d, el: p}, nil
}

// AddPictureAfterParagraph appends the image in a new run at the end of p,
// after its existing text.
func (d *Document) AddPictureAfterParagraph(p Paragraph, path string, opts PictureOptions) (Run, error) {
	drawing, err := d.buildDrawing(path, opts)
	if err != nil {
		return Run{}, err
	}

	r := p.el.CreateElement("w:r")
	r.AddChild(drawing)
	d.markDocumentDirty()
	return Run{doc: d, el: r}, nil
}

// AddPictureInRun appends the image to an existing run, after any text it
// already holds.
func (d *Document) AddPictureInRun(r Run, path string, opts PictureOptions) error {
	drawing, err := d.buildDrawing(path, opts)
	if err != nil {
		return err
	}
	r.el.AddChild(drawing)
	d.markDocumentDirty()
	return nil
}

// AddPictureAtText inserts the image into the first run anywhere in the
// document whose text equals text. It reports whether a match was found;
// no match is not an error.
func (d *Document) AddPictureAtText(text, path string, opts PictureOptions) (bool, error) {
	for _, r := range d.AllRuns() {
		if r.Text() != text {
			continue
		}
		if err := d.AddPictureInRun(r, path, opts); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// AddPictureInCell appends the image to the cell's last paragraph.
func (d *Document) AddPictureInCell(c Cell, path string, opts PictureOptions) error {
	paras := c.Paragraphs()
	var target Paragraph
	if len(paras) > 0 {
		target = paras[len(paras)-1]
	} else {
		target = Paragraph{doc: d, el: c.el.CreateElement("w:p")}
	}

	drawing, err := d.buildDrawing(path, opts)
	if err != nil {
		return err
	}
	target.el.CreateElement("w:r").AddChild(drawing)
	d.markDocumentDirty()
	return nil
}

// buildDrawing stores the image as a media part, registers its content type
// and relationship, and returns the w:drawing element referencing it.
func (d *Document) buildDrawing(path string, opts PictureOptions) (*etree.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}

	widthEMU, heightEMU, err := pictureExtent(data, opts)
	if err != nil {
		return nil, err
	}

	name := "img-" + uuid.NewString() + "." + ext
	d.AddRawPart("word/media/"+name, data)

	if err := d.registerContentType(ext, contentType); err != nil {
		return nil, err
	}
	rID, err := d.addDocumentRelationship(relTypeImage, "media/"+name)
	if err != nil {
		return nil, err
	}

	seq, _ := parseInt(strings.TrimPrefix(rID, "rId"))
	return drawingElement(rID, name, seq, widthEMU, heightEMU), nil
}

// pictureExtent resolves the display size in EMU, reading the image header
// when the height must follow the aspect ratio.
func pictureExtent(data []byte, opts PictureOptions) (int64, int64, error) {
	widthCm := opts.WidthCm
	if widthCm <= 0 {
		widthCm = defaultPictureWidthCm
	}
	if opts.HeightCm > 0 {
		return cmToEMU(widthCm), cmToEMU(opts.HeightCm), nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image size: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("decode image size: empty image")
	}
	heightCm := widthCm * float64(cfg.Height) / float64(cfg.Width)
	return cmToEMU(widthCm), cmToEMU(heightCm), nil
}

// registerContentType adds a Default entry for the extension to
// [Content_Types].xml unless one already exists.
func (d *Document) registerContentType(ext, contentType string) error {
	types, err := d.Part(partContentTypes)
	if err != nil {
		return err
	}
	root := types.Root()
	if root == nil {
		return fmt.Errorf("%w: %s has no root", ErrPartNotFound, partContentTypes)
	}

	for _, child := range root.ChildElements() {
		if child.Tag == "Default" && strings.EqualFold(attrPlain(child, "Extension"), ext) {
			return nil
		}
	}

	def := etree.NewElement("Default")
	def.CreateAttr("Extension", ext)
	def.CreateAttr("ContentType", contentType)
	// Defaults must precede Override entries.
	root.InsertChildAt(0, def)
	d.MarkDirty(partContentTypes)
	return nil
}

// addDocumentRelationship appends a relationship to the main document part
// and returns the allocated rId.
func (d *Document) addDocumentRelationship(relType, target string) (string, error) {
	rels, err := d.Part(partDocumentRels)
	if err != nil {
		return "", err
	}
	root := rels.Root()
	if root == nil {
		return "", fmt.Errorf("%w: %s has no root", ErrPartNotFound, partDocumentRels)
	}

	max := 0
	for _, rel := range root.ChildElements() {
		id := attrPlain(rel, "Id")
		if n, ok := parseInt(strings.TrimPrefix(id, "rId")); ok && n > max {
			max = n
		}
	}

	id := "rId" + strconv.Itoa(max+1)
	rel := root.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
	d.MarkDirty(partDocumentRels)
	return id, nil
}

// drawingElement builds the wp:inline drawing tree for an embedded image.
// The drawingml namespaces are declared inline so the tree is valid even in
// documents whose root only declares w: and r:.
func drawingElement(rID, name string, seq int, cx, cy int64) *etree.Element {
	w := strconv.FormatInt(cx, 10)
	h := strconv.FormatInt(cy, 10)

	drawing := etree.NewElement("w:drawing")

	inline := drawing.CreateElement("wp:inline")
	inline.CreateAttr("xmlns:wp", nsWP)
	inline.CreateAttr("distT", "0")
	inline.CreateAttr("distB", "0")
	inline.CreateAttr("distL", "0")
	inline.CreateAttr("distR", "0")

	extent := inline.CreateElement("wp:extent")
	extent.CreateAttr("cx", w)
	extent.CreateAttr("cy", h)

	effect := inline.CreateElement("wp:effectExtent")
	for _, side := range []string{"l", "t", "r", "b"} {
		effect.CreateAttr(side, "0")
	}

	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", strconv.Itoa(seq))
	docPr.CreateAttr("name", name)

	framePr := inline.CreateElement("wp:cNvGraphicFramePr")
	locks := framePr.CreateElement("a:graphicFrameLocks")
	locks.CreateAttr("xmlns:a", nsA)
	locks.CreateAttr("noChangeAspect", "1")

	graphic := inline.CreateElement("a:graphic")
	graphic.CreateAttr("xmlns:a", nsA)
	graphicData := graphic.CreateElement("a:graphicData")
	graphicData.CreateAttr("uri", nsPic)

	pic := graphicData.CreateElement("pic:pic")
	pic.CreateAttr("xmlns:pic", nsPic)

	nvPicPr := pic.CreateElement("pic:nvPicPr")
	cNvPr := nvPicPr.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", "0")
	cNvPr.CreateAttr("name", name)
	nvPicPr.CreateElement("pic:cNvPicPr")

	blipFill := pic.CreateElement("pic:blipFill")
	blip := blipFill.CreateElement("a:blip")
	blip.CreateAttr("r:embed", rID)
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("pic:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", w)
	ext.CreateAttr("cy", h)
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")

	return drawing
}

// attrPlain reads an unprefixed attribute such as Id or Extension.
func attrPlain(el *etree.Element, name string) string {
	if a := el.SelectAttr(name); a != nil {
		return a.Value
	}
	return ""
}
