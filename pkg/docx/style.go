package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Alignment is a paragraph or table justification value (w:jc).
type Alignment string

// Supported alignments. The underlying attribute accepts further OOXML
// values (both, distribute, ...) which pass through unchanged.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// RunAttributes carries character-level formatting. Nil fields leave the
// corresponding run attribute untouched.
//
// When Font is set and EastAsianFont is nil, the east-Asian font override
// is set to the same name: Word falls back to its theme font for CJK text
// otherwise, so the two are always written as a pair.
type RunAttributes struct {
	Font          *string
	EastAsianFont *string
	SizePt        *float64
	Color         *Color
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strike        *bool
}

// String returns a pointer to s, for RunAttributes literals.
func String(s string) *string { return &s }

// Float returns a pointer to f, for RunAttributes literals.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b, for RunAttributes literals.
func Bool(b bool) *bool { return &b }

// SetRunAttributes applies attrs to a single run.
func SetRunAttributes(r Run, attrs RunAttributes) {
	rPr := ensureFirstChild(r.el, "rPr")

	if attrs.Font != nil {
		fonts := ensureChild(rPr, "rFonts")
		setAttr(fonts, "ascii", *attrs.Font)
		setAttr(fonts, "hAnsi", *attrs.Font)
		east := *attrs.Font
		if attrs.EastAsianFont != nil {
			east = *attrs.EastAsianFont
		}
		setAttr(fonts, "eastAsia", east)
	} else if attrs.EastAsianFont != nil {
		setAttr(ensureChild(rPr, "rFonts"), "eastAsia", *attrs.EastAsianFont)
	}

	if attrs.SizePt != nil {
		hp := strconv.Itoa(ptToHalfPoints(*attrs.SizePt))
		setAttr(ensureChild(rPr, "sz"), "val", hp)
		setAttr(ensureChild(rPr, "szCs"), "val", hp)
	}

	if attrs.Color != nil {
		setAttr(ensureChild(rPr, "color"), "val", attrs.Color.Hex())
	}

	setToggle(rPr, "b", attrs.Bold)
	setToggle(rPr, "i", attrs.Italic)
	setToggle(rPr, "strike", attrs.Strike)

	if attrs.Underline != nil {
		val := "single"
		if !*attrs.Underline {
			val = "none"
		}
		setAttr(ensureChild(rPr, "u"), "val", val)
	}

	r.doc.markDocumentDirty()
}

// SetParagraphAttributes applies attrs to every run in the paragraph.
func SetParagraphAttributes(p Paragraph, attrs RunAttributes) {
	for _, r := range p.Runs() {
		SetRunAttributes(r, attrs)
	}
}

// SetRunStyle replaces the run's named character style, with the same name
// resolution as SetParagraphStyle.
func SetRunStyle(r Run, style string) error {
	id, ok := r.doc.resolveStyleID(style)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	rPr := ensureFirstChild(r.el, "rPr")
	setAttr(ensureChild(rPr, "rStyle"), "val", id)
	r.doc.markDocumentDirty()
	return nil
}

// SetParagraphStyle replaces the paragraph's named style. The name may be a
// style ID ("Heading1"), a display name ("Heading 1"), or a built-in
// catalog name; anything else fails with ErrUnknownStyle.
func SetParagraphStyle(p Paragraph, style string) error {
	id, ok := p.doc.resolveStyleID(style)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	pPr := ensureFirstChild(p.el, "pPr")
	setAttr(ensureChild(pPr, "pStyle"), "val", id)
	p.doc.markDocumentDirty()
	return nil
}

// SetParagraphAlignment sets the paragraph's justification.
func SetParagraphAlignment(p Paragraph, align Alignment) {
	pPr := ensureFirstChild(p.el, "pPr")
	setAttr(ensureChild(pPr, "jc"), "val", string(align))
	p.doc.markDocumentDirty()
}

// SetParagraphIndent sets the first-line indent to chars times the font
// size of the paragraph's style ("Normal" when unstyled). It fails with
// ErrMissingFontSize when neither the style chain nor the document
// defaults define a size.
func SetParagraphIndent(p Paragraph, chars int) error {
	styleID := p.Style()
	if styleID == "" {
		styleID = "Normal"
	}

	sizePt, ok := p.doc.styleFontSize(styleID)
	if !ok {
		return fmt.Errorf("%w: style %q", ErrMissingFontSize, styleID)
	}

	pPr := ensureFirstChild(p.el, "pPr")
	ind := ensureChild(pPr, "ind")
	setAttr(ind, "firstLine", strconv.Itoa(ptToTwips(sizePt*float64(chars))))
	p.doc.markDocumentDirty()
	return nil
}

// SetParagraphSpacing sets the space before and after the paragraph in
// points. Nil values leave the corresponding side unchanged.
func SetParagraphSpacing(p Paragraph, beforePt, afterPt *float64) {
	if beforePt == nil && afterPt == nil {
		return
	}
	pPr := ensureFirstChild(p.el, "pPr")
	spacing := ensureChild(pPr, "spacing")
	if beforePt != nil {
		setAttr(spacing, "before", strconv.Itoa(ptToTwips(*beforePt)))
	}
	if afterPt != nil {
		setAttr(spacing, "after", strconv.Itoa(ptToTwips(*afterPt)))
	}
	p.doc.markDocumentDirty()
}

// SetTableStyle replaces the table's named style, with the same name
// resolution as SetParagraphStyle.
func SetTableStyle(t Table, style string) error {
	id, ok := t.doc.resolveStyleID(style)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	tblPr := ensureFirstChild(t.el, "tblPr")
	setAttr(ensureChild(tblPr, "tblStyle"), "val", id)
	t.doc.markDocumentDirty()
	return nil
}

// SetTableAutofit switches the table between content-sized (autofit) and
// fixed layout.
func SetTableAutofit(t Table, enabled bool) {
	layout := "fixed"
	if enabled {
		layout = "autofit"
	}
	tblPr := ensureFirstChild(t.el, "tblPr")
	setAttr(ensureChild(tblPr, "tblLayout"), "type", layout)
	t.doc.markDocumentDirty()
}

// SetTableAlignment sets the table's alignment relative to the page.
func SetTableAlignment(t Table, align Alignment) {
	tblPr := ensureFirstChild(t.el, "tblPr")
	setAttr(ensureChild(tblPr, "jc"), "val", string(align))
	t.doc.markDocumentDirty()
}

// SetElementAlignment aligns every paragraph inside a table element
// (table, row, column, or cell).
func SetElementAlignment(element CellContainer, align Alignment) {
	for _, p := range ParagraphsOf(element) {
		SetParagraphAlignment(p, align)
	}
}

// SetElementAttributes applies run attributes to every run inside a table
// element (table, row, column, or cell).
func SetElementAttributes(element CellContainer, attrs RunAttributes) {
	for _, r := range RunsOf(element) {
		SetRunAttributes(r, attrs)
	}
}

// resolveStyleID maps a style ID, display name, or built-in catalog name to
// the style ID to store in the document.
func (d *Document) resolveStyleID(name string) (string, bool) {
	if styles, err := d.Part(partStyles); err == nil {
		if root := styles.Root(); root != nil {
			for _, style := range root.ChildElements() {
				if style.Tag != "style" {
					continue
				}
				id := attrVal(style, "styleId")
				if id == name {
					return id, true
				}
				if nameEl := childByTag(style, "name"); nameEl != nil {
					if strings.EqualFold(attrVal(nameEl, "val"), name) {
						return id, true
					}
				}
			}
		}
	}

	if IsBuiltinStyle(name) {
		// Word derives built-in style IDs from the display name with the
		// spaces removed ("Heading 1" -> "Heading1").
		return strings.ReplaceAll(name, " ", ""), true
	}
	return "", false
}

// styleFontSize returns the font size in points for a style ID, following
// the basedOn chain and finally the document defaults.
func (d *Document) styleFontSize(styleID string) (float64, bool) {
	styles, err := d.Part(partStyles)
	if err != nil {
		return 0, false
	}
	root := styles.Root()
	if root == nil {
		return 0, false
	}

	seen := make(map[string]bool)
	for id := styleID; id != "" && !seen[id]; {
		seen[id] = true
		style := styleByID(root, id)
		if style == nil {
			break
		}
		if rPr := childByTag(style, "rPr"); rPr != nil {
			if sz := childByTag(rPr, "sz"); sz != nil {
				if hp, ok := parseInt(attrVal(sz, "val")); ok {
					return halfPointsToPt(hp), true
				}
			}
		}
		id = ""
		if based := childByTag(style, "basedOn"); based != nil {
			id = attrVal(based, "val")
		}
	}

	// Fall back to w:docDefaults/w:rPrDefault/w:rPr/w:sz.
	if defaults := childByTag(root, "docDefaults"); defaults != nil {
		if rPrDefault := childByTag(defaults, "rPrDefault"); rPrDefault != nil {
			if rPr := childByTag(rPrDefault, "rPr"); rPr != nil {
				if sz := childByTag(rPr, "sz"); sz != nil {
					if hp, ok := parseInt(attrVal(sz, "val")); ok {
						return halfPointsToPt(hp), true
					}
				}
			}
		}
	}
	return 0, false
}

func styleByID(stylesRoot *etree.Element, id string) *etree.Element {
	for _, style := range stylesRoot.ChildElements() {
		if style.Tag == "style" && attrVal(style, "styleId") == id {
			return style
		}
	}
	return nil
}

// ensureFirstChild finds the child with the given tag or creates it as the
// element's first child — OOXML requires property elements (pPr, rPr,
// tblPr) to precede content.
func ensureFirstChild(el *etree.Element, tag string) *etree.Element {
	if child := childByTag(el, tag); child != nil {
		return child
	}
	child := etree.NewElement("w:" + tag)
	if existing := el.ChildElements(); len(existing) > 0 {
		el.InsertChildAt(existing[0].Index(), child)
	} else {
		el.AddChild(child)
	}
	return child
}

func ensureChild(el *etree.Element, tag string) *etree.Element {
	if child := childByTag(el, tag); child != nil {
		return child
	}
	return el.CreateElement("w:" + tag)
}

// setAttr writes the w:-prefixed attribute, dropping any unprefixed
// spelling left behind by other writers.
func setAttr(el *etree.Element, name, value string) {
	el.RemoveAttr(name)
	el.RemoveAttr("w:" + name)
	el.CreateAttr("w:"+name, value)
}

// setToggle writes an on/off property child such as w:b. Nil leaves it
// untouched, true writes the bare element, false writes w:val="0".
func setToggle(rPr *etree.Element, tag string, value *bool) {
	if value == nil {
		return
	}
	el := ensureChild(rPr, tag)
	el.RemoveAttr("val")
	el.RemoveAttr("w:val")
	if !*value {
		el.CreateAttr("w:val", "0")
	}
}
