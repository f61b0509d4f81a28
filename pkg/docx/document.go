package docx

import (
	"github.com/beevik/etree"
)

// body returns the w:body element of word/document.xml.
func (d *Document) body() (*etree.Element, error) {
	dom, err := d.Part(partDocument)
	if err != nil {
		return nil, err
	}

	root := dom.Root()
	if root == nil {
		return nil, ErrNoBody
	}
	for _, child := range root.ChildElements() {
		if child.Tag == "body" {
			return child, nil
		}
	}
	return nil, ErrNoBody
}

// mustBody is for read paths where a missing body means an empty result
// rather than an error.
func (d *Document) mustBody() *etree.Element {
	body, err := d.body()
	if err != nil {
		return nil
	}
	return body
}

// markDocumentDirty flags the main document part for re-serialization.
func (d *Document) markDocumentDirty() {
	d.MarkDirty(partDocument)
}

// appendBodyChild appends el at the end of the body, keeping the trailing
// w:sectPr last — Word requires section properties to close the body.
func appendBodyChild(body, el *etree.Element) {
	children := body.ChildElements()
	if n := len(children); n > 0 && children[n-1].Tag == "sectPr" {
		body.InsertChildAt(children[n-1].Index(), el)
		return
	}
	body.AddChild(el)
}

// insertBefore inserts newChild immediately before refChild within parent.
func insertBefore(parent, refChild, newChild *etree.Element) {
	parent.InsertChildAt(refChild.Index(), newChild)
}

// removeRunElement detaches a run element from its paragraph.
func removeRunElement(r *etree.Element) {
	if parent := r.Parent(); parent != nil {
		parent.RemoveChild(r)
	}
}
