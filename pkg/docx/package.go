// Package docx is a convenience layer over OOXML (.docx) word-processing
// documents. A .docx file is an OPC ZIP archive of XML parts; this package
// keeps each part as a lazily parsed etree DOM and exposes helpers to
// locate, mutate, and style the paragraphs, tables, rows, columns, cells,
// and text runs inside it.
//
// Paragraph, Run, Table, Row, Column, and Cell values are transient
// references into the parsed tree. Integer indices are only valid until a
// structural mutation resizes the collection they were resolved against.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Well-known part names inside the package.
const (
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partContentTypes = "[Content_Types].xml"
)

// Document is an open .docx package. It caches parsed XML parts, tracks
// which parts were modified, and saves atomically (temp file + rename) so
// the target is never left partially written.
type Document struct {
	path  string
	raw   map[string][]byte
	parts map[string]*etree.Document
	dirty map[string]bool
	log   *zap.Logger
}

// Open reads a .docx file from disk.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	doc, err := OpenReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// OpenReader reads a .docx package from r. All ZIP entries are read eagerly
// so unmodified parts can be copied verbatim on Save.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	raw := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrOpen, f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrOpen, f.Name, err)
		}
		raw[f.Name] = data
	}

	return &Document{
		raw:   raw,
		parts: make(map[string]*etree.Document),
		dirty: make(map[string]bool),
		log:   zap.NewNop(),
	}, nil
}

// New returns an empty in-memory document with the minimal part set Word
// requires: content types, package relationships, a body with section
// properties, document relationships, and a styles part.
func New() *Document {
	raw := map[string][]byte{
		partContentTypes: []byte(newContentTypesXML),
		"_rels/.rels":    []byte(newPackageRelsXML),
		partDocument:     []byte(newDocumentXML),
		partDocumentRels: []byte(newDocumentRelsXML),
		partStyles:       []byte(newStylesXML),
	}
	return &Document{
		raw:   raw,
		parts: make(map[string]*etree.Document),
		dirty: make(map[string]bool),
		log:   zap.NewNop(),
	}
}

// SetLogger replaces the document's logger. The default is a no-op logger.
func (d *Document) SetLogger(log *zap.Logger) {
	if log != nil {
		d.log = log
	}
}

// Path returns the file path the document was opened from, or "" for
// documents created with New or OpenReader.
func (d *Document) Path() string {
	return d.path
}

// Part returns the parsed XML DOM for a package part such as
// "word/document.xml", parsing and caching it on first access.
func (d *Document) Part(name string) (*etree.Document, error) {
	if doc, ok := d.parts[name]; ok {
		return doc, nil
	}

	raw, ok := d.raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	d.parts[name] = doc
	return doc, nil
}

// RawPart returns the raw bytes of a package part without parsing it.
func (d *Document) RawPart(name string) ([]byte, error) {
	raw, ok := d.raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	return raw, nil
}

// HasPart reports whether a package part exists.
func (d *Document) HasPart(name string) bool {
	_, ok := d.raw[name]
	return ok
}

// AddRawPart injects a new part with the given bytes, overwriting any
// existing entry of that name.
func (d *Document) AddRawPart(name string, data []byte) {
	d.raw[name] = data
	delete(d.parts, name)
	delete(d.dirty, name)
}

// MarkDirty records that a part's DOM was modified. Dirty parts are
// re-serialized from the DOM on Save.
func (d *Document) MarkDirty(name string) {
	d.dirty[name] = true
}

// ListParts returns all part names in the package, sorted.
func (d *Document) ListParts() []string {
	names := make([]string, 0, len(d.raw))
	for name := range d.raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the package to path. Unmodified parts are copied verbatim;
// dirty parts are serialized from their cached DOM. The write is atomic.
func (d *Document) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".docx-save-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := d.writeZip(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename to %s: %w", path, err)
	}

	d.log.Debug("document saved",
		zap.String("path", path),
		zap.Int("parts", len(d.raw)),
		zap.Int("dirty", len(d.dirty)))
	return nil
}

// WriteTo serializes the package as a ZIP stream. It implements
// io.WriterTo for callers that manage their own storage.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := d.writeZip(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (d *Document) writeZip(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, name := range d.ListParts() {
		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}

		data := d.raw[name]
		if d.dirty[name] {
			dom, ok := d.parts[name]
			if !ok {
				return fmt.Errorf("dirty part %s has no parsed document", name)
			}
			data, err = dom.WriteToBytes()
			if err != nil {
				return fmt.Errorf("serialize %s: %w", name, err)
			}
		}

		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return zw.Close()
}

const newContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const newPackageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const newDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1800" w:bottom="1440" w:left="1800" w:header="851" w:footer="992" w:gutter="0"/></w:sectPr></w:body></w:document>`

const newDocumentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const newStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr></w:rPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style><w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/></w:style><w:style w:type="character" w:styleId="Strong"><w:name w:val="Strong"/><w:rPr><w:b/></w:rPr></w:style></w:styles>`
