package docx

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Replacement is one ordered text substitution for Decorator.Replace.
type Replacement struct {
	Old string
	New string
}

// Decorator bundles the common fill-in edits (text replacement, picture
// placeholders, flag paragraphs) over one document, keeping an Index that
// it refreshes after structural edits.
type Decorator struct {
	doc *Document
	idx *Index
	log *zap.Logger
}

// NewDecorator builds a decorator, indexing the document up front.
func NewDecorator(d *Document) *Decorator {
	log := d.log
	if log == nil {
		log = zap.NewNop()
	}
	return &Decorator{doc: d, idx: NewIndex(d), log: log}
}

// Document returns the decorated document.
func (dec *Decorator) Document() *Document { return dec.doc }

// Index returns the decorator's element index.
func (dec *Decorator) Index() *Index { return dec.idx }

// Replace applies the substitutions in order to every run in the document
// and returns the number of runs modified. Replacements apply one after
// another, so an earlier New can be matched by a later Old; callers that
// care should order their pairs accordingly.
func (dec *Decorator) Replace(reps []Replacement) int {
	modified := 0
	for _, r := range dec.idx.Runs() {
		text := r.Text()
		if text == "" {
			continue
		}
		replaced := text
		for _, rep := range reps {
			if rep.Old == "" {
				continue
			}
			replaced = strings.ReplaceAll(replaced, rep.Old, rep.New)
		}
		if replaced != text {
			r.SetText(replaced)
			modified++
		}
	}
	dec.log.Debug("replaced placeholder text", zap.Int("runs", modified))
	return modified
}

// ReplaceMap is Replace with the pairs taken from a map in sorted key
// order.
func (dec *Decorator) ReplaceMap(mapping map[string]string) int {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	reps := make([]Replacement, 0, len(keys))
	for _, k := range keys {
		reps = append(reps, Replacement{Old: k, New: mapping[k]})
	}
	return dec.Replace(reps)
}

// AddPictures replaces placeholder runs with images. Every run whose text
// contains a key is cleared and receives the image at the mapped path;
// keys with no matching run are skipped. Failures wrap ErrPictureInsert.
func (dec *Decorator) AddPictures(mapping map[string]string) error {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	inserted := 0
	for _, run := range dec.idx.Runs() {
		for _, text := range keys {
			if text == "" || !strings.Contains(run.Text(), text) {
				continue
			}
			run.SetText("")
			if err := dec.doc.AddPictureInRun(run, mapping[text], PictureOptions{}); err != nil {
				return fmt.Errorf("%w: %v", ErrPictureInsert, err)
			}
			inserted++
		}
	}
	dec.log.Debug("inserted placeholder pictures", zap.Int("runs", inserted))
	return nil
}

// DeleteRun removes the first run whose text equals text. Absence is a
// no-op; the return value reports whether a run was removed.
func (dec *Decorator) DeleteRun(text string) bool {
	run, ok := dec.findRun(text)
	if !ok {
		return false
	}
	removeRunElement(run.el)
	dec.doc.markDocumentDirty()
	dec.idx.Refresh()
	return true
}

// AppendTableRow appends one row of values to the indexed table, then
// refreshes the cache.
func (dec *Decorator) AppendTableRow(tableIndex int, values []string) error {
	t, err := dec.idx.Table(tableIndex)
	if err != nil {
		return err
	}
	if _, err := AppendRow(t, values); err != nil {
		return err
	}
	dec.idx.Refresh()
	return nil
}

// AppendTableRows appends as many whole rows as the flat data fills to the
// indexed table, returning the number of rows added.
func (dec *Decorator) AppendTableRows(tableIndex int, data []string) (int, error) {
	t, err := dec.idx.Table(tableIndex)
	if err != nil {
		return 0, err
	}
	n, err := AppendRows(t, data)
	if err != nil {
		return 0, err
	}
	dec.idx.Refresh()
	return n, nil
}

// AddParagraphBeforeFlag inserts a paragraph holding text before the first
// paragraph whose whole text equals flag. With an empty or unmatched flag
// the paragraph goes to the end of the body. The second return value
// reports whether the flag was matched.
func (dec *Decorator) AddParagraphBeforeFlag(text, flag string) (Paragraph, bool, error) {
	if flag != "" {
		for _, p := range dec.idx.Paragraphs() {
			if p.Text() != flag {
				continue
			}
			inserted, err := p.InsertBefore(text)
			if err != nil {
				return Paragraph{}, false, err
			}
			dec.idx.Refresh()
			return inserted, true, nil
		}
	}

	p, err := dec.doc.AddParagraph(text)
	if err != nil {
		return Paragraph{}, false, err
	}
	dec.idx.Refresh()
	return p, false, nil
}

func (dec *Decorator) findRun(text string) (Run, bool) {
	for _, r := range dec.idx.Runs() {
		if r.Text() == text {
			return r, true
		}
	}
	return Run{}, false
}
