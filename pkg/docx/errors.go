package docx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package. All are raised immediately to the
// caller; no operation retries or rolls back partial work.
var (
	// ErrOpen wraps any failure to read a document package.
	ErrOpen = errors.New("cannot open document")

	// ErrPartNotFound is returned when a named ZIP entry is missing.
	ErrPartNotFound = errors.New("part not found in document package")

	// ErrNoBody is returned when word/document.xml has no w:body element.
	ErrNoBody = errors.New("document has no body")

	// ErrOutOfRange is returned when an element index is outside [0, len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidDimension is returned for non-positive table dimensions or
	// value lists whose length does not match the target cell count.
	ErrInvalidDimension = errors.New("invalid table dimension")

	// ErrInsufficientData is returned when fewer data items are supplied
	// than the table has cells.
	ErrInsufficientData = errors.New("insufficient data for table cells")

	// ErrUnknownStyle is returned when a style name is in neither the
	// document's styles part nor the built-in catalog.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrMissingFontSize is returned when a first-line indent is requested
	// but the paragraph's style chain defines no font size.
	ErrMissingFontSize = errors.New("style has no font size")

	// ErrPictureInsert wraps any failure during picture attachment in the
	// Decorator facade.
	ErrPictureInsert = errors.New("picture insert failed")
)

func errIndex(what string, i, n int) error {
	return fmt.Errorf("%w: %s %d of %d", ErrOutOfRange, what, i, n)
}

func errCount(got, want int) error {
	return fmt.Errorf("%w: %d values for %d cells", ErrInvalidDimension, got, want)
}
