package docx

import "math"

// OOXML measurement units. Drawing extents are EMUs, font sizes are
// half-points (w:sz), and paragraph spacing/indents are twentieths of a
// point (twips).
const (
	emuPerCm    = 360000
	twipsPerPt  = 20
	halfPtPerPt = 2
)

func cmToEMU(cm float64) int64 {
	return int64(math.Round(cm * emuPerCm))
}

func ptToTwips(pt float64) int {
	return int(math.Round(pt * twipsPerPt))
}

func ptToHalfPoints(pt float64) int {
	return int(math.Round(pt * halfPtPerPt))
}

func halfPointsToPt(hp int) float64 {
	return float64(hp) / halfPtPerPt
}
