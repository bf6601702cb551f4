// Package scroll computes reading progress for a scrollable document.
package scroll

// Progress returns how far the document has been scrolled as a percentage
// in [0, 100]. A document that fits within the viewport reports 0.
func Progress(scrolled, documentHeight, viewportHeight float64) float64 {
	total := documentHeight - viewportHeight
	if total <= 0 {
		return 0
	}
	p := scrolled / total * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
