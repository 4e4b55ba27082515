package models

// Span is one contiguous run of text sharing a font size within a page's
// layout. Spans are ephemeral: produced by the PDF layer, consumed by the
// heading detector, never retained.
type Span struct {
	Text     string
	FontSize float64
}
