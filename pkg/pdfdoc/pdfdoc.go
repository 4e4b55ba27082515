// Package pdfdoc is the PDF access layer: it wraps github.com/ledongthuc/pdf
// behind a small Document type exposing what the extraction pipeline needs:
// page count, per-page text, font-sized spans, link URIs and the
// producer/creator metadata.
package pdfdoc

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dtnitsch/llm-pdf-parser/models"
)

// spacingCoefficient decides word boundaries inside a span: two glyph runs
// on the same line belong to the same word when their horizontal gap is
// below this fraction of the font size.
const spacingCoefficient = 0.16

// Document is an open PDF. Acquire with Open, release with Close; the
// handle is valid only between the two.
type Document struct {
	file   *os.File
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
}

// Open opens the PDF at path. Fails when the file is unreadable or not
// parseable as a PDF.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	return &Document{
		file:   f,
		reader: r,
		fonts:  make(map[string]*pdf.Font),
	}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Info returns the document's producer and creator strings from the Info
// dictionary. Absent entries come back empty.
func (d *Document) Info() (producer, creator string) {
	info := d.reader.Trailer().Key("Info")
	if info.IsNull() {
		return "", ""
	}
	return info.Key("Producer").Text(), info.Key("Creator").Text()
}

// latexMarkers are the producer/creator substrings that identify a LaTeX
// toolchain.
var latexMarkers = []string{
	"latex", "pdftex", "luatex", "xetex", "tex live", "dvips", "overleaf",
}

// IsLatexProduced reports whether the document's producer or creator
// metadata names a LaTeX toolchain. Missing metadata means false: the
// diacritic repair pass must never run on a document we cannot attribute.
func (d *Document) IsLatexProduced() bool {
	producer, creator := d.Info()
	return isLatexMetadata(producer, creator)
}

func isLatexMetadata(producer, creator string) bool {
	combined := strings.ToLower(producer) + "\n" + strings.ToLower(creator)
	for _, marker := range latexMarkers {
		if strings.Contains(combined, marker) {
			return true
		}
	}
	return false
}

// PageText returns the page's plain text. Pages are 1-indexed.
func (d *Document) PageText(pageNum int) (string, error) {
	p := d.reader.Page(pageNum)
	if p.V.IsNull() {
		return "", nil
	}
	d.cacheFonts(p)

	text, err := p.GetPlainText(d.fonts)
	if err != nil {
		return "", fmt.Errorf("failed to read text of page %d: %w", pageNum, err)
	}
	return text, nil
}

func (d *Document) cacheFonts(p pdf.Page) {
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}
}

// PageSpans assembles the page's raw glyph runs into spans: consecutive
// runs on the same line sharing a font size. The pdf content parser can
// panic on malformed streams; that is caught here and surfaced as an
// error so one broken page does not take down the whole document walk.
func (d *Document) PageSpans(pageNum int) (spans []models.Span, err error) {
	defer func() {
		if val := recover(); val != nil {
			spans = nil
			err = fmt.Errorf("content parse failed on page %d: %v", pageNum, val)
		}
	}()

	p := d.reader.Page(pageNum)
	if p.V.IsNull() {
		return nil, nil
	}

	var (
		b       strings.Builder
		size    float64
		prevX   float64
		prevY   float64
		started bool
	)
	flush := func() {
		if started && strings.TrimSpace(b.String()) != "" {
			spans = append(spans, models.Span{Text: b.String(), FontSize: size})
		}
		b.Reset()
		started = false
	}

	for _, t := range p.Content().Text {
		sameLine := started && t.Y == prevY
		sameSize := started && math.Abs(t.FontSize-size) < 0.05

		if !sameLine || !sameSize {
			flush()
			size = t.FontSize
			started = true
		} else if t.X-prevX >= spacingCoefficient*t.FontSize {
			b.WriteString(" ")
		}

		b.WriteString(t.S)
		prevX = t.X + t.W
		prevY = t.Y
	}
	flush()

	return spans, nil
}

// PageLinks returns the page's link URIs in annotation order. Annotations
// without a URI action contribute nothing.
func (d *Document) PageLinks(pageNum int) []string {
	p := d.reader.Page(pageNum)
	if p.V.IsNull() {
		return nil
	}

	annots := p.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var uris []string
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}
		action := annot.Key("A")
		if action.IsNull() {
			continue
		}
		if uri := action.Key("URI").RawString(); uri != "" {
			uris = append(uris, uri)
		}
	}
	return uris
}
