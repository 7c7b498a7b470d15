package pdftables

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// Glyph is a run of text placed on a page. X and Y locate the baseline
// start in PDF user space (Y grows upwards); W is the advance width.
type Glyph struct {
	X, Y     float64
	W        float64
	FontSize float64
	S        string
}

// segment is a horizontally contiguous piece of text within a line.
type segment struct {
	x0, x1 float64
	text   string
}

func (s segment) mid() float64 { return (s.x0 + s.x1) / 2 }

// line is a set of segments sharing a baseline.
type line struct {
	y        float64
	size     float64
	glyphs   []Glyph
	segments []segment
}

// DetectTables runs stream detection over one page of glyphs.
func DetectTables(page int, glyphs []Glyph, cfg domain.DetectConfig) []domain.Table {
	lines := groupLines(glyphs, cfg.LineTolerance)
	for i := range lines {
		lines[i].segments = splitSegments(lines[i].glyphs, cfg.WordGap, cfg.ColumnGap)
	}

	var tables []domain.Table
	for _, region := range tabularRegions(lines, cfg.MinColumns) {
		if len(region) < cfg.MinRows {
			continue
		}
		tables = append(tables, domain.Table{
			Page:  page,
			Index: len(tables),
			Rows:  buildRows(region),
		})
	}
	return tables
}

// groupLines clusters glyphs by baseline, top of the page first, and
// orders each line's glyphs left to right. Whitespace glyphs stay in their
// line as word breaks; lines holding nothing else are dropped.
func groupLines(glyphs []Glyph, tolerance float64) []line {
	sorted := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		g.S = stripLineBreaks(g.S)
		if g.S == "" {
			continue
		}
		sorted = append(sorted, g)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []line
	for _, g := range sorted {
		if n := len(lines); n > 0 {
			cur := &lines[n-1]
			if math.Abs(cur.y-g.Y) <= tolerance*math.Max(cur.size, fontSize(g)) {
				cur.glyphs = append(cur.glyphs, g)
				continue
			}
		}
		lines = append(lines, line{y: g.Y, size: fontSize(g), glyphs: []Glyph{g}})
	}

	kept := lines[:0]
	for _, l := range lines {
		if !hasText(l.glyphs) {
			continue
		}
		gs := l.glyphs
		sort.SliceStable(gs, func(a, b int) bool { return gs[a].X < gs[b].X })
		kept = append(kept, l)
	}
	return kept
}

func hasText(glyphs []Glyph) bool {
	for _, g := range glyphs {
		if !isBlank(g) {
			return true
		}
	}
	return false
}

func isBlank(g Glyph) bool { return strings.TrimSpace(g.S) == "" }

// splitSegments merges glyphs into cell segments. Gaps up to wordGap em
// join text directly, gaps up to columnGap em join with a space, and wider
// gaps start a new segment. A whitespace glyph forces a space before the
// next glyph even when the geometry shows no gap, as happens with fonts
// that carry no width table.
func splitSegments(glyphs []Glyph, wordGap, columnGap float64) []segment {
	var segs []segment
	brk := false
	for _, g := range glyphs {
		if isBlank(g) {
			brk = true
			continue
		}
		x1 := g.X + width(g)
		joined := false
		if n := len(segs); n > 0 {
			cur := &segs[n-1]
			gap := g.X - cur.x1
			size := fontSize(g)
			switch {
			case gap <= wordGap*size && !brk:
				cur.text += g.S
				joined = true
			case gap < columnGap*size:
				cur.text += " " + g.S
				joined = true
			}
			if joined {
				cur.x1 = math.Max(cur.x1, x1)
			}
		}
		if !joined {
			segs = append(segs, segment{x0: g.X, x1: x1, text: g.S})
		}
		brk = false
	}
	for i := range segs {
		segs[i].text = strings.TrimSpace(segs[i].text)
	}
	return segs
}

// tabularRegions returns maximal runs of consecutive lines that each carry
// at least minColumns segments.
func tabularRegions(lines []line, minColumns int) [][]line {
	var regions [][]line
	var cur []line
	for _, l := range lines {
		if len(l.segments) >= minColumns {
			cur = append(cur, l)
			continue
		}
		if len(cur) > 0 {
			regions = append(regions, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		regions = append(regions, cur)
	}
	return regions
}

// span is a column's horizontal extent.
type span struct{ x0, x1 float64 }

// buildRows lays a region out on a grid. The columns are anchored on the
// lines with the most segments; segments of sparser lines go to the column
// containing their midpoint, or the nearest one.
func buildRows(region []line) [][]string {
	cols := columnSpans(region)

	rows := make([][]string, 0, len(region))
	for _, l := range region {
		cells := make([]string, len(cols))
		for _, s := range l.segments {
			j := nearestColumn(cols, s.mid())
			if cells[j] == "" {
				cells[j] = s.text
			} else {
				cells[j] += " " + s.text
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func columnSpans(region []line) []span {
	widest := 0
	for _, l := range region {
		if len(l.segments) > widest {
			widest = len(l.segments)
		}
	}

	cols := make([]span, widest)
	seen := false
	for _, l := range region {
		if len(l.segments) != widest {
			continue
		}
		for j, s := range l.segments {
			if !seen {
				cols[j] = span{s.x0, s.x1}
				continue
			}
			cols[j].x0 = math.Min(cols[j].x0, s.x0)
			cols[j].x1 = math.Max(cols[j].x1, s.x1)
		}
		seen = true
	}
	return cols
}

func nearestColumn(cols []span, x float64) int {
	best, bestDist := 0, math.Inf(1)
	for j, c := range cols {
		var d float64
		switch {
		case x < c.x0:
			d = c.x0 - x
		case x > c.x1:
			d = x - c.x1
		}
		if d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

func stripLineBreaks(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// fontSize guards against zero-sized fonts reported by some producers.
func fontSize(g Glyph) float64 {
	if g.FontSize > 0 {
		return g.FontSize
	}
	return 1
}

// width estimates the advance width when the PDF does not report one.
func width(g Glyph) float64 {
	if g.W > 0 {
		return g.W
	}
	n := 0
	for _, r := range g.S {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return 0.5 * fontSize(g) * float64(n)
}
