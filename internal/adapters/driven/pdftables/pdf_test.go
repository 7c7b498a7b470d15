package pdftables

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run is a piece of text shown at a fixed position.
type run struct {
	x, y float64
	s    string
}

// tableRuns lays rows out at an 80pt column pitch starting at (40, top),
// one line every 14pt.
func tableRuns(top float64, rows ...[]string) []run {
	var runs []run
	for i, row := range rows {
		y := top - float64(i)*14
		for j, cell := range row {
			if cell == "" {
				continue
			}
			runs = append(runs, run{x: 40 + float64(j)*80, y: y, s: cell})
		}
	}
	return runs
}

// writePDF builds an uncompressed PDF with one page per entry of pages,
// all text in 10pt Helvetica. With widths set, the font carries a width
// table of 500 units per character; otherwise it has none and readers see
// zero advance widths.
func writePDF(t *testing.T, name string, widths bool, pages ...[]run) string {
	t.Helper()

	font := "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding"
	if widths {
		font += " /FirstChar 32 /LastChar 126 /Widths [" + strings.TrimSpace(strings.Repeat("500 ", 126-32+1)) + "]"
	}
	font += " >>"

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		font,
	}
	for i, runs := range pages {
		var content strings.Builder
		for _, r := range runs {
			fmt.Fprintf(&content, "BT /F1 10 Tf %g %g Td (%s) Tj ET\n", r.x, r.y, escapePDFString(r.s))
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 842 595] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
