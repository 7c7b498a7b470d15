// Package pdftables detects tables in PDF pages with a stream strategy.
//
// Stream detection relies on whitespace and alignment instead of ruling
// lines. The text layer of each page is read as positioned glyphs, which
// are grouped into lines by baseline, split into cells by horizontal gaps,
// and gathered into tables wherever consecutive lines carry several cells.
//
// PDF files are validated with pdfcpu before their text layer is read with
// github.com/ledongthuc/pdf. Scanned (image-only) pages have no text layer
// and yield no tables.
package pdftables
