package pdftables

import (
	"context"
	"fmt"
	"sync"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Verify interface compliance.
var _ driven.TableDetector = (*Detector)(nil)

var disableConfigDir sync.Once

// Detector finds tables in PDF files.
type Detector struct {
	cfg domain.DetectConfig
}

// NewDetector creates a stream detector with the given tolerances.
func NewDetector(cfg domain.DetectConfig) *Detector {
	// pdfcpu would otherwise create a config directory under the user's home.
	disableConfigDir.Do(func() { model.ConfigPath = "disable" })
	return &Detector{cfg: cfg}
}

// Detect returns every table found in the file, in page order.
func (d *Detector) Detect(ctx context.Context, path string) ([]domain.Table, error) {
	pages, err := validate(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("%s: %d pages", path, pages)

	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPDF, err)
	}
	defer f.Close()

	var tables []domain.Table
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		glyphs, err := pageGlyphs(page, i)
		if err != nil {
			return nil, err
		}
		found := DetectTables(i, glyphs, d.cfg)
		logger.Debug("%s: page %d: %d glyphs, %d tables", path, i, len(glyphs), len(found))
		tables = append(tables, found...)
	}
	return tables, nil
}

// validate checks the file structure in relaxed mode and returns its page
// count.
func validate(path string) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidPDF, err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidPDF, err)
	}
	return n, nil
}

// pageGlyphs reads the positioned text of a page. The content stream
// interpreter panics on some malformed input.
func pageGlyphs(page lpdf.Page, n int) (glyphs []Glyph, err error) {
	defer func() {
		if r := recover(); r != nil {
			glyphs = nil
			err = fmt.Errorf("%w: page %d: %v", domain.ErrDetectionFailed, n, r)
		}
	}()

	texts := page.Content().Text
	glyphs = make([]Glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, Glyph{X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize, S: t.S})
	}
	return glyphs, nil
}
