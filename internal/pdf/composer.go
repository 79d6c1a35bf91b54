package pdf

import (
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/shuqibi/twoup/pkg/models"
)

// Composer assembles output sheets with gofpdf, pasting source pages as
// imported templates. The layout engine speaks PDF coordinates (origin
// bottom-left, y up); gofpdf draws from the top-left, so Paste converts.
type Composer struct {
	doc       *gofpdf.Fpdf
	importer  *gofpdi.Importer
	src       *Source
	sheet     models.PageDimensions
	templates map[int]int
}

func NewComposer(src *Source, sheet models.PageDimensions) *Composer {
	// Sheet dimensions are already landscape; gofpdf's "L" orientation
	// would swap them again, so pages are declared portrait.
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: sheet.Width, Ht: sheet.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	return &Composer{
		doc:       doc,
		importer:  gofpdi.NewImporter(),
		src:       src,
		sheet:     sheet,
		templates: make(map[int]int),
	}
}

func (c *Composer) AddSheet(size models.PageDimensions) error {
	c.doc.AddPageFormat("P", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})
	return c.doc.Error()
}

// Paste draws one source page onto the current sheet. gofpdi imports whole
// media boxes only, so the crop box is emulated: clip to the scaled crop
// rectangle, then draw the full page shifted so the cropped region lands at
// the placement target.
func (c *Composer) Paste(page int, box models.CropBox, p models.Placement) (err error) {
	// gofpdi panics on unparsable input instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing page %d of %s: %v", page+1, c.src.Path(), r)
		}
	}()

	tpl, ok := c.templates[page]
	if !ok {
		tpl = c.importer.ImportPage(c.doc, c.src.Path(), page+1, "/MediaBox")
		c.templates[page] = tpl
	}

	dims, err := c.src.Dimensions(page)
	if err != nil {
		return err
	}

	clipW := box.Width() * p.Scale
	clipH := box.Height() * p.Scale
	clipX := p.TranslateX
	clipY := c.sheet.Height - (p.TranslateY + clipH)

	pageW := dims.Width * p.Scale
	pageH := dims.Height * p.Scale
	pageX := p.TranslateX - box.LLX*p.Scale
	pageY := c.sheet.Height - (p.TranslateY - box.LLY*p.Scale + pageH)

	c.doc.ClipRect(clipX, clipY, clipW, clipH, false)
	c.importer.UseImportedTemplate(c.doc, tpl, pageX, pageY, pageW, pageH)
	c.doc.ClipEnd()

	return c.doc.Error()
}

// Save serializes the assembled document. A failure here is a write
// failure; the destination may be left partially written by the underlying
// library.
func (c *Composer) Save(path string) error {
	if err := c.doc.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := c.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}
