package layout

import (
	"context"
	"fmt"

	"github.com/shuqibi/twoup/pkg/logger"
	"github.com/shuqibi/twoup/pkg/models"
)

const placementEpsilon = 1e-6

// PageSource reports the dimensions of the input document's pages.
// Pages are zero indexed.
type PageSource interface {
	PageCount() int
	Dimensions(page int) (models.PageDimensions, error)
}

// SheetAssembler receives placement instructions in output order: one
// AddSheet per output sheet, followed by a Paste for each populated slot.
type SheetAssembler interface {
	AddSheet(size models.PageDimensions) error
	Paste(page int, box models.CropBox, placement models.Placement) error
}

type Stats struct {
	PageCount  int
	SheetCount int
}

// Engine paginates input pages two per landscape sheet.
type Engine struct {
	sheet  models.PageDimensions
	crop   CropSpec
	offset Offset
	log    *logger.Logger
}

func NewEngine(sheet models.PageDimensions, crop CropSpec, offset Offset, log *logger.Logger) (*Engine, error) {
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return nil, fmt.Errorf("sheet dimensions must be positive, got %.3f x %.3f", sheet.Width, sheet.Height)
	}
	if err := crop.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		sheet:  sheet,
		crop:   crop,
		offset: offset,
		log:    log,
	}, nil
}

// Compose walks the source in page order, pairing pages onto sheets: pages
// 0,1 fill sheet 0, pages 2,3 fill sheet 1, and so on. An odd trailing page
// fills only the left slot of the final sheet.
func (e *Engine) Compose(ctx context.Context, src PageSource, asm SheetAssembler) (Stats, error) {
	n := src.PageCount()
	stats := Stats{PageCount: n}

	for i := 0; i < n; i += 2 {
		if err := asm.AddSheet(e.sheet); err != nil {
			return stats, fmt.Errorf("adding sheet %d: %w", stats.SheetCount, err)
		}
		stats.SheetCount++

		for _, slot := range []Slot{SlotLeft, SlotRight} {
			page := i + int(slot)
			if page >= n {
				continue
			}

			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			default:
			}

			dims, err := src.Dimensions(page)
			if err != nil {
				return stats, fmt.Errorf("page %d: %w", page, err)
			}
			if dims.Width <= 0 || dims.Height <= 0 {
				return stats, fmt.Errorf("page %d has degenerate dimensions %.3f x %.3f", page, dims.Width, dims.Height)
			}

			box := e.crop.Resolve(dims, slot)
			placement := PlaceInCell(box, e.sheet, slot, e.offset)

			e.log.Debug("page %d (%s slot): crop box (%.2f, %.2f)-(%.2f, %.2f), scale %.4f, translate (%.2f, %.2f)",
				page, slot, box.LLX, box.LLY, box.URX, box.URY,
				placement.Scale, placement.TranslateX, placement.TranslateY)

			e.warnIfOutsideSheet(page, box, placement)

			if err := asm.Paste(page, box, placement); err != nil {
				return stats, fmt.Errorf("pasting page %d: %w", page, err)
			}
		}
	}

	return stats, nil
}

// Offsets are deliberately unclamped so content can be nudged toward or away
// from the binding; a placement that leaves the sheet is reported but not
// rejected.
func (e *Engine) warnIfOutsideSheet(page int, box models.CropBox, p models.Placement) {
	w := box.Width() * p.Scale
	h := box.Height() * p.Scale
	if p.TranslateX < -placementEpsilon || p.TranslateY < -placementEpsilon ||
		p.TranslateX+w > e.sheet.Width+placementEpsilon ||
		p.TranslateY+h > e.sheet.Height+placementEpsilon {
		e.log.Warn("page %d extends outside the sheet and will be clipped", page)
	}
}
