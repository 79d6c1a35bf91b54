package layout

import (
	"fmt"

	"github.com/shuqibi/twoup/pkg/models"
)

// Slot identifies a page's position within its pair on the output sheet.
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
)

func (s Slot) String() string {
	if s == SlotRight {
		return "right"
	}
	return "left"
}

// CropSpec derives the crop box for a page. Specs are validated once,
// before any page is processed.
type CropSpec interface {
	Validate() error
	Resolve(dims models.PageDimensions, slot Slot) models.CropBox
}

// EdgeCrop crops each margin independently, as a percentage of the page
// dimension along that axis.
type EdgeCrop struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

func (c EdgeCrop) Validate() error {
	edges := []struct {
		name string
		pct  float64
	}{
		{"top", c.Top},
		{"bottom", c.Bottom},
		{"left", c.Left},
		{"right", c.Right},
	}
	for _, e := range edges {
		if e.pct < 0 || e.pct >= 50 {
			return fmt.Errorf("crop percentage for %s must be at least 0 and below 50, got %g", e.name, e.pct)
		}
	}
	return nil
}

func (c EdgeCrop) Resolve(dims models.PageDimensions, _ Slot) models.CropBox {
	return models.CropBox{
		LLX: dims.Width * c.Left / 100,
		LLY: dims.Height * c.Bottom / 100,
		URX: dims.Width - dims.Width*c.Right/100,
		URY: dims.Height - dims.Height*c.Top/100,
	}
}

// GutterCrop crops all margins by Percent, then redistributes the horizontal
// crop between the pair's inner (gutter) edge and outer edge. Bias 1 crops
// both sides equally; bias 2 takes the entire horizontal crop from the
// gutter side. The total horizontal crop is the same for any bias.
type GutterCrop struct {
	Percent float64
	Bias    float64
}

func (c GutterCrop) Validate() error {
	if c.Percent < 0 || c.Percent >= 50 {
		return fmt.Errorf("crop percentage must be at least 0 and below 50, got %g", c.Percent)
	}
	if c.Bias < 0 || c.Bias > 2 {
		return fmt.Errorf("gutter bias must be between 0 and 2, got %g", c.Bias)
	}
	return nil
}

func (c GutterCrop) Resolve(dims models.PageDimensions, slot Slot) models.CropBox {
	baseX := dims.Width * c.Percent / 100
	baseY := dims.Height * c.Percent / 100
	inner := baseX * c.Bias
	outer := baseX * (2 - c.Bias)

	// The gutter sits between the pair: right edge of the left slot,
	// left edge of the right slot.
	left, right := outer, inner
	if slot == SlotRight {
		left, right = inner, outer
	}

	return models.CropBox{
		LLX: left,
		LLY: baseY,
		URX: dims.Width - right,
		URY: dims.Height - baseY,
	}
}
