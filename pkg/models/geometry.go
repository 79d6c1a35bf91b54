package models

// PageDimensions holds a page's media box size in PDF points
// (1 point = 1/72 inch).
type PageDimensions struct {
	Width  float64
	Height float64
}

// CropBox is the sub-rectangle of a page that survives margin cropping,
// in the page's own coordinate space (origin bottom-left).
// A valid box satisfies 0 <= LLX < URX and 0 <= LLY < URY.
type CropBox struct {
	LLX float64
	LLY float64
	URX float64
	URY float64
}

func (b CropBox) Width() float64 {
	return b.URX - b.LLX
}

func (b CropBox) Height() float64 {
	return b.URY - b.LLY
}

// Placement maps cropped-page-local coordinates onto a sheet: the content is
// scaled uniformly by Scale, then the crop box's lower-left corner lands at
// (TranslateX, TranslateY) in sheet coordinates (origin bottom-left).
type Placement struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}
