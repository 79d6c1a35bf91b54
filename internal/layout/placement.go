package layout

import (
	"math"

	"github.com/shuqibi/twoup/pkg/models"
)

// Offset shifts placed content in points, positive right and up. It applies
// to both slots of a pair and is not checked against the sheet bounds.
type Offset struct {
	X float64
	Y float64
}

// PlaceInCell scales a cropped page uniformly to fit one half of the sheet
// and centers it within its slot. Content smaller than the cell is scaled up
// until the limiting dimension fills it; aspect ratio is always preserved.
func PlaceInCell(box models.CropBox, sheet models.PageDimensions, slot Slot, offset Offset) models.Placement {
	cellW := sheet.Width / 2
	cellH := sheet.Height

	scale := math.Min(cellW/box.Width(), cellH/box.Height())

	tx := (cellW-box.Width()*scale)/2 + offset.X
	if slot == SlotRight {
		tx += cellW
	}
	ty := (cellH-box.Height()*scale)/2 + offset.Y

	return models.Placement{
		Scale:      scale,
		TranslateX: tx,
		TranslateY: ty,
	}
}
