package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shuqibi/twoup/internal/config"
	"github.com/shuqibi/twoup/internal/layout"
	"github.com/shuqibi/twoup/internal/pdf"
	"github.com/shuqibi/twoup/pkg/models"
)

// Diagnostic tool: prints each page's dimensions and the crop box and
// placement the layout engine would produce, without writing anything.
func main() {
	crop := flag.Float64("crop", 0.0, "margin crop percentage to preview")
	gutterBias := flag.Float64("gutter-bias", 1.0, "gutter bias to preview")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pagedims [flags] input.pdf")
		os.Exit(1)
	}
	path := flag.Arg(0)

	spec := layout.GutterCrop{Percent: *crop, Bias: *gutterBias}
	if err := spec.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	src, err := pdf.OpenSource(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	sheet := models.PageDimensions{Width: cfg.Sheet.Width, Height: cfg.Sheet.Height}

	fmt.Printf("Analyzing PDF: %s (%d pages)\n", path, src.PageCount())

	for page := 0; page < src.PageCount(); page++ {
		dims, err := src.Dimensions(page)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		slot := layout.SlotLeft
		if page%2 == 1 {
			slot = layout.SlotRight
		}
		box := spec.Resolve(dims, slot)
		placement := layout.PlaceInCell(box, sheet, slot, layout.Offset{})

		fmt.Printf("\nPage %d (%s slot):\n", page+1, slot)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dims.Width, dims.Height)
		fmt.Printf("Crop box: (%.3f, %.3f) - (%.3f, %.3f)\n", box.LLX, box.LLY, box.URX, box.URY)
		fmt.Printf("Placement: scale %.4f, translate (%.3f, %.3f)\n",
			placement.Scale, placement.TranslateX, placement.TranslateY)
	}
}
