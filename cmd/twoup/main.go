package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shuqibi/twoup/internal/config"
	"github.com/shuqibi/twoup/internal/layout"
	"github.com/shuqibi/twoup/internal/pdf"
	"github.com/shuqibi/twoup/pkg/logger"
	"github.com/shuqibi/twoup/pkg/models"
	"github.com/shuqibi/twoup/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	cropTop := flag.Float64("crop-top", 0.0, "percentage to crop from the top margin")
	cropBottom := flag.Float64("crop-bottom", 0.0, "percentage to crop from the bottom margin")
	cropLeft := flag.Float64("crop-left", 0.0, "percentage to crop from the left margin")
	cropRight := flag.Float64("crop-right", 0.0, "percentage to crop from the right margin")
	xOffset := flag.Float64("x-offset", 0.0, "horizontal shift in points (positive is right)")
	yOffset := flag.Float64("y-offset", 0.0, "vertical shift in points (positive is up)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[twoup] "))
	log.SetVerbose(*verbose)

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	log.Info("Crop settings: Top=%g%%, Bottom=%g%%, Left=%g%%, Right=%g%%",
		*cropTop, *cropBottom, *cropLeft, *cropRight)

	stats, err := pdf.Convert(context.Background(), pdf.ConvertOptions{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Sheet:      models.PageDimensions{Width: cfg.Sheet.Width, Height: cfg.Sheet.Height},
		Crop: layout.EdgeCrop{
			Top:    *cropTop,
			Bottom: *cropBottom,
			Left:   *cropLeft,
			Right:  *cropRight,
		},
		Offset: layout.Offset{X: *xOffset, Y: *yOffset},
	}, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	log.Info("Success! Created %s with %d sheets.", outputPath, stats.SheetCount)
}

func usage() {
	fmt.Fprint(os.Stderr, "usage: twoup [flags] input.pdf output.pdf\n\n"+
		"Crops page margins with per-edge control and lays the pages out\n"+
		"two per landscape sheet.\n\nFlags:\n")
	flag.PrintDefaults()
}
