package pdf

import (
	"context"
	"fmt"

	"github.com/shuqibi/twoup/internal/layout"
	"github.com/shuqibi/twoup/pkg/logger"
	"github.com/shuqibi/twoup/pkg/models"
)

type ConvertOptions struct {
	InputPath  string
	OutputPath string
	Sheet      models.PageDimensions
	Crop       layout.CropSpec
	Offset     layout.Offset
}

// Convert re-paginates InputPath into a 2-up document at OutputPath.
// Parameters are validated before the input is read, and the input is read
// before any output exists; there is no partial-success mode.
func Convert(ctx context.Context, opts ConvertOptions, log *logger.Logger) (layout.Stats, error) {
	engine, err := layout.NewEngine(opts.Sheet, opts.Crop, opts.Offset, log)
	if err != nil {
		return layout.Stats{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	src, err := OpenSource(opts.InputPath)
	if err != nil {
		return layout.Stats{}, err
	}
	if src.PageCount() == 0 {
		return layout.Stats{}, fmt.Errorf("%s has no pages", opts.InputPath)
	}

	log.Info("Processing %d pages from %s", src.PageCount(), opts.InputPath)

	composer := NewComposer(src, opts.Sheet)

	stats, err := engine.Compose(ctx, src, composer)
	if err != nil {
		return stats, err
	}

	if err := composer.Save(opts.OutputPath); err != nil {
		return stats, err
	}

	log.Debug("Wrote %d sheets to %s", stats.SheetCount, opts.OutputPath)
	return stats, nil
}
