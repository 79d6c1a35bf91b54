package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/shuqibi/twoup/pkg/models"
)

// Source exposes the input document's page dimensions to the layout engine.
// Dimensions are read once up front via pdfcpu; page content is never
// inspected here.
type Source struct {
	path string
	dims []models.PageDimensions
}

func OpenSource(path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}

	pageDims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}

	dims := make([]models.PageDimensions, len(pageDims))
	for i, d := range pageDims {
		dims[i] = models.PageDimensions{Width: d.Width, Height: d.Height}
	}

	return &Source{path: path, dims: dims}, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) PageCount() int {
	return len(s.dims)
}

func (s *Source) Dimensions(page int) (models.PageDimensions, error) {
	if page < 0 || page >= len(s.dims) {
		return models.PageDimensions{}, fmt.Errorf("page %d out of range, document has %d pages", page, len(s.dims))
	}
	return s.dims[page], nil
}
