package builder

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

// ErrBadSize indicates a width or height below one.
// Usage: if errors.Is(err, ErrBadSize) { /* fix the raster size */ }.
var ErrBadSize = fmt.Errorf("builder: invalid size: %w", core.ErrInvalidInput)

// ErrOptionViolation indicates a meaningless option value that reached
// Landscape: a non-positive noise scale or cell size, an inverted or
// negative cost range, or a negative minimum patch size.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = fmt.Errorf("builder: invalid option value: %w", core.ErrInvalidInput)

// builderErrorf wraps a sentinel with method context and a formatted detail.
// It returns an error of the form "<method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
