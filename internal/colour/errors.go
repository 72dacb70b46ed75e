package colour

import "errors"

// ErrInvalidColourFormat is returned when an input string is not a
// recognised hex, rgb, hsl or oklch literal.
var ErrInvalidColourFormat = errors.New("invalid colour format")
