package images

import (
	_ "embed"
)

// Tiles_png is the 16x256 paletted sheet holding all sixteen 16x16 tiles.
//
//go:embed tiles.png
var Tiles_png []byte
