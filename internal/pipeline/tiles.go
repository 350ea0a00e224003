package pipeline

// Tile is a rectangular window of the dataset extent.
type Tile struct {
	X0, Y0 int
	W, H   int
}

// DefaultBlockSize is the tile edge used when Config.BlockSize is unset.
const DefaultBlockSize = 256

// Tiles covers a width×height extent with block×block tiles in row-major
// order. Tiles on the right and bottom edges are clipped to the extent.
// An empty extent has no tiles.
func Tiles(width, height, block int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if block <= 0 {
		block = DefaultBlockSize
	}
	var tiles []Tile
	for y := 0; y < height; y += block {
		h := min(block, height-y)
		for x := 0; x < width; x += block {
			tiles = append(tiles, Tile{X0: x, Y0: y, W: min(block, width-x), H: h})
		}
	}
	return tiles
}
