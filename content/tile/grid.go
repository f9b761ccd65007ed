// Package tile 由 16x16 图块组成的网格，精灵、外星人方阵和星空背景都用它表示
package tile

import "pew-invaders/content/config"

type Grid struct {
	X, Y          int
	Width, Height int
	FlipX         bool
	Hidden        bool
	tiles         []int
}

func NewGrid(width, height, fill int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]int, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

// At 越界时返回 TileEmpty
func (g *Grid) At(col, row int) int {
	if !g.InBounds(col, row) {
		return config.TileEmpty
	}
	return g.tiles[row*g.Width+col]
}

func (g *Grid) Set(col, row, v int) {
	if !g.InBounds(col, row) {
		return
	}
	g.tiles[row*g.Width+col] = v
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// PixelWidth 网格覆盖的像素宽度
func (g *Grid) PixelWidth() int {
	return g.Width * config.TileSize
}

func (g *Grid) PixelHeight() int {
	return g.Height * config.TileSize
}
