package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/tile"
)

// Sprite 只负责位置和显示的图块，不关心游戏逻辑
type Sprite struct {
	grid *tile.Grid
}

func newSprite(frame, x, y int) *Sprite {
	g := tile.NewGrid(1, 1, frame)
	g.X, g.Y = x, y
	return &Sprite{grid: g}
}

func (s *Sprite) X() int { return s.grid.X }
func (s *Sprite) Y() int { return s.grid.Y }

func (s *Sprite) Move(x, y int) {
	s.grid.X = x
	s.grid.Y = y
}

// SetFrame 超出 0-15 的编号直接忽略，翻转标记也保持不变
func (s *Sprite) SetFrame(frame int, flip bool) {
	if frame < 0 || frame >= config.TileCount {
		return
	}
	s.grid.Set(0, 0, frame)
	s.grid.FlipX = flip
}

func (s *Sprite) Frame() int {
	return s.grid.At(0, 0)
}

func (s *Sprite) Flipped() bool {
	return s.grid.FlipX
}

func (s *Sprite) Hidden() bool { return s.grid.Hidden }
func (s *Sprite) Show()        { s.grid.Hidden = false }
func (s *Sprite) Hide()        { s.grid.Hidden = true }

func (s *Sprite) Grid() *tile.Grid {
	return s.grid
}
