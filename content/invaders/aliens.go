package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/tile"
)

const (
	alienSpeed   = 2
	alienCycle   = 4
	reachLeft    = 2  // 方阵左侧最远到达的位置，需要减去左边距
	reachRight   = 14 // 方阵右侧最远到达的位置，需要加上右边距
	turnDescents = 4  // 每碰边这么多次才掉头
)

// Aliens 7x3 的外星人方阵，整体是一个图块网格
type Aliens struct {
	grid    *tile.Grid
	tick    int
	dx      int
	descend int
	left    int // 最左侧存活外星人到方阵左边缘的距离
	right   int
	dirty   bool // 有外星人被击中，边距需要重新计算
}

func newAliens() *Aliens {
	g := tile.NewGrid(config.AlienCols, config.AlienRows, config.TileAlienA)
	g.X, g.Y = 8, 17
	a := &Aliens{
		grid: g,
		dx:   alienSpeed,
	}
	a.Reform()
	return a
}

// Update 每 4 帧中移动两次
func (a *Aliens) Update() {
	a.tick = (a.tick + 1) % alienCycle
	if a.tick != 0 && a.tick != 2 {
		return
	}
	for col := 0; col < a.grid.Width; col++ {
		for row := 0; row < a.grid.Height; row++ {
			switch a.grid.At(col, row) {
			case config.TileAlienA:
				a.grid.Set(col, row, config.TileAlienB)
			case config.TileAlienB:
				a.grid.Set(col, row, config.TileAlienA)
			}
		}
	}
	if a.grid.X >= reachRight+a.right || a.grid.X <= reachLeft-a.left {
		a.grid.Y++
		a.descend++
		if a.descend >= turnDescents {
			a.descend = 0
			a.dx = -a.dx
			a.grid.X += a.dx
		}
	} else {
		a.grid.X += a.dx
	}
}

// Reform 根据存活的外星人重新计算左右边距
func (a *Aliens) Reform() {
	full := config.TileSize * (config.AlienCols - 1)
	a.left = full
	a.right = full
	for row := 0; row < a.grid.Height; row++ {
		for col := 0; col < a.grid.Width; col++ {
			if alive(a.grid.At(col, row)) {
				a.left = min(config.TileSize*col, a.left)
				a.right = min(full-config.TileSize*col, a.right)
			}
		}
	}
	a.dirty = false
}

func alive(v int) bool {
	return v == config.TileAlienA || v == config.TileAlienB
}

func (a *Aliens) X() int { return a.grid.X }
func (a *Aliens) Y() int { return a.grid.Y }

func (a *Aliens) InBounds(col, row int) bool {
	return a.grid.InBounds(col, row)
}

// Occupied 正在爆炸的格子也算被占用
func (a *Aliens) Occupied(col, row int) bool {
	return a.grid.At(col, row) != config.TileEmpty
}

func (a *Aliens) Cell(col, row int) int {
	return a.grid.At(col, row)
}

// Hit 标记为击中，等导弹爆炸结束后再清空
func (a *Aliens) Hit(col, row int) {
	a.grid.Set(col, row, config.TileAlienHit)
	a.dirty = true
}

func (a *Aliens) Clear(col, row int) {
	a.grid.Set(col, row, config.TileEmpty)
}

func (a *Aliens) Dirty() bool { return a.dirty }

// Margins 只有 Dirty 为 false 时才可信
func (a *Aliens) Margins() (left, right int) {
	return a.left, a.right
}

func (a *Aliens) Grid() *tile.Grid {
	return a.grid
}
