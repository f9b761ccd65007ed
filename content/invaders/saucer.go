package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/utils"
)

const (
	saucerSpeed = 4
	saucerCycle = 6
	dropRange   = 4 // 飞碟与飞船水平距离小于此值时投弹
)

// Saucer 在屏幕顶部来回飞行，是炸弹的唯一来源
type Saucer struct {
	*Sprite
	ship *Ship
	bomb *Bomb
	tick int
	dx   int
}

func newSaucer(ship *Ship, bomb *Bomb) *Saucer {
	return &Saucer{
		Sprite: newSprite(config.TileSaucer, 0, 8),
		ship:   ship,
		bomb:   bomb,
		dx:     saucerSpeed,
	}
}

func (s *Saucer) Update() {
	s.tick = (s.tick + 1) % saucerCycle
	s.grid.FlipX = s.tick >= saucerCycle/2
	if s.X() >= config.SaucerMaxX || s.X() <= config.SaucerMinX {
		s.dx = -s.dx
	}
	s.Move(s.X()+s.dx, s.Y())
	if utils.Abs(s.X()-s.ship.X()) < dropRange && s.bomb.Hidden() {
		s.bomb.Drop(s.X(), s.Y())
	}
}

func (s *Saucer) Velocity() int { return s.dx }
