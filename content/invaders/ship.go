package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/utils"
)

type Ship struct {
	*Sprite
	input    controls.Source
	missiles []*Missile
	dx       int  // 水平速度，范围 [-4, 4]
	tick     bool // 待机动画
	dead     bool
}

func newShip(input controls.Source) *Ship {
	return &Ship{
		Sprite: newSprite(config.TileShip, 56, 102),
		input:  input,
	}
}

// Update 返回 true 表示玩家要求暂停
func (s *Ship) Update() bool {
	s.tick = !s.tick

	keys := s.input.Pressed()
	s.SetFrame(config.TileShip, !s.tick)
	switch {
	case keys.Has(controls.ButtonRight):
		s.dx = min(s.dx+1, config.ShipSpeed)
		s.SetFrame(config.TileShipBank, false)
	case keys.Has(controls.ButtonLeft):
		s.dx = max(s.dx-1, -config.ShipSpeed)
		s.SetFrame(config.TileShipBank, true)
	default:
		// 向下取整，-1 减速后仍为 -1
		s.dx = utils.FloorDiv(s.dx, 2)
	}
	if keys.Has(controls.ButtonX) {
		s.fire()
	}
	s.Move(utils.Clamp(s.X()+s.dx, config.ShipMinX, config.ShipMaxX), s.Y())
	return keys.Has(controls.ButtonO)
}

// fire 按固定顺序找到第一个空闲的导弹槽
func (s *Ship) fire() {
	for _, m := range s.missiles {
		if m.Hidden() {
			m.Shoot(s.X(), s.Y())
			return
		}
	}
}

func (s *Ship) Velocity() int { return s.dx }
func (s *Ship) Dead() bool    { return s.dead }
func (s *Ship) Kill()         { s.dead = true }
