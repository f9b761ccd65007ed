package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/utils"
)

const riseSpeed = 8

// Missile 三种状态：隐藏，飞行 (boom 为 0)，爆炸 (boom 为 1-4)
type Missile struct {
	*Sprite
	power  int // 只影响使用哪个图块
	aliens *Aliens
	audio  controls.Audio
	sounds controls.Sounds
	boom   int
	ax, ay int // 击中的外星人格子
}

func newMissile(power int, aliens *Aliens, audio controls.Audio, sounds controls.Sounds) *Missile {
	m := &Missile{
		power:  power,
		aliens: aliens,
		audio:  audio,
		sounds: sounds,
	}
	m.Sprite = newSprite(m.idleFrame(), 0, config.FieldTop)
	m.Hide()
	return m
}

func (m *Missile) idleFrame() int {
	return config.TileMissile - m.power
}

func (m *Missile) Shoot(x, y int) {
	m.audio.Play(m.sounds.Pew, false)
	m.Move(x, y)
	m.Show()
}

func (m *Missile) Update() {
	if m.Hidden() {
		return
	}
	if m.boom > 0 {
		m.explode()
		return
	}
	if m.Y() <= config.FieldTop {
		m.kill()
		return
	}
	m.Move(m.X(), m.Y()-riseSpeed)
	m.SetFrame(m.idleFrame(), utils.FloorMod(m.Y(), 2*riseSpeed) != 6)

	// 导弹头部所在的格子，横向只有格子中间的区域才算击中
	a := m.aliens
	m.ax = utils.FloorDiv(m.X()+8-a.X(), config.TileSize)
	m.ay = utils.FloorDiv(m.Y()+4-a.Y(), config.TileSize)
	if !a.InBounds(m.ax, m.ay) {
		return
	}
	if utils.FloorMod(m.X()+10-a.X(), config.TileSize) > 4 && a.Occupied(m.ax, m.ay) {
		a.Hit(m.ax, m.ay)
		m.Move(m.X(), m.Y()-4)
		m.boom = 1
	}
}

func (m *Missile) explode() {
	if m.boom == 1 {
		m.audio.Play(m.sounds.Boom, false)
	}
	m.SetFrame(config.TileBoom+1+m.boom, false)
	m.boom++
	if m.boom > config.BoomFrames {
		m.boom = 0
		m.kill()
		m.aliens.Clear(m.ax, m.ay)
	}
}

func (m *Missile) kill() {
	m.SetFrame(m.idleFrame(), false)
	m.Hide()
}

func (m *Missile) Exploding() bool { return m.boom > 0 }
func (m *Missile) Power() int      { return m.power }
