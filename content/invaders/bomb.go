package invaders

import (
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/utils"
)

const fallSpeed = 8

// Bomb 三种状态：下落 (boom 为 0 且可见)，爆炸 (boom 为 1-4)，隐藏
type Bomb struct {
	*Sprite
	ship   *Ship
	audio  controls.Audio
	sounds controls.Sounds
	boom   int
}

func newBomb(ship *Ship, audio controls.Audio, sounds controls.Sounds) *Bomb {
	b := &Bomb{
		Sprite: newSprite(config.TileBomb, 0, config.FieldEnd),
		ship:   ship,
		audio:  audio,
		sounds: sounds,
	}
	b.Hide()
	return b
}

// Drop 从飞碟的位置开始下落
func (b *Bomb) Drop(x, y int) {
	b.Move(x, y)
	b.Show()
}

func (b *Bomb) Update() {
	if b.Y() >= config.FieldEnd {
		// 没有击中，直接消失
		b.Hide()
	}
	if b.Hidden() {
		return
	}
	if b.boom > 0 {
		b.explode()
		return
	}
	b.Move(b.X(), b.Y()+fallSpeed)
	b.SetFrame(config.TileBomb, utils.FloorMod(b.Y(), 2*fallSpeed) == 0)
	if hitBox(b.Sprite, b.ship.Sprite) {
		b.boom = 1
	}
}

func (b *Bomb) explode() {
	if b.boom == 1 {
		b.audio.Play(b.sounds.Boom, false)
	}
	b.SetFrame(config.TileBoom+b.boom, false)
	b.boom++
	if b.boom > config.BoomFrames {
		b.boom = 0
		b.ship.Kill()
		b.Move(b.X(), config.FieldEnd)
		b.Hide()
	}
}

func (b *Bomb) Exploding() bool { return b.boom > 0 }

// hitBox 16x16 精灵中间 8x8 的区域参与碰撞
func hitBox(a, b *Sprite) bool {
	return utils.Collide(
		a.X()+4, a.Y()+4, a.X()+12, a.Y()+12,
		b.X()+4, b.Y()+4, b.X()+12, b.Y()+12,
	)
}
