package invaders

import (
	"math/rand"

	"pew-invaders/content/controls"
)

type sample string

func (s sample) Name() string { return string(s) }

var testSounds = controls.Sounds{Pew: sample("pew"), Boom: sample("boom")}

// recorder 记录播放过的音效
type recorder struct {
	played []string
	muted  bool
	stops  int
}

func (r *recorder) Play(s controls.Sample, loop bool) {
	if r.muted {
		return
	}
	r.played = append(r.played, s.Name())
}

func (r *recorder) Stop()           { r.stops++ }
func (r *recorder) Mute(muted bool) { r.muted = muted }

func (r *recorder) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

// keys 测试中可以随时修改的按键状态
type keys struct {
	pressed controls.Buttons
}

func (k *keys) Pressed() controls.Buttons { return k.pressed }

func newTestGame() (*Game, *keys, *recorder) {
	k := &keys{}
	r := &recorder{muted: true}
	g := New(k, r, testSounds, WithRand(rand.New(rand.NewSource(1))))
	return g, k, r
}
