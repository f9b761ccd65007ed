package invaders

import (
	"math/rand"
	"time"
)

type Option func(g *Game)

// WithRand 星空背景使用的随机数
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seed 为 0 时使用当前时间
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMuted(muted bool) Option {
	return func(g *Game) {
		g.muted = muted
	}
}
