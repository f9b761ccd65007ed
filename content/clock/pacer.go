package clock

import (
	"context"
	"time"
)

// Pacer 保持固定帧率，某一帧超时后直接以当前时间为新的起点，不追赶落下的帧
type Pacer struct {
	clock    Clock
	period   time.Duration
	deadline time.Time
}

func NewPacer(c Clock, fps int) *Pacer {
	if fps <= 0 {
		fps = 1
	}
	return &Pacer{
		clock:    c,
		period:   time.Second / time.Duration(fps),
		deadline: c.Now(),
	}
}

func (p *Pacer) Period() time.Duration {
	return p.period
}

// Wait 睡到本帧结束
func (p *Pacer) Wait(ctx context.Context) error {
	p.deadline = p.deadline.Add(p.period)
	wait := p.deadline.Sub(p.clock.Now())
	if wait > 0 {
		return p.clock.Sleep(ctx, wait)
	}
	p.deadline = p.clock.Now()
	return ctx.Err()
}

// Reset 暂停画面之类长时间阻塞之后调用
func (p *Pacer) Reset() {
	p.deadline = p.clock.Now()
}
