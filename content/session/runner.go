package session

import (
	"context"
	"image"
	"log"

	"pew-invaders/content/clock"
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/invaders"
	"pew-invaders/content/render"
)

// Display 显示一帧画面
type Display interface {
	Show(frame *image.RGBA)
}

// Runner 自己控制帧率的目标使用，一局结束后立刻开始新的一局
type Runner struct {
	Input    controls.Source
	Audio    controls.Audio
	Sounds   controls.Sounds
	Display  Display
	Renderer *render.Renderer
	Clock    clock.Clock
	Settings config.Settings

	sessions int
}

// Run 直到 ctx 结束
func (r *Runner) Run(ctx context.Context) error {
	for {
		if _, err := r.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// RunOnce 玩一局，返回结果
func (r *Runner) RunOnce(ctx context.Context) (invaders.Outcome, error) {
	r.sessions++
	log.Printf("[Game] new session %d", r.sessions)

	g := invaders.New(r.Input, r.Audio, r.Sounds,
		invaders.WithSeed(r.Settings.Seed),
		invaders.WithMuted(r.Settings.Muted),
	)
	redraw := func() {
		r.Display.Show(r.Renderer.Render(g))
	}

	pacer := clock.NewPacer(r.Clock, r.Settings.FPS)
	for !g.Done() {
		g.Update()
		redraw()
		if g.Waiting() {
			if err := g.AwaitOverlay(ctx, r.Settings.PollInterval, redraw); err != nil {
				return g.Outcome(), err
			}
			pacer.Reset()
			continue
		}
		if err := pacer.Wait(ctx); err != nil {
			return g.Outcome(), err
		}
	}
	return g.Outcome(), nil
}
