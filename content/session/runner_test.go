package session

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"pew-invaders/content/clock"
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/invaders"
	"pew-invaders/content/render"
	"pew-invaders/resources/images"
)

type frames struct {
	shown int
}

func (f *frames) Show(*image.RGBA) { f.shown++ }

// script 依次返回预设的按键，用完后保持最后一个
type script struct {
	seq   []controls.Buttons
	polls int
}

func (s *script) Pressed() controls.Buttons {
	i := min(s.polls, len(s.seq)-1)
	s.polls++
	return s.seq[i]
}

func newRunner(t *testing.T, src controls.Source) (*Runner, *frames, *clock.Fake) {
	t.Helper()
	sheet, err := render.LoadSheet(images.Tiles_png)
	if err != nil {
		t.Fatal(err)
	}
	settings := config.Default()
	settings.Seed = 1
	settings.PollInterval = time.Millisecond

	display := &frames{}
	c := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	r := &Runner{
		Input:    src,
		Audio:    controls.Silent{},
		Display:  display,
		Renderer: render.New(sheet),
		Clock:    c,
		Settings: settings,
	}
	return r, display, c
}

func TestRunOnceIdleGame(t *testing.T) {
	seq := make([]controls.Buttons, 29)
	seq = append(seq, controls.ButtonO, 0)
	src := &script{seq: seq}
	r, display, c := newRunner(t, src)

	outcome, err := r.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != invaders.OutcomeLost {
		t.Errorf("outcome = %s, want lost", outcome)
	}
	// 28 帧游戏加上结束画面的三次重绘
	if display.shown != 31 {
		t.Errorf("shown %d frames, want 31", display.shown)
	}
	if src.polls != 31 {
		t.Errorf("polled %d times, want 31", src.polls)
	}
	slept := c.Slept()
	if len(slept) != 27 {
		t.Fatalf("paced %d frames, want 27", len(slept))
	}
	for _, d := range slept {
		if d != time.Second/config.FPS {
			t.Errorf("slept %v", d)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	r, display, _ := newRunner(t, &script{seq: []controls.Buttons{0}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want canceled", err)
	}
	if display.shown != 1 {
		t.Errorf("shown %d frames before stopping", display.shown)
	}
}
