package invaders

import (
	"context"
	"testing"
	"time"

	"pew-invaders/content/config"
	"pew-invaders/content/controls"
)

func TestNewGameLayout(t *testing.T) {
	g, _, r := newTestGame()
	if r.muted {
		t.Error("new game left the audio muted")
	}
	if g.Mode() != config.ModePlay || !g.Running() {
		t.Fatal("fresh game is not running")
	}
	if n := len(g.Sprites()); n != 7 {
		t.Errorf("%d sprites, want 7", n)
	}
	if g.Sprites()[1] != g.Aliens().Grid() {
		t.Error("aliens must be drawn right after the ship")
	}
	stars := 0
	bg := g.Background()
	for row := 0; row < bg.Height; row++ {
		for col := 0; col < bg.Width; col++ {
			switch v := bg.At(col, row); v {
			case config.TileEmpty:
			case config.TileStarSmall, config.TileStarLarge:
				stars++
				if col > 7 || row > 7 {
					t.Errorf("star outside the visible area at %d, %d", col, row)
				}
			default:
				t.Errorf("unexpected background tile %d", v)
			}
		}
	}
	if stars == 0 || stars > 8 {
		t.Errorf("%d stars", stars)
	}
}

func TestWithMuted(t *testing.T) {
	r := &recorder{}
	New(&keys{}, r, testSounds, WithMuted(true), WithSeed(3))
	if !r.muted {
		t.Error("WithMuted(true) did not mute the output")
	}
}

func TestBombEndsGame(t *testing.T) {
	g, _, _ := newTestGame()
	for i := 0; i < 100 && g.Mode() == config.ModePlay; i++ {
		g.Update()
	}
	if !g.Ship().Dead() {
		t.Fatal("idle ship under the saucer survived")
	}
	// 第 14 帧投弹，第 24 帧命中，再爆炸 4 帧
	if g.Frames() != 28 {
		t.Errorf("game ended after %d frames, want 28", g.Frames())
	}
	if g.Outcome() != OutcomeLost || g.Mode() != config.ModeOver {
		t.Errorf("outcome = %s mode = %d", g.Outcome(), g.Mode())
	}
	g.Update()
	if g.Text() != LostText {
		t.Errorf("text = %q, want %q", g.Text(), LostText)
	}
}

func TestAliensLandWithoutBombs(t *testing.T) {
	g, _, _ := newTestGame()
	for i := 0; i < 5000 && g.Mode() == config.ModePlay; i++ {
		g.Update()
		g.Bomb().Hide()
	}
	if g.Mode() != config.ModeOver {
		t.Fatal("game never ended")
	}
	if g.Aliens().Y() != config.AlienDepth {
		t.Errorf("aliens stopped at y = %d", g.Aliens().Y())
	}
	if g.Outcome() != OutcomeLost || g.Ship().Dead() {
		t.Errorf("outcome = %s dead = %v", g.Outcome(), g.Ship().Dead())
	}
}

func clearAliens(a *Aliens) {
	for row := 0; row < config.AlienRows; row++ {
		for col := 0; col < config.AlienCols; col++ {
			a.Clear(col, row)
		}
	}
	a.dirty = true
}

func TestOutcomePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  Outcome
	}{
		{"running", func(g *Game) {}, OutcomeNone},
		{"all aliens gone", func(g *Game) { clearAliens(g.aliens) }, OutcomeWon},
		{"ship dead", func(g *Game) { g.ship.Kill() }, OutcomeLost},
		{"aliens landed", func(g *Game) { g.aliens.grid.Y = config.AlienDepth }, OutcomeLost},
		{"cleared but dead", func(g *Game) {
			clearAliens(g.aliens)
			g.ship.Kill()
		}, OutcomeLost},
		{"cleared but landed", func(g *Game) {
			clearAliens(g.aliens)
			g.aliens.grid.Y = config.AlienDepth + 3
		}, OutcomeLost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGame()
			tt.setup(g)
			g.Update()
			if g.Outcome() != tt.want {
				t.Errorf("outcome = %s, want %s", g.Outcome(), tt.want)
			}
			if tt.want != OutcomeNone && g.Mode() != config.ModeOver {
				t.Errorf("mode = %d, want over", g.Mode())
			}
		})
	}
}

func TestWinMessage(t *testing.T) {
	g, _, _ := newTestGame()
	clearAliens(g.aliens)
	g.Update()
	g.Update()
	if g.Text() != WonText {
		t.Errorf("text = %q, want %q", g.Text(), WonText)
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g, k, _ := newTestGame()
	k.pressed = controls.ButtonO
	g.Update()
	if g.Mode() != config.ModePause {
		t.Fatalf("mode = %d, want pause", g.Mode())
	}
	frames := g.Frames()
	saucerX := g.Saucer().X()

	script := []struct {
		pressed controls.Buttons
		text    string
		mode    config.Mode
	}{
		{controls.ButtonO, "", config.ModePause},
		{0, PauseText, config.ModePause},
		{0, PauseText, config.ModePause},
		{controls.ButtonO, "", config.ModePause},
		{0, "", config.ModePlay},
	}
	for i, s := range script {
		k.pressed = s.pressed
		g.Update()
		if g.Text() != s.text || g.Mode() != s.mode {
			t.Fatalf("step %d: text = %q mode = %d", i, g.Text(), g.Mode())
		}
	}
	if g.Frames() != frames || g.Saucer().X() != saucerX {
		t.Error("entities moved while paused")
	}
	g.Update()
	if g.Frames() != frames+1 {
		t.Error("game did not resume")
	}
}

func TestGameOverThenDone(t *testing.T) {
	g, k, _ := newTestGame()
	g.Ship().Kill()
	g.Update()
	if !g.Waiting() {
		t.Fatal("game over screen not shown")
	}
	for _, p := range []controls.Buttons{0, controls.ButtonO, 0} {
		k.pressed = p
		g.Update()
	}
	if !g.Done() {
		t.Errorf("mode = %d, want done", g.Mode())
	}
	frames := g.Frames()
	g.Update()
	if g.Frames() != frames {
		t.Error("finished game kept running")
	}
}

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

func TestAwaitOverlay(t *testing.T) {
	pause := controls.ButtonO
	src := &script{seq: []controls.Buttons{pause, pause, 0, 0, pause, pause, 0}}
	g := New(src, controls.Silent{}, testSounds, WithSeed(1))
	g.overlay.Start(PauseText)
	g.mode = config.ModePause

	var texts []string
	err := g.AwaitOverlay(context.Background(), time.Millisecond, func() {
		texts = append(texts, g.Text())
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Mode() != config.ModePlay {
		t.Errorf("mode = %d, want play", g.Mode())
	}
	if src.polls != 7 {
		t.Errorf("polled %d times, want 7", src.polls)
	}
	want := []string{PauseText, "", ""}
	if len(texts) != len(want) {
		t.Fatalf("redraws = %q", texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("redraw %d: %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestAwaitOverlayCanceled(t *testing.T) {
	src := &script{seq: []controls.Buttons{controls.ButtonO}}
	g := New(src, controls.Silent{}, testSounds, WithSeed(1))
	g.Ship().Kill()
	g.Update()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := g.AwaitOverlay(ctx, time.Millisecond, nil); err == nil {
		t.Error("AwaitOverlay returned nil while the button stayed held")
	}
	if !g.Waiting() {
		t.Error("overlay ended without a release")
	}
}
