package invaders

import (
	"context"
	"log"
	"math/rand"
	"time"

	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/tile"
)

const (
	PauseText = " Pause..."
	LostText  = "Game Over"
	WonText   = "You won!"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

func (o Outcome) Message() string {
	switch o {
	case OutcomeLost:
		return LostText
	case OutcomeWon:
		return WonText
	}
	return ""
}

// Game 一局游戏，结束后由调用方重新创建
type Game struct {
	mode    config.Mode
	input   controls.Source
	audio   controls.Audio
	rng     *rand.Rand
	muted   bool
	frames  int
	outcome Outcome
	overlay Overlay

	space    *tile.Grid
	ship     *Ship
	aliens   *Aliens
	saucer   *Saucer
	bomb     *Bomb
	missiles []*Missile

	pauseRequested bool
}

func New(input controls.Source, audio controls.Audio, sounds controls.Sounds, options ...Option) *Game {
	g := &Game{
		mode:  config.ModePlay,
		input: input,
		audio: audio,
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.space = starfield(g.rng)
	g.ship = newShip(input)
	g.aliens = newAliens()
	g.bomb = newBomb(g.ship, audio, sounds)
	g.saucer = newSaucer(g.ship, g.bomb)
	for power := 0; power < 3; power++ {
		g.missiles = append(g.missiles, newMissile(power, g.aliens, audio, sounds))
	}
	g.ship.missiles = g.missiles

	g.audio.Mute(g.muted)
	return g
}

// starfield 8 颗随机的星星，只是装饰
func starfield(rng *rand.Rand) *tile.Grid {
	space := tile.NewGrid(config.TileCount, config.TileCount, config.TileEmpty)
	for i := 0; i < 8; i++ {
		v := config.TileStarSmall + rng.Intn(2)
		space.Set(rng.Intn(8), rng.Intn(8), v)
	}
	return space
}

// Running 方阵没有全灭，没有下降到底，飞船没有被炸毁
func (g *Game) Running() bool {
	left, right := g.aliens.Margins()
	return left+right < config.AlienSpan &&
		g.aliens.Y() < config.AlienDepth &&
		!g.ship.Dead()
}

func (g *Game) result() Outcome {
	if g.Running() {
		return OutcomeNone
	}
	if g.ship.Dead() || g.aliens.Y() >= config.AlienDepth {
		return OutcomeLost
	}
	return OutcomeWon
}

// Update 推进一帧
func (g *Game) Update() {
	switch g.mode {
	case config.ModePlay:
		g.play()
	case config.ModePause, config.ModeOver:
		g.stepOverlay(g.input.Pressed())
	}
}

func (g *Game) play() {
	// 更新顺序：飞船，外星人，飞碟，炸弹，导弹
	g.pauseRequested = g.ship.Update()
	g.aliens.Update()
	g.saucer.Update()
	g.bomb.Update()
	for _, m := range g.missiles {
		m.Update()
	}
	if g.aliens.Dirty() {
		g.aliens.Reform()
	}
	g.frames++

	if !g.Running() {
		g.outcome = g.result()
		log.Printf("[Game] %s after %d frames", g.outcome, g.frames)
		g.overlay.Start(g.outcome.Message())
		g.mode = config.ModeOver
		return
	}
	if g.pauseRequested {
		g.overlay.Start(PauseText)
		g.mode = config.ModePause
	}
}

func (g *Game) stepOverlay(pressed controls.Buttons) {
	if !g.overlay.Step(pressed) {
		return
	}
	if g.mode == config.ModePause {
		g.mode = config.ModePlay
	} else {
		g.mode = config.ModeDone
	}
}

// AwaitOverlay 阻塞直到暂停或结束画面的按键流程完成，每完成一段调用一次 redraw
func (g *Game) AwaitOverlay(ctx context.Context, interval time.Duration, redraw func()) error {
	for g.mode == config.ModePause || g.mode == config.ModeOver {
		phase := g.overlay.phase
		err := controls.WaitUntil(ctx, g.input, interval, func(b controls.Buttons) bool {
			g.stepOverlay(b)
			return g.overlay.phase != phase
		})
		if err != nil {
			return err
		}
		if redraw != nil {
			redraw()
		}
	}
	return nil
}

func (g *Game) Mode() config.Mode { return g.mode }
func (g *Game) Done() bool        { return g.mode == config.ModeDone }
func (g *Game) Outcome() Outcome  { return g.outcome }
func (g *Game) Frames() int       { return g.frames }

// Waiting 正在显示暂停或结束画面
func (g *Game) Waiting() bool {
	return g.mode == config.ModePause || g.mode == config.ModeOver
}

func (g *Game) Text() string {
	return g.overlay.Text()
}

func (g *Game) Background() *tile.Grid {
	return g.space
}

// Sprites 按绘制顺序返回所有精灵
func (g *Game) Sprites() []*tile.Grid {
	grids := []*tile.Grid{g.ship.Grid(), g.aliens.Grid(), g.saucer.Grid(), g.bomb.Grid()}
	for _, m := range g.missiles {
		grids = append(grids, m.Grid())
	}
	return grids
}

func (g *Game) Ship() *Ship          { return g.ship }
func (g *Game) Aliens() *Aliens      { return g.aliens }
func (g *Game) Saucer() *Saucer      { return g.saucer }
func (g *Game) Bomb() *Bomb          { return g.bomb }
func (g *Game) Missiles() []*Missile { return g.missiles }
