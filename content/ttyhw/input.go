package ttyhw

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"pew-invaders/content/clock"
	"pew-invaders/content/controls"
)

// Input 终端只有按下和自动重复的事件，没有松开事件，
// 按键在最后一次事件之后的 hold 时间内视为按住
type Input struct {
	mu    sync.Mutex
	clock clock.Clock
	hold  time.Duration
	seen  [8]time.Time
}

func NewInput(c clock.Clock, hold time.Duration) *Input {
	return &Input{clock: c, hold: hold}
}

func keyButton(key tcell.Key, r rune) controls.Buttons {
	switch key {
	case tcell.KeyLeft:
		return controls.ButtonLeft
	case tcell.KeyRight:
		return controls.ButtonRight
	case tcell.KeyUp:
		return controls.ButtonUp
	case tcell.KeyDown:
		return controls.ButtonDown
	case tcell.KeyEnter:
		return controls.ButtonStart
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return controls.ButtonSelect
	case tcell.KeyRune:
		switch r {
		case 'x', 'X', ' ':
			return controls.ButtonX
		case 'o', 'O', 'p', 'P':
			return controls.ButtonO
		case 'a', 'A':
			return controls.ButtonLeft
		case 'd', 'D':
			return controls.ButtonRight
		}
	}
	return 0
}

// Key 记录一次按键事件，返回对应的逻辑按键
func (in *Input) Key(key tcell.Key, r rune) controls.Buttons {
	b := keyButton(key, r)
	if b == 0 {
		return 0
	}
	now := in.clock.Now()
	in.mu.Lock()
	defer in.mu.Unlock()
	for i := range in.seen {
		if b&(1<<i) != 0 {
			in.seen[i] = now
		}
	}
	return b
}

func (in *Input) Pressed() controls.Buttons {
	now := in.clock.Now()
	in.mu.Lock()
	defer in.mu.Unlock()
	var pressed controls.Buttons
	for i, t := range in.seen {
		if !t.IsZero() && now.Sub(t) < in.hold {
			pressed |= 1 << i
		}
	}
	return pressed
}

// Pump 在单独的 goroutine 中读取终端事件，直到屏幕关闭或按下 Esc/Ctrl-C
func (in *Input) Pump(screen tcell.Screen, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				quit()
				return
			}
			in.Key(ev.Key(), ev.Rune())
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
