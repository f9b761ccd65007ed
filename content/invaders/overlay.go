package invaders

import "pew-invaders/content/controls"

type overlayPhase int

const (
	phaseIdle    overlayPhase = iota
	phaseRelease              // 等待松开暂停键，然后显示文字
	phasePress                // 等待按下暂停键，然后清除文字
	phaseFinal                // 等待再次松开
)

// Overlay 暂停和结束画面共用的三段式按键流程，每次读取按键后推进一次
type Overlay struct {
	phase   overlayPhase
	message string
	text    string
}

func (o *Overlay) Start(message string) {
	o.phase = phaseRelease
	o.message = message
	o.text = ""
}

func (o *Overlay) Active() bool {
	return o.phase != phaseIdle
}

// Text 当前应该显示的文字
func (o *Overlay) Text() string {
	return o.text
}

// Step 返回 true 表示流程结束
func (o *Overlay) Step(pressed controls.Buttons) bool {
	held := pressed.Has(controls.ButtonO)
	for {
		switch o.phase {
		case phaseRelease:
			if held {
				return false
			}
			o.text = o.message
			o.phase = phasePress
		case phasePress:
			if !held {
				return false
			}
			o.text = ""
			o.phase = phaseFinal
		case phaseFinal:
			if held {
				return false
			}
			o.phase = phaseIdle
			return true
		default:
			return true
		}
	}
}
