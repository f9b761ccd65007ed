package controls

import (
	"math"

	"pew-invaders/content/config"
)

// Buttons 逻辑按键的位掩码，与具体硬件无关
type Buttons uint8

const (
	ButtonX Buttons = 1 << iota // 开火
	ButtonO                     // 暂停
	ButtonStart
	ButtonSelect
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonUp
)

func (b Buttons) Has(mask Buttons) bool {
	return b&mask != 0
}

// Source 每个硬件目标各自实现一个 Source
type Source interface {
	Pressed() Buttons
}

// SourceFunc 让普通函数满足 Source
type SourceFunc func() Buttons

func (f SourceFunc) Pressed() Buttons {
	return f()
}

// ApplyDeadZone 根据两个 16 位摇杆读数补充方向键，偏移量未超过死区时忽略
func ApplyDeadZone(pressed Buttons, rawX, rawY uint16) Buttons {
	x := int(rawX) - config.AxisCenter
	if x < -config.AxisDeadZone {
		pressed |= ButtonLeft
	} else if x > config.AxisDeadZone {
		pressed |= ButtonRight
	}
	y := int(rawY) - config.AxisCenter
	if y < -config.AxisDeadZone {
		pressed |= ButtonUp
	} else if y > config.AxisDeadZone {
		pressed |= ButtonDown
	}
	return pressed
}

// AxisToRaw 把 [-1, 1] 的摇杆值映射到 16 位读数，0 对应中心 32767
func AxisToRaw(v float64) uint16 {
	if math.IsNaN(v) {
		return config.AxisCenter
	}
	v = math.Max(-1, math.Min(1, v))
	return uint16(math.Round(float64(config.AxisCenter) + v*float64(config.AxisCenter)))
}
