package ebitenhw

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pew-invaders/content/controls"
)

var keymap = []struct {
	key    ebiten.Key
	button controls.Buttons
}{
	{ebiten.KeyX, controls.ButtonX},
	{ebiten.KeySpace, controls.ButtonX},
	{ebiten.KeyO, controls.ButtonO},
	{ebiten.KeyP, controls.ButtonO},
	{ebiten.KeyEnter, controls.ButtonStart},
	{ebiten.KeyBackspace, controls.ButtonSelect},
	{ebiten.KeyArrowDown, controls.ButtonDown},
	{ebiten.KeyArrowLeft, controls.ButtonLeft},
	{ebiten.KeyArrowRight, controls.ButtonRight},
	{ebiten.KeyArrowUp, controls.ButtonUp},
}

var padmap = []struct {
	button ebiten.StandardGamepadButton
	mask   controls.Buttons
}{
	{ebiten.StandardGamepadButtonRightBottom, controls.ButtonX},
	{ebiten.StandardGamepadButtonRightRight, controls.ButtonO},
	{ebiten.StandardGamepadButtonCenterRight, controls.ButtonStart},
	{ebiten.StandardGamepadButtonCenterLeft, controls.ButtonSelect},
	{ebiten.StandardGamepadButtonLeftBottom, controls.ButtonDown},
	{ebiten.StandardGamepadButtonLeftLeft, controls.ButtonLeft},
	{ebiten.StandardGamepadButtonLeftRight, controls.ButtonRight},
	{ebiten.StandardGamepadButtonLeftTop, controls.ButtonUp},
}

// Input 键盘加上所有标准布局的手柄，左摇杆经过死区处理后当作方向键
type Input struct {
	ids []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Pressed() controls.Buttons {
	var pressed controls.Buttons
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			pressed |= k.button
		}
	}
	in.ids = ebiten.AppendGamepadIDs(in.ids[:0])
	for _, id := range in.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range padmap {
			if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
				pressed |= b.mask
			}
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		pressed = controls.ApplyDeadZone(pressed, controls.AxisToRaw(x), controls.AxisToRaw(y))
	}
	return pressed
}
