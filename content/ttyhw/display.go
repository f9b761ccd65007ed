package ttyhw

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Display 每个字符格用上半块字符显示上下两个像素
type Display struct {
	screen tcell.Screen
}

func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

func (d *Display) Show(frame *image.RGBA) {
	b := frame.Bounds()
	w, h := d.screen.Size()
	ox := max(0, (w-b.Dx())/2)
	oy := max(0, (h-b.Dy()/2)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := frame.RGBAAt(x, y)
			bottom := frame.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			d.screen.SetContent(ox+x-b.Min.X, oy+(y-b.Min.Y)/2, '▀', nil, style)
		}
	}
	d.screen.Show()
}
