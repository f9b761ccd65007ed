package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pew-invaders/content/config"
	"pew-invaders/content/tile"
)

// Scene 渲染需要的全部内容
type Scene interface {
	Background() *tile.Grid
	Sprites() []*tile.Grid
	Text() string
}

// Renderer 把背景、精灵和文字合成到一帧 128x128 的图像上
type Renderer struct {
	sheet *Sheet
	frame *image.RGBA
	face  *basicfont.Face
}

func New(sheet *Sheet) *Renderer {
	return &Renderer{
		sheet: sheet,
		frame: image.NewRGBA(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight)),
		face:  basicfont.Face7x13,
	}
}

// Render 返回的图像在下一次调用时会被覆盖
func (r *Renderer) Render(s Scene) *image.RGBA {
	if bg := s.Background(); bg != nil {
		r.drawGrid(bg, r.sheet.space, true)
	}
	for _, g := range s.Sprites() {
		r.drawGrid(g, r.sheet.sprite, false)
	}
	r.drawText(s.Text())
	return r.frame
}

func (r *Renderer) drawGrid(g *tile.Grid, palette []color.RGBA, opaque bool) {
	if g.Hidden {
		return
	}
	const size = config.TileSize
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			t := g.At(col, row)
			dx := col
			if g.FlipX {
				dx = g.Width - 1 - col
			}
			for py := 0; py < size; py++ {
				y := g.Y + row*size + py
				if y < 0 || y >= config.ScreenHeight {
					continue
				}
				for px := 0; px < size; px++ {
					sx := px
					if g.FlipX {
						sx = size - 1 - px
					}
					idx := r.sheet.index(t, sx, py)
					if !opaque && int(idx) == config.Transparent {
						continue
					}
					x := g.X + dx*size + px
					if x < 0 || x >= config.ScreenWidth {
						continue
					}
					r.frame.SetRGBA(x, y, palette[idx&0x0f])
				}
			}
		}
	}
}

// TextOrigin 文字区域的左上角，9 个字符居中
func (r *Renderer) TextOrigin() image.Point {
	w := r.face.Advance * config.TextColumns
	h := r.face.Metrics().Height.Ceil()
	return image.Pt((config.ScreenWidth-w)/2, (config.ScreenHeight-h)/2)
}

func (r *Renderer) drawText(s string) {
	if s == "" {
		return
	}
	if len(s) > config.TextColumns {
		s = s[:config.TextColumns]
	}
	o := r.TextOrigin()
	d := &font.Drawer{
		Dst:  r.frame,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(o.X, o.Y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
