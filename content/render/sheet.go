package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"

	"pew-invaders/content/config"
)

var ErrNotPaletted = errors.New("render: tile sheet is not a paletted image")

// Sheet 16 个 16x16 图块竖向排列，共用一套 16 色调色板
type Sheet struct {
	img    *image.Paletted
	sprite []color.RGBA // 15 号为透明色
	space  []color.RGBA // 背景没有透明色，15 号用 0 号颜色代替
}

func LoadSheet(data []byte) (*Sheet, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode tile sheet: %w", err)
	}
	p, ok := img.(*image.Paletted)
	if !ok {
		return nil, ErrNotPaletted
	}
	return NewSheet(p)
}

func NewSheet(img *image.Paletted) (*Sheet, error) {
	b := img.Bounds()
	if b.Dx() != config.TileSize || b.Dy() != config.TileSize*config.TileCount {
		return nil, fmt.Errorf("render: tile sheet is %dx%d, want %dx%d",
			b.Dx(), b.Dy(), config.TileSize, config.TileSize*config.TileCount)
	}
	s := &Sheet{
		img:    img,
		sprite: make([]color.RGBA, config.TileCount),
		space:  make([]color.RGBA, config.TileCount),
	}
	for i := 0; i < config.TileCount && i < len(img.Palette); i++ {
		c := color.RGBAModel.Convert(img.Palette[i]).(color.RGBA)
		s.sprite[i] = c
		s.space[i] = c
	}
	s.sprite[config.Transparent] = color.RGBA{}
	s.space[config.Transparent] = s.space[0]
	return s, nil
}

// index 返回图块 t 中 (x, y) 像素的调色板编号
func (s *Sheet) index(t, x, y int) uint8 {
	b := s.img.Bounds()
	return s.img.ColorIndexAt(b.Min.X+x, b.Min.Y+t*config.TileSize+y)
}
