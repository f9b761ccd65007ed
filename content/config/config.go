package config

import "time"

type Mode int

const (
	ModePlay Mode = iota
	ModePause
	ModeOver
	ModeDone
)

const (
	ScreenWidth  = 128
	ScreenHeight = 128
	TileSize     = 16
	TileCount    = 16
	FPS          = 12
	WindowScale  = 4
	TextColumns  = 9
	SampleRate   = 22050
)

// 玩家和外星人的活动范围
const (
	ShipMinX   = 0
	ShipMaxX   = ScreenWidth - TileSize // 112
	ShipSpeed  = 4
	SaucerMinX = -TileSize
	SaucerMaxX = ScreenWidth
	FieldTop   = -32 // 导弹飞出屏幕顶部的位置
	FieldEnd   = ScreenHeight
	AlienCols  = 7
	AlienRows  = 3
	AlienDepth = 80  // 外星人下降到此高度时游戏失败
	AlienSpan  = 112 // 左右边距之和达到此值时外星人全灭
	BoomFrames = 4
)

// 图块编号
const (
	TileEmpty     = 0
	TileStarSmall = 1
	TileStarLarge = 2
	TileShip      = 3
	TileShipBank  = 4
	TileBomb      = 5
	TileAlienHit  = 6
	TileAlienA    = 7
	TileAlienB    = 8
	TileSaucer    = 9
	TileMissile   = 12 // 威力为 p 的导弹使用 TileMissile - p
	TileBoom      = 12 // 爆炸动画从 TileBoom + 1 开始
	Transparent   = 15
)

const (
	AxisCenter   = 32767
	AxisDeadZone = 15000
)

// Settings 运行时可调整的参数
type Settings struct {
	FPS          int
	WindowScale  int
	PollInterval time.Duration // 暂停画面轮询按键的间隔
	HoldWindow   time.Duration // 终端没有按键松开事件，按键在此时间内视为按住
	Seed         int64         // 0 表示使用当前时间
	Muted        bool
}

func Default() Settings {
	return Settings{
		FPS:          FPS,
		WindowScale:  WindowScale,
		PollInterval: 20 * time.Millisecond,
		HoldWindow:   250 * time.Millisecond,
	}
}
