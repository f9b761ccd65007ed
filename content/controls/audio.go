package controls

// Sample 一段完整读入内存的音效，具体内容由各个音频实现解释
type Sample interface {
	Name() string
}

// Audio 单声道音效输出
type Audio interface {
	// Play 静音时不做任何事，否则停止当前音效后播放新的音效
	Play(s Sample, loop bool)
	Stop()
	Mute(muted bool)
}

// MuteLine 有些设备有控制功放的引脚
type MuteLine interface {
	Set(on bool)
}

// Silent 没有音频设备时使用
type Silent struct{}

func (Silent) Play(Sample, bool) {}
func (Silent) Stop()             {}
func (Silent) Mute(bool)         {}

// Sounds 游戏用到的两个音效
type Sounds struct {
	Pew  Sample
	Boom Sample
}
