package ebitenhw

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"pew-invaders/content/controls"
)

// Sample 解码后的 PCM 数据，播放器在第一次使用时创建
type Sample struct {
	name   string
	pcm    []byte
	player *audio.Player
	loop   *audio.Player
}

func (s *Sample) Name() string {
	return s.name
}

type Audio struct {
	ctx     *audio.Context
	line    controls.MuteLine
	muted   bool
	current *audio.Player
}

// NewAudio line 可以为 nil，初始状态为静音
func NewAudio(ctx *audio.Context, line controls.MuteLine) *Audio {
	a := &Audio{ctx: ctx, line: line}
	a.Mute(true)
	return a
}

// Load 整个读入 WAV 文件，采样率需要与 Context 一致
func (a *Audio) Load(name string, data []byte) (*Sample, error) {
	s, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ebitenhw: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("ebitenhw: read %s: %w", name, err)
	}
	return &Sample{name: name, pcm: pcm}, nil
}

func (a *Audio) Play(s controls.Sample, loop bool) {
	if a.muted {
		return
	}
	a.Stop()
	sample, ok := s.(*Sample)
	if !ok {
		return
	}
	p, err := a.player(sample, loop)
	if err != nil {
		log.Printf("[Audio] %s: %v", sample.name, err)
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[Audio] rewind %s: %v", sample.name, err)
		return
	}
	p.Play()
	a.current = p
}

func (a *Audio) player(s *Sample, loop bool) (*audio.Player, error) {
	if !loop {
		if s.player == nil {
			s.player = a.ctx.NewPlayerFromBytes(s.pcm)
		}
		return s.player, nil
	}
	if s.loop == nil {
		l := audio.NewInfiniteLoop(bytes.NewReader(s.pcm), int64(len(s.pcm)))
		p, err := a.ctx.NewPlayer(l)
		if err != nil {
			return nil, err
		}
		s.loop = p
	}
	return s.loop, nil
}

func (a *Audio) Stop() {
	if a.current != nil {
		a.current.Pause()
		a.current = nil
	}
}

func (a *Audio) Mute(muted bool) {
	a.muted = muted
	if a.line != nil {
		a.line.Set(!muted)
	}
}
