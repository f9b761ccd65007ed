package ttyhw

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"pew-invaders/content/config"
	"pew-invaders/content/controls"
)

const sampleRate = beep.SampleRate(config.SampleRate)

type Sample struct {
	name string
	buf  *beep.Buffer
}

func (s *Sample) Name() string {
	return s.name
}

// Load 解码整个 WAV 文件到内存，采样率不同时重新采样
func Load(name string, data []byte) (*Sample, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ttyhw: decode %s: %w", name, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return &Sample{name: name, buf: buf}, nil
}

// Audio 通过 beep 的扬声器输出
type Audio struct {
	mu    sync.Mutex
	muted bool
}

func NewAudio() (*Audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("ttyhw: speaker: %w", err)
	}
	return &Audio{muted: true}, nil
}

func (a *Audio) Play(s controls.Sample, loop bool) {
	a.mu.Lock()
	muted := a.muted
	a.mu.Unlock()
	if muted {
		return
	}
	sample, ok := s.(*Sample)
	if !ok {
		return
	}
	speaker.Clear()
	st := sample.buf.Streamer(0, sample.buf.Len())
	if loop {
		speaker.Play(beep.Loop(-1, st))
		return
	}
	speaker.Play(st)
}

func (a *Audio) Stop() {
	speaker.Clear()
}

func (a *Audio) Mute(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
}

func (a *Audio) Close() {
	speaker.Clear()
	speaker.Close()
}
