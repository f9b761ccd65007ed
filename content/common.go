package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/ebitenhw"
	raudio "pew-invaders/resources/audio"
)

var audioContext *audio.Context

// loadAudio 音效采样率与 Context 一致，不需要重新采样
func loadAudio() (*ebitenhw.Audio, controls.Sounds) {
	if audioContext == nil {
		audioContext = audio.NewContext(config.SampleRate)
	}
	out := ebitenhw.NewAudio(audioContext, nil)
	pew, err := out.Load("pew", raudio.Pew_wav)
	if err != nil {
		log.Fatal(err)
	}
	boom, err := out.Load("boom", raudio.Boom_wav)
	if err != nil {
		log.Fatal(err)
	}
	return out, controls.Sounds{Pew: pew, Boom: boom}
}
