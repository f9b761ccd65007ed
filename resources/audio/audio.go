package audio

import (
	_ "embed"
)

var (
	//go:embed pew.wav
	Pew_wav []byte

	//go:embed boom.wav
	Boom_wav []byte
)
