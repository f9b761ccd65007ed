package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"pew-invaders/content/clock"
	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/render"
	"pew-invaders/content/session"
	"pew-invaders/content/ttyhw"
	raudio "pew-invaders/resources/audio"
	"pew-invaders/resources/images"
)

func main() {
	settings := config.Default()

	sheet, err := render.LoadSheet(images.Tiles_png)
	if err != nil {
		log.Fatal(err)
	}
	pew, err := ttyhw.Load("pew", raudio.Pew_wav)
	if err != nil {
		log.Fatal(err)
	}
	boom, err := ttyhw.Load("boom", raudio.Boom_wav)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.HideCursor()
	screen.Clear()

	// tcell 占用终端期间日志先写到内存里
	var logs bytes.Buffer
	log.SetOutput(&logs)

	var out controls.Audio = controls.Silent{}
	if a, err := ttyhw.NewAudio(); err != nil {
		log.Printf("[Audio] disabled: %v", err)
	} else {
		defer a.Close()
		out = a
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := clock.Monotonic{}
	input := ttyhw.NewInput(c, settings.HoldWindow)
	go input.Pump(screen, cancel)

	r := &session.Runner{
		Input:    input,
		Audio:    out,
		Sounds:   controls.Sounds{Pew: pew, Boom: boom},
		Display:  ttyhw.NewDisplay(screen),
		Renderer: render.New(sheet),
		Clock:    c,
		Settings: settings,
	}
	err = r.Run(ctx)

	screen.Fini()
	log.SetOutput(os.Stderr)
	os.Stderr.Write(logs.Bytes())
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
