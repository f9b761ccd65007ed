// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pew-invaders/content/config"
	"pew-invaders/content/controls"
	"pew-invaders/content/ebitenhw"
	"pew-invaders/content/invaders"
	"pew-invaders/content/render"
)

// App 把 invaders.Game 接到 ebiten 的主循环上，帧率由 TPS 控制
type App struct {
	settings config.Settings
	input    controls.Source
	audio    controls.Audio
	sounds   controls.Sounds
	renderer *render.Renderer
	game     *invaders.Game
	screen   *ebiten.Image
	sessions int
}

func (a *App) newGame() {
	a.sessions++
	log.Printf("[Game] new session %d", a.sessions)
	a.game = invaders.New(a.input, a.audio, a.sounds,
		invaders.WithSeed(a.settings.Seed),
		invaders.WithMuted(a.settings.Muted),
	)
}

func (a *App) Update() error {
	// 结束画面走完之后重新开始
	if a.game.Done() {
		a.newGame()
	}
	a.game.Update()
	return nil
}

// Draw 软件合成一帧，再整体拷贝到屏幕上
func (a *App) Draw(screen *ebiten.Image) {
	frame := a.renderer.Render(a.game)
	a.screen.WritePixels(frame.Pix)
	screen.DrawImage(a.screen, nil)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.Default()
	a := &App{
		settings: settings,
		input:    ebitenhw.NewInput(),
		renderer: render.New(loadSheet()),
		screen:   ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	a.audio, a.sounds = loadAudio()
	a.newGame()

	ebiten.SetTPS(settings.FPS)
	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("Pew Invaders")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
