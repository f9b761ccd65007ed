package main

import (
	"log"

	"pew-invaders/content/render"
	"pew-invaders/resources/images"
)

func loadSheet() *render.Sheet {
	sheet, err := render.LoadSheet(images.Tiles_png)
	if err != nil {
		log.Fatal(err)
	}
	return sheet
}
