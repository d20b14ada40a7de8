package main

import (
	"image"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite sheets hold frames side by side at a fixed cell width.
const (
	horseRunFrames = 6
	horseFlyFrames = 4
)

var (
	horseRunSheet *ebiten.Image
	horseFlySheet *ebiten.Image
	bgMeadow      *ebiten.Image
	bgSky         *ebiten.Image
	obstacleImgs  [3]*ebiten.Image // indexed by game.ObstacleKind
	dustImg       *ebiten.Image
	myFont        font.Face

	sfxGameOverData []byte
	sfxTakeoffData  []byte
)

func loadAssets() {
	horseRunSheet = loadImage("assets/horse_run.png")
	horseFlySheet = loadImage("assets/horse_fly.png")
	bgMeadow = loadImage("assets/bg_meadow.png")
	bgSky = loadImage("assets/bg_sky.png")
	obstacleImgs[0] = loadImage("assets/balloon.png")
	obstacleImgs[1] = loadImage("assets/bird.png")
	obstacleImgs[2] = loadImage("assets/blimp.png")
	dustImg = loadImage("assets/dust.png")
	myFont = loadFont()

	sfxGameOverData = loadBytes("assets/sounds/gameover.mp3")
	sfxTakeoffData = loadBytes("assets/sounds/takeoff.mp3")
}

func loadImage(path string) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return img
}

func loadBytes(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return data
}

func loadFont() font.Face {
	ttfBytes, err := os.ReadFile("assets/font.ttf")
	if err != nil {
		log.Fatal(err)
	}
	tt, err := opentype.Parse(ttfBytes)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    36,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return face
}

// sheetFrame cuts frame i out of a horizontal sprite sheet.
func sheetFrame(sheet *ebiten.Image, i, frames int) *ebiten.Image {
	w := sheet.Bounds().Dx() / frames
	h := sheet.Bounds().Dy()
	sx := i * w
	return sheet.SubImage(image.Rect(sx, 0, sx+w, h)).(*ebiten.Image)
}
