package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"gallop/internal/game"
)

func main() {
	debug := flag.Bool("debug", false, "draw signal meters and write a log file")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Optional .env with calibration overrides; absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env calibration overrides")
	}
	cal := game.DefaultCalibration()
	cal.ApplyEnv()

	loadAssets()
	loadMusic()

	app := newApp(*debug, cal)
	app.acquireMic()
	defer app.Close()

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Gallop")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
