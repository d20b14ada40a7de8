package main

import (
	"bytes"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const audioSampleRate = 44100

var (
	audioContext *audio.Context
	musicPlayer  *audio.Player
)

func loadMusic() {
	audioContext = audio.NewContext(audioSampleRate)

	data, err := os.ReadFile("assets/sounds/bgm.mp3")
	if err != nil {
		log.Fatal(err)
	}

	stream, err := mp3.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	musicPlayer, err = audio.NewPlayer(audioContext, loop)
	if err != nil {
		log.Fatal(err)
	}
	musicPlayer.Play()
}

func playSFX(data []byte) *audio.Player {
	stream, err := mp3.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		log.Println("Error decoding sfx:", err)
		return nil
	}

	sfxPlayer, err := audio.NewPlayer(audioContext, stream)
	if err != nil {
		log.Println("Error creating audio player:", err)
		return nil
	}

	sfxPlayer.Play()
	return sfxPlayer
}
