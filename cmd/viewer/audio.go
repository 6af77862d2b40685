//go:build audio

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// newChime opens the speaker and returns a short rising two-tone fanfare.
func newChime() (func(), func(), error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, nil, err
	}

	play := func() {
		low, err := generators.SineTone(sampleRate, 660)
		if err != nil {
			return
		}
		high, err := generators.SineTone(sampleRate, 880)
		if err != nil {
			return
		}
		speaker.Play(beep.Seq(
			beep.Take(sampleRate.N(120*time.Millisecond), low),
			beep.Take(sampleRate.N(240*time.Millisecond), high),
		))
	}
	return play, speaker.Close, nil
}
