package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// beeper provides short tone feedback for seeks and toggles.
// Initialization failure is non-fatal; the viewer runs silent
type beeper struct {
	ready bool
}

func newBeeper() *beeper {
	b := &beeper{}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return b
	}
	b.ready = true
	return b
}

// tone plays a sine blip of the given frequency and duration
func (b *beeper) tone(freq float64, d time.Duration) {
	if !b.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(d), sine))
}

func (b *beeper) seekBlip() {
	b.tone(880, 50*time.Millisecond)
}

func (b *beeper) toggleTick() {
	b.tone(660, 30*time.Millisecond)
}
