package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from start
// to end over its duration.
type oscillator struct {
	start    float64
	end      float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep creates an oscillator sliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    from,
		end:      to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// NewOscillator creates an oscillator with a fixed frequency.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades a stream in over attack and out over release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone plays a pure sine for d. It falls back to the local oscillator if
// the generator rejects the frequency.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), s)
}

// Sound effect generators

// FlapSound is a short upward chirp.
func FlapSound(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	chirp := NewSweep(300, 700, d, WaveSquare, rate)
	return newVolume(NewEnvelope(chirp, d, 5*time.Millisecond, 30*time.Millisecond, rate), 0.15)
}

// ScoreSound is a two-note ding.
func ScoreSound(rate beep.SampleRate) beep.Streamer {
	note := 60 * time.Millisecond
	ding := beep.Seq(
		NewEnvelope(tone(988, note, rate), note, 2*time.Millisecond, 20*time.Millisecond, rate),
		NewEnvelope(tone(1319, 2*note, rate), 2*note, 2*time.Millisecond, 80*time.Millisecond, rate),
	)
	return newVolume(ding, 0.25)
}

// CrashSound is a noise burst over a falling tone.
func CrashSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	crash := beep.Mix(
		NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 0, 250*time.Millisecond, rate),
		NewEnvelope(NewSweep(220, 60, d, WaveSquare, rate), d, 0, 200*time.Millisecond, rate),
	)
	return newVolume(crash, 0.2)
}

// StartSound is a rising three-note arpeggio.
func StartSound(rate beep.SampleRate) beep.Streamer {
	note := 50 * time.Millisecond
	var notes []beep.Streamer
	for _, freq := range []float64{523, 659, 784} {
		notes = append(notes, NewEnvelope(tone(freq, note, rate), note, 2*time.Millisecond, 15*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.2)
}
