package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Player holds the score sound. Plays are fire-and-forget and become no-ops
// when the speaker is not initialized.
type Player struct {
	score *beep.Buffer
}

// NewPlayer loads the score sound from a WAV file, or synthesizes the
// built-in jingle when path is empty
func NewPlayer(path string) (*Player, error) {
	if path == "" {
		return &Player{score: render(scoreJingle())}, nil
	}

	buf, err := loadWAV(path)
	if err != nil {
		return nil, err
	}
	return &Player{score: buf}, nil
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	return buf, nil
}

func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// Len returns the score sound length in samples
func (p *Player) Len() int {
	return p.score.Len()
}

// PlayScore plays the sound when a side scores
func (p *Player) PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(p.score.Streamer(0, p.score.Len()))
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func (p *Player) PlayPaddleHit() {
	if !initialized {
		return
	}
	// High-pitched short beep
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func (p *Player) PlayWallBounce() {
	if !initialized {
		return
	}
	// Medium-pitched short beep
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// scoreJingle is a descending three-note square wave
func scoreJingle() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
