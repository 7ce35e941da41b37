package main

import (
	"math"
	"sync"
)

// shotAudioStream is an endless 16-bit stereo stream that stays silent until
// triggered, then rings a short decaying tone.
type shotAudioStream struct {
	mu       sync.Mutex
	envelope float64
	phase    float64
}

func newShotAudioStream() *shotAudioStream {
	return &shotAudioStream{}
}

// Trigger restarts the tone at full volume.
func (s *shotAudioStream) Trigger() {
	s.mu.Lock()
	s.envelope = 1
	s.mu.Unlock()
}

func (s *shotAudioStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	step := 2 * math.Pi * shotToneHz / shotSampleRate
	for i := 0; i < frameBytes; i += 4 {
		var v int16
		if s.envelope > shotSilence {
			v = int16(math.Sin(s.phase) * s.envelope * pcm16MaxValue)
			s.phase = math.Mod(s.phase+step, 2*math.Pi)
			s.envelope *= shotDecay
		} else {
			s.envelope = 0
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *shotAudioStream) Close() error {
	return nil
}
