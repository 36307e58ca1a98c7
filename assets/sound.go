// Package assets provides the demo's synthesized sounds.
package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// NewPlayer wraps PCM in Ebiten's native format in a new player.
func NewPlayer(pcm []byte) *audio.Player {
	return Context().NewPlayerFromBytes(pcm)
}

// Blip renders an exponentially decaying sine as 16-bit little endian
// stereo PCM.
func Blip(freq, seconds, decay float64) []byte {
	n := int(seconds * SampleRate)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * math.Exp(-decay*t) * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
