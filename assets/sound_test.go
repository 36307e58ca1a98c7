package assets

import (
	"encoding/binary"
	"testing"
)

func TestBlipLayout(t *testing.T) {
	pcm := Blip(440, 0.01, 10)
	if want := int(0.01*SampleRate) * 4; len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
	if binary.LittleEndian.Uint16(pcm[0:]) != 0 {
		t.Fatalf("expected the sine to start at zero")
	}
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d: channels differ", i/4)
		}
	}
	if Blip(440, 0, 10) != nil {
		t.Fatalf("expected nil for zero length")
	}
}
