package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM drains s into signed 16-bit little-endian stereo, the format ebiten's
// audio players read. Samples outside [-1,1] are clipped.
func PCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
