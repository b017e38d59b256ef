package hub75

import (
	"math"
	"sync"
)

// The colour pipeline turns an 8-bit channel into a 16-bit value carrying
// bitPlanes significant bits above five fractional bits; the fractional
// part is the dithering headroom.

// luminanceCIE1931 maps one channel through the CIE1931 lightness curve at
// the given brightness percentage.
func luminanceCIE1931(c uint8, brightness int) uint16 {
	outFactor := 32.0 * float64((1<<bitPlanes)-1)
	v := float64(c) * float64(brightness) / 255.0
	if v <= 8 {
		return uint16(outFactor * v / 902.3)
	}
	return uint16(outFactor * math.Pow((v+16)/116.0, 3))
}

var (
	cieOnce  sync.Once
	cieTable [100][256]uint16
)

// cieMapColor looks the channel up in the precomputed brightness table.
func cieMapColor(brightness int, c uint8) uint16 {
	cieOnce.Do(func() {
		for b := 0; b < 100; b++ {
			for v := 0; v < 256; v++ {
				cieTable[b][v] = luminanceCIE1931(uint8(v), b+1)
			}
		}
	})
	return cieTable[brightness-1][c]
}

// directMapColor scales the channel by brightness and left-aligns it.
func directMapColor(brightness int, c uint8) uint16 {
	return uint16(int(c)*brightness/100) << 8
}

func (c *FrameCanvas) mapColors(r, g, b uint8) (red, green, blue uint16) {
	if c.luminanceCorrect {
		red = cieMapColor(c.brightness, r)
		green = cieMapColor(c.brightness, g)
		blue = cieMapColor(c.brightness, b)
	} else {
		red = directMapColor(c.brightness, r)
		green = directMapColor(c.brightness, g)
		blue = directMapColor(c.brightness, b)
	}

	if c.inverseColor {
		red = ^red
		green = ^green
		blue = ^blue
	}
	return red, green, blue
}
