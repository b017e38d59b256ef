package hub75

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

// bitPlanes is the internal colour depth per channel. Plane k is shown for
// 2^k times the base pulse, so 11 planes give the full BCM range without
// stretching a frame past the flicker threshold.
const bitPlanes = 11

const subPanels = 2 // HUB75 drives the upper and lower half concurrently

// geometry fixes the bitplane buffer layout of one matrix.
type geometry struct {
	rows       int // per parallel chain, after multiplexing
	parallel   int
	columns    int // across the whole chain, after multiplexing
	doubleRows int // rows / subPanels
}

func (g geometry) height() int { return g.rows * g.parallel }

func (g geometry) bufferWords() int { return g.doubleRows * g.columns * bitPlanes }

// wordIndex locates the GPIO word of (doubleRow, column) in the given plane.
func (g geometry) wordIndex(doubleRow, column, plane int) int {
	return doubleRow*(g.columns*bitPlanes) + plane*g.columns + column
}

// FrameCanvas is one drawable framebuffer of a matrix. The pixel data lives
// pre-shifted in bitplane form: one gpio.Bits word per (double-row, plane,
// column) carries the colour lines of every chain and both scan halves, so
// the refresh loop can clock a column out in a single write.
//
// A canvas is not safe for concurrent use; the swap in Matrix.SwapOnVSync
// is the only sanctioned handoff between writer and refresh loop.
type FrameCanvas struct {
	g        geometry
	scanMode int

	pwmBits          int
	brightness       int
	luminanceCorrect bool
	inverseColor     bool
	dither           DitherMode
	rng              *rand.Rand

	buffer      []gpio.Bits
	designators *PixelDesignatorMap // owned by the matrix, read-only here
}

func newFrameCanvas(o *Options, g geometry, designators *PixelDesignatorMap, seed int64) *FrameCanvas {
	return &FrameCanvas{
		g:                g,
		scanMode:         o.ScanMode,
		pwmBits:          o.PWMBits,
		brightness:       o.Brightness,
		luminanceCorrect: o.LuminanceCorrect,
		inverseColor:     o.InverseColors,
		dither:           o.Dither,
		rng:              rand.New(rand.NewSource(seed)),
		buffer:           make([]gpio.Bits, g.bufferWords()),
		designators:      designators,
	}
}

// Width is the drawable width in pixels.
func (c *FrameCanvas) Width() int { return c.designators.Width() }

// Height is the drawable height in pixels.
func (c *FrameCanvas) Height() int { return c.designators.Height() }

// SetPWMBits reduces the displayed colour depth at runtime. Planes below
// the cut are neither written nor clocked out.
func (c *FrameCanvas) SetPWMBits(value int) bool {
	if value < 1 || value > bitPlanes {
		return false
	}
	c.pwmBits = value
	return true
}

// PWMBits returns the current colour depth.
func (c *FrameCanvas) PWMBits() int { return c.pwmBits }

// SetBrightness sets the brightness in percent, 1..100.
func (c *FrameCanvas) SetBrightness(b int) bool {
	if b < 1 || b > 100 {
		return false
	}
	c.brightness = b
	return true
}

// Brightness returns the brightness in percent.
func (c *FrameCanvas) Brightness() int { return c.brightness }

// SetLuminanceCorrect toggles the CIE1931 pipeline.
func (c *FrameCanvas) SetLuminanceCorrect(on bool) { c.luminanceCorrect = on }

// SetPixel draws one 8-bit RGB pixel through the colour pipeline.
func (c *FrameCanvas) SetPixel(x, y int, r, g, b uint8) {
	red, green, blue := c.mapColors(r, g, b)
	c.setPixelHDR(x, y, red, green, blue)
}

// SetPixelHDR draws one pixel from raw 16-bit channel values, bypassing the
// brightness and luminance pipeline. This is the tile-ingest path.
func (c *FrameCanvas) SetPixelHDR(x, y int, r, g, b uint16) {
	c.setPixelHDR(x, y, r, g, b)
}

func (c *FrameCanvas) setPixelHDR(x, y int, red, green, blue uint16) {
	n := c.noise(x, y)
	r := clamp16(int(red) + n)
	g := clamp16(int(green) + n)
	b := clamp16(int(blue) + n)

	d := c.designators.Get(x, y)
	if d == nil || d.GpioWord < 0 {
		return
	}

	minBit := bitPlanes - c.pwmBits
	idx := d.GpioWord + minBit*c.g.columns
	for plane := minBit; plane < bitPlanes; plane++ {
		mask := uint16(1) << uint(plane+5) // encode keeps 5 fractional bits
		var colorBits gpio.Bits
		if r&mask != 0 {
			colorBits |= d.RBit
		}
		if g&mask != 0 {
			colorBits |= d.GBit
		}
		if b&mask != 0 {
			colorBits |= d.BBit
		}
		c.buffer[idx] = (c.buffer[idx] & d.Mask) | colorBits
		idx += c.g.columns
	}
}

func (c *FrameCanvas) noise(x, y int) int {
	switch c.dither {
	case DitherRandom:
		return c.rng.Intn(32)
	case DitherBayer:
		return int(bayer8x8[y&7][x&7]) / 2
	default:
		return 0
	}
}

// bayer8x8 is the ordered dithering pattern, values 0..63.
var bayer8x8 = [8][8]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

func clamp16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// Fill paints every visible pixel with one 8-bit RGB colour.
func (c *FrameCanvas) Fill(r, g, b uint8) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.SetPixel(x, y, r, g, b)
		}
	}
}

// Clear blanks the canvas. On inverse-colour panels black is all-bits-set,
// so it goes through Fill instead of zeroing the buffer.
func (c *FrameCanvas) Clear() {
	if c.inverseColor {
		c.Fill(0, 0, 0)
		return
	}
	for i := range c.buffer {
		c.buffer[i] = 0
	}
}

// CopyFrom duplicates another canvas's pixel data. Both canvases must come
// from matrices with identical compile geometry.
func (c *FrameCanvas) CopyFrom(other *FrameCanvas) error {
	if other == c {
		return nil
	}
	if len(other.buffer) != len(c.buffer) {
		return fmt.Errorf("canvas geometry mismatch: %d words vs %d", len(other.buffer), len(c.buffer))
	}
	copy(c.buffer, other.buffer)
	return nil
}

// Serialize dumps the bitplane buffer. The format is only portable between
// builds with identical geometry.
func (c *FrameCanvas) Serialize() []byte {
	out := make([]byte, len(c.buffer)*4)
	for i, w := range c.buffer {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(w))
	}
	return out
}

// Deserialize restores a Serialize dump. A size mismatch leaves the canvas
// untouched and reports false.
func (c *FrameCanvas) Deserialize(data []byte) bool {
	if len(data) != len(c.buffer)*4 {
		return false
	}
	for i := range c.buffer {
		c.buffer[i] = gpio.Bits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return true
}

// TileSize is the edge length of one ingest tile in pixels.
const TileSize = 16

// PrepareDump replaces the canvas content from a frame of 16x16 tiles.
// tiles is row-major tilesX*tilesY; each entry is either nil or a raw tile
// payload of TileSize*TileSize RGB triples, each channel a little-endian
// uint16. Missing tiles fall back to the per-pixel fallback buffers (each
// Width*Height values). A nil tile array refreshes the whole canvas from
// the fallback.
func (c *FrameCanvas) PrepareDump(fallbackR, fallbackG, fallbackB []uint16, tiles [][]byte, tilesX, tilesY int) {
	if tiles == nil {
		for y := 0; y < c.Height(); y++ {
			for x := 0; x < c.Width(); x++ {
				off := y*c.Width() + x
				c.setPixelHDR(x, y, fallbackR[off], fallbackG[off], fallbackB[off])
			}
		}
		return
	}

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			tile := tiles[ty*tilesX+tx]
			if tile != nil {
				for y := 0; y < TileSize; y++ {
					for x := 0; x < TileSize; x++ {
						off := (y*TileSize + x) * 6
						c.setPixelHDR(tx*TileSize+x, ty*TileSize+y,
							binary.LittleEndian.Uint16(tile[off:]),
							binary.LittleEndian.Uint16(tile[off+2:]),
							binary.LittleEndian.Uint16(tile[off+4:]))
					}
				}
				continue
			}
			for y := 0; y < TileSize; y++ {
				for x := 0; x < TileSize; x++ {
					px := tx*TileSize + x
					py := ty*TileSize + y
					off := py*c.Width() + px
					c.setPixelHDR(px, py, fallbackR[off], fallbackG[off], fallbackB[off])
				}
			}
		}
	}
}

// dumpToMatrix clocks the whole canvas out to the panels once. It reads the
// bitplane buffer but never writes it; the caller guarantees no concurrent
// mutation. pwmLowBit optionally raises the lowest plane shown this frame.
func (c *FrameCanvas) dumpToMatrix(io gpio.RegisterIO, h *HardwareMapping, rows rowAddressSetter, oe pulser, pwmLowBit int) {
	colorClkMask := h.Clock
	for p := 0; p < c.g.parallel; p++ {
		colorClkMask |= h.chainColorBits(p)
	}

	startBit := bitPlanes - c.pwmBits
	if pwmLowBit > startBit {
		startBit = pwmLowBit
	}

	halfDouble := c.g.doubleRows / 2
	for rowLoop := 0; rowLoop < c.g.doubleRows; rowLoop++ {
		var dRow int
		switch c.scanMode {
		case 1: // interlaced
			if rowLoop < halfDouble {
				dRow = rowLoop << 1
			} else {
				dRow = (rowLoop-halfDouble)<<1 + 1
			}
		default: // progressive
			dRow = rowLoop
		}

		// Row switching ghosts, so one row runs its full PWM cycle
		// before the address changes.
		for b := startBit; b < bitPlanes; b++ {
			idx := c.g.wordIndex(dRow, 0, b)
			// The previous plane's output-enable pulse is still
			// running; the shift-in overlaps it.
			for col := 0; col < c.g.columns; col++ {
				io.WriteMaskedBits(c.buffer[idx], colorClkMask)
				io.SetBits(h.Clock)
				idx++
			}
			io.ClearBits(colorClkMask)

			oe.waitPulseFinished()

			// Address and strobe happen in the dark window.
			rows.setRowAddress(io, dRow)

			io.SetBits(h.Strobe)
			io.ClearBits(h.Strobe)

			oe.sendPulse(b)
		}
	}
}
