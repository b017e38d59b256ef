package hub75

import (
	"fmt"
	"strings"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

// PixelDesignator is the precomputed scatter target of one logical pixel:
// the word offset of its bitplane-0 slot and the colour bit masks to OR in.
// Mask preserves the bits of neighbouring pixels sharing the same word.
// A negative GpioWord marks a pixel that is not wired to any LED.
type PixelDesignator struct {
	GpioWord int
	RBit     gpio.Bits
	GBit     gpio.Bits
	BBit     gpio.Bits
	Mask     gpio.Bits
}

// PixelDesignatorMap is the dense designator grid shared by the active and
// back canvas of one matrix. It is built once at matrix construction and
// read-only afterwards.
type PixelDesignatorMap struct {
	width  int
	height int
	buffer []PixelDesignator
}

func newPixelDesignatorMap(width, height int) *PixelDesignatorMap {
	m := &PixelDesignatorMap{
		width:  width,
		height: height,
		buffer: make([]PixelDesignator, width*height),
	}
	for i := range m.buffer {
		m.buffer[i].GpioWord = -1
		m.buffer[i].Mask = ^gpio.Bits(0)
	}
	return m
}

// Get returns the designator at (x,y), or nil outside the bounds.
func (m *PixelDesignatorMap) Get(x, y int) *PixelDesignator {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return nil
	}
	return &m.buffer[y*m.width+x]
}

// Width is the addressable width in pixels.
func (m *PixelDesignatorMap) Width() int { return m.width }

// Height is the addressable height in pixels.
func (m *PixelDesignatorMap) Height() int { return m.height }

// ledSequence resolves which physical colour line carries a logical channel.
// The sequence string permutes "RGB": position 0 is the wire labelled R,
// position 1 the wire labelled G, position 2 the wire labelled B.
type ledSequence string

func (s ledSequence) gpioFor(channel byte, r, g, b gpio.Bits) (gpio.Bits, error) {
	idx := strings.IndexByte(strings.ToUpper(string(s)), channel)
	if idx < 0 {
		return 0, fmt.Errorf("LED sequence %q does not contain %q", string(s), string(channel))
	}
	switch idx {
	case 0:
		return r, nil
	case 1:
		return g, nil
	case 2:
		return b, nil
	}
	return 0, fmt.Errorf("LED sequence %q longer than three channels", string(s))
}

// buildDesignatorMap computes the designator of every matrix pixel for the
// given geometry, then composes the multiplex mapper (if any) so that the
// returned map is indexed by visible coordinates.
func buildDesignatorMap(h *HardwareMapping, g geometry, seq ledSequence, mux MultiplexMapper) (*PixelDesignatorMap, error) {
	m := newPixelDesignatorMap(g.columns, g.height())
	for y := 0; y < g.height(); y++ {
		for x := 0; x < g.columns; x++ {
			if err := initDefaultDesignator(h, g, seq, x, y, m.Get(x, y)); err != nil {
				return nil, err
			}
		}
	}
	if mux == nil {
		return m, nil
	}

	visW, visH := mux.GetSizeMapping(g.columns, g.height())
	vis := newPixelDesignatorMap(visW, visH)
	for y := 0; y < visH; y++ {
		for x := 0; x < visW; x++ {
			mx, my := mux.MapVisibleToMatrix(g.columns, g.height(), x, y)
			if d := m.Get(mx, my); d != nil {
				*vis.Get(x, y) = *d
			}
		}
	}
	return vis, nil
}

func initDefaultDesignator(h *HardwareMapping, g geometry, seq ledSequence, x, y int, d *PixelDesignator) error {
	d.GpioWord = g.wordIndex(y%g.doubleRows, x, 0)

	chain := y / g.rows
	lower := y%g.rows >= g.doubleRows
	r, gBits, b := h.chainRGB(chain, lower)

	var err error
	if d.RBit, err = seq.gpioFor('R', r, gBits, b); err != nil {
		return err
	}
	if d.GBit, err = seq.gpioFor('G', r, gBits, b); err != nil {
		return err
	}
	if d.BBit, err = seq.gpioFor('B', r, gBits, b); err != nil {
		return err
	}
	d.Mask = ^(d.RBit | d.GBit | d.BBit)
	return nil
}
