package hub75

import (
	"fmt"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

// Row address selection styles, as configured by Options.RowAddressType.
const (
	RowAddressDirect        = 0 // binary across A..E
	RowAddressShiftRegister = 1 // serial chain on A (clock) and B (data)
	RowAddressDirectABCD    = 2 // low-active one-of-four, 1:4 panels
)

// rowAddressSetter selects which double-row of the panel is lit. All
// implementations remember the last row and skip redundant writes; the
// refresh loop calls this once per plane.
type rowAddressSetter interface {
	neededBits() gpio.Bits
	setRowAddress(io gpio.RegisterIO, row int)
}

func newRowAddressSetter(addrType, doubleRows int, h *HardwareMapping) (rowAddressSetter, error) {
	switch addrType {
	case RowAddressDirect:
		return newDirectRowAddressSetter(doubleRows, h)
	case RowAddressShiftRegister:
		return &shiftRegisterRowAddressSetter{
			doubleRows: doubleRows,
			rowMask:    h.A | h.B,
			clock:      h.A,
			data:       h.B,
			lastRow:    -1,
		}, nil
	case RowAddressDirectABCD:
		return newDirectABCDRowAddressSetter(h), nil
	default:
		return nil, fmt.Errorf("unknown row address type %d (valid: 0 direct, 1 shift register, 2 direct ABCD)", addrType)
	}
}

// directRowAddressSetter puts the row number in binary on the parallel
// address lines, A carrying the LSB. A lookup table keeps the bit fiddling
// out of the refresh loop.
type directRowAddressSetter struct {
	rowMask   gpio.Bits
	rowLookup [32]gpio.Bits
	lastRow   int
}

func newDirectRowAddressSetter(doubleRows int, h *HardwareMapping) (*directRowAddressSetter, error) {
	if doubleRows > 32 {
		return nil, fmt.Errorf("direct row addressing supports at most 32 double-rows, got %d", doubleRows)
	}
	s := &directRowAddressSetter{lastRow: -1}
	s.rowMask = h.A
	if doubleRows > 2 {
		s.rowMask |= h.B
	}
	if doubleRows > 4 {
		s.rowMask |= h.C
	}
	if doubleRows > 8 {
		s.rowMask |= h.D
	}
	if doubleRows > 16 {
		s.rowMask |= h.E
	}
	for i := 0; i < doubleRows; i++ {
		var addr gpio.Bits
		if i&0x01 != 0 {
			addr |= h.A
		}
		if i&0x02 != 0 {
			addr |= h.B
		}
		if i&0x04 != 0 {
			addr |= h.C
		}
		if i&0x08 != 0 {
			addr |= h.D
		}
		if i&0x10 != 0 {
			addr |= h.E
		}
		s.rowLookup[i] = addr
	}
	return s, nil
}

func (s *directRowAddressSetter) neededBits() gpio.Bits { return s.rowMask }

func (s *directRowAddressSetter) setRowAddress(io gpio.RegisterIO, row int) {
	if row == s.lastRow {
		return
	}
	io.WriteMaskedBits(s.rowLookup[row], s.rowMask)
	s.lastRow = row
}

// shiftRegisterRowAddressSetter drives panels whose address input is a
// serial chain: A is the clock, B the data. Selecting row r clocks in
// doubleRows bits with data low only on the (doubleRows-1-r)-th tick,
// terminated by one extra clock cycle.
type shiftRegisterRowAddressSetter struct {
	doubleRows int
	rowMask    gpio.Bits
	clock      gpio.Bits
	data       gpio.Bits
	lastRow    int
}

func (s *shiftRegisterRowAddressSetter) neededBits() gpio.Bits { return s.rowMask }

func (s *shiftRegisterRowAddressSetter) setRowAddress(io gpio.RegisterIO, row int) {
	if row == s.lastRow {
		return
	}
	for activate := 0; activate < s.doubleRows; activate++ {
		io.ClearBits(s.clock)
		if activate == s.doubleRows-1-row {
			io.ClearBits(s.data)
		} else {
			io.SetBits(s.data)
		}
		io.SetBits(s.clock)
	}
	io.ClearBits(s.clock)
	io.SetBits(s.clock)
	s.lastRow = row
}

// directABCDRowAddressSetter serves 32x16 1:4 panels where the active row
// line is held low and the other three high:
//
//	row     | 0 | 1 | 2 | 3
//	--------+---+---+---+---
//	line A  | 0 | 1 | 1 | 1
//	line B  | 1 | 0 | 1 | 1
//	line C  | 1 | 1 | 0 | 1
//	line D  | 1 | 1 | 1 | 0
type directABCDRowAddressSetter struct {
	rowLines [4]gpio.Bits
	rowMask  gpio.Bits
	lastRow  int
}

func newDirectABCDRowAddressSetter(h *HardwareMapping) *directABCDRowAddressSetter {
	return &directABCDRowAddressSetter{
		rowLines: [4]gpio.Bits{
			h.B | h.C | h.D,
			h.A | h.C | h.D,
			h.A | h.B | h.D,
			h.A | h.B | h.C,
		},
		rowMask: h.A | h.B | h.C | h.D,
		lastRow: -1,
	}
}

func (s *directABCDRowAddressSetter) neededBits() gpio.Bits { return s.rowMask }

func (s *directABCDRowAddressSetter) setRowAddress(io gpio.RegisterIO, row int) {
	if row == s.lastRow {
		return
	}
	io.WriteMaskedBits(s.rowLines[row%4], s.rowMask)
	s.lastRow = row
}
