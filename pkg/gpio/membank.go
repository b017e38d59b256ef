package gpio

import (
	"fmt"

	"github.com/fcurrie/ledwall-golang/pkg/mmap"
)

// BCM283x GPIO register file, as exposed through /dev/gpiomem.
const (
	gpioMemDevice = "/dev/gpiomem"
	gpioMemSize   = 0x1000

	regFSel0 = 0x00 // function select, 10 pins per register
	regSet0  = 0x1c
	regClr0  = 0x28
	regLev0  = 0x34

	// Pins above 27 are not routed to the 40-pin header.
	validPins Bits = (1 << 28) - 1
)

// MemBank drives the GPIO bank through the memory mapped register file.
// This is the only backend fast enough for the refresh hot path.
type MemBank struct {
	region   *mmap.Region
	set      *uint32
	clear    *uint32
	level    *uint32
	slowdown int
	outputs  Bits
}

// OpenMemBank maps /dev/gpiomem. slowdown repeats each register write to
// pace the bus on boards where GPIO toggles outrun the panel logic.
func OpenMemBank(slowdown int) (*MemBank, error) {
	region, err := mmap.Map(gpioMemDevice, 0, gpioMemSize)
	if err != nil {
		return nil, fmt.Errorf("gpio: %w", err)
	}
	if slowdown < 0 {
		slowdown = 0
	}
	return &MemBank{
		region:   region,
		set:      region.Reg32(regSet0),
		clear:    region.Reg32(regClr0),
		level:    region.Reg32(regLev0),
		slowdown: slowdown,
	}, nil
}

// InitOutputs switches the masked pins to output mode and returns the
// subset that is actually routed to the header.
func (b *MemBank) InitOutputs(outputs Bits) (Bits, error) {
	supported := outputs & validPins
	for pin := 0; pin < 28; pin++ {
		if supported&(1<<pin) == 0 {
			continue
		}
		reg := b.region.Reg32(uintptr(regFSel0 + 4*(pin/10)))
		shift := uint(3 * (pin % 10))
		// 0b001 selects output.
		*reg = (*reg &^ (7 << shift)) | (1 << shift)
	}
	b.outputs |= supported
	return supported, nil
}

// SetBits drives the masked pins high.
func (b *MemBank) SetBits(bits Bits) {
	for i := 0; i <= b.slowdown; i++ {
		*b.set = uint32(bits)
	}
}

// ClearBits drives the masked pins low.
func (b *MemBank) ClearBits(bits Bits) {
	for i := 0; i <= b.slowdown; i++ {
		*b.clear = uint32(bits)
	}
}

// WriteMaskedBits drives the pins in mask to value, leaving others alone.
func (b *MemBank) WriteMaskedBits(value, mask Bits) {
	b.ClearBits(^value & mask)
	b.SetBits(value & mask)
}

// Levels reads back the current pin levels.
func (b *MemBank) Levels() Bits {
	return Bits(*b.level)
}

// Close lowers all claimed outputs and unmaps the register file.
func (b *MemBank) Close() error {
	b.ClearBits(b.outputs)
	return b.region.Close()
}
