package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// CdevBank drives the bank through the GPIO character device. It is far too
// slow for a live panel refresh but works everywhere gpiochip0 exists, which
// makes it useful for bring-up and wiring checks.
type CdevBank struct {
	chip    string
	lines   *gpiocdev.Lines
	offsets []int
	shadow  Bits
	outputs Bits
}

// OpenCdevBank prepares a bank on the given chip ("gpiochip0" on a Pi).
// Lines are requested lazily in InitOutputs.
func OpenCdevBank(chip string) (*CdevBank, error) {
	if chip == "" {
		chip = "gpiochip0"
	}
	return &CdevBank{chip: chip}, nil
}

// InitOutputs requests every masked pin as an output driven low.
func (b *CdevBank) InitOutputs(outputs Bits) (Bits, error) {
	outputs &^= b.outputs
	if outputs == 0 {
		return b.outputs, nil
	}
	if b.lines != nil {
		// The kernel interface has no incremental request; claim once.
		return b.outputs, fmt.Errorf("gpio: outputs already initialized on %s", b.chip)
	}
	for pin := 0; pin < 32; pin++ {
		if outputs&(1<<pin) != 0 {
			b.offsets = append(b.offsets, pin)
		}
	}
	defaults := make([]int, len(b.offsets))
	lines, err := gpiocdev.RequestLines(b.chip, b.offsets, gpiocdev.AsOutput(defaults...))
	if err != nil {
		return 0, fmt.Errorf("gpio: failed to request lines on %s: %w", b.chip, err)
	}
	b.lines = lines
	b.outputs = outputs
	return outputs, nil
}

func (b *CdevBank) flush() {
	values := make([]int, len(b.offsets))
	for i, pin := range b.offsets {
		if b.shadow&(1<<pin) != 0 {
			values[i] = 1
		}
	}
	b.lines.SetValues(values)
}

// SetBits drives the masked pins high.
func (b *CdevBank) SetBits(bits Bits) {
	b.shadow |= bits & b.outputs
	b.flush()
}

// ClearBits drives the masked pins low.
func (b *CdevBank) ClearBits(bits Bits) {
	b.shadow &^= bits
	b.flush()
}

// WriteMaskedBits drives the pins in mask to value, leaving others alone.
func (b *CdevBank) WriteMaskedBits(value, mask Bits) {
	b.shadow = (b.shadow &^ mask) | (value & mask & b.outputs)
	b.flush()
}

// Close lowers all outputs and releases the lines.
func (b *CdevBank) Close() error {
	if b.lines == nil {
		return nil
	}
	b.shadow = 0
	b.flush()
	return b.lines.Close()
}
