package hub75

import (
	"fmt"
	"strings"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

// HardwareMapping names the GPIO bit assignment of one wiring layout. Up to
// three parallel chains (p0..p2) each carry six colour lines: r1/g1/b1 feed
// the upper half of the scan pair, r2/g2/b2 the lower half.
type HardwareMapping struct {
	Name string

	OutputEnable gpio.Bits
	Clock        gpio.Bits
	Strobe       gpio.Bits

	A, B, C, D, E gpio.Bits

	P0R1, P0G1, P0B1, P0R2, P0G2, P0B2 gpio.Bits
	P1R1, P1G1, P1B1, P1R2, P1G2, P1B2 gpio.Bits
	P2R1, P2G1, P2B1, P2R2, P2G2, P2B2 gpio.Bits

	// MaxParallel is the number of usable parallel chains. Zero means
	// derive it from which chains have colour bits assigned.
	MaxParallel int
}

func pin(n int) gpio.Bits { return 1 << n }

// The standard direct wiring and the Adafruit HAT/Bonnet layout.
var hardwareMappings = []*HardwareMapping{
	{
		Name:         "regular",
		OutputEnable: pin(18), Clock: pin(17), Strobe: pin(4),
		A: pin(22), B: pin(23), C: pin(24), D: pin(25), E: pin(15),
		P0R1: pin(11), P0G1: pin(27), P0B1: pin(7),
		P0R2: pin(8), P0G2: pin(9), P0B2: pin(10),
		P1R1: pin(12), P1G1: pin(5), P1B1: pin(6),
		P1R2: pin(19), P1G2: pin(13), P1B2: pin(20),
		P2R1: pin(14), P2G1: pin(2), P2B1: pin(3),
		P2R2: pin(26), P2G2: pin(16), P2B2: pin(21),
	},
	{
		Name:         "adafruit-hat",
		OutputEnable: pin(4), Clock: pin(17), Strobe: pin(21),
		A: pin(22), B: pin(26), C: pin(27), D: pin(20), E: pin(24),
		P0R1: pin(5), P0G1: pin(13), P0B1: pin(6),
		P0R2: pin(12), P0G2: pin(16), P0B2: pin(23),
	},
}

// LookupHardwareMapping finds a mapping by name (case-insensitive). The
// empty string selects "regular". Unknown names report the valid set.
func LookupHardwareMapping(name string) (*HardwareMapping, error) {
	if name == "" {
		name = "regular"
	}
	for _, m := range hardwareMappings {
		if strings.EqualFold(m.Name, name) {
			h := *m
			if h.MaxParallel == 0 {
				h.MaxParallel = h.detectParallelChains()
			}
			return &h, nil
		}
	}
	names := make([]string, len(hardwareMappings))
	for i, m := range hardwareMappings {
		names[i] = m.Name
	}
	return nil, fmt.Errorf("no hardware mapping named %q; available: %s",
		name, strings.Join(names, ", "))
}

// detectParallelChains counts chains that have at least one colour line
// assigned.
func (h *HardwareMapping) detectParallelChains() int {
	n := 0
	for p := 0; p < 3; p++ {
		if h.chainColorBits(p) != 0 {
			n++
		}
	}
	return n
}

// chainColorBits is the union of the six colour lines of one parallel chain.
func (h *HardwareMapping) chainColorBits(p int) gpio.Bits {
	switch p {
	case 0:
		return h.P0R1 | h.P0G1 | h.P0B1 | h.P0R2 | h.P0G2 | h.P0B2
	case 1:
		return h.P1R1 | h.P1G1 | h.P1B1 | h.P1R2 | h.P1G2 | h.P1B2
	default:
		return h.P2R1 | h.P2G1 | h.P2B1 | h.P2R2 | h.P2G2 | h.P2B2
	}
}

// chainRGB returns the raw colour lines of one chain, upper or lower half.
func (h *HardwareMapping) chainRGB(p int, lower bool) (r, g, b gpio.Bits) {
	switch p {
	case 0:
		if lower {
			return h.P0R2, h.P0G2, h.P0B2
		}
		return h.P0R1, h.P0G1, h.P0B1
	case 1:
		if lower {
			return h.P1R2, h.P1G2, h.P1B2
		}
		return h.P1R1, h.P1G1, h.P1B1
	default:
		if lower {
			return h.P2R2, h.P2G2, h.P2B2
		}
		return h.P2R1, h.P2G1, h.P2B1
	}
}

// usedBits is the union of every pin the refresh engine touches for the
// given number of parallel chains, excluding row address lines.
func (h *HardwareMapping) usedBits(parallel int) gpio.Bits {
	bits := h.OutputEnable | h.Clock | h.Strobe
	for p := 0; p < parallel; p++ {
		bits |= h.chainColorBits(p)
	}
	return bits
}
