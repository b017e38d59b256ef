package hub75

import "fmt"

// DitherMode selects the noise source mixed into the colour encode.
type DitherMode int

const (
	// DitherNone adds no noise; the encode is exact.
	DitherNone DitherMode = iota
	// DitherRandom adds per-write noise from the canvas's own generator.
	DitherRandom
	// DitherBayer uses the 8x8 ordered Bayer pattern keyed on the pixel
	// position, trading noise for a stable texture.
	DitherBayer
)

// Options describes one matrix. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	HardwareMapping string `json:"hardware_mapping"`

	Rows        int `json:"rows"`
	Cols        int `json:"cols"`
	ChainLength int `json:"chain_length"`
	Parallel    int `json:"parallel"`

	// Multiplexing is the 1-based index into the registered multiplex
	// mappers; 0 disables panel remultiplexing.
	Multiplexing int `json:"multiplexing"`

	PWMBits           int `json:"pwm_bits"`
	PWMLSBNanoseconds int `json:"pwm_lsb_nanoseconds"`
	DitherBits        int `json:"dither_bits"`

	Brightness int `json:"brightness"`

	// ScanMode: 0 progressive, 1 interlaced.
	ScanMode int `json:"scan_mode"`

	// RowAddressType: see the RowAddress constants.
	RowAddressType int `json:"row_address_type"`

	LEDSequence   string `json:"led_sequence"`
	InverseColors bool   `json:"inverse_colors"`

	ShowRefreshRate bool `json:"show_refresh_rate"`

	Dither DitherMode `json:"dither"`

	// LuminanceCorrect selects the CIE1931 pipeline over direct scaling.
	LuminanceCorrect bool `json:"luminance_correct"`

	GPIOSlowdown   int  `json:"gpio_slowdown"`
	DropPrivileges bool `json:"drop_privileges"`
}

// DefaultOptions matches the wall this daemon was built for: three parallel
// chains of 64x16 Absen panels.
func DefaultOptions() Options {
	return Options{
		HardwareMapping:   "regular",
		Rows:              16,
		Cols:              64,
		ChainLength:       1,
		Parallel:          3,
		Multiplexing:      7,
		PWMBits:           bitPlanes,
		PWMLSBNanoseconds: 130,
		Brightness:        100,
		LEDSequence:       "RGB",
		LuminanceCorrect:  true,
	}
}

// Validate reports the first configuration error. Geometry interactions
// with the multiplex mapper and LED sequence are checked at matrix
// construction, where the hardware mapping is known.
func (o *Options) Validate() error {
	if o.Rows < 8 || o.Rows > 64 || o.Rows%2 != 0 {
		return fmt.Errorf("rows must be even and within 8..64, got %d", o.Rows)
	}
	if o.Cols <= 0 {
		return fmt.Errorf("cols must be positive, got %d", o.Cols)
	}
	if o.ChainLength < 1 {
		return fmt.Errorf("chain_length must be at least 1, got %d", o.ChainLength)
	}
	if o.Parallel < 1 || o.Parallel > 3 {
		return fmt.Errorf("parallel must be within 1..3, got %d", o.Parallel)
	}
	if o.Multiplexing < 0 || o.Multiplexing > len(muxRegistry) {
		return fmt.Errorf("multiplexing must be within 0..%d, got %d", len(muxRegistry), o.Multiplexing)
	}
	if o.PWMBits < 1 || o.PWMBits > bitPlanes {
		return fmt.Errorf("pwm_bits must be within 1..%d, got %d", bitPlanes, o.PWMBits)
	}
	if o.PWMLSBNanoseconds < 50 {
		return fmt.Errorf("pwm_lsb_nanoseconds must be at least 50, got %d", o.PWMLSBNanoseconds)
	}
	if o.DitherBits < 0 || o.DitherBits > bitPlanes {
		return fmt.Errorf("dither_bits must be within 0..%d, got %d", bitPlanes, o.DitherBits)
	}
	if o.Brightness < 1 || o.Brightness > 100 {
		return fmt.Errorf("brightness must be within 1..100, got %d", o.Brightness)
	}
	if o.ScanMode != 0 && o.ScanMode != 1 {
		return fmt.Errorf("scan_mode must be 0 (progressive) or 1 (interlaced), got %d", o.ScanMode)
	}
	if len(o.LEDSequence) != 3 {
		return fmt.Errorf("led_sequence must be a permutation of RGB, got %q", o.LEDSequence)
	}
	return nil
}
