package hub75

import (
	"testing"
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

func TestNewMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{name: "defaults", mutate: nil},
		{name: "odd rows", mutate: func(o *Options) { o.Rows = 15 }, wantErr: true},
		{name: "rows too small", mutate: func(o *Options) { o.Rows = 4 }, wantErr: true},
		{name: "rows too large", mutate: func(o *Options) { o.Rows = 128 }, wantErr: true},
		{name: "unknown mapping", mutate: func(o *Options) { o.HardwareMapping = "bogus" }, wantErr: true},
		{name: "parallel beyond mapping", mutate: func(o *Options) {
			o.HardwareMapping = "adafruit-hat"
			o.Parallel = 2
		}, wantErr: true},
		{name: "zero brightness", mutate: func(o *Options) { o.Brightness = 0 }, wantErr: true},
		{name: "pwm bits too deep", mutate: func(o *Options) { o.PWMBits = 12 }, wantErr: true},
		{name: "bad multiplex index", mutate: func(o *Options) { o.Multiplexing = 99 }, wantErr: true},
		{name: "bad scan mode", mutate: func(o *Options) { o.ScanMode = 2 }, wantErr: true},
		{name: "bad led sequence", mutate: func(o *Options) { o.LEDSequence = "RG" }, wantErr: true},
		{name: "sequence missing blue", mutate: func(o *Options) { o.LEDSequence = "RGR" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.mutate != nil {
				tt.mutate(&opts)
			}
			m, err := NewMatrix(opts, &gpio.Recorder{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMatrix() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && m == nil {
				t.Error("NewMatrix() returned nil matrix without error")
			}
		})
	}
}

func TestLookupHardwareMapping(t *testing.T) {
	hm, err := LookupHardwareMapping("")
	if err != nil {
		t.Fatalf("empty name must resolve to the default: %v", err)
	}
	if hm.Name != "regular" {
		t.Errorf("default mapping = %q, want regular", hm.Name)
	}
	if hm.MaxParallel != 3 {
		t.Errorf("regular mapping auto-detected %d chains, want 3", hm.MaxParallel)
	}

	hat, err := LookupHardwareMapping("Adafruit-HAT")
	if err != nil {
		t.Fatalf("lookup must be case-insensitive: %v", err)
	}
	if hat.MaxParallel != 1 {
		t.Errorf("adafruit-hat auto-detected %d chains, want 1", hat.MaxParallel)
	}

	if _, err := LookupHardwareMapping("nope"); err == nil {
		t.Error("unknown mapping must fail")
	}
}

func TestDefaultGeometry(t *testing.T) {
	// Default wall: 3 parallel Absen 64x16 panels -> 64x48 visible.
	m, err := NewMatrix(DefaultOptions(), &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	if m.Width() != 64 || m.Height() != 48 {
		t.Errorf("visible size = %dx%d, want 64x48", m.Width(), m.Height())
	}
}

func TestSwapOnVSync(t *testing.T) {
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.ChainLength, opts.Parallel = 32, 32, 1, 1
	opts.Multiplexing = 0
	opts.PWMLSBNanoseconds = 50 // keep test frames short

	m, err := NewMatrix(opts, &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	m.Start()

	first := m.active
	back := m.CreateFrameCanvas()
	back.SetPixel(0, 0, 255, 0, 0)

	done := make(chan *FrameCanvas, 1)
	go func() { done <- m.SwapOnVSync(back) }()

	select {
	case got := <-done:
		if got != first {
			t.Error("SwapOnVSync must return the previously active canvas")
		}
		if m.active != back {
			t.Error("SwapOnVSync did not install the new canvas")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("SwapOnVSync did not complete within a refresh cycle")
	}

	m.Close()
}

func TestSwapAfterClose(t *testing.T) {
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.ChainLength, opts.Parallel = 32, 32, 1, 1
	opts.Multiplexing = 0

	m, err := NewMatrix(opts, &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	m.Close()

	// With the refresh loop gone the swap degrades to a plain exchange
	// instead of deadlocking.
	c := m.CreateFrameCanvas()
	if got := m.SwapOnVSync(c); got == nil {
		t.Error("SwapOnVSync after Close returned nil")
	}
}

func TestCloseBlanksPanels(t *testing.T) {
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.ChainLength, opts.Parallel = 32, 32, 1, 1
	opts.Multiplexing = 0
	opts.PWMLSBNanoseconds = 50

	rec := &gpio.Recorder{}
	m, err := NewMatrix(opts, rec)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	m.Start()
	time.Sleep(50 * time.Millisecond)
	m.Close()

	used := m.hm.usedBits(opts.Parallel) | m.rowSetter.neededBits()
	if rec.State&used != 0 {
		t.Errorf("pins still driven after Close: %#x", rec.State&used)
	}
}
