package hub75

import (
	"testing"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

func testMapping(t *testing.T) *HardwareMapping {
	t.Helper()
	hm, err := LookupHardwareMapping("regular")
	if err != nil {
		t.Fatalf("LookupHardwareMapping() error = %v", err)
	}
	return hm
}

func TestNewRowAddressSetter(t *testing.T) {
	hm := testMapping(t)
	tests := []struct {
		name       string
		addrType   int
		doubleRows int
		wantErr    bool
	}{
		{name: "direct", addrType: RowAddressDirect, doubleRows: 16},
		{name: "direct at limit", addrType: RowAddressDirect, doubleRows: 32},
		{name: "direct too tall", addrType: RowAddressDirect, doubleRows: 64, wantErr: true},
		{name: "shift register", addrType: RowAddressShiftRegister, doubleRows: 16},
		{name: "abcd", addrType: RowAddressDirectABCD, doubleRows: 4},
		{name: "unknown", addrType: 7, doubleRows: 16, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newRowAddressSetter(tt.addrType, tt.doubleRows, hm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newRowAddressSetter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s.neededBits() == 0 {
				t.Error("setter claims no GPIO bits")
			}
		})
	}
}

func TestDirectRowAddress(t *testing.T) {
	hm := testMapping(t)
	s, err := newRowAddressSetter(RowAddressDirect, 32, hm)
	if err != nil {
		t.Fatal(err)
	}
	if want := hm.A | hm.B | hm.C | hm.D | hm.E; s.neededBits() != want {
		t.Errorf("neededBits() = %#x, want %#x", s.neededBits(), want)
	}

	rec := &gpio.Recorder{}
	s.setRowAddress(rec, 21) // 0b10101 -> A, C, E
	if want := hm.A | hm.C | hm.E; rec.State&s.neededBits() != want {
		t.Errorf("row 21 drove %#x, want %#x", rec.State&s.neededBits(), want)
	}
}

func TestDirectABCDRowAddressLowActive(t *testing.T) {
	hm := testMapping(t)
	s, err := newRowAddressSetter(RowAddressDirectABCD, 4, hm)
	if err != nil {
		t.Fatal(err)
	}

	wantHigh := []gpio.Bits{
		hm.B | hm.C | hm.D,
		hm.A | hm.C | hm.D,
		hm.A | hm.B | hm.D,
		hm.A | hm.B | hm.C,
	}
	for row, want := range wantHigh {
		rec := &gpio.Recorder{}
		s.setRowAddress(rec, row)
		if rec.State&s.neededBits() != want {
			t.Errorf("row %d drove %#x, want %#x", row, rec.State&s.neededBits(), want)
		}
	}
}

func TestShiftRegisterRowAddress(t *testing.T) {
	hm := testMapping(t)
	const doubleRows = 8
	s, err := newRowAddressSetter(RowAddressShiftRegister, doubleRows, hm)
	if err != nil {
		t.Fatal(err)
	}

	rec := &gpio.Recorder{}
	const row = 2
	s.setRowAddress(rec, row)

	// Replay the ops: count rising clock edges and note where data was low.
	clockHigh := false
	var ticks, lowTick int
	lowTick = -1
	state := gpio.Bits(0)
	for _, op := range rec.Ops {
		switch op.Kind {
		case gpio.OpSet:
			if op.Value&hm.A != 0 && !clockHigh {
				clockHigh = true
				if ticks < doubleRows && state&hm.B == 0 {
					lowTick = ticks
				}
				ticks++
			}
			state |= op.Value
		case gpio.OpClear:
			if op.Value&hm.A != 0 {
				clockHigh = false
			}
			state &^= op.Value
		}
	}
	if ticks != doubleRows+1 {
		t.Errorf("clocked %d ticks, want %d data ticks plus the terminator", ticks, doubleRows+1)
	}
	if want := doubleRows - 1 - row; lowTick != want {
		t.Errorf("data low on tick %d, want %d", lowTick, want)
	}
}

func TestRowAddressRepeatIsNoOp(t *testing.T) {
	hm := testMapping(t)
	for _, addrType := range []int{RowAddressDirect, RowAddressShiftRegister, RowAddressDirectABCD} {
		s, err := newRowAddressSetter(addrType, 4, hm)
		if err != nil {
			t.Fatal(err)
		}
		rec := &gpio.Recorder{}
		s.setRowAddress(rec, 3)
		rec.Reset()
		s.setRowAddress(rec, 3)
		if len(rec.Ops) != 0 {
			t.Errorf("type %d: repeated setRowAddress performed %d GPIO writes, want 0", addrType, len(rec.Ops))
		}
	}
}
