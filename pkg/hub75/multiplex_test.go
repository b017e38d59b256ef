package hub75

import (
	"testing"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

func TestMultiplexMapperNames(t *testing.T) {
	names := MultiplexMapperNames()
	want := []string{"Stripe", "Checkered", "Spiral", "ZStripe", "ZnMirrorZStripe", "coreman", "Absen"}
	if len(names) != len(want) {
		t.Fatalf("registered %d mappers, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("mapper %d = %q, want %q", i+1, names[i], want[i])
		}
	}
}

func TestNewMultiplexMapperRange(t *testing.T) {
	if _, err := NewMultiplexMapper(0, 32, 32); err == nil {
		t.Error("index 0 must be rejected (0 means none, resolved by the caller)")
	}
	if _, err := NewMultiplexMapper(len(muxRegistry)+1, 32, 32); err == nil {
		t.Error("out-of-range index must be rejected")
	}
}

// panelFor picks a geometry each wiring actually ships with.
func panelFor(name string) (cols, rows int) {
	if name == "Absen" {
		return 64, 16
	}
	return 64, 32
}

func TestMapVisibleToMatrixStaysInBounds(t *testing.T) {
	for idx := 1; idx <= len(muxRegistry); idx++ {
		cols, rows := panelFor(muxRegistry[idx-1].name)
		m, err := NewMultiplexMapper(idx, cols, rows)
		if err != nil {
			t.Fatalf("NewMultiplexMapper(%d) error = %v", idx, err)
		}
		t.Run(m.Name(), func(t *testing.T) {
			matrixW, matrixH := m.EditColsRows(cols, rows)
			visW, visH := m.GetSizeMapping(matrixW, matrixH)
			if visW != cols || visH != rows {
				t.Fatalf("GetSizeMapping = %dx%d, want the panel size %dx%d", visW, visH, cols, rows)
			}
			for y := 0; y < visH; y++ {
				for x := 0; x < visW; x++ {
					mx, my := m.MapVisibleToMatrix(matrixW, matrixH, x, y)
					if mx < 0 || mx >= matrixW || my < 0 || my >= matrixH {
						t.Fatalf("(%d,%d) mapped outside the matrix: (%d,%d) not in %dx%d",
							x, y, mx, my, matrixW, matrixH)
					}
				}
			}
		})
	}
}

func TestStretchMapperGeometry(t *testing.T) {
	// A stretch-2 wiring on a 32-row panel allocates 16 rows at twice the
	// columns, while the visible size stays the configured one.
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.ChainLength, opts.Parallel = 32, 32, 1, 1
	opts.Multiplexing = 1 // Stripe

	m, err := NewMatrix(opts, &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	if m.geom.rows != 16 || m.geom.columns != 64 {
		t.Errorf("matrix geometry = %d rows x %d cols, want 16x64", m.geom.rows, m.geom.columns)
	}
	if m.Width() != 32 || m.Height() != 32 {
		t.Errorf("visible size = %dx%d, want 32x32", m.Width(), m.Height())
	}
}

func TestZStripeVariantsDiffer(t *testing.T) {
	z, _ := NewMultiplexMapper(4, 64, 32)
	zn, _ := NewMultiplexMapper(5, 64, 32)
	matrixW, matrixH := z.EditColsRows(64, 32)

	same := true
	for y := 0; y < 32 && same; y++ {
		for x := 0; x < 64; x++ {
			zx, zy := z.MapVisibleToMatrix(matrixW, matrixH, x, y)
			nx, ny := zn.MapVisibleToMatrix(matrixW, matrixH, x, y)
			if zx != nx || zy != ny {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("ZStripe and ZnMirrorZStripe produced identical mappings")
	}
}

func TestAbsenMappingTiles(t *testing.T) {
	m, _ := NewMultiplexMapper(7, 64, 16)
	matrixW, matrixH := m.EditColsRows(64, 16)
	if matrixW != 64 || matrixH != 16 {
		t.Fatalf("Absen is stretch 1, geometry must stay 64x16, got %dx%d", matrixW, matrixH)
	}
	// Spot checks straight from the measured block table.
	tests := []struct{ x, y, wantX, wantY int }{
		{0, 0, 3, 0},
		{3, 0, 0, 0},
		{4, 0, 15, 0},
		{0, 4, 7, 0},
		{0, 8, 3, 4},
		{63, 15, 56, 15},
	}
	for _, tt := range tests {
		mx, my := m.MapVisibleToMatrix(matrixW, matrixH, tt.x, tt.y)
		if mx != tt.wantX || my != tt.wantY {
			t.Errorf("Absen(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, mx, my, tt.wantX, tt.wantY)
		}
	}
}
