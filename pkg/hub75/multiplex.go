package hub75

import "fmt"

// A MultiplexMapper translates between the coordinates a caller draws at and
// the coordinates the shift registers actually clock through, for panels
// whose scan multiplexing rearranges pixels electrically. The panel
// dimensions are fixed at construction; mappers hold no other state.
type MultiplexMapper interface {
	Name() string

	// EditColsRows converts the per-panel geometry the user configured
	// into the geometry the framebuffer must allocate.
	EditColsRows(cols, rows int) (int, int)

	// GetSizeMapping is the inverse: the user-visible dimensions for a
	// given matrix geometry.
	GetSizeMapping(matrixWidth, matrixHeight int) (visibleWidth, visibleHeight int)

	// MapVisibleToMatrix translates one visible pixel into matrix
	// coordinates. Used once while the designator map is built; never on
	// the refresh path.
	MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (matrixX, matrixY int)
}

// multiplexMapper carries the shared chain/parallel decomposition; the
// per-panel permutation is the only part that differs between variants.
type multiplexMapper struct {
	name      string
	stretch   int
	panelCols int
	panelRows int
	mapPanel  func(m *multiplexMapper, x, y int) (int, int)
}

func (m *multiplexMapper) Name() string { return m.name }

func (m *multiplexMapper) EditColsRows(cols, rows int) (int, int) {
	return cols * m.stretch, rows / m.stretch
}

func (m *multiplexMapper) GetSizeMapping(matrixWidth, matrixHeight int) (int, int) {
	return matrixWidth / m.stretch, matrixHeight * m.stretch
}

func (m *multiplexMapper) MapVisibleToMatrix(matrixWidth, matrixHeight, visibleX, visibleY int) (int, int) {
	chainedPanel := visibleX / m.panelCols
	parallelPanel := visibleY / m.panelRows

	newX, newY := m.mapPanel(m, visibleX%m.panelCols, visibleY%m.panelRows)

	matrixX := chainedPanel*m.stretch*m.panelCols + newX
	matrixY := parallelPanel*m.panelRows/m.stretch + newY
	return matrixX, matrixY
}

// stripe: the top half of each half-row lives one panel width to the right.
func mapStripePanel(m *multiplexMapper, x, y int) (int, int) {
	isTopStripe := y%(m.panelRows/2) < m.panelRows/4
	mx := x
	if isTopStripe {
		mx = x + m.panelCols
	}
	my := (y/(m.panelRows/2))*(m.panelRows/4) + y%(m.panelRows/4)
	return mx, my
}

// checkered: a 2x2 shuffle over row-halves and column-halves.
func mapCheckeredPanel(m *multiplexMapper, x, y int) (int, int) {
	isTopCheck := y%(m.panelRows/2) < m.panelRows/4
	isLeftCheck := x < m.panelCols/2
	var mx int
	if isTopCheck {
		if isLeftCheck {
			mx = x + m.panelCols/2
		} else {
			mx = x + m.panelCols
		}
	} else {
		if isLeftCheck {
			mx = x
		} else {
			mx = x + m.panelCols/2
		}
	}
	my := (y/(m.panelRows/2))*(m.panelRows/4) + y%(m.panelRows/4)
	return mx, my
}

// spiral: quarter-columns of the top stripe are mirrored.
func mapSpiralPanel(m *multiplexMapper, x, y int) (int, int) {
	isTopStripe := y%(m.panelRows/2) < m.panelRows/4
	panelQuarter := m.panelCols / 4
	quarter := x / panelQuarter
	offset := x % panelQuarter
	var mx int
	if isTopStripe {
		mx = 2*quarter*panelQuarter + panelQuarter - 1 - offset
	} else {
		mx = 2*quarter*panelQuarter + panelQuarter + offset
	}
	my := (y/(m.panelRows/2))*(m.panelRows/4) + y%(m.panelRows/4)
	return mx, my
}

// zStripe: 8x4 tiles interleaved horizontally; the shift pair distinguishes
// the ZStripe and ZnMirrorZStripe wirings.
func mapZStripePanel(evenVBlockOffset, oddVBlockOffset int) func(*multiplexMapper, int, int) (int, int) {
	const tileWidth = 8
	const tileHeight = 4
	return func(m *multiplexMapper, x, y int) (int, int) {
		vertBlockIsOdd := (y / tileHeight) % 2

		evenShift := (1 - vertBlockIsOdd) * evenVBlockOffset
		oddShift := vertBlockIsOdd * oddVBlockOffset

		mx := x + ((x+evenShift)/tileWidth)*tileWidth + oddShift
		my := y%tileHeight + tileHeight*(y/(tileHeight*2))
		return mx, my
	}
}

// coreman: piecewise on the y range with a left/right check.
func mapCoremanPanel(m *multiplexMapper, x, y int) (int, int) {
	isLeftCheck := x < m.panelCols/2
	if y <= 7 || (y >= 16 && y <= 23) {
		mx := (x/(m.panelCols/2))*m.panelCols + x%(m.panelCols/2)
		my := y
		if y&(m.panelRows/4) == 0 {
			my = (y/(m.panelRows/2))*(m.panelRows/4) + y%(m.panelRows/4)
		}
		return mx, my
	}
	var mx int
	if isLeftCheck {
		mx = x + m.panelCols/2
	} else {
		mx = x + m.panelCols
	}
	my := (y/(m.panelRows/2))*(m.panelRows/4) + y%(m.panelRows/4)
	return mx, my
}

// absen: a measured 64x16 block permutation, tiled across the panel.
func mapAbsenPanel(m *multiplexMapper, x, y int) (int, int) {
	e := &absenMapping[x%64][y%16]
	return int(e[0]) + x - x%64, int(e[1]) + y - y%16
}

type muxEntry struct {
	name  string
	build func(panelCols, panelRows int) *multiplexMapper
}

func simpleMux(name string, stretch int, mapPanel func(*multiplexMapper, int, int) (int, int)) muxEntry {
	return muxEntry{name: name, build: func(cols, rows int) *multiplexMapper {
		return &multiplexMapper{name: name, stretch: stretch, panelCols: cols, panelRows: rows, mapPanel: mapPanel}
	}}
}

// Registered mappers, in CLI order: Options.Multiplexing is the 1-based
// index into this list, 0 meaning none.
var muxRegistry = []muxEntry{
	simpleMux("Stripe", 2, mapStripePanel),
	simpleMux("Checkered", 2, mapCheckeredPanel),
	simpleMux("Spiral", 2, mapSpiralPanel),
	simpleMux("ZStripe", 2, mapZStripePanel(0, 8)),
	simpleMux("ZnMirrorZStripe", 2, mapZStripePanel(4, 4)),
	simpleMux("coreman", 2, mapCoremanPanel),
	simpleMux("Absen", 1, mapAbsenPanel),
}

// MultiplexMapperNames lists the registered mappers in index order, for
// configuration error messages and --help output.
func MultiplexMapperNames() []string {
	names := make([]string, len(muxRegistry))
	for i, e := range muxRegistry {
		names[i] = e.name
	}
	return names
}

// NewMultiplexMapper builds the mapper at the given 1-based registry index
// for a panel of the given pre-multiplex dimensions.
func NewMultiplexMapper(index, panelCols, panelRows int) (MultiplexMapper, error) {
	if index < 1 || index > len(muxRegistry) {
		return nil, fmt.Errorf("multiplexing index %d out of range 1..%d", index, len(muxRegistry))
	}
	return muxRegistry[index-1].build(panelCols, panelRows), nil
}
