package ingest

import (
	"context"
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/hub75"
)

// idleTimeout is how long the producer waits for a flip before it decides
// nobody is sending and shows the status screen instead.
const idleTimeout = 3 * time.Second

// Producer moves published frames onto the matrix: it draws each flip's
// tiles into the back canvas and swaps it in at vsync. It is the only
// goroutine that touches the back canvas.
type Producer struct {
	matrix *hub75.Matrix
	flips  <-chan Flip
	idle   func(*hub75.FrameCanvas)

	tilesX, tilesY int

	// Last fully drawn frame, used to backfill tiles a flip is missing.
	fallbackR []uint16
	fallbackG []uint16
	fallbackB []uint16
}

// NewProducer wires a flip source to a matrix. idle renders the screen
// shown when no sender is active.
func NewProducer(m *hub75.Matrix, flips <-chan Flip, tilesX, tilesY int, idle func(*hub75.FrameCanvas)) *Producer {
	n := m.Width() * m.Height()
	return &Producer{
		matrix:    m,
		flips:     flips,
		idle:      idle,
		tilesX:    tilesX,
		tilesY:    tilesY,
		fallbackR: make([]uint16, n),
		fallbackG: make([]uint16, n),
		fallbackB: make([]uint16, n),
	}
}

// Run blocks until ctx is cancelled.
func (p *Producer) Run(ctx context.Context) {
	canvas := p.matrix.CreateFrameCanvas()
	timer := time.NewTimer(idleTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case flip := <-p.flips:
			canvas.PrepareDump(p.fallbackR, p.fallbackG, p.fallbackB, flip.Tiles, p.tilesX, p.tilesY)
			p.rememberFrame(flip.Tiles)
			canvas = p.matrix.SwapOnVSync(canvas)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(idleTimeout)

		case <-timer.C:
			// No sender: show the wall is alive and reachable.
			if p.idle != nil {
				p.idle(canvas)
				canvas = p.matrix.SwapOnVSync(canvas)
			}
			timer.Reset(idleTimeout)
		}
	}
}

// rememberFrame folds arrived tiles into the fallback image so the next
// incomplete frame reuses the freshest pixels instead of going dark.
func (p *Producer) rememberFrame(tiles [][]byte) {
	width := p.matrix.Width()
	for ty := 0; ty < p.tilesY; ty++ {
		for tx := 0; tx < p.tilesX; tx++ {
			tile := tiles[ty*p.tilesX+tx]
			if tile == nil {
				continue
			}
			for y := 0; y < hub75.TileSize; y++ {
				for x := 0; x < hub75.TileSize; x++ {
					src := (y*hub75.TileSize + x) * 6
					dst := (ty*hub75.TileSize+y)*width + tx*hub75.TileSize + x
					p.fallbackR[dst] = uint16(tile[src]) | uint16(tile[src+1])<<8
					p.fallbackG[dst] = uint16(tile[src+2]) | uint16(tile[src+3])<<8
					p.fallbackB[dst] = uint16(tile[src+4]) | uint16(tile[src+5])<<8
				}
			}
		}
	}
}
