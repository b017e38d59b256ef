package hub75

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
)

// Matrix drives one panel assembly through a caller-provided GPIO bank and
// owns the shared designator map and the active/back canvas pair. After
// Start, exactly one refresh
// goroutine reads the active canvas and drives the hardware; producers draw
// on a canvas from CreateFrameCanvas and hand it over with SwapOnVSync.
type Matrix struct {
	opts Options
	hm   *HardwareMapping
	io   gpio.RegisterIO

	geom        geometry
	mux         MultiplexMapper
	designators *PixelDesignatorMap
	rowSetter   rowAddressSetter
	pulse       pulser

	active  *FrameCanvas
	swapCh  chan swapRequest
	seed    int64
	started bool

	interrupted atomic.Bool
	done        chan struct{}
	wg          sync.WaitGroup
}

type swapRequest struct {
	canvas *FrameCanvas
	reply  chan *FrameCanvas
}

// NewMatrix validates the options, claims the GPIO outputs and builds the
// designator map and initial canvas. The refresh loop starts with Start.
func NewMatrix(opts Options, io gpio.RegisterIO) (*Matrix, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hm, err := LookupHardwareMapping(opts.HardwareMapping)
	if err != nil {
		return nil, err
	}
	if opts.Parallel > hm.MaxParallel {
		return nil, fmt.Errorf("the %s mapping supports %d parallel chain(s), but %d requested",
			hm.Name, hm.MaxParallel, opts.Parallel)
	}

	var mux MultiplexMapper
	panelCols, panelRows := opts.Cols, opts.Rows
	if opts.Multiplexing > 0 {
		if mux, err = NewMultiplexMapper(opts.Multiplexing, panelCols, panelRows); err != nil {
			return nil, err
		}
		panelCols, panelRows = mux.EditColsRows(panelCols, panelRows)
	}

	geom := geometry{
		rows:       panelRows,
		parallel:   opts.Parallel,
		columns:    panelCols * opts.ChainLength,
		doubleRows: panelRows / subPanels,
	}

	rowSetter, err := newRowAddressSetter(opts.RowAddressType, geom.doubleRows, hm)
	if err != nil {
		return nil, err
	}

	designators, err := buildDesignatorMap(hm, geom, ledSequence(opts.LEDSequence), mux)
	if err != nil {
		return nil, err
	}

	allBits := hm.usedBits(opts.Parallel) | rowSetter.neededBits()
	if init, ok := io.(gpio.OutputInitializer); ok {
		got, err := init.InitOutputs(allBits)
		if err != nil {
			return nil, fmt.Errorf("GPIO init: %w", err)
		}
		if got != allBits {
			return nil, fmt.Errorf("GPIO bank does not support all required pins: want %#x, got %#x", allBits, got)
		}
	}

	m := &Matrix{
		opts:        opts,
		hm:          hm,
		io:          io,
		geom:        geom,
		mux:         mux,
		designators: designators,
		rowSetter:   rowSetter,
		pulse:       newPulser(io, hm.OutputEnable, bitplaneTimings(opts.PWMLSBNanoseconds, opts.DitherBits)),
		swapCh:      make(chan swapRequest),
		done:        make(chan struct{}),
	}
	m.active = m.CreateFrameCanvas()
	return m, nil
}

// Width is the user-visible width in pixels.
func (m *Matrix) Width() int { return m.designators.Width() }

// Height is the user-visible height in pixels.
func (m *Matrix) Height() int { return m.designators.Height() }

// CreateFrameCanvas allocates an off-screen canvas sharing this matrix's
// designator map, for use with SwapOnVSync.
func (m *Matrix) CreateFrameCanvas() *FrameCanvas {
	m.seed++
	return newFrameCanvas(&m.opts, m.geom, m.designators, m.seed)
}

// SwapOnVSync hands the given canvas to the refresh engine at the next
// frame boundary and returns the canvas it replaced, which the caller may
// draw the next frame on. Blocks for at most one refresh cycle.
func (m *Matrix) SwapOnVSync(canvas *FrameCanvas) *FrameCanvas {
	req := swapRequest{canvas: canvas, reply: make(chan *FrameCanvas, 1)}
	select {
	case m.swapCh <- req:
		return <-req.reply
	case <-m.done:
		// Refresh already stopped; swap directly.
		old := m.active
		m.active = canvas
		return old
	}
}

// Start launches the refresh goroutine. It may only be called once.
func (m *Matrix) Start() {
	if m.started {
		return
	}
	m.started = true
	m.wg.Add(1)
	go m.refreshLoop()
}

// Close stops the refresh loop, blanks the panels and releases nothing
// else: the GPIO bank stays with the caller that provided it.
func (m *Matrix) Close() {
	m.interrupted.Store(true)
	if m.started {
		m.wg.Wait()
	}
	close(m.done)
}

func (m *Matrix) refreshLoop() {
	defer m.wg.Done()

	// The refresh cadence is the image: keep this goroutine on one
	// dedicated thread and core, ahead of everything the kernel can
	// preempt at normal priority.
	runtime.LockOSThread()
	if err := Realtime(refreshCore(), 99); err != nil {
		log.Printf("FYI: refresh thread staying at normal priority: %v", err)
	}

	frames := 0
	lastReport := time.Now()

	for !m.interrupted.Load() {
		select {
		case req := <-m.swapCh:
			old := m.active
			m.active = req.canvas
			req.reply <- old
		default:
		}

		m.active.dumpToMatrix(m.io, m.hm, m.rowSetter, m.pulse, 0)
		frames++

		if m.opts.ShowRefreshRate {
			if elapsed := time.Since(lastReport); elapsed >= time.Second {
				log.Printf("refresh: %.1f Hz", float64(frames)/elapsed.Seconds())
				frames = 0
				lastReport = time.Now()
			}
		}
	}

	// Leave the wall dark: one blank frame, then all lines low.
	m.active.Clear()
	m.active.dumpToMatrix(m.io, m.hm, m.rowSetter, m.pulse, 0)
	m.pulse.waitPulseFinished()
	m.io.ClearBits(m.hm.usedBits(m.opts.Parallel) | m.rowSetter.neededBits())
}
