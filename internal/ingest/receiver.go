package ingest

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/fcurrie/ledwall-golang/pkg/hub75"

	"golang.org/x/sys/unix"
)

// DefaultPort is the wire protocol's UDP port.
const DefaultPort = 9998

const recvBufferSize = 1 << 20

// Flip is one published frame: the tile buffers that arrived for it, in
// row-major tile order, nil where a tile never made it.
type Flip struct {
	Frame int
	Tiles [][]byte
	OK    int
}

// Server owns the receive sockets and the frame assembly state. Every
// worker binds its own SO_REUSEPORT socket so the kernel fans incoming
// datagrams out across them without a userspace lock.
type Server struct {
	tilesX, tilesY int
	fds            []int
	table          *slotTable
	flips          chan Flip
}

// NewServer opens one socket per worker on the given port. Returns an
// error if any bind fails; the caller treats that as fatal.
func NewServer(port, tilesX, tilesY, workers int) (*Server, error) {
	if workers < 1 {
		workers = 1
	}
	s := &Server{
		tilesX: tilesX,
		tilesY: tilesY,
		table:  newSlotTable(tilesX, tilesY),
		flips:  make(chan Flip, 1),
	}
	for i := 0; i < workers; i++ {
		fd, err := openSocket(port)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.fds = append(s.fds, fd)
	}
	return s, nil
}

func openSocket(port int) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_UDP)
	if err != nil {
		return -1, fmt.Errorf("failed to create UDP socket: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("failed to set SO_REUSEPORT: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, recvBufferSize); err != nil {
		log.Printf("FYI: could not grow receive buffer: %v", err)
	}
	if size, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF); err == nil {
		log.Printf("udp: receive buffer %d bytes", size)
	}
	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: port}); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("failed to bind UDP port %d: %w", port, err)
	}
	return fd, nil
}

// Flips delivers published frames. At most one flip waits in the channel;
// while it is waiting, newer flips are dropped rather than queued.
func (s *Server) Flips() <-chan Flip { return s.flips }

// Run blocks until ctx is cancelled and all workers have drained.
func (s *Server) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i, fd := range s.fds {
		wg.Add(1)
		go func(i, fd int) {
			defer wg.Done()
			s.recvLoop(ctx, i, fd)
		}(i, fd)
	}
	wg.Wait()
}

// Close releases the sockets. Call after Run has returned.
func (s *Server) Close() {
	for _, fd := range s.fds {
		unix.Close(fd)
	}
	s.fds = nil
}

// recvLoop is one receiver worker: a pinned, real-time thread that blocks
// in select/recvmsg and files tiles into the slot table.
func (s *Server) recvLoop(ctx context.Context, index, fd int) {
	runtime.LockOSThread()
	core := index % runtime.NumCPU()
	if err := hub75.Realtime(core, 99); err != nil {
		log.Printf("FYI: udp receiver %d staying at normal priority: %v", index, err)
	}

	pool := newTilePool(s.tilesX * s.tilesY * FrameRing)
	hdr := make([]byte, headerSize)

	for ctx.Err() == nil {
		// A bounded wait keeps the worker responsive to shutdown.
		var rfds unix.FdSet
		rfds.Set(fd)
		tv := unix.Timeval{Sec: 1}
		n, err := unix.Select(fd+1, &rfds, nil, nil, &tv)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			log.Printf("udp: select: %v", err)
			return
		}
		if n == 0 || !rfds.IsSet(fd) {
			continue
		}

		// Scatter-read straight into a pool slot so a stored tile is
		// exactly the received payload, no copy.
		payload := pool.current()
		length, _, _, _, err := unix.RecvmsgBuffers(fd, [][]byte{hdr, payload}, nil, 0)
		if err != nil {
			if err != unix.EINTR {
				log.Printf("udp: recvmsg: %v", err)
			}
			continue
		}
		if length < headerSize {
			log.Printf("udp: dropping short packet (%d bytes)", length)
			continue
		}

		h := parseHeader(hdr)
		switch h.Type {
		case packetTile:
			tx := int(h.XPos) / hub75.TileSize
			ty := int(h.YPos) / hub75.TileSize
			if tx >= s.tilesX || ty >= s.tilesY {
				log.Printf("udp: dropping tile outside screen at (%d,%d)", h.XPos, h.YPos)
				continue
			}
			s.table.store(int(h.Frame), tx, ty, payload)
			pool.advance()
		case packetFlip:
			tiles, ok := s.table.flip(int(h.Frame))
			log.Printf("udp: frame %d flip, %.0f%% of tiles arrived",
				h.Frame, float64(ok)*100/float64(s.tilesX*s.tilesY))
			f := Flip{Frame: int(h.Frame), Tiles: tiles, OK: ok}
			select {
			case s.flips <- f:
			default:
				// Producer busy and a flip already waiting; drop this one.
			}
		default:
			log.Printf("udp: dropping packet of unknown type %d", h.Type)
		}
	}
}
