package ingest

import (
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"
)

func tilePacket(frame uint8, xpos, ypos uint16, fill uint16) []byte {
	pkt := make([]byte, headerSize+TilePayloadSize)
	pkt[0] = packetTile
	pkt[1] = frame
	binary.LittleEndian.PutUint16(pkt[2:4], xpos)
	binary.LittleEndian.PutUint16(pkt[4:6], ypos)
	for i := 0; i < TileWords; i++ {
		binary.LittleEndian.PutUint16(pkt[headerSize+i*2:], fill)
	}
	return pkt
}

func flipPacket(frame uint8) []byte {
	pkt := make([]byte, headerSize)
	pkt[0] = packetFlip
	pkt[1] = frame
	return pkt
}

func TestParseHeader(t *testing.T) {
	raw := []byte{1, 0x23, 0x10, 0x00, 0x20, 0x00, 0, 0}
	h := parseHeader(raw)
	if h.Type != packetTile {
		t.Errorf("Type = %d, want %d", h.Type, packetTile)
	}
	if h.Frame != 0x03 {
		t.Errorf("Frame = %d, want the low 4 bits of 0x23", h.Frame)
	}
	if h.XPos != 16 || h.YPos != 32 {
		t.Errorf("position = (%d,%d), want (16,32)", h.XPos, h.YPos)
	}
}

func TestTilePoolBumpAndWrap(t *testing.T) {
	p := newTilePool(3)
	a := p.current()
	if got := p.current(); &got[0] != &a[0] {
		t.Error("current must be stable until advance")
	}
	p.advance()
	b := p.current()
	p.advance()
	c := p.current()
	p.advance()
	if &a[0] == &b[0] || &b[0] == &c[0] || &a[0] == &c[0] {
		t.Error("pool handed out overlapping buffers")
	}
	if d := p.current(); &d[0] != &a[0] {
		t.Error("pool must wrap back to the first slot")
	}
	for _, buf := range [][]byte{a, b, c} {
		if len(buf) != TilePayloadSize {
			t.Errorf("tile buffer length %d, want %d", len(buf), TilePayloadSize)
		}
	}
}

func TestSlotTableStoreAndFlip(t *testing.T) {
	table := newSlotTable(4, 3)
	tile := make([]byte, TilePayloadSize)
	table.store(5, 1, 2, tile)

	tiles, ok := table.flip(5)
	if ok != 1 {
		t.Fatalf("flip reported %d tiles, want 1", ok)
	}
	if tiles[2*4+1] == nil {
		t.Fatal("stored tile missing from flip")
	}
	for i, got := range tiles {
		if i != 2*4+1 && got != nil {
			t.Errorf("slot %d unexpectedly filled", i)
		}
	}

	// The flip clears the ring slot for the next lap of that index.
	if tiles, ok = table.flip(5); ok != 0 {
		t.Errorf("second flip of the same frame reported %d tiles, want 0", ok)
	}
}

func TestServerAssemblesFrames(t *testing.T) {
	const port = 39998
	srv, err := NewServer(port, 4, 3, 2)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	conn, err := net.Dial("udp", "127.0.0.1:39998")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// A tile at pixel (16,32) lands in slot (1,2); then publish frame 7.
	if _, err := conn.Write(tilePacket(7, 16, 32, 0x0fff)); err != nil {
		t.Fatalf("send tile: %v", err)
	}
	// Out-of-range and short packets must be dropped silently.
	conn.Write(tilePacket(7, 400, 0, 1))
	conn.Write([]byte{1, 2, 3})
	time.Sleep(50 * time.Millisecond)
	if _, err := conn.Write(flipPacket(7)); err != nil {
		t.Fatalf("send flip: %v", err)
	}

	select {
	case flip := <-srv.Flips():
		if flip.Frame != 7 {
			t.Errorf("Frame = %d, want 7", flip.Frame)
		}
		if flip.OK != 1 {
			t.Errorf("OK = %d, want 1", flip.OK)
		}
		tile := flip.Tiles[2*4+1]
		if tile == nil {
			t.Fatal("tile (1,2) missing from flip")
		}
		if got := binary.LittleEndian.Uint16(tile); got != 0x0fff {
			t.Errorf("tile payload = %#x, want 0x0fff", got)
		}
		for i, other := range flip.Tiles {
			if i != 2*4+1 && other != nil {
				t.Errorf("slot %d filled by a dropped packet", i)
			}
		}
	case <-time.After(3 * time.Second):
		t.Fatal("flip never arrived")
	}
}

func TestServerBindFailure(t *testing.T) {
	a, err := NewServer(39997, 4, 3, 1)
	if err != nil {
		t.Fatalf("first bind failed: %v", err)
	}
	defer a.Close()

	// A second server may share the port: SO_REUSEPORT is the whole
	// point. An invalid port has to fail.
	if _, err := NewServer(-1, 4, 3, 1); err == nil {
		t.Error("bind to invalid port must fail")
	}
}
