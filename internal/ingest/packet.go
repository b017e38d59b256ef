// Package ingest receives tiled pixel frames over UDP and feeds them to the
// matrix under vsync-aligned double buffering. Several receiver workers
// share one port via SO_REUSEPORT; a producer goroutine assembles their
// tiles into frames and swaps canvases.
package ingest

import "encoding/binary"

// Wire format: an 8-byte little-endian header, followed for tile packets by
// 16x16 RGB triples of uint16 channels (1536 bytes).
const (
	headerSize = 8

	packetTile = 1
	packetFlip = 2

	// TileWords is the number of uint16 channel values in one tile.
	TileWords = 16 * 16 * 3
	// TilePayloadSize is the tile payload length in bytes.
	TilePayloadSize = TileWords * 2

	// FrameRing is how many in-flight frames the slot table distinguishes.
	// Generous: it only needs to exceed network reordering, which is
	// well under 16 frames on any sane path.
	FrameRing = 16
)

type header struct {
	Type  uint8
	Frame uint8 // only the low 4 bits are used (mod FrameRing)
	XPos  uint16
	YPos  uint16
}

func parseHeader(b []byte) header {
	return header{
		Type:  b[0],
		Frame: b[1] & (FrameRing - 1),
		XPos:  binary.LittleEndian.Uint16(b[2:4]),
		YPos:  binary.LittleEndian.Uint16(b[4:6]),
	}
}
