package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
	"github.com/fcurrie/ledwall-golang/pkg/hub75"
)

func testWall(t *testing.T) *hub75.Matrix {
	t.Helper()
	opts := hub75.DefaultOptions()
	opts.Multiplexing = 0
	opts.PWMLSBNanoseconds = 50
	m, err := hub75.NewMatrix(opts, &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	return m
}

func TestProducerConsumesFlips(t *testing.T) {
	m := testWall(t)
	m.Start()
	defer m.Close()

	flips := make(chan Flip, 1)
	p := NewProducer(m, flips, 4, 3, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	tiles := make([][]byte, 4*3)
	tiles[0] = make([]byte, TilePayloadSize)
	flips <- Flip{Frame: 1, Tiles: tiles, OK: 1}

	deadline := time.After(5 * time.Second)
	for len(flips) > 0 {
		select {
		case <-deadline:
			t.Fatal("producer never consumed the flip")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("producer did not stop on cancellation")
	}
}
