package status

import (
	"bytes"
	"testing"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
	"github.com/fcurrie/ledwall-golang/pkg/hub75"
)

func testCanvas(t *testing.T) *hub75.FrameCanvas {
	t.Helper()
	opts := hub75.DefaultOptions()
	opts.Multiplexing = 0
	m, err := hub75.NewMatrix(opts, &gpio.Recorder{})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	return m.CreateFrameCanvas()
}

func TestRenderLightsPixels(t *testing.T) {
	c := testCanvas(t)
	s := New(c.Width(), c.Height(), "Hacklab", "LED System")

	s.Render(c)
	blank := make([]byte, len(c.Serialize()))
	if bytes.Equal(c.Serialize(), blank) {
		t.Fatal("status screen rendered nothing")
	}
}

func TestRenderAnimates(t *testing.T) {
	c := testCanvas(t)
	s := New(c.Width(), c.Height(), "Hacklab", "LED System")

	s.Render(c)
	first := c.Serialize()
	s.Render(c)
	if bytes.Equal(c.Serialize(), first) {
		t.Error("consecutive idle frames are identical; the walking pixel is stuck")
	}
}
