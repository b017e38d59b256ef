// Package status renders the idle screen the wall shows when no sender is
// active: a dim gradient, the wall's label and IP address, and a walking
// pixel as a liveness tell.
package status

import (
	"image"
	"image/color"
	"log"
	"net"
	"strings"

	"github.com/fcurrie/ledwall-golang/pkg/hub75"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// chevronsSVG is the "data flows in here" marker drawn at the top.
const chevronsSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 12">
  <path d="M2 11 L6 7 L10 11" stroke="#c8c8c8" stroke-width="2" fill="none"/>
  <path d="M10 11 L14 7 L18 11" stroke="#c8c8c8" stroke-width="2" fill="none"/>
  <path d="M2 5 L6 1 L10 5" stroke="#969696" stroke-width="2" fill="none"/>
  <path d="M10 5 L14 1 L18 5" stroke="#969696" stroke-width="2" fill="none"/>
</svg>`

// Screen holds the parsed artwork and the animation state.
type Screen struct {
	width, height  int
	label1, label2 string
	icon           *oksvg.SvgIcon
	tick           int
}

// New prepares a status screen for a wall of the given visible size.
func New(width, height int, label1, label2 string) *Screen {
	s := &Screen{width: width, height: height, label1: label1, label2: label2}
	icon, err := oksvg.ReadIconStream(strings.NewReader(chevronsSVG))
	if err != nil {
		// The embedded artwork is compiled in; failing to parse it is
		// a programming error, but the screen still works without it.
		log.Printf("status: failed to parse icon: %v", err)
		return s
	}
	s.icon = icon
	return s
}

// Render draws the status screen onto the canvas. Each call advances the
// walking pixel so consecutive idle frames are visibly distinct.
func (s *Screen) Render(c *hub75.FrameCanvas) {
	c.SetBrightness(30)
	c.SetLuminanceCorrect(true)
	c.Fill(1, 1, 1)

	// Vertical warm gradient, brightest on the top row, black on the bottom.
	for y := 0; y < s.height; y++ {
		yy := uint16(s.height - y - 1)
		for x := 0; x < s.width; x++ {
			c.SetPixelHDR(x, y, yy, yy/2, yy/4)
		}
	}

	s.tick = (s.tick + 1) % s.width
	c.SetPixelHDR(s.tick, 0, 3000, 3000, 3000)

	overlay := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.drawIcon(overlay)

	centerRow := s.height / 2
	centerText(overlay, centerRow-6, s.label1)
	centerText(overlay, centerRow, s.label2)
	centerText(overlay, s.height-8, localIP())

	// Blit the overlay on top of the gradient.
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r, g, b, a := overlay.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			c.SetPixel(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
}

func (s *Screen) drawIcon(dst *image.RGBA) {
	if s.icon == nil {
		return
	}
	w := 24
	if w > s.width {
		w = s.width
	}
	s.icon.SetTarget(float64((s.width-w)/2), 1, float64(w), float64(w)/2)
	scanner := rasterx.NewScannerGV(s.width, s.height, dst, dst.Bounds())
	s.icon.Draw(rasterx.NewDasher(s.width, s.height, scanner), 1.0)
}

func centerText(dst *image.RGBA, y int, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{200, 200, 200, 255}),
		Face: face,
		Dot:  fixed.P((dst.Rect.Dx()-width)/2, y+face.Ascent),
	}
	d.DrawString(text)
}

// localIP picks the wall's first global unicast IPv4 address, so the screen
// doubles as a "where do I send" hint.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.To4() == nil {
			continue
		}
		if ipNet.IP.IsLoopback() || ipNet.IP.IsLinkLocalUnicast() {
			continue
		}
		return ipNet.IP.String()
	}
	return ""
}
