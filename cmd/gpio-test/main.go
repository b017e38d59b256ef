// gpio-test walks every pin of a hardware mapping through the character
// device, one at a time, for checking panel wiring with a meter or scope.
// It never touches /dev/gpiomem, so it is safe to run next to nothing.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"
	"github.com/fcurrie/ledwall-golang/pkg/hub75"

	"github.com/warthog618/go-gpiocdev"
)

func main() {
	mapping := flag.String("led-gpio-mapping", "regular", "name of the GPIO mapping to exercise")
	chip := flag.String("chip", "gpiochip0", "GPIO character device")
	hold := flag.Duration("hold", 500*time.Millisecond, "how long to hold each pin high")
	flag.Parse()

	hm, err := hub75.LookupHardwareMapping(*mapping)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pins := mappingPins(hm)
	log.Printf("exercising %d pins of mapping %q on %s", len(pins), hm.Name, *chip)

	lines := make(map[int]*gpiocdev.Line, len(pins))
	defer func() {
		for pin, line := range lines {
			if err := line.Close(); err != nil {
				log.Printf("error closing pin %d: %v", pin, err)
			}
		}
	}()
	for _, pin := range pins {
		line, err := gpiocdev.RequestLine(*chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			log.Fatalf("failed to request GPIO %d: %v", pin, err)
		}
		lines[pin] = line
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		for _, pin := range pins {
			log.Printf("GPIO %d high", pin)
			lines[pin].SetValue(1)
			select {
			case <-sigChan:
				lines[pin].SetValue(0)
				log.Println("done")
				return
			case <-time.After(*hold):
			}
			lines[pin].SetValue(0)
		}
	}
}

// mappingPins lists the pin numbers of every line the mapping assigns.
func mappingPins(h *hub75.HardwareMapping) []int {
	masks := []gpio.Bits{
		h.OutputEnable, h.Clock, h.Strobe,
		h.A, h.B, h.C, h.D, h.E,
		h.P0R1, h.P0G1, h.P0B1, h.P0R2, h.P0G2, h.P0B2,
		h.P1R1, h.P1G1, h.P1B1, h.P1R2, h.P1G2, h.P1B2,
		h.P2R1, h.P2G1, h.P2B1, h.P2R2, h.P2G2, h.P2B2,
	}
	var pins []int
	seen := map[int]bool{}
	for _, mask := range masks {
		for pin := 0; pin < 32; pin++ {
			if mask&(1<<pin) != 0 && !seen[pin] {
				seen[pin] = true
				pins = append(pins, pin)
			}
		}
	}
	return pins
}
