package hub75

import (
	"time"

	"github.com/fcurrie/ledwall-golang/pkg/gpio"

	"golang.org/x/sys/unix"
)

// pulser generates the output-enable pulse whose length encodes the weight
// of a bitplane. sendPulse returns immediately; the pulse keeps running
// while the next plane is shifted in and waitPulseFinished closes it.
type pulser interface {
	sendPulse(plane int)
	waitPulseFinished()
}

// bitplaneTimings builds the per-plane pulse lengths: BCM doubling from the
// base width, with the lowest ditherBits planes held at the base so they can
// be noise-dithered instead of time-weighted.
func bitplaneTimings(lsbNanoseconds, ditherBits int) []time.Duration {
	timings := make([]time.Duration, bitPlanes)
	d := time.Duration(lsbNanoseconds) * time.Nanosecond
	for b := 0; b < bitPlanes; b++ {
		timings[b] = d
		if b >= ditherBits {
			d *= 2
		}
	}
	return timings
}

// newPulser picks the best available backend. Without a kernel PWM channel
// wired to the OE pin the calibrated busy-wait timer is the only accurate
// option, and it is what this returns.
func newPulser(io gpio.RegisterIO, oe gpio.Bits, timings []time.Duration) pulser {
	return &timerPulser{io: io, oe: oe, timings: timings}
}

// timerPulser holds OE active (low) and burns the tail of the interval on
// the monotonic clock. Pulses long enough to survive scheduler jitter are
// mostly slept away.
type timerPulser struct {
	io      gpio.RegisterIO
	oe      gpio.Bits
	timings []time.Duration
	end     time.Duration
	active  bool
}

// sleepSlack is how much of a pulse is left to spinning rather than
// nanosleep, covering wakeup latency at real-time priority.
const sleepSlack = 30 * time.Microsecond

func monotonicNow() time.Duration {
	var ts unix.Timespec
	unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)
}

func (p *timerPulser) sendPulse(plane int) {
	p.io.ClearBits(p.oe) // active low
	p.end = monotonicNow() + p.timings[plane]
	p.active = true
}

func (p *timerPulser) waitPulseFinished() {
	if !p.active {
		return
	}
	remaining := p.end - monotonicNow()
	if remaining > sleepSlack {
		ts := unix.NsecToTimespec(int64(remaining - sleepSlack))
		unix.Nanosleep(&ts, nil)
	}
	for monotonicNow() < p.end {
	}
	p.io.SetBits(p.oe)
	p.active = false
}
