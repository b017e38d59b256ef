package hub75

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Realtime pins the calling OS thread to one core and raises it to
// SCHED_FIFO. Callers must have locked the goroutine to its thread. Both
// steps are best-effort on unprivileged systems; the returned error is for
// logging, not aborting.
func Realtime(core, priority int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("failed to pin to CPU %d: %w", core, err)
	}
	attr := &unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   unix.SCHED_FIFO,
		Priority: uint32(priority),
	}
	if err := unix.SchedSetAttr(0, attr, 0); err != nil {
		return fmt.Errorf("failed to set SCHED_FIFO priority %d: %w", priority, err)
	}
	return nil
}

// refreshCore picks the core the refresh thread runs on: the last one, so
// an isolcpus= boot parameter can reserve it.
func refreshCore() int {
	return runtime.NumCPU() - 1
}
