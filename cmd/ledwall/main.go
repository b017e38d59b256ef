// ledwall drives a chain of HUB75 LED panels from GPIO and feeds them with
// pixel tiles received over UDP. With no sender active it shows a status
// screen with its address.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"os/user"
	"strconv"
	"sync"
	"syscall"

	"github.com/fcurrie/ledwall-golang/internal/config"
	"github.com/fcurrie/ledwall-golang/internal/ingest"
	"github.com/fcurrie/ledwall-golang/internal/status"
	"github.com/fcurrie/ledwall-golang/pkg/gpio"
	"github.com/fcurrie/ledwall-golang/pkg/hub75"

	"golang.org/x/sys/unix"
)

const (
	exitConfig = 1
	exitGPIO   = 2
	exitSocket = 3
)

func main() {
	configPath := flag.String("config", "", "path to config file")

	hardwareMapping := flag.String("led-gpio-mapping", "", "name of the GPIO mapping")
	rows := flag.Int("led-rows", 0, "panel rows")
	cols := flag.Int("led-cols", 0, "panel columns")
	chain := flag.Int("led-chain", 0, "daisy-chained panels per line")
	parallel := flag.Int("led-parallel", 0, "parallel chains (1..3)")
	multiplexing := flag.Int("led-multiplexing", -1, "multiplex mapper index, 0 for none")
	pwmBits := flag.Int("led-pwm-bits", 0, "PWM bits (1..11)")
	pwmLSB := flag.Int("led-pwm-lsb-nanoseconds", 0, "base BCM pulse width")
	ditherBits := flag.Int("led-dither-bits", -1, "planes to time-dither")
	brightness := flag.Int("led-brightness", 0, "brightness percent (1..100)")
	scanMode := flag.Int("led-scan-mode", -1, "0 progressive, 1 interlaced")
	rowAddrType := flag.Int("led-row-addr-type", -1, "0 direct, 1 shift register, 2 direct ABCD")
	ledSequence := flag.String("led-rgb-sequence", "", "wire order of the colour channels")
	inverse := flag.Bool("led-inverse", false, "invert colours (common-anode panels)")
	showRefresh := flag.Bool("led-show-refresh", false, "log the refresh rate")
	slowdown := flag.Int("led-slowdown-gpio", -1, "GPIO write pause factor")
	dropPrivs := flag.Bool("drop-privileges", true, "drop to an unprivileged user after init")
	port := flag.Int("port", 0, "UDP port to listen on")
	receivers := flag.Int("receivers", 0, "number of UDP receiver workers")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("failed to load config from %s: %v", *configPath, err)
			os.Exit(exitConfig)
		}
		cfg = loaded
	}

	applyFlags(cfg, map[string]func(){
		"led-gpio-mapping":        func() { cfg.Matrix.HardwareMapping = *hardwareMapping },
		"led-rows":                func() { cfg.Matrix.Rows = *rows },
		"led-cols":                func() { cfg.Matrix.Cols = *cols },
		"led-chain":               func() { cfg.Matrix.ChainLength = *chain },
		"led-parallel":            func() { cfg.Matrix.Parallel = *parallel },
		"led-multiplexing":        func() { cfg.Matrix.Multiplexing = *multiplexing },
		"led-pwm-bits":            func() { cfg.Matrix.PWMBits = *pwmBits },
		"led-pwm-lsb-nanoseconds": func() { cfg.Matrix.PWMLSBNanoseconds = *pwmLSB },
		"led-dither-bits":         func() { cfg.Matrix.DitherBits = *ditherBits },
		"led-brightness":          func() { cfg.Matrix.Brightness = *brightness },
		"led-scan-mode":           func() { cfg.Matrix.ScanMode = *scanMode },
		"led-row-addr-type":       func() { cfg.Matrix.RowAddressType = *rowAddrType },
		"led-rgb-sequence":        func() { cfg.Matrix.LEDSequence = *ledSequence },
		"led-inverse":             func() { cfg.Matrix.InverseColors = *inverse },
		"led-show-refresh":        func() { cfg.Matrix.ShowRefreshRate = *showRefresh },
		"led-slowdown-gpio":       func() { cfg.Matrix.GPIOSlowdown = *slowdown },
		"drop-privileges":         func() { cfg.Matrix.DropPrivileges = *dropPrivs },
		"port":                    func() { cfg.Network.Port = *port },
		"receivers":               func() { cfg.Network.Receivers = *receivers },
	})

	bank, cleanup, err := openBank(cfg.Matrix.GPIOSlowdown)
	if err != nil {
		log.Printf("GPIO init failed: %v", err)
		os.Exit(exitGPIO)
	}
	defer cleanup()

	matrix, err := hub75.NewMatrix(cfg.Matrix, bank)
	if err != nil {
		log.Printf("matrix init failed: %v", err)
		os.Exit(exitConfig)
	}

	tilesX := matrix.Width() / hub75.TileSize
	tilesY := matrix.Height() / hub75.TileSize
	server, err := ingest.NewServer(cfg.Network.Port, tilesX, tilesY, cfg.Network.Receivers)
	if err != nil {
		log.Printf("UDP init failed: %v", err)
		os.Exit(exitSocket)
	}
	defer server.Close()

	// The refresh loop cannot afford page faults once running.
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		log.Printf("FYI: mlockall: %v", err)
	}

	// Start the refresh thread while still privileged so it can claim its
	// real-time priority, then let go of root.
	matrix.Start()
	if cfg.Matrix.DropPrivileges {
		dropPrivileges()
	}

	screen := status.New(matrix.Width(), matrix.Height(), cfg.Labels.Line1, cfg.Labels.Line2)
	idle := func(c *hub75.FrameCanvas) {
		log.Printf("showing status screen %dx%d", c.Width(), c.Height())
		screen.Render(c)
	}
	producer := ingest.NewProducer(matrix, server.Flips(), tilesX, tilesY, idle)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		server.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		producer.Run(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("received %v, shutting down", sig)

	cancel()
	wg.Wait()
	matrix.Close()
}

// applyFlags runs the setter of every flag that was given on the command
// line, so flags override the config file without clobbering it.
func applyFlags(cfg *config.Config, setters map[string]func()) {
	flag.Visit(func(f *flag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set()
		}
	})
}

// openBank prefers the memory mapped register bank; boards without
// /dev/gpiomem fall back to the character device, which is only fast
// enough for wiring checks.
func openBank(slowdown int) (gpio.RegisterIO, func(), error) {
	mem, err := gpio.OpenMemBank(slowdown)
	if err == nil {
		return mem, func() { mem.Close() }, nil
	}
	log.Printf("FYI: /dev/gpiomem unavailable (%v), falling back to gpiochip0", err)
	cdev, cerr := gpio.OpenCdevBank("")
	if cerr != nil {
		return nil, nil, err
	}
	return cdev, func() { cdev.Close() }, nil
}

// dropPrivileges switches to the daemon user once the hardware and sockets
// are claimed.
func dropPrivileges() {
	if os.Geteuid() != 0 {
		return
	}
	uid, gid := 1, 1
	if u, err := user.Lookup("daemon"); err == nil {
		if v, err := strconv.Atoi(u.Uid); err == nil {
			uid = v
		}
		if v, err := strconv.Atoi(u.Gid); err == nil {
			gid = v
		}
	}
	if err := unix.Setgid(gid); err != nil {
		log.Printf("FYI: setgid(%d): %v", gid, err)
		return
	}
	if err := unix.Setuid(uid); err != nil {
		log.Printf("FYI: setuid(%d): %v", uid, err)
	}
}
