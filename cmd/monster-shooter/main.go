package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/core"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/monster-shooter.log")
	configFlag = flag.String("config", "", "YAML tuning file (default $MONSTER_SHOOTER_CONFIG or ./monster-shooter.yaml)")
	seedFlag   = flag.Uint64("seed", 0, "Deterministic spawn seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic Recovery: terminal is reset through the registered crash screen
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(cfg, options{seed: *seedFlag, mute: *muteFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	core.Go(func() {
		<-sigCh
		a.Stop()
	})

	a.run()
	a.shutdown()
	fmt.Println(a.summaryLine())
}
