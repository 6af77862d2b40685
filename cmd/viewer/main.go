package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"superrats/internal/config"
	"superrats/internal/ga"
)

const (
	minSpeed  = 0.5
	maxSpeed  = 5.0
	speedStep = 0.5
	frameTick = 50 * time.Millisecond
)

// Viewer drives a controller from the keyboard and a timer
type Viewer struct {
	ctrl     *ga.Controller
	display  *Display
	speed    float64
	interval time.Duration
	elapsed  time.Duration
	chime    func()
	cheered  bool
}

// NewViewer creates a viewer auto-advancing every interval/speed
func NewViewer(ctrl *ga.Controller, display *Display, interval time.Duration, speed float64) *Viewer {
	return &Viewer{
		ctrl:     ctrl,
		display:  display,
		speed:    clampSpeed(speed),
		interval: interval,
		chime:    func() {},
	}
}

func main() {
	configPath := flag.String("config", "configs/superrats.yaml", "path to YAML or INI config file")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config's seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctrl, err := ga.NewController(cfg.Rats(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating population: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := NewViewer(ctrl, NewDisplay(screen), time.Duration(cfg.Viewer.IntervalMS)*time.Millisecond, cfg.Viewer.Speed)
	if cfg.Viewer.Audio {
		// non-fatal, the viewer runs silently without a speaker
		if chime, closeAudio, err := newChime(); err == nil {
			v.chime = chime
			defer closeAudio()
		}
	}
	v.run(screen)
}

func (v *Viewer) run(screen tcell.Screen) {
	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	v.render()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			v.render()

		case <-ticker.C:
			if err := v.tick(frameTick); err != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "Error at generation %d: %v\n", v.ctrl.Generation(), err)
				os.Exit(1)
			}
			v.render()
		}
	}
}

// handleKey applies one key press and reports whether the viewer should keep running
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'p', ' ':
		v.ctrl.TogglePause()
	case '+', '=':
		v.speed = clampSpeed(v.speed + speedStep)
	case '-':
		v.speed = clampSpeed(v.speed - speedStep)
	case 'r':
		if err := v.ctrl.Reset(); err == nil {
			v.elapsed = 0
			v.cheered = false
		}
	case 'n':
		if _, err := v.ctrl.Advance(); err == nil {
			v.checkGoal()
		}
	}
	return true
}

// tick accumulates frame time and advances one generation every interval/speed
func (v *Viewer) tick(dt time.Duration) error {
	v.checkGoal()
	if v.ctrl.Paused() {
		return nil
	}
	v.elapsed += dt
	if v.elapsed < v.period() {
		return nil
	}
	v.elapsed = 0
	if _, err := v.ctrl.Advance(); err != nil {
		return err
	}
	v.checkGoal()
	return nil
}

// checkGoal holds the run once a super rat exists; only a reset clears it
func (v *Viewer) checkGoal() {
	if !v.ctrl.GoalReached() {
		return
	}
	v.ctrl.Pause()
	if !v.cheered {
		v.cheered = true
		v.chime()
	}
}

func (v *Viewer) period() time.Duration {
	return time.Duration(float64(v.interval) / v.speed)
}

func (v *Viewer) render() {
	if v.display == nil {
		return
	}
	v.display.Render(v.ctrl.Snapshot(), v.ctrl.Config(), v.speed)
}

func clampSpeed(s float64) float64 {
	if s < minSpeed {
		return minSpeed
	}
	if s > maxSpeed {
		return maxSpeed
	}
	return s
}
