//go:build linux

package hw

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/warthog618/go-gpiocdev"
)

const defaultChip = "gpiochip0"

// GPIORelay drives the solid-state relay through one output line.
type GPIORelay struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

func NewGPIORelay(pin int) (*GPIORelay, error) {
	chip, err := gpiocdev.NewChip(defaultChip)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}
	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request relay pin %d: %w", pin, err)
	}
	return &GPIORelay{chip: chip, line: line}, nil
}

func (r *GPIORelay) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	return r.line.SetValue(v)
}

// Close de-energizes the relay before releasing the line, so a shutdown can
// never leave the heater on.
func (r *GPIORelay) Close() error {
	_ = r.line.SetValue(0)
	if err := r.line.Close(); err != nil {
		_ = r.chip.Close()
		return fmt.Errorf("close relay line: %w", err)
	}
	return r.chip.Close()
}

// GPIOPanel counts quadrature edges on the encoder lines in the event
// handler and samples the button level on demand. The count is kept in an
// atomic so Read never waits on the event goroutine.
type GPIOPanel struct {
	chip   *gpiocdev.Chip
	lines  *gpiocdev.Lines
	button *gpiocdev.Line

	count  atomic.Int64
	mu     sync.Mutex
	lastA  int
	lastB  int
}

func NewGPIOPanel(pinA, pinB, pinButton int) (*GPIOPanel, error) {
	chip, err := gpiocdev.NewChip(defaultChip)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}
	p := &GPIOPanel{chip: chip}

	lines, err := chip.RequestLines([]int{pinA, pinB},
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(p.onEdge))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request encoder pins %d/%d: %w", pinA, pinB, err)
	}
	p.lines = lines

	button, err := chip.RequestLine(pinButton, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		lines.Close()
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pinButton, err)
	}
	p.button = button
	return p, nil
}

// onEdge folds each quadrature edge into the running count. Full decoding is
// unnecessary here: the control loop quantizes by 4, so counting edges with
// the direction taken from the phase relationship is enough.
func (p *GPIOPanel) onEdge(evt gpiocdev.LineEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rising := evt.Type == gpiocdev.LineEventRisingEdge
	level := 0
	if rising {
		level = 1
	}
	if evt.Offset == p.lines.Offsets()[0] {
		// A changed: direction from B's last level.
		if (level == 1) == (p.lastB == 0) {
			p.count.Add(1)
		} else {
			p.count.Add(-1)
		}
		p.lastA = level
	} else {
		if (level == 1) == (p.lastA == 1) {
			p.count.Add(1)
		} else {
			p.count.Add(-1)
		}
		p.lastB = level
	}
}

func (p *GPIOPanel) Read() (int64, bool, error) {
	raw, err := p.button.Value()
	if err != nil {
		return 0, false, fmt.Errorf("read button: %w", err)
	}
	// Pull-up wiring: raw low = pressed.
	return p.count.Load(), raw == 0, nil
}

func (p *GPIOPanel) Close() error {
	var errs []error
	if err := p.button.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := p.lines.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := p.chip.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close panel: %v", errs)
	}
	return nil
}

// W1Sensor reads a DS18B20 through the w1 sysfs interface. The kernel read
// blocks for the conversion time, so RequestConversion runs it on a
// goroutine and ConversionComplete/ReadTempF only look at the stored result.
type W1Sensor struct {
	path string

	mu      sync.Mutex
	busy    bool
	done    bool
	tempF   float64
	readErr error
}

const w1DevicesDir = "/sys/bus/w1/devices"

// NewW1Sensor finds the first 28-* probe on the bus, or uses deviceID when
// given.
func NewW1Sensor(deviceID string) (*W1Sensor, error) {
	if deviceID == "" {
		matches, err := filepath.Glob(filepath.Join(w1DevicesDir, "28-*"))
		if err != nil || len(matches) == 0 {
			return nil, fmt.Errorf("no DS18B20 found under %s", w1DevicesDir)
		}
		return &W1Sensor{path: filepath.Join(matches[0], "temperature")}, nil
	}
	return &W1Sensor{path: filepath.Join(w1DevicesDir, deviceID, "temperature")}, nil
}

func (s *W1Sensor) RequestConversion() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return nil
	}
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("probe missing: %w", err)
	}
	s.busy = true
	s.done = false
	go s.convert()
	return nil
}

func (s *W1Sensor) convert() {
	data, err := os.ReadFile(s.path)
	var tempF float64
	if err == nil {
		milliC, perr := strconv.Atoi(strings.TrimSpace(string(data)))
		if perr != nil {
			err = fmt.Errorf("parse %s: %w", s.path, perr)
		} else {
			tempF = float64(milliC)/1000*9/5 + 32
		}
	}
	s.mu.Lock()
	s.busy = false
	s.done = err == nil
	s.tempF = tempF
	s.readErr = err
	s.mu.Unlock()
}

func (s *W1Sensor) ConversionComplete() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false, nil
	}
	if s.readErr != nil {
		return false, s.readErr
	}
	return s.done, nil
}

func (s *W1Sensor) ReadTempF() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return 0, s.readErr
	}
	s.done = false
	return s.tempF, nil
}
