//go:build !linux

package hw

import "errors"

var errUnsupported = errors.New("hw: gpio requires Linux")

// GPIORelay is not available off Linux.
type GPIORelay struct{}

func NewGPIORelay(pin int) (*GPIORelay, error) { return nil, errUnsupported }
func (r *GPIORelay) Set(on bool) error         { return errUnsupported }
func (r *GPIORelay) Close() error              { return nil }

// GPIOPanel is not available off Linux.
type GPIOPanel struct{}

func NewGPIOPanel(pinA, pinB, pinButton int) (*GPIOPanel, error) { return nil, errUnsupported }
func (p *GPIOPanel) Read() (int64, bool, error)                  { return 0, false, errUnsupported }
func (p *GPIOPanel) Close() error                                { return nil }

// W1Sensor is not available off Linux.
type W1Sensor struct{}

func NewW1Sensor(deviceID string) (*W1Sensor, error) { return nil, errUnsupported }
func (s *W1Sensor) RequestConversion() error         { return errUnsupported }
func (s *W1Sensor) ConversionComplete() (bool, error) {
	return false, errUnsupported
}
func (s *W1Sensor) ReadTempF() (float64, error) { return 0, errUnsupported }
