// Package hw is the hardware boundary of the controller: the temperature
// probe, the front panel (rotary encoder + push button), and the solid-state
// relay. The real implementations use the Linux GPIO character device and
// the w1 sysfs interface; fakes allow tests and development without
// hardware.
package hw

// Default pin assignments (BCM numbering).
const (
	DefaultPinRelay    = 25
	DefaultPinEncoderA = 33
	DefaultPinEncoderB = 32
	DefaultPinButton   = 26
)

// TempSensor is a probe with a split conversion cycle: request, wait out the
// conversion, then read. None of the calls may take longer than a bus
// transaction; the waiting is the caller's job.
type TempSensor interface {
	// RequestConversion starts a temperature conversion on the probe.
	RequestConversion() error

	// ConversionComplete reports whether the last requested conversion has
	// finished.
	ConversionComplete() (bool, error)

	// ReadTempF returns the converted temperature in °F.
	ReadTempF() (float64, error)
}

// Panel reads the front panel: the monotonic quadrature count of the
// encoder and the button level (true = pressed).
type Panel interface {
	Read() (count int64, pressed bool, err error)
}

// Relay drives the heating element. Set is idempotent and called every loop
// tick.
type Relay interface {
	Set(on bool) error
}

// Closer is implemented by hardware handles that hold kernel resources.
type Closer interface {
	Close() error
}
