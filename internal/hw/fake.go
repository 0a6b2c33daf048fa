package hw

import "sync"

// FakeSensor is a scriptable TempSensor for tests and hardware-free runs.
// The zero value behaves as a healthy probe reading 0 °F.
type FakeSensor struct {
	mu sync.Mutex

	// TempF is the value returned by ReadTempF.
	TempF float64
	// Pending makes ConversionComplete report false until cleared.
	Pending bool
	// RequestErr, CompleteErr and ReadErr simulate a missing device.
	RequestErr  error
	CompleteErr error
	ReadErr     error

	// Requests counts RequestConversion calls.
	Requests int
}

func (f *FakeSensor) RequestConversion() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RequestErr != nil {
		return f.RequestErr
	}
	f.Requests++
	return nil
}

func (f *FakeSensor) ConversionComplete() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CompleteErr != nil {
		return false, f.CompleteErr
	}
	return !f.Pending, nil
}

func (f *FakeSensor) ReadTempF() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	return f.TempF, nil
}

// Set updates the simulated temperature.
func (f *FakeSensor) Set(tempF float64) {
	f.mu.Lock()
	f.TempF = tempF
	f.mu.Unlock()
}

// FakePanel is a settable Panel. Tests turn the encoder by bumping Count and
// press the button by toggling Pressed.
type FakePanel struct {
	mu      sync.Mutex
	count   int64
	pressed bool
	readErr error
}

func (f *FakePanel) Read() (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return 0, false, f.readErr
	}
	return f.count, f.pressed, nil
}

// Turn advances the raw quadrature count by n ticks (negative for the other
// direction).
func (f *FakePanel) Turn(n int64) {
	f.mu.Lock()
	f.count += n
	f.mu.Unlock()
}

// Press sets the button level.
func (f *FakePanel) Press(down bool) {
	f.mu.Lock()
	f.pressed = down
	f.mu.Unlock()
}

// FailReads makes subsequent Read calls return err (nil to heal).
func (f *FakePanel) FailReads(err error) {
	f.mu.Lock()
	f.readErr = err
	f.mu.Unlock()
}

// FakeRelay records the drive state.
type FakeRelay struct {
	mu   sync.Mutex
	on   bool
	sets int
}

func (f *FakeRelay) Set(on bool) error {
	f.mu.Lock()
	f.on = on
	f.sets++
	f.mu.Unlock()
	return nil
}

// On reports the last driven state.
func (f *FakeRelay) On() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Sets reports how many times Set was called.
func (f *FakeRelay) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}
