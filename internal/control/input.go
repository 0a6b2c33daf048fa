package control

// QuantizationFactor is the number of raw quadrature ticks that make up one
// logical step of the rotary encoder.
const QuantizationFactor = 4

// Decoder turns raw encoder counts and button levels into discrete events.
// One Poll per loop tick; at most one step event and one press event come out
// of a single poll, matching the hardware where ticks faster than the poll
// rate collapse.
type Decoder struct {
	lastStep    int64
	lastPressed bool
}

// Step direction of a decoded encoder event.
type Step int

const (
	StepNone Step = 0
	StepUp   Step = 1
	StepDown Step = -1
)

// DecodeStep quantizes the raw count and emits a single step event when the
// logical position crossed at least one bucket since the previous poll. The
// polarity is the sign of the bucket delta; magnitude beyond one bucket is
// not separately signaled.
func (d *Decoder) DecodeStep(rawCount int64) Step {
	step := rawCount / QuantizationFactor
	if step == d.lastStep {
		return StepNone
	}
	var ev Step
	if step > d.lastStep {
		ev = StepUp
	} else {
		ev = StepDown
	}
	d.lastStep = step
	return ev
}

// DecodePress fires exactly once per Released→Pressed edge. Holding the
// button produces nothing until it is released and pressed again.
func (d *Decoder) DecodePress(pressed bool) bool {
	edge := pressed && !d.lastPressed
	d.lastPressed = pressed
	return edge
}
