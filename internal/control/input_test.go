package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoderQuantizesRawTicks(t *testing.T) {
	var d Decoder

	// Three raw ticks stay inside the first bucket.
	for raw := int64(1); raw < QuantizationFactor; raw++ {
		assert.Equal(t, StepNone, d.DecodeStep(raw))
	}
	assert.Equal(t, StepUp, d.DecodeStep(QuantizationFactor))
	assert.Equal(t, StepNone, d.DecodeStep(QuantizationFactor), "same bucket fires once")
}

func TestDecoderStepPolarity(t *testing.T) {
	var d Decoder
	assert.Equal(t, StepUp, d.DecodeStep(4))
	assert.Equal(t, StepDown, d.DecodeStep(0))
	assert.Equal(t, StepDown, d.DecodeStep(-4))
}

func TestDecoderCollapsesMultiBucketJump(t *testing.T) {
	var d Decoder
	// A spin faster than the poll rate crosses several buckets; only one
	// event comes out, with the sign of the delta.
	assert.Equal(t, StepUp, d.DecodeStep(12))
	assert.Equal(t, StepNone, d.DecodeStep(12))
	assert.Equal(t, StepDown, d.DecodeStep(-8))
}

func TestDecoderButtonEdge(t *testing.T) {
	var d Decoder
	assert.False(t, d.DecodePress(false))
	assert.True(t, d.DecodePress(true), "released→pressed edge fires")
	assert.False(t, d.DecodePress(true), "holding fires nothing")
	assert.False(t, d.DecodePress(false))
	assert.True(t, d.DecodePress(true), "re-press fires again")
}
