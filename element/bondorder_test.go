package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBondOrderParseAndString(t *testing.T) {
	tests := []struct {
		s    string
		want BondOrder
	}{
		{"Single", Single}, {"Double", Double}, {"Triple", Triple}, {"Aromatic", Aromatic},
	}
	for _, tt := range tests {
		got, err := ParseBondOrder(tt.s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.s, got.String())
	}
}

func TestBondOrderParseInvalid(t *testing.T) {
	_, err := ParseBondOrder("Quadruple")
	require.Error(t, err)
}

func TestBondOrderIntegerPanicsOnAromatic(t *testing.T) {
	assert.Equal(t, 1, Single.Integer())
	assert.Equal(t, 2, Double.Integer())
	assert.Equal(t, 3, Triple.Integer())
	assert.Panics(t, func() { Aromatic.Integer() })
}

func TestFromBondOrder(t *testing.T) {
	assert.Equal(t, TopologySingle, FromBondOrder(Single))
	assert.Equal(t, TopologyDouble, FromBondOrder(Double))
	assert.Equal(t, TopologyTriple, FromBondOrder(Triple))
	assert.Panics(t, func() { FromBondOrder(Aromatic) })
}

func TestBondOrderTextMarshalRoundTrip(t *testing.T) {
	text, err := Double.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Double", string(text))

	var got BondOrder
	require.NoError(t, got.UnmarshalText([]byte("Triple")))
	assert.Equal(t, Triple, got)
}

func TestTopologyBondOrderParseStringAndTextMarshalRoundTrip(t *testing.T) {
	got, err := ParseTopologyBondOrder("Resonant")
	require.NoError(t, err)
	assert.Equal(t, TopologyResonant, got)
	assert.Equal(t, "Resonant", got.String())

	text, err := TopologyDouble.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Double", string(text))

	var roundTripped TopologyBondOrder
	require.NoError(t, roundTripped.UnmarshalText(text))
	assert.Equal(t, TopologyDouble, roundTripped)

	_, err = ParseTopologyBondOrder("Quadruple")
	require.Error(t, err)
}

func TestHybridizationParseAndString(t *testing.T) {
	tests := []struct {
		s    string
		want Hybridization
	}{
		{"Unknown", Unknown}, {"None", NoHybridization}, {"SP", SP}, {"SP2", SP2}, {"SP3", SP3}, {"Resonant", Resonant},
	}
	for _, tt := range tests {
		got, err := ParseHybridization(tt.s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.s, got.String())
	}
}
