package graph

import (
	"testing"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAtomAssignsInsertionIndex(t *testing.T) {
	g := NewMolecularGraph()
	a := g.AddAtom(element.C)
	b := g.AddAtom(element.H)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Len(t, g.Atoms, 2)
}

func TestAddBondRejectsSelfBond(t *testing.T) {
	g := NewMolecularGraph()
	a := g.AddAtom(element.C)
	_, err := g.AddBond(a, a, element.Single)
	require.Error(t, err)
	var invalid *InvalidBondError
	require.ErrorAs(t, err, &invalid)
}

func TestAddBondRejectsOutOfRangeID(t *testing.T) {
	g := NewMolecularGraph()
	g.AddAtom(element.C)
	_, err := g.AddBond(0, 5, element.Single)
	require.Error(t, err)
}

func TestAddBondTracksIDsAndOrder(t *testing.T) {
	g := NewMolecularGraph()
	a := g.AddAtom(element.C)
	b := g.AddAtom(element.O)
	id, err := g.AddBond(a, b, element.Double)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, element.Double, g.Bonds[0].Order)
	assert.Equal(t, [2]int{a, b}, g.Bonds[0].AtomIDs)
}
