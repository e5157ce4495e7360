package perception

import (
	"testing"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benzeneGraphWithHydrogens() *graph.MolecularGraph {
	g := graph.NewMolecularGraph()
	carbons := make([]int, 6)
	hydrogens := make([]int, 6)
	for i := 0; i < 6; i++ {
		carbons[i] = g.AddAtom(element.C)
	}
	for i := 0; i < 6; i++ {
		hydrogens[i] = g.AddAtom(element.H)
	}

	ringEdges := [6][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
	for _, e := range ringEdges {
		_, err := g.AddBond(carbons[e[0]], carbons[e[1]], element.Aromatic)
		if err != nil {
			panic(err)
		}
	}
	for i := 0; i < 6; i++ {
		_, err := g.AddBond(carbons[i], hydrogens[i], element.Single)
		if err != nil {
			panic(err)
		}
	}
	return g
}

func aromaticBondOutsideRingGraph() *graph.MolecularGraph {
	g := graph.NewMolecularGraph()
	c1 := g.AddAtom(element.C)
	c2 := g.AddAtom(element.C)
	h1 := g.AddAtom(element.H)
	h2 := g.AddAtom(element.H)

	_, _ = g.AddBond(c1, c2, element.Aromatic)
	_, _ = g.AddBond(c1, h1, element.Single)
	_, _ = g.AddBond(c2, h2, element.Single)
	return g
}

func TestPerceptionPipelineAssignsBenzeneProperties(t *testing.T) {
	g := benzeneGraphWithHydrogens()
	m, err := Perceive(g)
	require.NoError(t, err)

	require.Len(t, m.Rings, 1, "benzene must yield a single ring")

	for idx, atom := range m.Atoms {
		switch atom.Element {
		case element.C:
			assert.True(t, atom.IsInRing, "carbon %d must be in the ring", idx)
			assert.True(t, atom.IsAromatic, "carbon %d must be aromatic", idx)
			assert.True(t, atom.IsInConjugatedSystem, "carbon %d must be in conjugated system", idx)
			assert.Equal(t, element.Resonant, atom.Hybridization, "carbon %d should end Resonant", idx)
			assert.Equal(t, uint8(3), atom.StericNumber)
		case element.H:
			assert.Equal(t, element.NoHybridization, atom.Hybridization)
			assert.Equal(t, uint8(1), atom.StericNumber)
		default:
			t.Fatalf("unexpected element in benzene fixture: %v", atom.Element)
		}
	}

	for _, bond := range m.Bonds {
		assert.NotEqual(t, element.Aromatic, bond.Order, "all aromatic bonds should be Kekulé-expanded")
	}
}

func TestPipelineReportsStepNameWhenKekulizationFails(t *testing.T) {
	g := aromaticBondOutsideRingGraph()
	_, err := Perceive(g)
	require.Error(t, err)

	var failed *errs.PerceptionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "Kekulization", failed.Step)

	var kekuleErr *errs.KekulizationError
	require.ErrorAs(t, failed.Cause, &kekuleErr)
	assert.Contains(t, kekuleErr.Message, "not in a ring")
}
