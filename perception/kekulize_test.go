package perception

import (
	"testing"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benzeneGraph() *graph.MolecularGraph {
	g := graph.NewMolecularGraph()
	for i := 0; i < 6; i++ {
		g.AddAtom(element.C)
	}
	for i := 0; i < 6; i++ {
		next := (i + 1) % 6
		_, _ = g.AddBond(i, next, element.Aromatic)
	}
	for i := 0; i < 6; i++ {
		h := g.AddAtom(element.H)
		_, _ = g.AddBond(i, h, element.Single)
	}
	return g
}

func TestPerceiveKekulizationResolvesBenzeneToAlternatingBonds(t *testing.T) {
	g := benzeneGraph()
	m, err := NewAnnotatedMolecule(g)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		m.Atoms[i].IsInRing = true
	}

	require.NoError(t, PerceiveKekulization(m))

	doubles, singles := 0, 0
	for _, b := range m.Bonds[:6] {
		switch b.Order {
		case element.Double:
			doubles++
		case element.Single:
			singles++
		default:
			t.Fatalf("unexpected order %v after kekulization", b.Order)
		}
	}
	assert.Equal(t, 3, doubles)
	assert.Equal(t, 3, singles)
}

func TestPerceiveKekulizationRejectsAromaticBondOutsideRing(t *testing.T) {
	g := graph.NewMolecularGraph()
	a := g.AddAtom(element.C)
	b := g.AddAtom(element.C)
	_, _ = g.AddBond(a, b, element.Aromatic)

	m, err := NewAnnotatedMolecule(g)
	require.NoError(t, err)

	err = PerceiveKekulization(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a ring")
}

func TestPerceiveKekulizationNoOpWithoutAromaticBonds(t *testing.T) {
	g := graph.NewMolecularGraph()
	a := g.AddAtom(element.C)
	b := g.AddAtom(element.H)
	_, _ = g.AddBond(a, b, element.Single)

	m, err := NewAnnotatedMolecule(g)
	require.NoError(t, err)

	require.NoError(t, PerceiveKekulization(m))
	assert.Equal(t, element.Single, m.Bonds[0].Order)
}
