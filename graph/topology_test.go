package graph

import (
	"testing"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/stretchr/testify/assert"
)

func TestNewBondCanonicalizesEndpoints(t *testing.T) {
	assert.Equal(t, NewBond(1, 3, element.TopologySingle), NewBond(3, 1, element.TopologySingle))
	assert.Equal(t, [2]int{1, 3}, NewBond(3, 1, element.TopologySingle).AtomIDs)
}

func TestNewAngleCanonicalizesEnds(t *testing.T) {
	assert.Equal(t, NewAngle(1, 0, 2), NewAngle(2, 0, 1))
	assert.Equal(t, [3]int{1, 0, 2}, NewAngle(2, 0, 1).AtomIDs)
}

func TestNewProperDihedralPicksLexicographicMinimum(t *testing.T) {
	fwd := NewProperDihedral(3, 2, 1, 0)
	rev := NewProperDihedral(0, 1, 2, 3)
	assert.Equal(t, fwd, rev)
	assert.Equal(t, [4]int{0, 1, 2, 3}, fwd.AtomIDs)
}

func TestNewImproperDihedralSortsPlanesKeepsCenter(t *testing.T) {
	imp := NewImproperDihedral(3, 1, 9, 2)
	assert.Equal(t, [4]int{1, 2, 9, 3}, imp.AtomIDs)
}
