package graph

import (
	"sort"

	"github.com/caltechmsc/dreid-typer/element"
)

// MolecularTopology is the canonical output produced once typing and
// topology building complete: atoms paired with their assigned DREIDING
// type, plus the bond/angle/proper/improper relations in canonical tuple
// form.
type MolecularTopology struct {
	Atoms     []Atom
	Bonds     []Bond
	Angles    []Angle
	Propers   []ProperDihedral
	Impropers []ImproperDihedral
}

// Atom is one entry in the final topology, combining identity and typing.
type Atom struct {
	ID            int
	Element       element.Element
	AtomType      string
	Hybridization element.Hybridization
}

// Bond is a canonical topology-level bond: endpoints sorted ascending.
type Bond struct {
	AtomIDs [2]int
	Order   element.TopologyBondOrder
}

// NewBond canonicalizes the endpoint order so (a,b) and (b,a) collide.
func NewBond(a, b int, order element.TopologyBondOrder) Bond {
	if a > b {
		a, b = b, a
	}
	return Bond{AtomIDs: [2]int{a, b}, Order: order}
}

// Angle is a canonical (end1, center, end2) triple with end atoms sorted.
type Angle struct {
	AtomIDs [3]int
}

// NewAngle canonicalizes by swapping the ends so the lower id comes first.
func NewAngle(a, center, b int) Angle {
	if a > b {
		a, b = b, a
	}
	return Angle{AtomIDs: [3]int{a, center, b}}
}

// ProperDihedral is a canonical (a,b,c,d) torsion, the lexicographic
// minimum of the tuple and its reverse.
type ProperDihedral struct {
	AtomIDs [4]int
}

// NewProperDihedral canonicalizes a-b-c-d against its reverse d-c-b-a.
func NewProperDihedral(a, b, c, d int) ProperDihedral {
	fwd := [4]int{a, b, c, d}
	rev := [4]int{d, c, b, a}
	if lexLess(rev, fwd) {
		return ProperDihedral{AtomIDs: rev}
	}
	return ProperDihedral{AtomIDs: fwd}
}

func lexLess(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// ImproperDihedral is a canonical (plane1, plane2, center, plane3) out-of-
// plane term, with the three plane atoms sorted ascending.
type ImproperDihedral struct {
	AtomIDs [4]int
}

// NewImproperDihedral sorts the three plane atoms ascending; center keeps
// its position.
func NewImproperDihedral(p1, p2, center, p3 int) ImproperDihedral {
	planes := []int{p1, p2, p3}
	sort.Ints(planes)
	return ImproperDihedral{AtomIDs: [4]int{planes[0], planes[1], center, planes[2]}}
}
