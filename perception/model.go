// Package perception enriches a raw MolecularGraph into an AnnotatedMolecule
// carrying every per-atom property the typing engine needs: ring
// membership, formal charge, lone pairs, aromaticity, conjugation, and
// hybridization. The stages run in a fixed order: rings, Kekulization,
// electrons, aromaticity, resonance, hybridization.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : model.go
// @Software: GoLand
package perception

import (
	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/graph"
)

// AnnotatedAtom is one atom carrying every property perceived so far.
// Fields start at their zero value (false/0/Unknown) and are filled in by
// successive perception stages.
type AnnotatedAtom struct {
	ID      int
	Element element.Element

	FormalCharge int8
	LonePairs    uint8
	Degree       uint8

	IsInRing         bool
	SmallestRingSize *uint8

	IsAromatic           bool
	IsAntiAromatic       bool
	IsInConjugatedSystem bool
	IsResonant           bool

	StericNumber  uint8
	Hybridization element.Hybridization
}

// Ring is a smallest-set-of-smallest-rings cycle, atom ids in traversal
// order.
type Ring []int

// AnnotatedMolecule is the mutable working state perception stages operate
// on: atoms, the (mutable, for Kekulization) bond list, a symmetric
// adjacency list, and the SSSR ring list. Neighbors are represented by
// index into Atoms, never by pointer, so there is no cyclic ownership.
type AnnotatedMolecule struct {
	Atoms     []AnnotatedAtom
	Bonds     []graph.BondEdge
	Adjacency [][]Neighbor
	Rings     []Ring
}

// Neighbor is one entry in an atom's adjacency list: the neighboring atom's
// id and the order of the bond connecting them.
type Neighbor struct {
	AtomID int
	Order  element.BondOrder
}

// NewAnnotatedMolecule validates g and builds the initial, unperceived
// AnnotatedMolecule: every bond endpoint must name an existing atom and no
// bond may be a self-bond.
func NewAnnotatedMolecule(g *graph.MolecularGraph) (*AnnotatedMolecule, error) {
	numAtoms := len(g.Atoms)

	for _, bond := range g.Bonds {
		for _, atomID := range bond.AtomIDs {
			if atomID < 0 || atomID >= numAtoms {
				return nil, &errs.GraphValidationError{Reason: errs.MissingAtom, AtomID: atomID}
			}
		}
		if bond.AtomIDs[0] == bond.AtomIDs[1] {
			return nil, &errs.GraphValidationError{Reason: errs.SelfBondingAtom, AtomID: bond.AtomIDs[0]}
		}
	}

	atoms := make([]AnnotatedAtom, numAtoms)
	for i, a := range g.Atoms {
		atoms[i] = AnnotatedAtom{ID: a.ID, Element: a.Element}
	}

	adjacency := make([][]Neighbor, numAtoms)
	for _, bond := range g.Bonds {
		u, v := bond.AtomIDs[0], bond.AtomIDs[1]
		adjacency[u] = append(adjacency[u], Neighbor{AtomID: v, Order: bond.Order})
		adjacency[v] = append(adjacency[v], Neighbor{AtomID: u, Order: bond.Order})
	}
	for i := range atoms {
		atoms[i].Degree = uint8(len(adjacency[i]))
	}

	bonds := make([]graph.BondEdge, len(g.Bonds))
	copy(bonds, g.Bonds)

	return &AnnotatedMolecule{Atoms: atoms, Bonds: bonds, Adjacency: adjacency}, nil
}

// BondBetween returns the bond connecting u and v, if any.
func (m *AnnotatedMolecule) BondBetween(u, v int) (graph.BondEdge, bool) {
	for _, b := range m.Bonds {
		if (b.AtomIDs[0] == u && b.AtomIDs[1] == v) || (b.AtomIDs[0] == v && b.AtomIDs[1] == u) {
			return b, true
		}
	}
	return graph.BondEdge{}, false
}

// setBondOrder rewrites bondID's order in both the bond list and the two
// mirrored adjacency-list entries for its endpoints.
func (m *AnnotatedMolecule) setBondOrder(bondID int, order element.BondOrder) {
	bond := &m.Bonds[bondID]
	u, v := bond.AtomIDs[0], bond.AtomIDs[1]
	bond.Order = order
	for i := range m.Adjacency[u] {
		if m.Adjacency[u][i].AtomID == v {
			m.Adjacency[u][i].Order = order
		}
	}
	for i := range m.Adjacency[v] {
		if m.Adjacency[v][i].AtomID == u {
			m.Adjacency[v][i].Order = order
		}
	}
}
