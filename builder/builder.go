// Package builder enumerates the bonded-interaction topology (bonds,
// angles, proper and improper dihedrals) from a perceived, typed molecule.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : builder.go
// @Software: GoLand
package builder

import (
	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/graph"
	"github.com/caltechmsc/dreid-typer/perception"
)

// BuildTopology assembles the final MolecularTopology from a perceived
// molecule and its assigned atom type names (atomTypes[i] is the type name
// for molecule.Atoms[i]).
func BuildTopology(molecule *perception.AnnotatedMolecule, atomTypes []string) graph.MolecularTopology {
	return graph.MolecularTopology{
		Atoms:     buildAtoms(molecule, atomTypes),
		Bonds:     buildBonds(molecule),
		Angles:    buildAngles(molecule),
		Propers:   buildPropers(molecule),
		Impropers: buildImpropers(molecule),
	}
}

func buildAtoms(molecule *perception.AnnotatedMolecule, atomTypes []string) []graph.Atom {
	atoms := make([]graph.Atom, len(molecule.Atoms))
	for i, a := range molecule.Atoms {
		atoms[i] = graph.Atom{
			ID:            a.ID,
			Element:       a.Element,
			AtomType:      atomTypes[a.ID],
			Hybridization: a.Hybridization,
		}
	}
	return atoms
}

// buildBonds promotes a bond's topology-level order to Resonant when both
// its endpoints are part of a conjugated system, otherwise it carries its
// resolved (post-Kekulization) order over unchanged.
func buildBonds(molecule *perception.AnnotatedMolecule) []graph.Bond {
	seen := make(map[graph.Bond]struct{}, len(molecule.Bonds))
	bonds := make([]graph.Bond, 0, len(molecule.Bonds))

	for _, edge := range molecule.Bonds {
		u, v := edge.AtomIDs[0], edge.AtomIDs[1]
		order := element.FromBondOrder(edge.Order)
		if molecule.Atoms[u].IsInConjugatedSystem && molecule.Atoms[v].IsInConjugatedSystem {
			order = element.TopologyResonant
		}

		bond := graph.NewBond(u, v, order)
		if _, dup := seen[bond]; dup {
			continue
		}
		seen[bond] = struct{}{}
		bonds = append(bonds, bond)
	}
	return bonds
}

func buildAngles(molecule *perception.AnnotatedMolecule) []graph.Angle {
	seen := make(map[graph.Angle]struct{})
	angles := make([]graph.Angle, 0)

	for j := range molecule.Atoms {
		neighbors := molecule.Adjacency[j]
		if len(neighbors) < 2 {
			continue
		}
		for i := 0; i < len(neighbors); i++ {
			for k := i + 1; k < len(neighbors); k++ {
				angle := graph.NewAngle(neighbors[i].AtomID, j, neighbors[k].AtomID)
				if _, dup := seen[angle]; dup {
					continue
				}
				seen[angle] = struct{}{}
				angles = append(angles, angle)
			}
		}
	}
	return angles
}

func buildPropers(molecule *perception.AnnotatedMolecule) []graph.ProperDihedral {
	seen := make(map[graph.ProperDihedral]struct{})
	propers := make([]graph.ProperDihedral, 0)

	for _, bondJK := range molecule.Bonds {
		j, k := bondJK.AtomIDs[0], bondJK.AtomIDs[1]

		for _, ni := range molecule.Adjacency[j] {
			i := ni.AtomID
			if i == k {
				continue
			}
			for _, nl := range molecule.Adjacency[k] {
				l := nl.AtomID
				if l == j || l == i {
					continue
				}
				proper := graph.NewProperDihedral(i, j, k, l)
				if _, dup := seen[proper]; dup {
					continue
				}
				seen[proper] = struct{}{}
				propers = append(propers, proper)
			}
		}
	}
	return propers
}

func buildImpropers(molecule *perception.AnnotatedMolecule) []graph.ImproperDihedral {
	seen := make(map[graph.ImproperDihedral]struct{})
	impropers := make([]graph.ImproperDihedral, 0)

	for _, atom := range molecule.Atoms {
		if atom.Degree != 3 {
			continue
		}
		if atom.Hybridization != element.SP2 && atom.Hybridization != element.Resonant {
			continue
		}

		neighbors := molecule.Adjacency[atom.ID]
		improper := graph.NewImproperDihedral(neighbors[0].AtomID, neighbors[1].AtomID, atom.ID, neighbors[2].AtomID)
		if _, dup := seen[improper]; dup {
			continue
		}
		seen[improper] = struct{}{}
		impropers = append(impropers, improper)
	}
	return impropers
}
