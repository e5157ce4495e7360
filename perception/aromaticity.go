// Package perception: aromaticity classification stage.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : aromaticity.go
// @Software: GoLand
package perception

import (
	"sort"

	"github.com/caltechmsc/dreid-typer/element"
)

// PerceiveAromaticity groups the molecule's SSSR rings into fused ring
// systems and classifies each system as aromatic, anti-aromatic, or
// neither, via a planarity screen followed by Hückel's 4n+2/4n rule on the
// system's total pi-electron count.
func PerceiveAromaticity(m *AnnotatedMolecule) error {
	if len(m.Rings) == 0 {
		return nil
	}

	ringSystems := findRingSystems(m.Rings)

	for _, systemIndices := range ringSystems {
		systemAtoms := make(map[int]bool)
		for _, i := range systemIndices {
			for _, atomID := range m.Rings[i] {
				systemAtoms[atomID] = true
			}
		}

		model := newAromaticityModel(m, systemAtoms)

		if model.isAromatic() {
			for atomID := range systemAtoms {
				m.Atoms[atomID].IsAromatic = true
			}
		} else if model.isAntiAromatic() {
			for atomID := range systemAtoms {
				m.Atoms[atomID].IsAntiAromatic = true
			}
		}
	}

	return nil
}

type aromaticityModel struct {
	molecule            *AnnotatedMolecule
	atoms               map[int]bool
	piElectrons         *int
	isPotentiallyPlanar bool
}

func newAromaticityModel(molecule *AnnotatedMolecule, systemAtoms map[int]bool) *aromaticityModel {
	model := &aromaticityModel{molecule: molecule, atoms: systemAtoms}
	model.evaluate()
	return model
}

func (a *aromaticityModel) isAromatic() bool {
	if !a.isPotentiallyPlanar || a.piElectrons == nil {
		return false
	}
	pi := *a.piElectrons
	return pi > 0 && (pi-2)%4 == 0
}

func (a *aromaticityModel) isAntiAromatic() bool {
	if !a.isPotentiallyPlanar || a.piElectrons == nil {
		return false
	}
	pi := *a.piElectrons
	return pi > 0 && pi%4 == 0
}

func (a *aromaticityModel) evaluate() {
	for atomID := range a.atoms {
		if !isPotentiallyPlanar(&a.molecule.Atoms[atomID]) {
			a.isPotentiallyPlanar = false
			return
		}
	}
	a.isPotentiallyPlanar = true

	piCount := 0
	for atomID := range a.atoms {
		contribution, ok := a.countPiContribution(atomID)
		if !ok {
			a.isPotentiallyPlanar = false
			a.piElectrons = nil
			return
		}
		piCount += contribution
	}
	a.piElectrons = &piCount
}

func (a *aromaticityModel) countPiContribution(atomID int) (int, bool) {
	atom := a.molecule.Atoms[atomID]

	hasEndocyclicDoubleBond := false
	hasExocyclicDoubleBond := false
	for _, nb := range a.molecule.Adjacency[atomID] {
		if nb.Order != element.Double {
			continue
		}
		if a.atoms[nb.AtomID] {
			hasEndocyclicDoubleBond = true
		} else {
			hasExocyclicDoubleBond = true
		}
	}

	if hasEndocyclicDoubleBond {
		return 1, true
	}

	if atom.FormalCharge == -1 {
		return 2, true
	}
	if atom.FormalCharge == 1 {
		return 0, true
	}

	if !hasExocyclicDoubleBond && atom.LonePairs > 0 {
		return 2, true
	}

	if hasExocyclicDoubleBond {
		return 1, true
	}

	return 0, false
}

func isPotentiallyPlanar(atom *AnnotatedAtom) bool {
	stericNumber := atom.Degree + atom.LonePairs
	switch {
	case stericNumber <= 3:
		return true
	case stericNumber == 4:
		return atom.LonePairs > 0
	default:
		return false
	}
}

func findRingSystems(rings []Ring) [][]int {
	if len(rings) == 0 {
		return nil
	}

	ringAdj := buildRingAdjacency(rings)
	var systems [][]int
	visited := make([]bool, len(rings))

	for i := range rings {
		if visited[i] {
			continue
		}
		var currentSystem []int
		stack := []int{i}
		visited[i] = true

		for len(stack) > 0 {
			ringIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			currentSystem = append(currentSystem, ringIdx)
			for _, neighborIdx := range ringAdj[ringIdx] {
				if !visited[neighborIdx] {
					visited[neighborIdx] = true
					stack = append(stack, neighborIdx)
				}
			}
		}
		systems = append(systems, currentSystem)
	}
	return systems
}

func buildRingAdjacency(rings []Ring) [][]int {
	atomToRings := make(map[int][]int)
	for ringIdx, ring := range rings {
		for _, atomID := range ring {
			atomToRings[atomID] = append(atomToRings[atomID], ringIdx)
		}
	}

	adj := make([][]int, len(rings))
	for _, ringIndices := range atomToRings {
		if len(ringIndices) <= 1 {
			continue
		}
		for i := 0; i < len(ringIndices); i++ {
			for j := i + 1; j < len(ringIndices); j++ {
				r1, r2 := ringIndices[i], ringIndices[j]
				adj[r1] = append(adj[r1], r2)
				adj[r2] = append(adj[r2], r1)
			}
		}
	}

	for i := range adj {
		sort.Ints(adj[i])
		adj[i] = dedupInts(adj[i])
	}

	return adj
}

func dedupInts(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
