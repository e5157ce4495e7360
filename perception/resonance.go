// Package perception: conjugation (resonance) detection stage.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : resonance.go
// @Software: GoLand
package perception

import "github.com/caltechmsc/dreid-typer/element"

// PerceiveResonance marks every atom that participates in an extended
// conjugated pi system. The broader sweep is a connected-components pass
// over the subgraph of atoms that can conjugate — those with a non-Single
// bond (a p orbital already in the pi system) or a nonzero formal charge
// (a carbanion/carbocation-style center with a p orbital available for
// delocalization) — joined by any bond between two such atoms; a
// component survives only if it spans two or more atoms. A bare lone pair
// is deliberately NOT enough on its own: most lone pairs sit in sp3
// orbitals that never reach the pi system, and the atoms that genuinely
// donate a lone pair into an adjacent pi bond (amide/thioamide and
// sulfonamide nitrogen) are covered by the local patterns below instead.
// A handful of local patterns refine the result afterward: aromatic
// rings, amide/thioamide and sulfonamide nitrogen/sulfur donors,
// suppressed halogen-oxyanion conjugation, and sigma-only sulfur
// demotion.
func PerceiveResonance(m *AnnotatedMolecule) error {
	markBroaderConjugatedSystems(m)
	applyLocalResonancePatterns(m)
	return nil
}

func markBroaderConjugatedSystems(m *AnnotatedMolecule) {
	numAtoms := len(m.Atoms)
	canConjugate := make([]bool, numAtoms)
	for i, atom := range m.Atoms {
		if atom.FormalCharge != 0 {
			canConjugate[i] = true
			continue
		}
		for _, nb := range m.Adjacency[i] {
			if nb.Order != element.Single {
				canConjugate[i] = true
				break
			}
		}
	}

	visited := make([]bool, numAtoms)
	for i := 0; i < numAtoms; i++ {
		if !canConjugate[i] || visited[i] {
			continue
		}

		var component []int
		stack := []int{i}
		visited[i] = true

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, current)

			for _, nb := range m.Adjacency[current] {
				if canConjugate[nb.AtomID] && !visited[nb.AtomID] {
					visited[nb.AtomID] = true
					stack = append(stack, nb.AtomID)
				}
			}
		}

		if len(component) >= 2 {
			for _, atomID := range component {
				m.Atoms[atomID].IsInConjugatedSystem = true
			}
		}
	}
}

func applyLocalResonancePatterns(m *AnnotatedMolecule) {
	markAromaticAtomsConjugated(m)
	markAmideAndThioamideSystems(m)
	markSulfonamideSystems(m)
	suppressHalogenOxyanionConjugation(m)
	demoteSigmaBoundSulfurs(m)
}

func markAromaticAtomsConjugated(m *AnnotatedMolecule) {
	for i := range m.Atoms {
		if m.Atoms[i].IsAromatic {
			m.Atoms[i].IsInConjugatedSystem = true
		}
	}
}

func markAmideAndThioamideSystems(m *AnnotatedMolecule) {
	for pivotIdx := range m.Atoms {
		if m.Atoms[pivotIdx].Element != element.C {
			continue
		}

		var piPartners []int
		for _, nb := range m.Adjacency[pivotIdx] {
			if nb.Order != element.Double {
				continue
			}
			neighbor := m.Atoms[nb.AtomID]
			if neighbor.Element == element.O || neighbor.Element == element.S {
				piPartners = append(piPartners, nb.AtomID)
			}
		}
		if len(piPartners) == 0 {
			continue
		}

		var heteroDonors []int
		for _, nb := range m.Adjacency[pivotIdx] {
			if nb.Order != element.Single {
				continue
			}
			neighbor := m.Atoms[nb.AtomID]
			if nb.AtomID != pivotIdx &&
				(neighbor.Element == element.N || neighbor.Element == element.O || neighbor.Element == element.S) &&
				neighbor.LonePairs > 0 {
				heteroDonors = append(heteroDonors, nb.AtomID)
			}
		}
		if len(heteroDonors) == 0 {
			continue
		}

		m.Atoms[pivotIdx].IsInConjugatedSystem = true

		for _, piPartner := range piPartners {
			m.Atoms[piPartner].IsInConjugatedSystem = true
			for _, donor := range heteroDonors {
				m.Atoms[donor].IsInConjugatedSystem = true
			}
		}
	}
}

func markSulfonamideSystems(m *AnnotatedMolecule) {
	for sIdx := range m.Atoms {
		if m.Atoms[sIdx].Element != element.S {
			continue
		}

		doubleBondedOxygenCount := 0
		for _, nb := range m.Adjacency[sIdx] {
			if nb.Order == element.Double && m.Atoms[nb.AtomID].Element == element.O {
				doubleBondedOxygenCount++
			}
		}
		if doubleBondedOxygenCount < 2 {
			continue
		}

		for _, nb := range m.Adjacency[sIdx] {
			if nb.Order != element.Single {
				continue
			}
			neighbor := m.Atoms[nb.AtomID]
			if neighbor.Element == element.N && neighbor.LonePairs > 0 {
				m.Atoms[sIdx].IsInConjugatedSystem = true
				m.Atoms[nb.AtomID].IsInConjugatedSystem = true
			}
		}
	}
}

func suppressHalogenOxyanionConjugation(m *AnnotatedMolecule) {
	for centerIdx := range m.Atoms {
		e := m.Atoms[centerIdx].Element
		if e != element.Cl && e != element.Br && e != element.I {
			continue
		}

		var oxygenNeighbors []int
		for _, nb := range m.Adjacency[centerIdx] {
			if m.Atoms[nb.AtomID].Element == element.O {
				oxygenNeighbors = append(oxygenNeighbors, nb.AtomID)
			}
		}

		if len(oxygenNeighbors) >= 3 {
			for _, oxygenIdx := range oxygenNeighbors {
				m.Atoms[oxygenIdx].IsInConjugatedSystem = false
			}
		}
	}
}

func demoteSigmaBoundSulfurs(m *AnnotatedMolecule) {
	for sIdx := range m.Atoms {
		atom := m.Atoms[sIdx]
		if atom.Element != element.S || !atom.IsInConjugatedSystem {
			continue
		}

		hasPiBond := false
		for _, nb := range m.Adjacency[sIdx] {
			if nb.Order != element.Single {
				hasPiBond = true
				break
			}
		}

		if !hasPiBond {
			m.Atoms[sIdx].IsInConjugatedSystem = false
		}
	}
}
