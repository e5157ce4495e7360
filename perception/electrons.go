// Package perception: formal charge and lone pair assignment stage.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : electrons.go
// @Software: GoLand
package perception

import (
	"fmt"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
)

// PerceiveElectrons assigns every atom's formal charge and lone pair count.
// A fixed sequence of functional-group templates (nitrone, nitro, sulfur
// oxide, phosphorus oxide, carboxylate, ammonium/iminium, onium,
// phosphonium, enolate/phenate) claims and marks its member atoms first,
// in that priority order; every atom left unclaimed falls to the general
// octet/duet or saturation rule.
func PerceiveElectrons(m *AnnotatedMolecule) error {
	processed := make([]bool, len(m.Atoms))

	assignNitroneGroups(m, processed)
	assignNitroGroups(m, processed)
	assignSulfurOxides(m, processed)
	assignPhosphorusOxides(m, processed)
	assignCarboxylateAnions(m, processed)
	assignAmmoniumAndIminium(m, processed)
	assignOniumIons(m, processed)
	assignPhosphoniumIons(m, processed)
	assignEnolatePhenateAnions(m, processed)

	return assignGeneral(m, processed)
}

func assignNitroneGroups(m *AnnotatedMolecule, processed []bool) {
	for nIdx := range m.Atoms {
		if processed[nIdx] || m.Atoms[nIdx].Element != element.N || m.Atoms[nIdx].Degree != 3 {
			continue
		}

		var doubleBondC, singleBondO, singleBondC *int
		for _, nb := range m.Adjacency[nIdx] {
			id := nb.AtomID
			switch {
			case m.Atoms[id].Element == element.C && nb.Order == element.Double:
				doubleBondC = &id
			case m.Atoms[id].Element == element.O && nb.Order == element.Single:
				singleBondO = &id
			case m.Atoms[id].Element == element.C && nb.Order == element.Single:
				singleBondC = &id
			}
		}

		if doubleBondC != nil && singleBondO != nil && singleBondC != nil {
			c1, o, c2 := *doubleBondC, *singleBondO, *singleBondC
			if !processed[c1] && !processed[o] && !processed[c2] {
				m.Atoms[nIdx].FormalCharge = 1
				m.Atoms[nIdx].LonePairs = 0
				m.Atoms[o].FormalCharge = -1
				m.Atoms[o].LonePairs = 3

				processed[nIdx] = true
				processed[o] = true
			}
		}
	}
}

func assignNitroGroups(m *AnnotatedMolecule, processed []bool) {
	for nIdx := range m.Atoms {
		if processed[nIdx] || m.Atoms[nIdx].Element != element.N || m.Atoms[nIdx].Degree != 3 {
			continue
		}

		var doubleBondO, singleBondO *int
		otherNeighborCount := 0

		for _, nb := range m.Adjacency[nIdx] {
			id := nb.AtomID
			if m.Atoms[id].Element == element.O {
				switch {
				case nb.Order == element.Double && doubleBondO == nil:
					v := id
					doubleBondO = &v
				case nb.Order == element.Single && singleBondO == nil:
					v := id
					singleBondO = &v
				}
			} else {
				otherNeighborCount++
			}
		}

		if doubleBondO != nil && singleBondO != nil {
			o1, o2 := *doubleBondO, *singleBondO
			if otherNeighborCount == 1 && !processed[o1] && !processed[o2] {
				m.Atoms[nIdx].FormalCharge = 1
				m.Atoms[nIdx].LonePairs = 0

				m.Atoms[o1].FormalCharge = 0
				m.Atoms[o1].LonePairs = 2

				m.Atoms[o2].FormalCharge = -1
				m.Atoms[o2].LonePairs = 3

				processed[nIdx] = true
				processed[o1] = true
				processed[o2] = true
			}
		}
	}
}

func assignSulfurOxides(m *AnnotatedMolecule, processed []bool) {
	for sIdx := range m.Atoms {
		if processed[sIdx] || m.Atoms[sIdx].Element != element.S {
			continue
		}

		var doubleBondedOxygens []int
		for _, nb := range m.Adjacency[sIdx] {
			if m.Atoms[nb.AtomID].Element == element.O && nb.Order == element.Double {
				doubleBondedOxygens = append(doubleBondedOxygens, nb.AtomID)
			}
		}

		switch {
		case m.Atoms[sIdx].Degree == 3 && len(doubleBondedOxygens) == 1:
			oIdx := doubleBondedOxygens[0]
			if !processed[oIdx] {
				m.Atoms[sIdx].FormalCharge = 1
				m.Atoms[sIdx].LonePairs = 1
				m.Atoms[oIdx].FormalCharge = -1
				m.Atoms[oIdx].LonePairs = 3
				processed[sIdx] = true
				processed[oIdx] = true
			}
		case m.Atoms[sIdx].Degree == 4 && len(doubleBondedOxygens) == 2:
			o1Idx, o2Idx := doubleBondedOxygens[0], doubleBondedOxygens[1]
			if !processed[o1Idx] && !processed[o2Idx] {
				m.Atoms[sIdx].FormalCharge = 2
				m.Atoms[sIdx].LonePairs = 0
				m.Atoms[o1Idx].FormalCharge = -1
				m.Atoms[o1Idx].LonePairs = 3
				m.Atoms[o2Idx].FormalCharge = -1
				m.Atoms[o2Idx].LonePairs = 3
				processed[sIdx] = true
				processed[o1Idx] = true
				processed[o2Idx] = true
			}
		}
	}
}

func assignPhosphorusOxides(m *AnnotatedMolecule, processed []bool) {
	for pIdx := range m.Atoms {
		if processed[pIdx] || m.Atoms[pIdx].Element != element.P || m.Atoms[pIdx].Degree != 4 {
			continue
		}

		var doubleBondedOxygens []int
		for _, nb := range m.Adjacency[pIdx] {
			if m.Atoms[nb.AtomID].Element == element.O && nb.Order == element.Double {
				doubleBondedOxygens = append(doubleBondedOxygens, nb.AtomID)
			}
		}

		if len(doubleBondedOxygens) == 1 {
			oIdx := doubleBondedOxygens[0]
			if !processed[oIdx] {
				m.Atoms[pIdx].FormalCharge = 1
				m.Atoms[pIdx].LonePairs = 0
				m.Atoms[oIdx].FormalCharge = -1
				m.Atoms[oIdx].LonePairs = 3
				processed[pIdx] = true
				processed[oIdx] = true
			}
		}
	}
}

func assignCarboxylateAnions(m *AnnotatedMolecule, processed []bool) {
	for cIdx := range m.Atoms {
		if processed[cIdx] || m.Atoms[cIdx].Element != element.C || m.Atoms[cIdx].Degree != 3 {
			continue
		}

		var doubleBondO, singleBondO *int
		for _, nb := range m.Adjacency[cIdx] {
			id := nb.AtomID
			if m.Atoms[id].Element == element.O {
				switch {
				case nb.Order == element.Double && doubleBondO == nil:
					v := id
					doubleBondO = &v
				// The single-bonded oxygen must be terminal (degree 1): a
				// protonated hydroxyl oxygen (degree 2, bonded to its own H)
				// is a carboxylic acid, not a carboxylate anion, and must be
				// left for the general octet rule instead.
				case nb.Order == element.Single && singleBondO == nil && m.Atoms[id].Degree == 1:
					v := id
					singleBondO = &v
				}
			}
		}

		if doubleBondO != nil && singleBondO != nil {
			o1, o2 := *doubleBondO, *singleBondO
			if !processed[o1] && !processed[o2] {
				m.Atoms[cIdx].FormalCharge = 0
				m.Atoms[cIdx].LonePairs = 0

				m.Atoms[o1].FormalCharge = 0
				m.Atoms[o1].LonePairs = 2

				m.Atoms[o2].FormalCharge = -1
				m.Atoms[o2].LonePairs = 3

				processed[cIdx] = true
				processed[o1] = true
				processed[o2] = true
			}
		}
	}
}

func assignAmmoniumAndIminium(m *AnnotatedMolecule, processed []bool) {
	for nIdx := range m.Atoms {
		if processed[nIdx] || m.Atoms[nIdx].Element != element.N {
			continue
		}

		degree := m.Atoms[nIdx].Degree
		hasDoubleBond := false
		for _, nb := range m.Adjacency[nIdx] {
			if nb.Order == element.Double {
				hasDoubleBond = true
				break
			}
		}

		if degree == 4 || (degree == 3 && hasDoubleBond) {
			m.Atoms[nIdx].FormalCharge = 1
			m.Atoms[nIdx].LonePairs = 0
			processed[nIdx] = true
		}
	}
}

func assignOniumIons(m *AnnotatedMolecule, processed []bool) {
	for idx := range m.Atoms {
		if processed[idx] {
			continue
		}

		e := m.Atoms[idx].Element
		degree := m.Atoms[idx].Degree
		if (e == element.O || e == element.S) && degree == 3 {
			m.Atoms[idx].FormalCharge = 1
			m.Atoms[idx].LonePairs = 1
			processed[idx] = true
		}
	}
}

func assignPhosphoniumIons(m *AnnotatedMolecule, processed []bool) {
	for pIdx := range m.Atoms {
		if processed[pIdx] || m.Atoms[pIdx].Element != element.P || m.Atoms[pIdx].Degree != 4 {
			continue
		}

		hasDoubleBondO := false
		for _, nb := range m.Adjacency[pIdx] {
			if m.Atoms[nb.AtomID].Element == element.O && nb.Order == element.Double {
				hasDoubleBondO = true
				break
			}
		}

		if !hasDoubleBondO {
			m.Atoms[pIdx].FormalCharge = 1
			m.Atoms[pIdx].LonePairs = 0
			processed[pIdx] = true
		}
	}
}

func assignEnolatePhenateAnions(m *AnnotatedMolecule, processed []bool) {
	for oIdx := range m.Atoms {
		if processed[oIdx] || m.Atoms[oIdx].Element != element.O || m.Atoms[oIdx].Degree != 1 {
			continue
		}

		nb := m.Adjacency[oIdx][0]
		if nb.Order != element.Single {
			continue
		}

		neighbor := m.Atoms[nb.AtomID]
		if neighbor.Element != element.C {
			continue
		}

		neighborIsSP2 := false
		for _, nnb := range m.Adjacency[nb.AtomID] {
			if nnb.Order == element.Double {
				neighborIsSP2 = true
				break
			}
		}

		if neighborIsSP2 {
			m.Atoms[oIdx].FormalCharge = -1
			m.Atoms[oIdx].LonePairs = 3
			processed[oIdx] = true
		}
	}
}

func assignGeneral(m *AnnotatedMolecule, processed []bool) error {
	for i := range m.Atoms {
		if processed[i] {
			continue
		}
		e := m.Atoms[i].Element

		valence, ok := element.ValenceElectrons(e)
		if !ok {
			return &errs.PerceptionError{
				Message: fmt.Sprintf("valence electrons not defined for element %s", e),
			}
		}

		var bondingElectrons uint8
		for _, nb := range m.Adjacency[i] {
			bondingElectrons += resolvedBondOrderToValence(nb.Order)
		}

		var lonePairs uint8

		isSecondPeriod := e == element.B || e == element.C || e == element.N || e == element.O || e == element.F

		switch {
		case e == element.H:
			bondedElectrons := saturatingMul2(bondingElectrons)
			if bondedElectrons <= 2 {
				lonePairs = (2 - bondedElectrons) / 2
			}
		case isSecondPeriod:
			bondedElectrons := saturatingMul2(bondingElectrons)
			if bondedElectrons <= 8 {
				lonePairs = (8 - bondedElectrons) / 2
			}
		case valence >= bondingElectrons:
			lonePairs = (valence - bondingElectrons) / 2
		}

		formalCharge := int8(valence) - int8(bondingElectrons) - int8(lonePairs)*2

		m.Atoms[i].LonePairs = lonePairs
		m.Atoms[i].FormalCharge = formalCharge
	}
	return nil
}

// resolvedBondOrderToValence is bondOrderToValence's counterpart for call
// sites downstream of Kekulization, where every bond order must already be
// resolved: an Aromatic order reaching this point is a pipeline ordering
// bug, not a value to silently count as zero.
func resolvedBondOrderToValence(order element.BondOrder) uint8 {
	if order == element.Aromatic {
		panic("perception: unresolved Aromatic bond order reached electron counting")
	}
	return bondOrderToValence(order)
}

func saturatingMul2(v uint8) uint8 {
	if v > 127 {
		return 255
	}
	return v * 2
}
