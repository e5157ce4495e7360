// Package perception: Kekulization stage.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : kekulize.go
// @Software: GoLand
package perception

import (
	"fmt"
	"sort"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/graph"
)

// PerceiveKekulization replaces every aromatic bond order with a concrete
// Single or Double order. Aromatic bonds are partitioned into connected
// systems, and each system is solved independently by chronological
// backtracking: try Double then Single, per bond in ascending bond-id order, pruning
// any assignment that would push an atom's valence over its element's
// maximum.
func PerceiveKekulization(m *AnnotatedMolecule) error {
	var aromaticBonds []int
	for _, b := range m.Bonds {
		if b.Order == element.Aromatic {
			aromaticBonds = append(aromaticBonds, b.ID)
		}
	}
	if len(aromaticBonds) == 0 {
		return nil
	}

	if err := validateAromaticBondsInRings(m, aromaticBonds); err != nil {
		return err
	}

	systems := findAromaticSystems(m, aromaticBonds)

	newBondOrders := make(map[int]element.BondOrder)

	for _, systemBonds := range systems {
		sort.Ints(systemBonds)
		solver := newKekuleSolver(m, systemBonds)
		solution, ok := solver.solve()
		if !ok {
			return &errs.KekulizationError{
				Message: "could not find a valid Kekulé structure for an aromatic system",
			}
		}
		for id, order := range solution {
			newBondOrders[id] = order
		}
	}

	bondIndexByID := make(map[int]int, len(m.Bonds))
	for i, b := range m.Bonds {
		bondIndexByID[b.ID] = i
	}
	for bondID, newOrder := range newBondOrders {
		m.setBondOrder(bondIndexByID[bondID], newOrder)
	}

	return nil
}

type kekuleSolver struct {
	molecule     *AnnotatedMolecule
	bondIndices  []int
	assignments  []*element.BondOrder
	positionByID map[int]int
}

func newKekuleSolver(molecule *AnnotatedMolecule, systemBondIDs []int) *kekuleSolver {
	bondIndexByID := make(map[int]int, len(molecule.Bonds))
	for i, b := range molecule.Bonds {
		bondIndexByID[b.ID] = i
	}

	bondIndices := make([]int, len(systemBondIDs))
	positionByID := make(map[int]int, len(systemBondIDs))
	for i, id := range systemBondIDs {
		bondIndices[i] = bondIndexByID[id]
		positionByID[id] = i
	}

	return &kekuleSolver{
		molecule:     molecule,
		bondIndices:  bondIndices,
		assignments:  make([]*element.BondOrder, len(bondIndices)),
		positionByID: positionByID,
	}
}

func (s *kekuleSolver) solve() (map[int]element.BondOrder, bool) {
	if !s.backtrack(0) {
		return nil, false
	}
	solution := make(map[int]element.BondOrder, len(s.bondIndices))
	for i, bondIdx := range s.bondIndices {
		bondID := s.molecule.Bonds[bondIdx].ID
		solution[bondID] = *s.assignments[i]
	}
	return solution, true
}

func (s *kekuleSolver) backtrack(k int) bool {
	if k == len(s.assignments) {
		return true
	}

	for _, choice := range [2]element.BondOrder{element.Double, element.Single} {
		order := choice
		s.assignments[k] = &order

		if s.isConsistent(k) {
			if s.backtrack(k + 1) {
				return true
			}
		}
	}

	s.assignments[k] = nil
	return false
}

func (s *kekuleSolver) isConsistent(k int) bool {
	bondIdx := s.bondIndices[k]
	u, v := s.molecule.Bonds[bondIdx].AtomIDs[0], s.molecule.Bonds[bondIdx].AtomIDs[1]
	return s.isValenceOK(u) && s.isValenceOK(v)
}

func (s *kekuleSolver) isValenceOK(atomID int) bool {
	maxValence := element.MaxValence(s.molecule.Atoms[atomID].Element)
	var currentValence uint8

	for _, nb := range s.molecule.Adjacency[atomID] {
		bond, _ := s.molecule.BondBetween(atomID, nb.AtomID)

		if nb.Order == element.Aromatic {
			if pos, ok := s.positionByID[bond.ID]; ok {
				if assigned := s.assignments[pos]; assigned != nil {
					currentValence += bondOrderToValence(*assigned)
				}
			}
		} else {
			currentValence += bondOrderToValence(nb.Order)
		}
	}

	return currentValence <= maxValence
}

func findAromaticSystems(molecule *AnnotatedMolecule, aromaticBonds []int) [][]int {
	var systems [][]int
	visitedBonds := make(map[int]bool)

	for _, startBondID := range aromaticBonds {
		if visitedBonds[startBondID] {
			continue
		}

		var currentSystem []int
		queue := []int{startBondID}
		visitedBonds[startBondID] = true

		for len(queue) > 0 {
			bondID := queue[0]
			queue = queue[1:]
			currentSystem = append(currentSystem, bondID)

			bond, _ := findBondByID(molecule, bondID)
			for _, atomID := range bond.AtomIDs {
				for _, nb := range molecule.Adjacency[atomID] {
					if nb.Order != element.Aromatic {
						continue
					}
					neighborBond, _ := molecule.BondBetween(atomID, nb.AtomID)
					if !visitedBonds[neighborBond.ID] {
						visitedBonds[neighborBond.ID] = true
						queue = append(queue, neighborBond.ID)
					}
				}
			}
		}
		systems = append(systems, currentSystem)
	}
	return systems
}

func findBondByID(m *AnnotatedMolecule, bondID int) (graph.BondEdge, bool) {
	for _, b := range m.Bonds {
		if b.ID == bondID {
			return b, true
		}
	}
	return graph.BondEdge{}, false
}

func validateAromaticBondsInRings(molecule *AnnotatedMolecule, aromaticBonds []int) error {
	for _, bondID := range aromaticBonds {
		bond, _ := findBondByID(molecule, bondID)
		u, v := bond.AtomIDs[0], bond.AtomIDs[1]
		if !molecule.Atoms[u].IsInRing || !molecule.Atoms[v].IsInRing {
			return &errs.KekulizationError{
				Message: fmt.Sprintf("aromatic bond (ID %d) found with at least one atom not in a ring", bondID),
			}
		}
	}
	return nil
}

func bondOrderToValence(order element.BondOrder) uint8 {
	switch order {
	case element.Single:
		return 1
	case element.Double:
		return 2
	case element.Triple:
		return 3
	default:
		return 0
	}
}
