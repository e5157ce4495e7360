// Package typing runs the declarative rule-matching fixpoint that assigns
// a DREIDING atom type name to every atom in an AnnotatedMolecule.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : engine.go
// @Software: GoLand
package typing

import (
	"sort"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/perception"
	"github.com/caltechmsc/dreid-typer/rules"
)

// maxRounds bounds the fixpoint loop; a rule set whose neighbor_types
// conditions keep flipping a best-match decision back and forth across
// rounds is a configuration bug, not something worth looping on forever.
const maxRounds = 100

// AssignTypes runs the fixpoint rule engine over molecule and returns one
// DREIDING type name per atom, in atom-id order.
func AssignTypes(molecule *perception.AnnotatedMolecule, ruleSet []rules.Rule) ([]string, error) {
	e := newTyperEngine(molecule, ruleSet)
	return e.run()
}

type atomState struct {
	typeName string
	priority int
	typed    bool
}

type typerEngine struct {
	molecule    *perception.AnnotatedMolecule
	sortedRules []rules.Rule
	atomStates  []atomState
}

func newTyperEngine(molecule *perception.AnnotatedMolecule, ruleSet []rules.Rule) *typerEngine {
	sorted := make([]rules.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})

	return &typerEngine{
		molecule:    molecule,
		sortedRules: sorted,
		atomStates:  make([]atomState, len(molecule.Atoms)),
	}
}

func (e *typerEngine) run() ([]string, error) {
	rounds := 0
	for {
		rounds++
		if rounds > maxRounds {
			return nil, e.buildError(rounds)
		}

		if e.runSingleRound() == 0 {
			break
		}
	}

	finalTypes := make([]string, 0, len(e.molecule.Atoms))
	untypedIDs := make([]int, 0)
	for i, state := range e.atomStates {
		if state.typed {
			finalTypes = append(finalTypes, state.typeName)
		} else {
			untypedIDs = append(untypedIDs, i)
		}
	}

	if len(untypedIDs) == 0 {
		return finalTypes, nil
	}
	return nil, e.buildError(rounds)
}

func (e *typerEngine) runSingleRound() int {
	type pendingChange struct {
		atomID int
		state  atomState
	}
	var pending []pendingChange

	for _, atom := range e.molecule.Atoms {
		currentPriority := -1
		if e.atomStates[atom.ID].typed {
			currentPriority = e.atomStates[atom.ID].priority
		}

		if best, ok := e.findBestMatchingRule(atom); ok {
			if best.Priority > currentPriority {
				pending = append(pending, pendingChange{
					atomID: atom.ID,
					state:  atomState{typeName: best.ResultType, priority: best.Priority, typed: true},
				})
			}
		}
	}

	for _, change := range pending {
		e.atomStates[change.atomID] = change.state
	}
	return len(pending)
}

func (e *typerEngine) findBestMatchingRule(atom perception.AnnotatedAtom) (rules.Rule, bool) {
	for _, rule := range e.sortedRules {
		if e.matchConditions(atom, rule.Conditions) {
			return rule, true
		}
	}
	return rules.Rule{}, false
}

func (e *typerEngine) matchConditions(atom perception.AnnotatedAtom, c rules.Conditions) bool {
	if c.Element != nil && *c.Element != atom.Element {
		return false
	}
	if c.FormalCharge != nil && *c.FormalCharge != atom.FormalCharge {
		return false
	}
	if c.Degree != nil && *c.Degree != atom.Degree {
		return false
	}
	if c.IsInRing != nil && *c.IsInRing != atom.IsInRing {
		return false
	}
	if c.LonePairs != nil && *c.LonePairs != atom.LonePairs {
		return false
	}
	if c.Hybridization != nil && *c.Hybridization != atom.Hybridization {
		return false
	}
	if c.IsAromatic != nil && *c.IsAromatic != atom.IsAromatic {
		return false
	}
	if c.IsAntiAromatic != nil && *c.IsAntiAromatic != atom.IsAntiAromatic {
		return false
	}
	if c.IsResonant != nil && *c.IsResonant != atom.IsInConjugatedSystem {
		return false
	}
	if c.SmallestRingSize != nil && (atom.SmallestRingSize == nil || *c.SmallestRingSize != *atom.SmallestRingSize) {
		return false
	}

	if len(c.NeighborElements) > 0 && !e.matchNeighborElements(atom, c.NeighborElements) {
		return false
	}
	if len(c.NeighborTypes) > 0 && !e.matchNeighborTypes(atom, c.NeighborTypes) {
		return false
	}

	return true
}

func (e *typerEngine) matchNeighborElements(atom perception.AnnotatedAtom, expected map[element.Element]uint8) bool {
	actual := make(map[element.Element]uint8, len(e.molecule.Adjacency[atom.ID]))
	for _, n := range e.molecule.Adjacency[atom.ID] {
		actual[e.molecule.Atoms[n.AtomID].Element]++
	}
	for el, count := range expected {
		if actual[el] != count {
			return false
		}
	}
	return true
}

func (e *typerEngine) matchNeighborTypes(atom perception.AnnotatedAtom, expected map[string]uint8) bool {
	actual := make(map[string]uint8, len(e.molecule.Adjacency[atom.ID]))
	for _, n := range e.molecule.Adjacency[atom.ID] {
		if state := e.atomStates[n.AtomID]; state.typed {
			actual[state.typeName]++
		}
	}
	for typeName, count := range expected {
		if actual[typeName] != count {
			return false
		}
	}
	return true
}

func (e *typerEngine) buildError(roundsCompleted int) error {
	untypedIDs := make([]int, 0)
	for i, state := range e.atomStates {
		if !state.typed {
			untypedIDs = append(untypedIDs, i)
		}
	}
	return &errs.AssignmentFailedError{UntypedAtomIDs: untypedIDs, RoundsCompleted: roundsCompleted}
}
