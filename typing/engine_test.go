package typing

import (
	"testing"

	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/perception"
	"github.com/caltechmsc/dreid-typer/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func methaneLikeMolecule() *perception.AnnotatedMolecule {
	carbon := perception.AnnotatedAtom{ID: 0, Element: element.C, Degree: 4, Hybridization: element.SP3}
	h := func(id int) perception.AnnotatedAtom {
		return perception.AnnotatedAtom{ID: id, Element: element.H, Degree: 1, Hybridization: element.NoHybridization}
	}

	atoms := []perception.AnnotatedAtom{carbon, h(1), h(2), h(3), h(4)}
	adjacency := make([][]perception.Neighbor, 5)
	for i := 1; i <= 4; i++ {
		adjacency[0] = append(adjacency[0], perception.Neighbor{AtomID: i, Order: element.Single})
		adjacency[i] = append(adjacency[i], perception.Neighbor{AtomID: 0, Order: element.Single})
	}

	return &perception.AnnotatedMolecule{Atoms: atoms, Adjacency: adjacency}
}

func basicRules() []rules.Rule {
	return []rules.Rule{
		{Name: "C_sp3", Priority: 60, ResultType: "C_3", Conditions: rules.Conditions{
			Element: ptr(element.C), Hybridization: ptr(element.SP3),
		}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{
			Element: ptr(element.H),
		}},
	}
}

func TestAssignTypesResolvesMethaneInOneRound(t *testing.T) {
	types, err := AssignTypes(methaneLikeMolecule(), basicRules())
	require.NoError(t, err)
	require.Len(t, types, 5)
	assert.Equal(t, "C_3", types[0])
	for _, h := range types[1:] {
		assert.Equal(t, "H_", h)
	}
}

func TestAssignTypesPicksHigherPriorityRuleWhenBothMatch(t *testing.T) {
	molecule := methaneLikeMolecule()
	ruleSet := append(basicRules(), rules.Rule{
		Name: "C_override", Priority: 100, ResultType: "C_OVERRIDE",
		Conditions: rules.Conditions{Element: ptr(element.C)},
	})

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "C_OVERRIDE", types[0])
}

func TestAssignTypesBreaksPriorityTiesByAscendingName(t *testing.T) {
	molecule := methaneLikeMolecule()
	ruleSet := []rules.Rule{
		{Name: "Zeta", Priority: 50, ResultType: "FROM_ZETA", Conditions: rules.Conditions{Element: ptr(element.C)}},
		{Name: "Alpha", Priority: 50, ResultType: "FROM_ALPHA", Conditions: rules.Conditions{Element: ptr(element.C)}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{Element: ptr(element.H)}},
	}

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "FROM_ALPHA", types[0])
}

func TestAssignTypesUsesNeighborTypesAcrossRounds(t *testing.T) {
	molecule := methaneLikeMolecule()
	ruleSet := []rules.Rule{
		{Name: "C_sp3", Priority: 60, ResultType: "C_3", Conditions: rules.Conditions{
			Element: ptr(element.C), Hybridization: ptr(element.SP3),
		}},
		{Name: "H_bonded_to_C3", Priority: 50, ResultType: "H_SPECIAL", Conditions: rules.Conditions{
			Element:       ptr(element.H),
			NeighborTypes: map[string]uint8{"C_3": 1},
		}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{Element: ptr(element.H)}},
	}

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "C_3", types[0])
	for _, h := range types[1:] {
		assert.Equal(t, "H_SPECIAL", h)
	}
}

func TestAssignTypesMatchesSmallestRingSize(t *testing.T) {
	molecule := methaneLikeMolecule()
	molecule.Atoms[0].SmallestRingSize = ptr(uint8(3))

	ruleSet := []rules.Rule{
		{Name: "C_ring3", Priority: 60, ResultType: "C_R3", Conditions: rules.Conditions{
			Element:          ptr(element.C),
			SmallestRingSize: ptr(uint8(3)),
		}},
		{Name: "C_fallback", Priority: 10, ResultType: "C_3", Conditions: rules.Conditions{
			Element: ptr(element.C),
		}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{Element: ptr(element.H)}},
	}

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "C_R3", types[0])
}

func TestAssignTypesSmallestRingSizeConditionRejectsNonRingAtom(t *testing.T) {
	molecule := methaneLikeMolecule()

	ruleSet := []rules.Rule{
		{Name: "C_ring3", Priority: 60, ResultType: "C_R3", Conditions: rules.Conditions{
			Element:          ptr(element.C),
			SmallestRingSize: ptr(uint8(3)),
		}},
		{Name: "C_fallback", Priority: 10, ResultType: "C_3", Conditions: rules.Conditions{
			Element: ptr(element.C),
		}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{Element: ptr(element.H)}},
	}

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "C_3", types[0], "an atom with no ring membership must not match a smallest_ring_size condition")
}

func TestAssignTypesFailsWhenAnAtomNeverMatches(t *testing.T) {
	molecule := methaneLikeMolecule()
	ruleSet := []rules.Rule{
		{Name: "C_sp3", Priority: 60, ResultType: "C_3", Conditions: rules.Conditions{Element: ptr(element.C)}},
	}

	_, err := AssignTypes(molecule, ruleSet)
	require.Error(t, err)

	var assignErr *errs.AssignmentFailedError
	require.ErrorAs(t, err, &assignErr)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, assignErr.UntypedAtomIDs)
}

func TestAssignTypesMatchesExactNeighborElementCounts(t *testing.T) {
	molecule := methaneLikeMolecule()
	ruleSet := []rules.Rule{
		{Name: "C_quad_H", Priority: 60, ResultType: "C_3", Conditions: rules.Conditions{
			Element:          ptr(element.C),
			NeighborElements: map[element.Element]uint8{element.H: 4},
		}},
		{Name: "H_generic", Priority: 10, ResultType: "H_", Conditions: rules.Conditions{Element: ptr(element.H)}},
	}

	types, err := AssignTypes(molecule, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, "C_3", types[0])
}
