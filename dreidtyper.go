// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : dreidtyper.go
// @Software: GoLand
package dreidtyper

import (
	"github.com/caltechmsc/dreid-typer/builder"
	"github.com/caltechmsc/dreid-typer/graph"
	"github.com/caltechmsc/dreid-typer/rules"
	"github.com/caltechmsc/dreid-typer/typing"

	"github.com/caltechmsc/dreid-typer/perception"
)

// Re-exported so callers never need to import the element/graph/rules
// packages directly for the common path.
type (
	MolecularGraph    = graph.MolecularGraph
	MolecularTopology = graph.MolecularTopology
	Rule              = rules.Rule
	Conditions        = rules.Conditions
)

// NewMolecularGraph returns an empty graph ready for AddAtom/AddBond calls.
func NewMolecularGraph() *MolecularGraph {
	return graph.NewMolecularGraph()
}

// ParseRules parses a TOML document of `[[rule]]` tables into a rule set
// suitable for AssignTopologyWithRules.
func ParseRules(content string) ([]Rule, error) {
	return rules.ParseRules(content)
}

// DefaultRules returns the built-in DREIDING rule set AssignTopology uses.
func DefaultRules() []Rule {
	return rules.DefaultRules()
}

// AssignTopology perceives g's chemistry, assigns DREIDING atom types using
// the built-in default rule set, and builds the resulting bonded-
// interaction topology.
func AssignTopology(g *MolecularGraph) (*MolecularTopology, error) {
	return AssignTopologyWithRules(g, DefaultRules())
}

// AssignTopologyWithRules is AssignTopology parameterized over a caller-
// supplied rule set, letting a caller extend or replace the default
// DREIDING typing rules.
func AssignTopologyWithRules(g *MolecularGraph, ruleSet []Rule) (*MolecularTopology, error) {
	annotated, err := perception.Perceive(g)
	if err != nil {
		return nil, err
	}

	atomTypes, err := typing.AssignTypes(annotated, ruleSet)
	if err != nil {
		return nil, err
	}

	topology := builder.BuildTopology(annotated, atomTypes)
	return &topology, nil
}
