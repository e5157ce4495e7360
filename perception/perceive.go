// Package perception: pipeline orchestrator.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : perceive.go
// @Software: GoLand
package perception

import (
	"github.com/caltechmsc/dreid-typer/errs"
	"github.com/caltechmsc/dreid-typer/graph"
)

type perceptionStep struct {
	name string
	run  func(*AnnotatedMolecule) error
}

var pipeline = []perceptionStep{
	{"Rings", PerceiveRings},
	{"Kekulization", PerceiveKekulization},
	{"Electrons", PerceiveElectrons},
	{"Aromaticity", PerceiveAromaticity},
	{"Resonance", PerceiveResonance},
	{"Hybridization", PerceiveHybridization},
}

// Perceive validates g, builds its AnnotatedMolecule, and runs every
// perception stage in order: rings, Kekulization, electron assignment,
// aromaticity, resonance, hybridization. A stage failure is wrapped with
// the name of the stage that failed.
func Perceive(g *graph.MolecularGraph) (*AnnotatedMolecule, error) {
	molecule, err := NewAnnotatedMolecule(g)
	if err != nil {
		validationErr, ok := err.(*errs.GraphValidationError)
		if !ok {
			return nil, err
		}
		return nil, &errs.InvalidInputError{Cause: validationErr}
	}

	for _, step := range pipeline {
		if err := step.run(molecule); err != nil {
			return nil, &errs.PerceptionFailedError{Step: step.name, Cause: err}
		}
	}

	return molecule, nil
}
