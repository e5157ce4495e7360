// Package dreidtyper assigns DREIDING force-field atom types and a
// canonical molecular topology to a molecule described as a labeled graph
// of atoms and bonds.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : errors.go
// @Software: GoLand
package dreidtyper

import "github.com/caltechmsc/dreid-typer/errs"

// The error taxonomy lives in package errs, where it can be imported by
// perception, rules and typing without a dependency cycle back to this
// package. These aliases re-export it at the module root so callers of
// AssignTopology never need to import errs directly.
type (
	GraphValidationError        = errs.GraphValidationError
	InvalidInputError           = errs.InvalidInputError
	RuleParseError              = errs.RuleParseError
	KekulizationError           = errs.KekulizationError
	HybridizationInferenceError = errs.HybridizationInferenceError
	PerceptionError             = errs.PerceptionError
	PerceptionFailedError       = errs.PerceptionFailedError
	AssignmentFailedError       = errs.AssignmentFailedError
)

const (
	MissingAtom     = errs.MissingAtom
	SelfBondingAtom = errs.SelfBondingAtom
)
