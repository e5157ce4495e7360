// Package errs defines the error taxonomy shared by every stage of the
// typer: graph validation, rule parsing, perception failures and typing
// assignment failures. Each kind is its own named struct implementing
// error, matched by callers with errors.As, following the error-struct
// idiom this codebase uses elsewhere (see, e.g., the teacher's
// CisTransError).
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : errors.go
// @Software: GoLand
package errs

import "fmt"

// GraphValidationReason names why a MolecularGraph failed validation.
type GraphValidationReason int

const (
	// MissingAtom means a bond references an atom id outside [0, len(atoms)).
	MissingAtom GraphValidationReason = iota
	// SelfBondingAtom means a bond's two endpoints are the same atom.
	SelfBondingAtom
)

// GraphValidationError reports a structurally invalid input graph.
type GraphValidationError struct {
	Reason GraphValidationReason
	AtomID int
}

func (e *GraphValidationError) Error() string {
	switch e.Reason {
	case SelfBondingAtom:
		return fmt.Sprintf("graph validation error: atom %d is bonded to itself", e.AtomID)
	default:
		return fmt.Sprintf("graph validation error: bond references missing atom %d", e.AtomID)
	}
}

// InvalidInputError wraps a GraphValidationError as the top-level failure
// raised synchronously at the start of perception.
type InvalidInputError struct {
	Cause *GraphValidationError
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Cause.Error())
}

func (e *InvalidInputError) Unwrap() error { return e.Cause }

// RuleParseError reports that a rule configuration document failed to
// parse: bad TOML syntax, an unknown field, or an unknown Element or
// Hybridization value.
type RuleParseError struct {
	Cause error
}

func (e *RuleParseError) Error() string {
	return fmt.Sprintf("rule parse error: %s", e.Cause.Error())
}

func (e *RuleParseError) Unwrap() error { return e.Cause }

// KekulizationError reports that no consistent assignment of Single/Double
// bond orders exists for an aromatic system.
type KekulizationError struct {
	Message string
}

func (e *KekulizationError) Error() string {
	return fmt.Sprintf("kekulization failed: %s", e.Message)
}

// HybridizationInferenceError reports that an atom's steric number (5 or
// greater) has no VSEPR hybridization in this model.
type HybridizationInferenceError struct {
	AtomID int
}

func (e *HybridizationInferenceError) Error() string {
	return fmt.Sprintf("could not infer hybridization for atom %d", e.AtomID)
}

// PerceptionError is a generic perception failure for conditions the
// specific stage errors above don't name.
type PerceptionError struct {
	Message string
}

func (e *PerceptionError) Error() string {
	return e.Message
}

// PerceptionFailedError names which perception stage failed and wraps the
// stage-specific cause.
type PerceptionFailedError struct {
	Step  string
	Cause error
}

func (e *PerceptionFailedError) Error() string {
	return fmt.Sprintf("perception failed at step %s: %s", e.Step, e.Cause.Error())
}

func (e *PerceptionFailedError) Unwrap() error { return e.Cause }

// AssignmentFailedError reports that the typing fixpoint terminated without
// producing a type for every atom, or exceeded the round limit.
type AssignmentFailedError struct {
	UntypedAtomIDs  []int
	RoundsCompleted int
}

func (e *AssignmentFailedError) Error() string {
	return fmt.Sprintf(
		"assignment failed after %d rounds: %d atom(s) untyped",
		e.RoundsCompleted, len(e.UntypedAtomIDs),
	)
}
