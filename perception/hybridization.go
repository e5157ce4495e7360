// Package perception: hybridization inference stage.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : hybridization.go
// @Software: GoLand
package perception

import (
	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
)

// PerceiveHybridization assigns every atom's VSEPR hybridization state from
// its steric number (degree plus lone pairs), with conjugation and
// aromaticity overrides taking precedence over the raw steric-number
// classification, and collapses the stored steric number to the value
// implied by the final hybridization.
func PerceiveHybridization(m *AnnotatedMolecule) error {
	for i := range m.Atoms {
		atom := m.Atoms[i]
		stericNumber := atom.Degree + atom.LonePairs

		hybridization, err := determineHybridization(atom, stericNumber)
		if err != nil {
			return err
		}

		m.Atoms[i].Hybridization = hybridization

		switch hybridization {
		case element.Resonant, element.SP2:
			m.Atoms[i].StericNumber = 3
		case element.SP3:
			m.Atoms[i].StericNumber = 4
		case element.SP:
			m.Atoms[i].StericNumber = 2
		default:
			m.Atoms[i].StericNumber = stericNumber
		}
	}
	return nil
}

func determineHybridization(atom AnnotatedAtom, stericNumber uint8) (element.Hybridization, error) {
	if element.IsNonHybridizing(atom.Element) {
		return element.NoHybridization, nil
	}

	if atom.IsInConjugatedSystem && !atom.IsAntiAromatic {
		if stericNumber <= 3 || (stericNumber == 4 && atom.LonePairs > 0) {
			return element.Resonant, nil
		}
	}

	if atom.IsAromatic {
		return element.SP2, nil
	}

	switch stericNumber {
	case 4:
		return element.SP3, nil
	case 3:
		return element.SP2, nil
	case 2:
		return element.SP, nil
	case 0, 1:
		return element.NoHybridization, nil
	default:
		return element.Unknown, &errs.HybridizationInferenceError{AtomID: atom.ID}
	}
}
