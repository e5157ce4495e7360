// Package element provides the closed chemical-element enumeration used
// throughout the typer: parsing from symbol, display, and the valence
// tables the perception pipeline needs.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : element.go
// @Software: GoLand
package element

import "fmt"

// Element is the closed periodic-table enumeration, numbered by atomic
// number (H=1 through Lr=103).
type Element uint8

const (
	H Element = 1
	He Element = 2
	Li Element = 3
	Be Element = 4
	B  Element = 5
	C  Element = 6
	N  Element = 7
	O  Element = 8
	F  Element = 9
	Ne Element = 10
	Na Element = 11
	Mg Element = 12
	Al Element = 13
	Si Element = 14
	P  Element = 15
	S  Element = 16
	Cl Element = 17
	Ar Element = 18
	K  Element = 19
	Ca Element = 20
	Sc Element = 21
	Ti Element = 22
	V  Element = 23
	Cr Element = 24
	Mn Element = 25
	Fe Element = 26
	Co Element = 27
	Ni Element = 28
	Cu Element = 29
	Zn Element = 30
	Ga Element = 31
	Ge Element = 32
	As Element = 33
	Se Element = 34
	Br Element = 35
	Kr Element = 36
	Rb Element = 37
	Sr Element = 38
	Y  Element = 39
	Zr Element = 40
	Nb Element = 41
	Mo Element = 42
	Tc Element = 43
	Ru Element = 44
	Rh Element = 45
	Pd Element = 46
	Ag Element = 47
	Cd Element = 48
	In Element = 49
	Sn Element = 50
	Sb Element = 51
	Te Element = 52
	I  Element = 53
	Xe Element = 54
	Cs Element = 55
	Ba Element = 56
	La Element = 57
	Ce Element = 58
	Pr Element = 59
	Nd Element = 60
	Pm Element = 61
	Sm Element = 62
	Eu Element = 63
	Gd Element = 64
	Tb Element = 65
	Dy Element = 66
	Ho Element = 67
	Er Element = 68
	Tm Element = 69
	Yb Element = 70
	Lu Element = 71
	Hf Element = 72
	Ta Element = 73
	W  Element = 74
	Re Element = 75
	Os Element = 76
	Ir Element = 77
	Pt Element = 78
	Au Element = 79
	Hg Element = 80
	Tl Element = 81
	Pb Element = 82
	Bi Element = 83
	Po Element = 84
	At Element = 85
	Rn Element = 86
	Fr Element = 87
	Ra Element = 88
	Ac Element = 89
	Th Element = 90
	Pa Element = 91
	U  Element = 92
	Np Element = 93
	Pu Element = 94
	Am Element = 95
	Cm Element = 96
	Bk Element = 97
	Cf Element = 98
	Es Element = 99
	Fm Element = 100
	Md Element = 101
	No Element = 102
	Lr Element = 103
)

var symbolByElement = map[Element]string{
	H: "H", He: "He", Li: "Li", Be: "Be", B: "B", C: "C", N: "N", O: "O", F: "F", Ne: "Ne",
	Na: "Na", Mg: "Mg", Al: "Al", Si: "Si", P: "P", S: "S", Cl: "Cl", Ar: "Ar",
	K: "K", Ca: "Ca", Sc: "Sc", Ti: "Ti", V: "V", Cr: "Cr", Mn: "Mn", Fe: "Fe", Co: "Co",
	Ni: "Ni", Cu: "Cu", Zn: "Zn", Ga: "Ga", Ge: "Ge", As: "As", Se: "Se", Br: "Br", Kr: "Kr",
	Rb: "Rb", Sr: "Sr", Y: "Y", Zr: "Zr", Nb: "Nb", Mo: "Mo", Tc: "Tc", Ru: "Ru", Rh: "Rh",
	Pd: "Pd", Ag: "Ag", Cd: "Cd", In: "In", Sn: "Sn", Sb: "Sb", Te: "Te", I: "I", Xe: "Xe",
	Cs: "Cs", Ba: "Ba", La: "La", Ce: "Ce", Pr: "Pr", Nd: "Nd", Pm: "Pm", Sm: "Sm", Eu: "Eu",
	Gd: "Gd", Tb: "Tb", Dy: "Dy", Ho: "Ho", Er: "Er", Tm: "Tm", Yb: "Yb", Lu: "Lu",
	Hf: "Hf", Ta: "Ta", W: "W", Re: "Re", Os: "Os", Ir: "Ir", Pt: "Pt", Au: "Au", Hg: "Hg",
	Tl: "Tl", Pb: "Pb", Bi: "Bi", Po: "Po", At: "At", Rn: "Rn",
	Fr: "Fr", Ra: "Ra", Ac: "Ac", Th: "Th", Pa: "Pa", U: "U", Np: "Np", Pu: "Pu", Am: "Am",
	Cm: "Cm", Bk: "Bk", Cf: "Cf", Es: "Es", Fm: "Fm", Md: "Md", No: "No", Lr: "Lr",
}

var elementBySymbol = func() map[string]Element {
	m := make(map[string]Element, len(symbolByElement))
	for e, s := range symbolByElement {
		m[s] = e
	}
	return m
}()

// ParseElementError reports a symbol that does not name a known element.
type ParseElementError struct {
	Symbol string
}

func (e *ParseElementError) Error() string {
	return fmt.Sprintf("invalid element symbol: '%s'", e.Symbol)
}

// Parse resolves a periodic-table symbol such as "C" or "Cl" to its Element.
func Parse(symbol string) (Element, error) {
	e, ok := elementBySymbol[symbol]
	if !ok {
		return 0, &ParseElementError{Symbol: symbol}
	}
	return e, nil
}

// String renders the element's periodic-table symbol.
func (e Element) String() string {
	if s, ok := symbolByElement[e]; ok {
		return s
	}
	return fmt.Sprintf("Element(%d)", uint8(e))
}

// MarshalText renders the element's symbol, so Element can be used as a
// TOML/JSON scalar value or map key.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses a periodic-table symbol, so Element can be decoded
// from a TOML/JSON scalar value or map key.
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// mainGroupValenceElectrons holds the number of valence electrons for
// main-group elements. Transition metals, lanthanides and actinides have no
// well-defined main-group valence in this model and are intentionally
// absent.
var mainGroupValenceElectrons = map[Element]uint8{
	H: 1, He: 2,
	Li: 1, Be: 2, B: 3, C: 4, N: 5, O: 6, F: 7, Ne: 8,
	Na: 1, Mg: 2, Al: 3, Si: 4, P: 5, S: 6, Cl: 7, Ar: 8,
	K: 1, Ca: 2, Ga: 3, Ge: 4, As: 5, Se: 6, Br: 7, Kr: 8,
	Rb: 1, Sr: 2, In: 3, Sn: 4, Sb: 5, Te: 6, I: 7, Xe: 8,
	Cs: 1, Ba: 2, Tl: 3, Pb: 4, Bi: 5, Po: 6, At: 7, Rn: 8,
	Fr: 1, Ra: 2,
}

// ValenceElectrons returns the number of valence electrons for main-group
// elements, and ok=false for transition metals, lanthanides and actinides,
// which this model treats as having no defined valence-electron count.
func ValenceElectrons(e Element) (count uint8, ok bool) {
	v, present := mainGroupValenceElectrons[e]
	return v, present
}

// MaxValence returns the element's per-element bonding-order ceiling used by
// the Kekulé solver: H/F/Cl/Br/I -> 1, O/S -> 2, N/P/B -> 3, C/Si -> 4,
// everything else -> 8.
func MaxValence(e Element) uint8 {
	switch e {
	case H, F, Cl, Br, I:
		return 1
	case O, S:
		return 2
	case N, P, B:
		return 3
	case C, Si:
		return 4
	default:
		return 8
	}
}

// nonHybridizing is the set of elements that never adopt a hybridization
// state in this model: the s-block metals Li-Ra, halogens, noble gases,
// and the d-block transition metals Sc-Zn, Y-Cd and Hf-Hg. Hydrogen is not
// in this set — it reaches Hybridization::None through its steric number
// (always 0 or 1) instead, the same path light main-group atoms take.
var nonHybridizing = map[Element]bool{
	Li: true, Na: true, K: true, Rb: true, Cs: true, Fr: true,
	Be: true, Mg: true, Ca: true, Sr: true, Ba: true, Ra: true,
	F: true, Cl: true, Br: true, I: true, At: true,
	He: true, Ne: true, Ar: true, Kr: true, Xe: true, Rn: true,
	Sc: true, Ti: true, V: true, Cr: true, Mn: true, Fe: true, Co: true, Ni: true, Cu: true, Zn: true,
	Y: true, Zr: true, Nb: true, Mo: true, Tc: true, Ru: true, Rh: true, Pd: true, Ag: true, Cd: true,
	Hf: true, Ta: true, W: true, Re: true, Os: true, Ir: true, Pt: true, Au: true, Hg: true,
}

// IsNonHybridizing reports whether e never adopts a hybridization state.
func IsNonHybridizing(e Element) bool {
	return nonHybridizing[e]
}
