package element

import "fmt"

// BondOrder is the closed bond-order enumeration used on the input graph.
// Aromatic is a hidden-state marker meaning "this bond's order is unknown
// until Kekulization resolves it" — it must never reach electron-counting
// or valence-check code.
type BondOrder uint8

const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

var bondOrderNames = map[BondOrder]string{
	Single: "Single", Double: "Double", Triple: "Triple", Aromatic: "Aromatic",
}

// ParseBondOrderError reports a string that does not name a known BondOrder.
type ParseBondOrderError struct {
	Value string
}

func (e *ParseBondOrderError) Error() string {
	return fmt.Sprintf("invalid bond order: '%s'", e.Value)
}

// ParseBondOrder resolves "Single", "Double", "Triple" or "Aromatic".
func ParseBondOrder(s string) (BondOrder, error) {
	for order, name := range bondOrderNames {
		if name == s {
			return order, nil
		}
	}
	return 0, &ParseBondOrderError{Value: s}
}

func (b BondOrder) String() string {
	if s, ok := bondOrderNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BondOrder(%d)", uint8(b))
}

// MarshalText renders the bond order's name, so it can be used as a
// TOML/JSON scalar value.
func (b BondOrder) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a bond order name, so it can be decoded from a
// TOML/JSON scalar value.
func (b *BondOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseBondOrder(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Integer returns the order's contribution to a summed atomic valence.
// Aromatic must be resolved by Kekulization before this is ever called; it
// panics rather than silently mis-counting electrons.
func (b BondOrder) Integer() int {
	switch b {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	default:
		panic(fmt.Sprintf("element: Integer() called on unresolved bond order %v", b))
	}
}

// TopologyBondOrder extends BondOrder with Resonant, a topology-level
// marker applied to bonds whose endpoints are both part of a conjugated
// system. It is never used during perception.
type TopologyBondOrder uint8

const (
	TopologySingle TopologyBondOrder = iota + 1
	TopologyDouble
	TopologyTriple
	TopologyResonant
)

var topologyBondOrderNames = map[TopologyBondOrder]string{
	TopologySingle: "Single", TopologyDouble: "Double", TopologyTriple: "Triple", TopologyResonant: "Resonant",
}

func (b TopologyBondOrder) String() string {
	if s, ok := topologyBondOrderNames[b]; ok {
		return s
	}
	return fmt.Sprintf("TopologyBondOrder(%d)", uint8(b))
}

// ParseTopologyBondOrderError reports a string that does not name a known
// TopologyBondOrder.
type ParseTopologyBondOrderError struct {
	Value string
}

func (e *ParseTopologyBondOrderError) Error() string {
	return fmt.Sprintf("invalid topology bond order: '%s'", e.Value)
}

// ParseTopologyBondOrder resolves "Single", "Double", "Triple" or
// "Resonant".
func ParseTopologyBondOrder(s string) (TopologyBondOrder, error) {
	for order, name := range topologyBondOrderNames {
		if name == s {
			return order, nil
		}
	}
	return 0, &ParseTopologyBondOrderError{Value: s}
}

// MarshalText renders the topology bond order's name, so it can be used as
// a TOML/JSON scalar value.
func (b TopologyBondOrder) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a topology bond order name, so it can be decoded
// from a TOML/JSON scalar value.
func (b *TopologyBondOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseTopologyBondOrder(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// FromBondOrder lifts a resolved (non-Aromatic) BondOrder into its
// topology-level counterpart.
func FromBondOrder(b BondOrder) TopologyBondOrder {
	switch b {
	case Single:
		return TopologySingle
	case Double:
		return TopologyDouble
	case Triple:
		return TopologyTriple
	default:
		panic(fmt.Sprintf("element: FromBondOrder() called on unresolved bond order %v", b))
	}
}

// Hybridization classifies an atom's local orbital geometry. Unknown is the
// initial, unperceived state; None means the atom belongs to a class (H,
// halogens, noble gases, s-block metals, transition metals) this model
// never hybridizes.
type Hybridization uint8

const (
	Unknown Hybridization = iota
	NoHybridization
	SP
	SP2
	SP3
	Resonant
)

var hybridizationNames = map[Hybridization]string{
	Unknown: "Unknown", NoHybridization: "None", SP: "SP", SP2: "SP2", SP3: "SP3", Resonant: "Resonant",
}

// ParseHybridizationError reports a string that does not name a known
// Hybridization.
type ParseHybridizationError struct {
	Value string
}

func (e *ParseHybridizationError) Error() string {
	return fmt.Sprintf("invalid hybridization: '%s'", e.Value)
}

// ParseHybridization resolves "Unknown", "None", "SP", "SP2", "SP3" or
// "Resonant".
func ParseHybridization(s string) (Hybridization, error) {
	for h, name := range hybridizationNames {
		if name == s {
			return h, nil
		}
	}
	return 0, &ParseHybridizationError{Value: s}
}

func (h Hybridization) String() string {
	if s, ok := hybridizationNames[h]; ok {
		return s
	}
	return fmt.Sprintf("Hybridization(%d)", uint8(h))
}

// MarshalText renders the hybridization's name, so it can be used as a
// TOML/JSON scalar value.
func (h Hybridization) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a hybridization name, so it can be decoded from a
// TOML/JSON scalar value.
func (h *Hybridization) UnmarshalText(text []byte) error {
	parsed, err := ParseHybridization(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
