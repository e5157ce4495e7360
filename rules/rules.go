// Package rules defines the declarative rule schema the typing engine
// matches against each atom, and loads rule sets from TOML documents.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : rules.go
// @Software: GoLand
package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caltechmsc/dreid-typer/element"
	"github.com/caltechmsc/dreid-typer/errs"
)

// Rule names a DREIDING atom type and the Conditions an atom must satisfy
// to receive it.
type Rule struct {
	Name       string     `toml:"name"`
	Priority   int        `toml:"priority"`
	ResultType string     `toml:"type"`
	Conditions Conditions `toml:"conditions"`
}

// Conditions is the set of per-atom predicates a Rule checks. Every field
// is optional (nil/empty means "unconstrained"); the atom must satisfy
// every field that is present.
type Conditions struct {
	Element          *element.Element       `toml:"element"`
	FormalCharge     *int8                  `toml:"formal_charge"`
	Degree           *uint8                 `toml:"degree"`
	IsInRing         *bool                  `toml:"is_in_ring"`
	LonePairs        *uint8                 `toml:"lone_pairs"`
	Hybridization    *element.Hybridization `toml:"hybridization"`
	IsAromatic       *bool                  `toml:"is_aromatic"`
	IsAntiAromatic   *bool                  `toml:"is_anti_aromatic"`
	IsResonant       *bool                  `toml:"is_resonant"`
	SmallestRingSize *uint8                 `toml:"smallest_ring_size"`

	NeighborElements map[element.Element]uint8 `toml:"neighbor_elements"`
	NeighborTypes    map[string]uint8          `toml:"neighbor_types"`
}

type ruleset struct {
	Rule []Rule `toml:"rule"`
}

// ParseRules parses a TOML document of `[[rule]]` tables into a rule slice.
// Every rule must name its `name`, `priority`, and `type`; any table key
// this schema does not recognize is rejected.
func ParseRules(content string) ([]Rule, error) {
	var rs ruleset
	meta, err := toml.Decode(content, &rs)
	if err != nil {
		return nil, &errs.RuleParseError{Cause: err}
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &errs.RuleParseError{
			Cause: fmt.Errorf("unknown field: %s", undecoded[0].String()),
		}
	}

	for i, r := range rs.Rule {
		if r.Name == "" {
			return nil, &errs.RuleParseError{Cause: fmt.Errorf("rule %d: missing field `name`", i)}
		}
		if r.ResultType == "" {
			return nil, &errs.RuleParseError{Cause: fmt.Errorf("rule %d (%s): missing field `type`", i, r.Name)}
		}
	}

	return rs.Rule, nil
}
